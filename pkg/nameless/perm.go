package nameless

import (
	"slices"
	"strings"
)

// Perm is a finite bijection over erased names: it moves the finitely
// many names in its support and is the identity everywhere else. The
// zero value is the identity permutation. Perm values are immutable;
// every constructor allocates its own mapping.
type Perm struct {
	fwd map[AnyName]AnyName
}

// IdentityPerm returns the identity permutation.
func IdentityPerm() Perm { return Perm{} }

// Transposition returns the permutation exchanging a and b. If a equals
// b it is the identity.
func Transposition(a, b AnyName) Perm {
	if a == b {
		return Perm{}
	}
	return Perm{fwd: map[AnyName]AnyName{a: b, b: a}}
}

// Apply returns the image of n, which is n itself outside the support.
func (p Perm) Apply(n AnyName) AnyName {
	if img, ok := p.fwd[n]; ok {
		return img
	}
	return n
}

// IsIdentity reports whether the permutation moves no name.
func (p Perm) IsIdentity() bool { return len(p.fwd) == 0 }

// Support returns the names the permutation moves, sorted by their
// rendered form for determinism.
func (p Perm) Support() []AnyName {
	out := make([]AnyName, 0, len(p.fwd))
	for n := range p.fwd {
		out = append(out, n)
	}
	slices.SortFunc(out, func(a, b AnyName) int {
		return strings.Compare(a.String(), b.String())
	})
	return out
}

func (p Perm) String() string {
	if p.IsIdentity() {
		return "(id)"
	}
	var sb strings.Builder
	for _, n := range p.Support() {
		sb.WriteString("(")
		sb.WriteString(n.String())
		sb.WriteString(" ")
		sb.WriteString(p.Apply(n).String())
		sb.WriteString(")")
	}
	return sb.String()
}

// Compose returns the permutation applying q first and p second:
// Compose(p, q).Apply(x) == p.Apply(q.Apply(x)). Composition is
// associative with IdentityPerm as unit, and not commutative in general.
func Compose(p, q Perm) Perm {
	m := make(map[AnyName]AnyName, len(p.fwd)+len(q.fwd))
	for x, qx := range q.fwd {
		if img := p.Apply(qx); img != x {
			m[x] = img
		}
	}
	for x, px := range p.fwd {
		if _, moved := q.fwd[x]; !moved && px != x {
			m[x] = px
		}
	}
	if len(m) == 0 {
		return Perm{}
	}
	return Perm{fwd: m}
}

// Align builds the permutation carrying from[i] to to[i] for each
// position, by composing one transposition per position left to right.
// It reports failure exactly when the sequences have different lengths.
// With disjoint duplicate-free sequences (the case pattern alignment
// produces) the result maps from[i] to to[i] and back.
func Align(from, to []AnyName) (Perm, bool) {
	if len(from) != len(to) {
		return Perm{}, false
	}
	pm := Perm{}
	for i := range from {
		pm = Compose(Transposition(pm.Apply(from[i]), to[i]), pm)
	}
	return pm, true
}
