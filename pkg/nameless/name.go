package nameless

import (
	"fmt"
	"reflect"
	"sync/atomic"
)

// FreshSource supplies disambiguating tokens for globally fresh names.
// A source must never hand out the same token twice.
type FreshSource interface {
	// Next returns a token this source has not returned before.
	Next() int64
}

// CounterSource is the default FreshSource: an atomic counter starting
// at one, so tokens never collide with the zero token of names built by
// NewName. Safe for concurrent use; each call observes a distinct value.
type CounterSource struct {
	n atomic.Int64
}

// NewCounterSource returns a fresh counter-backed source. Independent
// sources hand out overlapping tokens, so terms minted against different
// sources must never later be compared or merged.
func NewCounterSource() *CounterSource { return &CounterSource{} }

// Next implements FreshSource.
func (c *CounterSource) Next() int64 { return c.n.Add(1) }

// ident is the sort-erased identity of a name. A free name is identified
// by its human-readable hint plus a disambiguating token; a bound name
// by the binder nesting level recorded when it was closed and its
// position within the pattern's declaration order.
type ident struct {
	hint  string
	token int64
	level int32
	index int32
	bound bool
}

func (id ident) String() string {
	if id.bound {
		return fmt.Sprintf("@%d.%d", id.level, id.index)
	}
	if id.token == 0 {
		return id.hint
	}
	return fmt.Sprintf("%s#%d", id.hint, id.token)
}

// Name is an identifier carrying a phantom sort S. Two names of the same
// sort are the same identity iff hint and token match. The zero value is
// a free name with an empty hint and token zero.
type Name[S any] struct {
	id ident
}

// NewName returns a free name with the given hint and token zero.
// Deterministic: repeated calls with the same hint yield the same
// identity. Use FreshName for guaranteed-new identities.
func NewName[S any](hint string) Name[S] {
	return Name[S]{id: ident{hint: hint}}
}

// FreshName returns a free name whose token is drawn from src, so it is
// distinct from every name previously minted against that source.
func FreshName[S any](src FreshSource, hint string) Name[S] {
	return Name[S]{id: ident{hint: hint, token: src.Next()}}
}

// Hint returns the human-readable hint.
func (n Name[S]) Hint() string { return n.id.hint }

// Token returns the disambiguating token.
func (n Name[S]) Token() int64 { return n.id.token }

// IsBound reports whether the name is a binder-relative internal
// reference rather than a concrete free name. Bound names only occur
// inside the closed component of a Bind or Rebind.
func (n Name[S]) IsBound() bool { return n.id.bound }

// Equal reports identity equality.
func (n Name[S]) Equal(o Name[S]) bool { return n.id == o.id }

// Any erases the static sort, retaining a runtime sort witness.
func (n Name[S]) Any() AnyName {
	return AnyName{sort: reflect.TypeFor[S](), id: n.id}
}

func (n Name[S]) String() string { return n.id.String() }

// AnyName is a sort-erased name. It retains the sort as a runtime
// witness, so ToName can recover the statically sorted form exactly when
// the witness matches.
type AnyName struct {
	sort reflect.Type
	id   ident
}

// Sort returns the runtime sort witness.
func (n AnyName) Sort() reflect.Type { return n.sort }

// Hint returns the human-readable hint.
func (n AnyName) Hint() string { return n.id.hint }

// Token returns the disambiguating token.
func (n AnyName) Token() int64 { return n.id.token }

// IsBound reports whether the name is a binder-relative reference.
func (n AnyName) IsBound() bool { return n.id.bound }

// Equal reports identity equality; names of different sorts are never
// equal.
func (n AnyName) Equal(o AnyName) bool { return n == o }

func (n AnyName) String() string { return n.id.String() }

// ToName recovers the sorted form of an erased name. It succeeds iff the
// runtime witness matches S.
func ToName[S any](n AnyName) (Name[S], bool) {
	if n.sort != reflect.TypeFor[S]() {
		return Name[S]{}, false
	}
	return Name[S]{id: n.id}, true
}

// Alpha implementation for Name. A bare name in pattern position is a
// binding occurrence: it declares itself, compares equal to any name of
// its type (binders are matched positionally), and is what freshening
// renames. In term position it is a reference compared by identity.

// Aeq implements Alpha.
func (n Name[S]) Aeq(ctx Ctx, other Alpha) bool {
	o, ok := other.(Name[S])
	if !ok {
		return false
	}
	if ctx.InPatternPosition() {
		return true
	}
	return n.id == o.id
}

// FreeNames implements Alpha. Only concrete names in term position are
// free occurrences.
func (n Name[S]) FreeNames(ctx Ctx, yield func(AnyName) bool) bool {
	if ctx.InTermPosition() && !n.id.bound {
		return yield(n.Any())
	}
	return true
}

// Binders implements Alpha.
func (n Name[S]) Binders(acc []AnyName) []AnyName {
	if n.id.bound {
		return acc
	}
	return append(acc, n.Any())
}

// Freshen implements Alpha.
func (n Name[S]) Freshen(ctx Ctx, src FreshSource) (Alpha, Perm) {
	if ctx.InTermPosition() || n.id.bound {
		return n, Perm{}
	}
	n2 := Name[S]{id: ident{hint: n.id.hint, token: src.Next()}}
	return n2, Transposition(n.Any(), n2.Any())
}

// LFreshen implements Alpha.
func (n Name[S]) LFreshen(ctx Ctx, sc *LocalScope) (Alpha, Perm) {
	if ctx.InTermPosition() || n.id.bound {
		return n, Perm{}
	}
	n2 := Name[S]{id: sc.pick(n.id.hint)}
	return n2, Transposition(n.Any(), n2.Any())
}

// Swap implements Alpha. Free and binding occurrences are renamed;
// binder-relative references are untouched.
func (n Name[S]) Swap(_ Ctx, pm Perm) Alpha {
	if n.id.bound {
		return n
	}
	return Name[S]{id: pm.Apply(n.Any()).id}
}

// Close implements Alpha.
func (n Name[S]) Close(ctx Ctx, idx PatternIndex) Alpha {
	if ctx.InPatternPosition() || n.id.bound {
		return n
	}
	if i, ok := idx.IndexOf(n.Any()); ok {
		return Name[S]{id: ident{bound: true, level: int32(ctx.Level()), index: int32(i)}}
	}
	return n
}

// Open implements Alpha.
func (n Name[S]) Open(ctx Ctx, idx PatternIndex) Alpha {
	if ctx.InPatternPosition() || !n.id.bound || int(n.id.level) != ctx.Level() {
		return n
	}
	if nm, ok := idx.NameAt(int(n.id.index)); ok {
		return Name[S]{id: nm.id}
	}
	return n
}

// Alpha implementation for AnyName, mirroring Name. Erased names are
// themselves usable as pattern leaves, which permits binder lists mixing
// names of several sorts.

// Aeq implements Alpha.
func (n AnyName) Aeq(ctx Ctx, other Alpha) bool {
	o, ok := other.(AnyName)
	if !ok {
		return false
	}
	if ctx.InPatternPosition() {
		return true
	}
	return n == o
}

// FreeNames implements Alpha.
func (n AnyName) FreeNames(ctx Ctx, yield func(AnyName) bool) bool {
	if ctx.InTermPosition() && !n.id.bound {
		return yield(n)
	}
	return true
}

// Binders implements Alpha.
func (n AnyName) Binders(acc []AnyName) []AnyName {
	if n.id.bound {
		return acc
	}
	return append(acc, n)
}

// Freshen implements Alpha.
func (n AnyName) Freshen(ctx Ctx, src FreshSource) (Alpha, Perm) {
	if ctx.InTermPosition() || n.id.bound {
		return n, Perm{}
	}
	n2 := AnyName{sort: n.sort, id: ident{hint: n.id.hint, token: src.Next()}}
	return n2, Transposition(n, n2)
}

// LFreshen implements Alpha.
func (n AnyName) LFreshen(ctx Ctx, sc *LocalScope) (Alpha, Perm) {
	if ctx.InTermPosition() || n.id.bound {
		return n, Perm{}
	}
	n2 := AnyName{sort: n.sort, id: sc.pick(n.id.hint)}
	return n2, Transposition(n, n2)
}

// Swap implements Alpha.
func (n AnyName) Swap(_ Ctx, pm Perm) Alpha {
	if n.id.bound {
		return n
	}
	return pm.Apply(n)
}

// Close implements Alpha.
func (n AnyName) Close(ctx Ctx, idx PatternIndex) Alpha {
	if ctx.InPatternPosition() || n.id.bound {
		return n
	}
	if i, ok := idx.IndexOf(n); ok {
		return AnyName{sort: n.sort, id: ident{bound: true, level: int32(ctx.Level()), index: int32(i)}}
	}
	return n
}

// Open implements Alpha.
func (n AnyName) Open(ctx Ctx, idx PatternIndex) Alpha {
	if ctx.InPatternPosition() || !n.id.bound || int(n.id.level) != ctx.Level() {
		return n
	}
	if nm, ok := idx.NameAt(int(n.id.index)); ok {
		return nm
	}
	return n
}
