package nameless

import "testing"

// TestAeq_basic covers the canonical alpha-equivalence cases on the
// lambda client syntax.
func TestAeq_basic(t *testing.T) {
	x := NewName[expr]("x")
	y := NewName[expr]("y")
	z := NewName[expr]("z")

	if !Aeq[expr](lam(x, ev(x)), lam(y, ev(y))) {
		t.Fatalf("expected (lam x. x) aeq (lam y. y)")
	}
	if !Aeq[expr](lam(x, lam(y, ev(x))), lam(y, lam(x, ev(y)))) {
		t.Fatalf("expected (lam x. lam y. x) aeq (lam y. lam x. y)")
	}
	if Aeq[expr](lam(x, lam(y, ev(x))), lam(x, lam(y, ev(y)))) {
		t.Fatalf("expected binder selection to distinguish the terms")
	}
	if Aeq[expr](lam(x, ev(z)), lam(x, ev(x))) {
		t.Fatalf("expected free z to differ from bound x")
	}
	if !Aeq[expr](lam(x, ev(z)), lam(y, ev(z))) {
		t.Fatalf("expected shared free z under different binders to be equal")
	}
	if Aeq[expr](ev(x), ev(y)) {
		t.Fatalf("expected distinct free names to be unequal")
	}
}

// TestAeq_equivalenceLaws checks reflexivity, symmetry and transitivity
// over a mixed set of terms.
func TestAeq_equivalenceLaws(t *testing.T) {
	x := NewName[expr]("x")
	y := NewName[expr]("y")
	z := NewName[expr]("z")

	terms := []expr{
		ev(z),
		lam(x, ev(x)),
		lam(y, ev(y)),
		lam(x, ap(ev(x), ev(z))),
		lam(y, ap(ev(y), ev(z))),
		ap(lam(x, ev(x)), ev(z)),
	}

	for _, a := range terms {
		if !Aeq(a, a) {
			t.Fatalf("reflexivity broken for %v", a)
		}
	}
	for _, a := range terms {
		for _, b := range terms {
			if Aeq(a, b) != Aeq(b, a) {
				t.Fatalf("symmetry broken for %v and %v", a, b)
			}
			for _, c := range terms {
				if Aeq(a, b) && Aeq(b, c) && !Aeq(a, c) {
					t.Fatalf("transitivity broken for %v, %v, %v", a, b, c)
				}
			}
		}
	}
}

// TestFreeNamesAny_orderAndDuplicates verifies fold order and that
// repeated occurrences are all reported.
func TestFreeNamesAny_orderAndDuplicates(t *testing.T) {
	x := NewName[expr]("x")
	z := NewName[expr]("z")

	term := ap(ev(z), lam(x, ap(ev(x), ev(z))))
	got := collectAny(term)

	want := []AnyName{z.Any(), z.Any()}
	if len(got) != len(want) {
		t.Fatalf("expected %d free occurrences, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("occurrence %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

// TestFreeNamesAny_earlyStop verifies the sequence is lazily consumable.
func TestFreeNamesAny_earlyStop(t *testing.T) {
	a := NewName[expr]("a")
	b := NewName[expr]("b")

	term := ap(ev(a), ev(b))
	count := 0
	for range FreeNamesAny(term) {
		count++
		break
	}
	if count != 1 {
		t.Fatalf("expected exactly one yielded name before stopping, got %d", count)
	}
}

// TestFreeNames_sortFiltered verifies the sorted query skips occurrences
// of other sorts instead of failing.
func TestFreeNames_sortFiltered(t *testing.T) {
	e := NewName[expr]("e")
	i := NewName[int]("i")

	mixed := NewTuple[Name[expr], Name[int]](e, i)

	var exprs []Name[expr]
	for n := range FreeNames[expr](mixed) {
		exprs = append(exprs, n)
	}
	if len(exprs) != 1 || !exprs[0].Equal(e) {
		t.Fatalf("expected exactly the expr-sorted name, got %v", exprs)
	}

	var ints []Name[int]
	for n := range FreeNames[int](mixed) {
		ints = append(ints, n)
	}
	if len(ints) != 1 || !ints[0].Equal(i) {
		t.Fatalf("expected exactly the int-sorted name, got %v", ints)
	}
}

// TestApplyPerm verifies pure permutation application across free names
// and pattern binders, leaving internal references alone.
func TestApplyPerm(t *testing.T) {
	x := NewName[expr]("x")
	y := NewName[expr]("y")
	z := NewName[expr]("z")

	pm := Transposition(x.Any(), y.Any())

	if got := ApplyPerm(pm, ev(x)); !Aeq(got, ev(y)) {
		t.Fatalf("expected x renamed to y, got %v", got)
	}
	if got := ApplyPerm(pm, ev(z)); !Aeq(got, ev(z)) {
		t.Fatalf("expected z untouched, got %v", got)
	}

	// Binder and its closed reference travel together.
	renamed := ApplyPerm(pm, lam(x, ap(ev(x), ev(z))))
	if !Aeq(renamed, lam(y, ap(ev(y), ev(z)))) {
		t.Fatalf("expected consistent renaming under the binder, got %v", renamed)
	}
}

// TestFreshen_properties verifies the freshening contract: same number
// of binders, pairwise distinct, disjoint from the originals, and a
// permutation exchanging old and new that is the identity elsewhere.
func TestFreshen_properties(t *testing.T) {
	src := NewCounterSource()
	x := NewName[expr]("x")
	y := NewName[expr]("y")
	z := NewName[expr]("z")

	p := List[Name[expr]]{x, y}
	p2, pm := Freshen(src, p)

	if len(p2) != len(p) {
		t.Fatalf("expected %d binders after freshening, got %d", len(p), len(p2))
	}
	seen := map[AnyName]struct{}{x.Any(): {}, y.Any(): {}}
	for _, n := range p2 {
		if _, dup := seen[n.Any()]; dup {
			t.Fatalf("freshened binder %v collides", n)
		}
		seen[n.Any()] = struct{}{}
	}
	for i := range p {
		if got := pm.Apply(p[i].Any()); got != p2[i].Any() {
			t.Fatalf("expected permutation to carry %v to %v, got %v", p[i], p2[i], got)
		}
		if got := pm.Apply(p2[i].Any()); got != p[i].Any() {
			t.Fatalf("expected permutation to carry %v back to %v, got %v", p2[i], p[i], got)
		}
	}
	if got := pm.Apply(z.Any()); got != z.Any() {
		t.Fatalf("expected identity outside the freshened names, got %v", got)
	}
}

// TestFreshen_duplicateBinders verifies a pattern declaring one name
// twice still freshens to pairwise distinct binders.
func TestFreshen_duplicateBinders(t *testing.T) {
	src := NewCounterSource()
	x := NewName[expr]("x")

	p2, _ := Freshen(src, List[Name[expr]]{x, x})
	if p2[0].Equal(p2[1]) {
		t.Fatalf("expected duplicate binders to freshen apart, both %v", p2[0])
	}
}

// TestFreshen_keepsEmbeddedReferences verifies freshening renames only
// binding occurrences: references inside an Embed are preserved.
func TestFreshen_keepsEmbeddedReferences(t *testing.T) {
	src := NewCounterSource()
	x := NewName[expr]("x")
	z := NewName[expr]("z")

	p := NewTuple(x, NewEmbed[expr](ev(z)))
	p2, _ := Freshen(src, p)

	if p2.Fst.Equal(x) {
		t.Fatalf("expected the binder to be renamed")
	}
	if got := Unembed(p2.Snd); !Aeq(got, ev(z)) {
		t.Fatalf("expected the embedded reference untouched, got %v", got)
	}
}
