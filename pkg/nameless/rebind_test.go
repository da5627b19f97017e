package nameless

import (
	"reflect"
	"testing"
)

// entry is the telescope segment shape used in these tests: a binder
// with an embedded annotation term.
type entry = Tuple[Name[expr], Embed[expr]]

// TestNewRebind_closesEarlierNames verifies the second pattern's
// embedded references to the first pattern's names are converted while
// its own binders stay untouched.
func TestNewRebind_closesEarlierNames(t *testing.T) {
	x := NewName[expr]("x")
	y := NewName[expr]("y")
	z := NewName[expr]("z")

	p1 := NewTuple(x, NewEmbed[expr](ev(z)))
	p2 := NewTuple(y, NewEmbed[expr](ev(x)))
	rb := NewRebind[entry, entry](p1, p2)

	var free []AnyName
	rb.FreeNames(PatternCtx(), func(n AnyName) bool {
		free = append(free, n)
		return true
	})
	if len(free) != 1 || free[0] != z.Any() {
		t.Fatalf("expected only z free in pattern position, got %v", free)
	}

	if got := Binders(rb); len(got) != 2 || got[0] != x.Any() || got[1] != y.Any() {
		t.Fatalf("expected declared names [x y], got %v", got)
	}
}

// TestUnrebind_exactRoundTrip verifies unrebind restores the original
// pair structurally, with no freshening involved.
func TestUnrebind_exactRoundTrip(t *testing.T) {
	x := NewName[expr]("x")
	y := NewName[expr]("y")
	z := NewName[expr]("z")

	p1 := NewTuple(x, NewEmbed[expr](ev(z)))
	p2 := NewTuple(y, NewEmbed[expr](ap(ev(x), ev(z))))

	q1, q2 := Unrebind(NewRebind[entry, entry](p1, p2))
	if !reflect.DeepEqual(q1, p1) {
		t.Fatalf("expected the first pattern back unchanged, got %v", q1)
	}
	if !reflect.DeepEqual(q2, p2) {
		t.Fatalf("expected the second pattern restored exactly, got %v", q2)
	}
}

// TestRebind_aeq verifies alpha-equivalence of telescopes with
// different binder spellings and identical dependencies.
func TestRebind_aeq(t *testing.T) {
	x := NewName[expr]("x")
	y := NewName[expr]("y")
	a := NewName[expr]("a")
	b := NewName[expr]("b")
	z := NewName[expr]("z")

	mk := func(n1, n2 Name[expr]) Bind[Rebind[entry, entry], expr] {
		tele := NewRebind[entry, entry](
			NewTuple(n1, NewEmbed[expr](ev(z))),
			NewTuple(n2, NewEmbed[expr](ev(n1))),
		)
		return NewBind[Rebind[entry, entry], expr](tele, ev(n2))
	}

	if !Aeq(mk(x, y), mk(a, b)) {
		t.Fatalf("expected telescopes to be alpha-equivalent")
	}

	// Breaking the dependency (second entry referencing z instead of
	// the first binder) must be distinguishable.
	broken := NewBind[Rebind[entry, entry], expr](
		NewRebind[entry, entry](
			NewTuple(a, NewEmbed[expr](ev(z))),
			NewTuple(b, NewEmbed[expr](ev(z))),
		),
		ev(b),
	)
	if Aeq(mk(x, y), broken) {
		t.Fatalf("expected dependent and non-dependent telescopes to differ")
	}
}

// TestRebind_throughBindUnbind runs a telescope through an enclosing
// bind/unbind and checks the reopened dependency points at the fresh
// earlier binder.
func TestRebind_throughBindUnbind(t *testing.T) {
	src := NewCounterSource()
	x := NewName[expr]("x")
	y := NewName[expr]("y")
	z := NewName[expr]("z")

	tele := NewRebind[entry, entry](
		NewTuple(x, NewEmbed[expr](ev(z))),
		NewTuple(y, NewEmbed[expr](ev(x))),
	)
	b := NewBind[Rebind[entry, entry], expr](tele, ap(ev(x), ev(y)))

	if free := collectAny(b); len(free) != 1 || free[0] != z.Any() {
		t.Fatalf("expected only z free, got %v", free)
	}

	tele2, body := Unbind(src, b)
	e1, rest := Unrebind(tele2)

	if e1.Fst.Equal(x) {
		t.Fatalf("expected the first binder to be freshened")
	}
	if got := Unembed(e1.Snd); !Aeq(got, ev(z)) {
		t.Fatalf("expected the first annotation to keep referencing z, got %v", got)
	}
	if got := Unembed(rest.Snd); !Aeq(got, ev(e1.Fst)) {
		t.Fatalf("expected the dependency to reopen onto the fresh first binder, got %v", got)
	}

	app := body.(appE)
	if !app.fn.(varE).name.Equal(e1.Fst) || !app.arg.(varE).name.Equal(rest.Fst) {
		t.Fatalf("expected the body over both fresh binders, got %v", body)
	}
}

// TestEmbed_roundTrip verifies the constant-time wrap/unwrap pair.
func TestEmbed_roundTrip(t *testing.T) {
	x := NewName[expr]("x")
	terms := []expr{ev(x), lam(x, ev(x)), ap(ev(x), ev(x))}
	for _, tm := range terms {
		if got := Unembed(NewEmbed(tm)); !reflect.DeepEqual(got, tm) {
			t.Fatalf("expected %v back, got %v", tm, got)
		}
	}
}

// TestEmbed_noBinders verifies an embedded term declares nothing and
// keeps its payload visible to the free-name fold.
func TestEmbed_noBinders(t *testing.T) {
	x := NewName[expr]("x")
	e := NewEmbed[expr](ev(x))

	if bs := Binders(e); len(bs) != 0 {
		t.Fatalf("expected no declared names, got %v", bs)
	}

	var free []AnyName
	e.FreeNames(PatternCtx(), func(n AnyName) bool {
		free = append(free, n)
		return true
	})
	if len(free) != 1 || free[0] != x.Any() {
		t.Fatalf("expected the payload reference visible, got %v", free)
	}
}
