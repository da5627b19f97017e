package nameless

import "fmt"

// Rebind nests two patterns dependently: the second is closed relative
// to the first in pattern position, so names the first declares may
// appear as binder-relative references inside the second (through its
// Embeds), while the first still carries unresolved binding occurrences
// awaiting an enclosing Bind. Chains of Rebind form telescopes. As with
// Bind, the pairing is private; Unrebind is the only way to take it
// apart.
type Rebind[P1 Alpha, P2 Alpha] struct {
	outer P1
	inner P2
}

// NewRebind closes p2 against p1 in pattern position and stores p1
// unmodified. Pattern position matters: p1 is itself still an open
// pattern, not a closed term, so only references inside p2's embedded
// terms are converted.
func NewRebind[P1, P2 Alpha](p1 P1, p2 P2) Rebind[P1, P2] {
	return Rebind[P1, P2]{
		outer: p1,
		inner: p2.Close(PatternCtx(), NewPatternIndex(p1)).(P2),
	}
}

// Unrebind opens the second pattern by substituting the first pattern's
// names, as given, for its internal references. Pure: no freshening
// occurs, because a Rebind is only ever reached inside a pattern whose
// enclosing Bind has already been unbound, at which point the first
// pattern holds concrete, collision-free names.
func Unrebind[P1, P2 Alpha](r Rebind[P1, P2]) (P1, P2) {
	return r.outer, r.inner.Open(PatternCtx(), NewPatternIndex(r.outer)).(P2)
}

func (r Rebind[P1, P2]) String() string {
	return fmt.Sprintf("(rebind %v %v)", r.outer, r.inner)
}

// Aeq implements Alpha.
func (r Rebind[P1, P2]) Aeq(ctx Ctx, other Alpha) bool {
	o, ok := other.(Rebind[P1, P2])
	if !ok {
		return false
	}
	return r.outer.Aeq(ctx, o.outer) && r.inner.Aeq(ctx.IncrLevel(), o.inner)
}

// FreeNames implements Alpha.
func (r Rebind[P1, P2]) FreeNames(ctx Ctx, yield func(AnyName) bool) bool {
	if !r.outer.FreeNames(ctx, yield) {
		return false
	}
	return r.inner.FreeNames(ctx.IncrLevel(), yield)
}

// Binders implements Alpha. A Rebind declares both components' names,
// outer first.
func (r Rebind[P1, P2]) Binders(acc []AnyName) []AnyName {
	return r.inner.Binders(r.outer.Binders(acc))
}

// Freshen implements Alpha. The outer pattern is freshened first; its
// permutation is pushed through the inner pattern before the inner
// binders are freshened in turn, so a name declared by both components
// stays consistent.
func (r Rebind[P1, P2]) Freshen(ctx Ctx, src FreshSource) (Alpha, Perm) {
	if ctx.InTermPosition() {
		return r, Perm{}
	}
	p1, pm1 := r.outer.Freshen(ctx, src)
	inner := r.inner.Swap(ctx.IncrLevel(), pm1)
	p2, pm2 := inner.Freshen(ctx.IncrLevel(), src)
	return Rebind[P1, P2]{outer: p1.(P1), inner: p2.(P2)}, Compose(pm2, pm1)
}

// LFreshen implements Alpha.
func (r Rebind[P1, P2]) LFreshen(ctx Ctx, sc *LocalScope) (Alpha, Perm) {
	if ctx.InTermPosition() {
		return r, Perm{}
	}
	p1, pm1 := r.outer.LFreshen(ctx, sc)
	inner := r.inner.Swap(ctx.IncrLevel(), pm1)
	p2, pm2 := inner.LFreshen(ctx.IncrLevel(), sc)
	return Rebind[P1, P2]{outer: p1.(P1), inner: p2.(P2)}, Compose(pm2, pm1)
}

// Swap implements Alpha.
func (r Rebind[P1, P2]) Swap(ctx Ctx, pm Perm) Alpha {
	return Rebind[P1, P2]{
		outer: r.outer.Swap(ctx, pm).(P1),
		inner: r.inner.Swap(ctx.IncrLevel(), pm).(P2),
	}
}

// Close implements Alpha.
func (r Rebind[P1, P2]) Close(ctx Ctx, idx PatternIndex) Alpha {
	return Rebind[P1, P2]{
		outer: r.outer.Close(ctx, idx).(P1),
		inner: r.inner.Close(ctx.IncrLevel(), idx).(P2),
	}
}

// Open implements Alpha.
func (r Rebind[P1, P2]) Open(ctx Ctx, idx PatternIndex) Alpha {
	return Rebind[P1, P2]{
		outer: r.outer.Open(ctx, idx).(P1),
		inner: r.inner.Open(ctx.IncrLevel(), idx).(P2),
	}
}
