package nameless

import "fmt"

// Bind pairs a pattern with a term that has been closed against it:
// every free occurrence in the original term of a name the pattern
// declares has been converted to a binder-relative reference. The closed
// term is meaningful only alongside this exact pattern, so both fields
// are private and the pairing can only be taken apart by Unbind or
// Lunbind, which reopen the term with fresh concrete names.
type Bind[P Alpha, T Alpha] struct {
	pattern P
	body    T
}

// NewBind freezes a scope: it closes term t against pattern p in term
// position and stores p unmodified alongside the closed body.
func NewBind[P, T Alpha](p P, t T) Bind[P, T] {
	return Bind[P, T]{
		pattern: p,
		body:    t.Close(TermCtx(), NewPatternIndex(p)).(T),
	}
}

// Unbind opens the scope with globally fresh names: the stored pattern
// is freshened against src and the body reopened with the freshened
// names. The result is an ordinary, mutually consistent pattern/term
// pair whose binders collide with nothing previously minted from src.
func Unbind[P, T Alpha](src FreshSource, b Bind[P, T]) (P, T) {
	p, _ := Freshen(src, b.pattern)
	return p, b.body.Open(TermCtx(), NewPatternIndex(p)).(T)
}

// Lunbind opens the scope with locally fresh names: binders avoid only
// the names currently in scope in sc. The continuation receives the
// opened pair and runs with the chosen names in scope; the extension is
// retracted when it returns, on any exit path.
func Lunbind[P, T Alpha, R any](sc *LocalScope, b Bind[P, T], cont func(P, T) R) R {
	return Lfreshen(sc, b.pattern, func(p P, _ Perm) R {
		return cont(p, b.body.Open(TermCtx(), NewPatternIndex(p)).(T))
	})
}

func (b Bind[P, T]) String() string {
	return fmt.Sprintf("(bind %v . %v)", b.pattern, b.body)
}

// Aeq implements Alpha. The patterns are compared in pattern position,
// where binder names match positionally, and the bodies one binder level
// deeper; closed bodies then compare by structure alone.
func (b Bind[P, T]) Aeq(ctx Ctx, other Alpha) bool {
	o, ok := other.(Bind[P, T])
	if !ok {
		return false
	}
	return b.pattern.Aeq(ctx.Pattern(), o.pattern) && b.body.Aeq(ctx.IncrLevel(), o.body)
}

// FreeNames implements Alpha. Names the pattern declares are not free;
// references to them in the body are closed and yield nothing.
func (b Bind[P, T]) FreeNames(ctx Ctx, yield func(AnyName) bool) bool {
	if !b.pattern.FreeNames(ctx.Pattern(), yield) {
		return false
	}
	return b.body.FreeNames(ctx.IncrLevel(), yield)
}

// Binders implements Alpha. A Bind is a term former, not a pattern: it
// declares nothing.
func (b Bind[P, T]) Binders(acc []AnyName) []AnyName { return acc }

// Freshen implements Alpha.
func (b Bind[P, T]) Freshen(_ Ctx, _ FreshSource) (Alpha, Perm) { return b, Perm{} }

// LFreshen implements Alpha.
func (b Bind[P, T]) LFreshen(_ Ctx, _ *LocalScope) (Alpha, Perm) { return b, Perm{} }

// Swap implements Alpha.
func (b Bind[P, T]) Swap(ctx Ctx, pm Perm) Alpha {
	return Bind[P, T]{
		pattern: b.pattern.Swap(ctx.Pattern(), pm).(P),
		body:    b.body.Swap(ctx.IncrLevel(), pm).(T),
	}
}

// Close implements Alpha.
func (b Bind[P, T]) Close(ctx Ctx, idx PatternIndex) Alpha {
	return Bind[P, T]{
		pattern: b.pattern.Close(ctx.Pattern(), idx).(P),
		body:    b.body.Close(ctx.IncrLevel(), idx).(T),
	}
}

// Open implements Alpha.
func (b Bind[P, T]) Open(ctx Ctx, idx PatternIndex) Alpha {
	return Bind[P, T]{
		pattern: b.pattern.Open(ctx.Pattern(), idx).(P),
		body:    b.body.Open(ctx.IncrLevel(), idx).(T),
	}
}
