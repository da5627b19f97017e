package nameless

import "fmt"

// Embed carries a term payload through pattern position without
// declaring anything: it has zero binding occurrences of its own, and
// every traversal switches back to term position for the payload, so
// names inside it are references. Annotations on binders (the type in a
// telescope entry, the right-hand side of a let) are the typical use.
type Embed[T Alpha] struct {
	value T
}

// NewEmbed wraps a payload. Constant time.
func NewEmbed[T Alpha](t T) Embed[T] { return Embed[T]{value: t} }

// Unembed unwraps the payload. Constant time; Unembed(NewEmbed(t)) == t
// for all t.
func Unembed[T Alpha](e Embed[T]) T { return e.value }

func (e Embed[T]) String() string { return fmt.Sprintf("{%v}", e.value) }

// Aeq implements Alpha.
func (e Embed[T]) Aeq(ctx Ctx, other Alpha) bool {
	o, ok := other.(Embed[T])
	if !ok {
		return false
	}
	return e.value.Aeq(ctx.Term(), o.value)
}

// FreeNames implements Alpha.
func (e Embed[T]) FreeNames(ctx Ctx, yield func(AnyName) bool) bool {
	return e.value.FreeNames(ctx.Term(), yield)
}

// Binders implements Alpha. An Embed declares nothing.
func (e Embed[T]) Binders(acc []AnyName) []AnyName { return acc }

// Freshen implements Alpha. Freshening renames binding occurrences only,
// and an Embed contains none, so the payload's references are kept
// intact.
func (e Embed[T]) Freshen(_ Ctx, _ FreshSource) (Alpha, Perm) { return e, Perm{} }

// LFreshen implements Alpha.
func (e Embed[T]) LFreshen(_ Ctx, _ *LocalScope) (Alpha, Perm) { return e, Perm{} }

// Swap implements Alpha.
func (e Embed[T]) Swap(ctx Ctx, pm Perm) Alpha {
	return Embed[T]{value: e.value.Swap(ctx.Term(), pm).(T)}
}

// Close implements Alpha.
func (e Embed[T]) Close(ctx Ctx, idx PatternIndex) Alpha {
	return Embed[T]{value: e.value.Close(ctx.Term(), idx).(T)}
}

// Open implements Alpha.
func (e Embed[T]) Open(ctx Ctx, idx PatternIndex) Alpha {
	return Embed[T]{value: e.value.Open(ctx.Term(), idx).(T)}
}
