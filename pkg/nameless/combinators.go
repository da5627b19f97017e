package nameless

import "fmt"

// This file lifts ordinary data shapes into the algebra so clients can
// compose patterns and terms without hand-writing delegation each time:
// slices (multi-binders), pairs (a name with its annotation) and
// literal leaves.

// List lifts a slice into Alpha, traversed element-wise left to right
// with no position change. A List of names is the usual multi-binder
// pattern.
type List[A Alpha] []A

// Aeq implements Alpha.
func (l List[A]) Aeq(ctx Ctx, other Alpha) bool {
	o, ok := other.(List[A])
	if !ok || len(l) != len(o) {
		return false
	}
	for i := range l {
		if !l[i].Aeq(ctx, o[i]) {
			return false
		}
	}
	return true
}

// FreeNames implements Alpha.
func (l List[A]) FreeNames(ctx Ctx, yield func(AnyName) bool) bool {
	for _, x := range l {
		if !x.FreeNames(ctx, yield) {
			return false
		}
	}
	return true
}

// Binders implements Alpha.
func (l List[A]) Binders(acc []AnyName) []AnyName {
	for _, x := range l {
		acc = x.Binders(acc)
	}
	return acc
}

// Freshen implements Alpha. The accumulated permutation is applied to
// each element before it is freshened, so a pattern declaring the same
// name twice still ends up with pairwise distinct binders.
func (l List[A]) Freshen(ctx Ctx, src FreshSource) (Alpha, Perm) {
	if ctx.InTermPosition() {
		return l, Perm{}
	}
	out := make(List[A], len(l))
	pm := Perm{}
	for i, x := range l {
		x2, pmi := x.Swap(ctx, pm).(A).Freshen(ctx, src)
		out[i] = x2.(A)
		pm = Compose(pmi, pm)
	}
	return out, pm
}

// LFreshen implements Alpha.
func (l List[A]) LFreshen(ctx Ctx, sc *LocalScope) (Alpha, Perm) {
	if ctx.InTermPosition() {
		return l, Perm{}
	}
	out := make(List[A], len(l))
	pm := Perm{}
	for i, x := range l {
		x2, pmi := x.Swap(ctx, pm).(A).LFreshen(ctx, sc)
		out[i] = x2.(A)
		pm = Compose(pmi, pm)
	}
	return out, pm
}

// Swap implements Alpha.
func (l List[A]) Swap(ctx Ctx, pm Perm) Alpha {
	out := make(List[A], len(l))
	for i, x := range l {
		out[i] = x.Swap(ctx, pm).(A)
	}
	return out
}

// Close implements Alpha.
func (l List[A]) Close(ctx Ctx, idx PatternIndex) Alpha {
	out := make(List[A], len(l))
	for i, x := range l {
		out[i] = x.Close(ctx, idx).(A)
	}
	return out
}

// Open implements Alpha.
func (l List[A]) Open(ctx Ctx, idx PatternIndex) Alpha {
	out := make(List[A], len(l))
	for i, x := range l {
		out[i] = x.Open(ctx, idx).(A)
	}
	return out
}

// Tuple pairs two Alpha values, traversed left to right in the same
// position. A (name, Embed annotation) tuple is the usual telescope
// entry.
type Tuple[A Alpha, B Alpha] struct {
	Fst A
	Snd B
}

// NewTuple pairs two values.
func NewTuple[A, B Alpha](a A, b B) Tuple[A, B] {
	return Tuple[A, B]{Fst: a, Snd: b}
}

func (t Tuple[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t.Fst, t.Snd)
}

// Aeq implements Alpha.
func (t Tuple[A, B]) Aeq(ctx Ctx, other Alpha) bool {
	o, ok := other.(Tuple[A, B])
	if !ok {
		return false
	}
	return t.Fst.Aeq(ctx, o.Fst) && t.Snd.Aeq(ctx, o.Snd)
}

// FreeNames implements Alpha.
func (t Tuple[A, B]) FreeNames(ctx Ctx, yield func(AnyName) bool) bool {
	if !t.Fst.FreeNames(ctx, yield) {
		return false
	}
	return t.Snd.FreeNames(ctx, yield)
}

// Binders implements Alpha.
func (t Tuple[A, B]) Binders(acc []AnyName) []AnyName {
	return t.Snd.Binders(t.Fst.Binders(acc))
}

// Freshen implements Alpha.
func (t Tuple[A, B]) Freshen(ctx Ctx, src FreshSource) (Alpha, Perm) {
	if ctx.InTermPosition() {
		return t, Perm{}
	}
	fst, pm1 := t.Fst.Freshen(ctx, src)
	snd, pm2 := t.Snd.Swap(ctx, pm1).(B).Freshen(ctx, src)
	return Tuple[A, B]{Fst: fst.(A), Snd: snd.(B)}, Compose(pm2, pm1)
}

// LFreshen implements Alpha.
func (t Tuple[A, B]) LFreshen(ctx Ctx, sc *LocalScope) (Alpha, Perm) {
	if ctx.InTermPosition() {
		return t, Perm{}
	}
	fst, pm1 := t.Fst.LFreshen(ctx, sc)
	snd, pm2 := t.Snd.Swap(ctx, pm1).(B).LFreshen(ctx, sc)
	return Tuple[A, B]{Fst: fst.(A), Snd: snd.(B)}, Compose(pm2, pm1)
}

// Swap implements Alpha.
func (t Tuple[A, B]) Swap(ctx Ctx, pm Perm) Alpha {
	return Tuple[A, B]{Fst: t.Fst.Swap(ctx, pm).(A), Snd: t.Snd.Swap(ctx, pm).(B)}
}

// Close implements Alpha.
func (t Tuple[A, B]) Close(ctx Ctx, idx PatternIndex) Alpha {
	return Tuple[A, B]{Fst: t.Fst.Close(ctx, idx).(A), Snd: t.Snd.Close(ctx, idx).(B)}
}

// Open implements Alpha.
func (t Tuple[A, B]) Open(ctx Ctx, idx PatternIndex) Alpha {
	return Tuple[A, B]{Fst: t.Fst.Open(ctx, idx).(A), Snd: t.Snd.Open(ctx, idx).(B)}
}

// Lit wraps a plain comparable value with a trivial Alpha
// implementation: no names, no binders, equality is ==.
type Lit[T comparable] struct {
	Value T
}

// NewLit wraps a literal value.
func NewLit[T comparable](v T) Lit[T] { return Lit[T]{Value: v} }

func (l Lit[T]) String() string { return fmt.Sprint(l.Value) }

// Aeq implements Alpha.
func (l Lit[T]) Aeq(_ Ctx, other Alpha) bool {
	o, ok := other.(Lit[T])
	return ok && l.Value == o.Value
}

// FreeNames implements Alpha.
func (l Lit[T]) FreeNames(_ Ctx, _ func(AnyName) bool) bool { return true }

// Binders implements Alpha.
func (l Lit[T]) Binders(acc []AnyName) []AnyName { return acc }

// Freshen implements Alpha.
func (l Lit[T]) Freshen(_ Ctx, _ FreshSource) (Alpha, Perm) { return l, Perm{} }

// LFreshen implements Alpha.
func (l Lit[T]) LFreshen(_ Ctx, _ *LocalScope) (Alpha, Perm) { return l, Perm{} }

// Swap implements Alpha.
func (l Lit[T]) Swap(_ Ctx, _ Perm) Alpha { return l }

// Close implements Alpha.
func (l Lit[T]) Close(_ Ctx, _ PatternIndex) Alpha { return l }

// Open implements Alpha.
func (l Lit[T]) Open(_ Ctx, _ PatternIndex) Alpha { return l }
