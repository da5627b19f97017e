package lambda

import "github.com/gitrdm/nameless/pkg/nameless"

// Subst returns e with every free occurrence of x replaced by v,
// avoiding capture: binders crossed on the way are reopened with fresh
// names from src, so they can collide neither with x nor with the free
// names of v.
func Subst(src nameless.FreshSource, x nameless.Name[Expr], v, e Expr) Expr {
	switch t := e.(type) {
	case V:
		if t.Name.Equal(x) {
			return v
		}
		return t
	case App:
		return App{Fn: Subst(src, x, v, t.Fn), Arg: Subst(src, x, v, t.Arg)}
	case Lam:
		n, body := nameless.Unbind(src, t.Scope)
		return Abs(n, Subst(src, x, v, body))
	case Let:
		tele, body := nameless.Unbind(src, t.Scope)
		names, values := SplitTelescope(tele)
		for i := range values {
			values[i] = Subst(src, x, v, values[i])
		}
		return LetIn(names, values, Subst(src, x, v, body))
	default:
		return e
	}
}

// SplitTelescope walks a telescope segment by segment, reopening each
// tail against its entry's concrete name, and returns the declared names
// with their right-hand sides in declaration order. The telescope must
// already hold concrete names, i.e. come out of an Unbind or Lunbind.
func SplitTelescope(tele Tele) ([]nameless.Name[Expr], []Expr) {
	var names []nameless.Name[Expr]
	var values []Expr
	for {
		cons, ok := tele.(TCons)
		if !ok {
			return names, values
		}
		entry, rest := nameless.Unrebind(cons.Seg)
		names = append(names, entry.Fst)
		values = append(values, nameless.Unembed(entry.Snd))
		tele = rest
	}
}

// UnfoldLet eliminates a Let by substituting each right-hand side into
// the ones after it and into the body, in declaration order.
func UnfoldLet(src nameless.FreshSource, l Let) Expr {
	tele, body := nameless.Unbind(src, l.Scope)
	names, values := SplitTelescope(tele)
	for i := range names {
		for j := i + 1; j < len(values); j++ {
			values[j] = Subst(src, names[i], values[i], values[j])
		}
		body = Subst(src, names[i], values[i], body)
	}
	return body
}

// Step performs one leftmost-outermost beta-reduction step, unfolding a
// Let when it is the leftmost redex. The second result reports whether a
// redex was found.
func Step(src nameless.FreshSource, e Expr) (Expr, bool) {
	switch t := e.(type) {
	case V:
		return t, false
	case Lam:
		n, body := nameless.Unbind(src, t.Scope)
		body2, changed := Step(src, body)
		if !changed {
			return t, false
		}
		return Abs(n, body2), true
	case Let:
		return UnfoldLet(src, t), true
	case App:
		if fn, ok := t.Fn.(Lam); ok {
			n, body := nameless.Unbind(src, fn.Scope)
			return Subst(src, n, t.Arg, body), true
		}
		if fn2, changed := Step(src, t.Fn); changed {
			return App{Fn: fn2, Arg: t.Arg}, true
		}
		if arg2, changed := Step(src, t.Arg); changed {
			return App{Fn: t.Fn, Arg: arg2}, true
		}
		return t, false
	default:
		return e, false
	}
}

// Reduce repeatedly applies Step until no redex remains or maxSteps is
// exhausted, and returns the last expression reached.
func Reduce(src nameless.FreshSource, e Expr, maxSteps int) Expr {
	for i := 0; i < maxSteps; i++ {
		next, changed := Step(src, e)
		if !changed {
			return e
		}
		e = next
	}
	return e
}
