package nameless

import "fmt"

// Minimal client syntax used across the tests: an untyped lambda
// calculus implementing Alpha by field-wise delegation, the way any
// consumer of the package would.

type expr interface {
	Alpha
	isExpr()
}

type varE struct{ name Name[expr] }

type appE struct{ fn, arg expr }

type lamE struct{ scope Bind[Name[expr], expr] }

func (varE) isExpr() {}
func (appE) isExpr() {}
func (lamE) isExpr() {}

func ev(n Name[expr]) expr { return varE{name: n} }

func ap(fn, arg expr) expr { return appE{fn: fn, arg: arg} }

func lam(n Name[expr], body expr) expr {
	return lamE{scope: NewBind(n, body)}
}

func (e varE) String() string { return e.name.String() }
func (e appE) String() string { return fmt.Sprintf("(%v %v)", e.fn, e.arg) }
func (e lamE) String() string { return fmt.Sprintf("(lam %v)", e.scope) }

func (e varE) Aeq(ctx Ctx, other Alpha) bool {
	o, ok := other.(varE)
	return ok && e.name.Aeq(ctx, o.name)
}

func (e varE) FreeNames(ctx Ctx, yield func(AnyName) bool) bool {
	return e.name.FreeNames(ctx, yield)
}

func (e varE) Binders(acc []AnyName) []AnyName { return e.name.Binders(acc) }

func (e varE) Freshen(ctx Ctx, src FreshSource) (Alpha, Perm) {
	n, pm := e.name.Freshen(ctx, src)
	return varE{name: n.(Name[expr])}, pm
}

func (e varE) LFreshen(ctx Ctx, sc *LocalScope) (Alpha, Perm) {
	n, pm := e.name.LFreshen(ctx, sc)
	return varE{name: n.(Name[expr])}, pm
}

func (e varE) Swap(ctx Ctx, pm Perm) Alpha {
	return varE{name: e.name.Swap(ctx, pm).(Name[expr])}
}

func (e varE) Close(ctx Ctx, idx PatternIndex) Alpha {
	return varE{name: e.name.Close(ctx, idx).(Name[expr])}
}

func (e varE) Open(ctx Ctx, idx PatternIndex) Alpha {
	return varE{name: e.name.Open(ctx, idx).(Name[expr])}
}

func (e appE) Aeq(ctx Ctx, other Alpha) bool {
	o, ok := other.(appE)
	return ok && e.fn.Aeq(ctx, o.fn) && e.arg.Aeq(ctx, o.arg)
}

func (e appE) FreeNames(ctx Ctx, yield func(AnyName) bool) bool {
	if !e.fn.FreeNames(ctx, yield) {
		return false
	}
	return e.arg.FreeNames(ctx, yield)
}

func (e appE) Binders(acc []AnyName) []AnyName {
	return e.arg.Binders(e.fn.Binders(acc))
}

func (e appE) Freshen(ctx Ctx, src FreshSource) (Alpha, Perm) {
	fn, pm1 := e.fn.Freshen(ctx, src)
	arg, pm2 := e.arg.Swap(ctx, pm1).(expr).Freshen(ctx, src)
	return appE{fn: fn.(expr), arg: arg.(expr)}, Compose(pm2, pm1)
}

func (e appE) LFreshen(ctx Ctx, sc *LocalScope) (Alpha, Perm) {
	fn, pm1 := e.fn.LFreshen(ctx, sc)
	arg, pm2 := e.arg.Swap(ctx, pm1).(expr).LFreshen(ctx, sc)
	return appE{fn: fn.(expr), arg: arg.(expr)}, Compose(pm2, pm1)
}

func (e appE) Swap(ctx Ctx, pm Perm) Alpha {
	return appE{fn: e.fn.Swap(ctx, pm).(expr), arg: e.arg.Swap(ctx, pm).(expr)}
}

func (e appE) Close(ctx Ctx, idx PatternIndex) Alpha {
	return appE{fn: e.fn.Close(ctx, idx).(expr), arg: e.arg.Close(ctx, idx).(expr)}
}

func (e appE) Open(ctx Ctx, idx PatternIndex) Alpha {
	return appE{fn: e.fn.Open(ctx, idx).(expr), arg: e.arg.Open(ctx, idx).(expr)}
}

func (e lamE) Aeq(ctx Ctx, other Alpha) bool {
	o, ok := other.(lamE)
	return ok && e.scope.Aeq(ctx, o.scope)
}

func (e lamE) FreeNames(ctx Ctx, yield func(AnyName) bool) bool {
	return e.scope.FreeNames(ctx, yield)
}

func (e lamE) Binders(acc []AnyName) []AnyName { return e.scope.Binders(acc) }

func (e lamE) Freshen(ctx Ctx, src FreshSource) (Alpha, Perm) {
	s, pm := e.scope.Freshen(ctx, src)
	return lamE{scope: s.(Bind[Name[expr], expr])}, pm
}

func (e lamE) LFreshen(ctx Ctx, sc *LocalScope) (Alpha, Perm) {
	s, pm := e.scope.LFreshen(ctx, sc)
	return lamE{scope: s.(Bind[Name[expr], expr])}, pm
}

func (e lamE) Swap(ctx Ctx, pm Perm) Alpha {
	return lamE{scope: e.scope.Swap(ctx, pm).(Bind[Name[expr], expr])}
}

func (e lamE) Close(ctx Ctx, idx PatternIndex) Alpha {
	return lamE{scope: e.scope.Close(ctx, idx).(Bind[Name[expr], expr])}
}

func (e lamE) Open(ctx Ctx, idx PatternIndex) Alpha {
	return lamE{scope: e.scope.Open(ctx, idx).(Bind[Name[expr], expr])}
}

// collectAny drains a free-name sequence into a slice.
func collectAny(a Alpha) []AnyName {
	var out []AnyName
	for n := range FreeNamesAny(a) {
		out = append(out, n)
	}
	return out
}
