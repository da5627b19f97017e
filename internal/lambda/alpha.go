package lambda

import "github.com/gitrdm/nameless/pkg/nameless"

// Alpha delegation for every node. The pattern is mechanical: forward
// each primitive to the fields, reassemble the node, and thread the
// accumulated permutation through sibling fields when freshening.

// Aeq implements nameless.Alpha.
func (v V) Aeq(ctx nameless.Ctx, other nameless.Alpha) bool {
	o, ok := other.(V)
	return ok && v.Name.Aeq(ctx, o.Name)
}

// FreeNames implements nameless.Alpha.
func (v V) FreeNames(ctx nameless.Ctx, yield func(nameless.AnyName) bool) bool {
	return v.Name.FreeNames(ctx, yield)
}

// Binders implements nameless.Alpha.
func (v V) Binders(acc []nameless.AnyName) []nameless.AnyName {
	return v.Name.Binders(acc)
}

// Freshen implements nameless.Alpha.
func (v V) Freshen(ctx nameless.Ctx, src nameless.FreshSource) (nameless.Alpha, nameless.Perm) {
	n, pm := v.Name.Freshen(ctx, src)
	return V{Name: n.(nameless.Name[Expr])}, pm
}

// LFreshen implements nameless.Alpha.
func (v V) LFreshen(ctx nameless.Ctx, sc *nameless.LocalScope) (nameless.Alpha, nameless.Perm) {
	n, pm := v.Name.LFreshen(ctx, sc)
	return V{Name: n.(nameless.Name[Expr])}, pm
}

// Swap implements nameless.Alpha.
func (v V) Swap(ctx nameless.Ctx, pm nameless.Perm) nameless.Alpha {
	return V{Name: v.Name.Swap(ctx, pm).(nameless.Name[Expr])}
}

// Close implements nameless.Alpha.
func (v V) Close(ctx nameless.Ctx, idx nameless.PatternIndex) nameless.Alpha {
	return V{Name: v.Name.Close(ctx, idx).(nameless.Name[Expr])}
}

// Open implements nameless.Alpha.
func (v V) Open(ctx nameless.Ctx, idx nameless.PatternIndex) nameless.Alpha {
	return V{Name: v.Name.Open(ctx, idx).(nameless.Name[Expr])}
}

// Aeq implements nameless.Alpha.
func (a App) Aeq(ctx nameless.Ctx, other nameless.Alpha) bool {
	o, ok := other.(App)
	return ok && a.Fn.Aeq(ctx, o.Fn) && a.Arg.Aeq(ctx, o.Arg)
}

// FreeNames implements nameless.Alpha.
func (a App) FreeNames(ctx nameless.Ctx, yield func(nameless.AnyName) bool) bool {
	if !a.Fn.FreeNames(ctx, yield) {
		return false
	}
	return a.Arg.FreeNames(ctx, yield)
}

// Binders implements nameless.Alpha.
func (a App) Binders(acc []nameless.AnyName) []nameless.AnyName {
	return a.Arg.Binders(a.Fn.Binders(acc))
}

// Freshen implements nameless.Alpha.
func (a App) Freshen(ctx nameless.Ctx, src nameless.FreshSource) (nameless.Alpha, nameless.Perm) {
	fn, pm1 := a.Fn.Freshen(ctx, src)
	arg, pm2 := a.Arg.Swap(ctx, pm1).(Expr).Freshen(ctx, src)
	return App{Fn: fn.(Expr), Arg: arg.(Expr)}, nameless.Compose(pm2, pm1)
}

// LFreshen implements nameless.Alpha.
func (a App) LFreshen(ctx nameless.Ctx, sc *nameless.LocalScope) (nameless.Alpha, nameless.Perm) {
	fn, pm1 := a.Fn.LFreshen(ctx, sc)
	arg, pm2 := a.Arg.Swap(ctx, pm1).(Expr).LFreshen(ctx, sc)
	return App{Fn: fn.(Expr), Arg: arg.(Expr)}, nameless.Compose(pm2, pm1)
}

// Swap implements nameless.Alpha.
func (a App) Swap(ctx nameless.Ctx, pm nameless.Perm) nameless.Alpha {
	return App{Fn: a.Fn.Swap(ctx, pm).(Expr), Arg: a.Arg.Swap(ctx, pm).(Expr)}
}

// Close implements nameless.Alpha.
func (a App) Close(ctx nameless.Ctx, idx nameless.PatternIndex) nameless.Alpha {
	return App{Fn: a.Fn.Close(ctx, idx).(Expr), Arg: a.Arg.Close(ctx, idx).(Expr)}
}

// Open implements nameless.Alpha.
func (a App) Open(ctx nameless.Ctx, idx nameless.PatternIndex) nameless.Alpha {
	return App{Fn: a.Fn.Open(ctx, idx).(Expr), Arg: a.Arg.Open(ctx, idx).(Expr)}
}

// Aeq implements nameless.Alpha.
func (l Lam) Aeq(ctx nameless.Ctx, other nameless.Alpha) bool {
	o, ok := other.(Lam)
	return ok && l.Scope.Aeq(ctx, o.Scope)
}

// FreeNames implements nameless.Alpha.
func (l Lam) FreeNames(ctx nameless.Ctx, yield func(nameless.AnyName) bool) bool {
	return l.Scope.FreeNames(ctx, yield)
}

// Binders implements nameless.Alpha.
func (l Lam) Binders(acc []nameless.AnyName) []nameless.AnyName {
	return l.Scope.Binders(acc)
}

// Freshen implements nameless.Alpha.
func (l Lam) Freshen(ctx nameless.Ctx, src nameless.FreshSource) (nameless.Alpha, nameless.Perm) {
	s, pm := l.Scope.Freshen(ctx, src)
	return Lam{Scope: s.(nameless.Bind[nameless.Name[Expr], Expr])}, pm
}

// LFreshen implements nameless.Alpha.
func (l Lam) LFreshen(ctx nameless.Ctx, sc *nameless.LocalScope) (nameless.Alpha, nameless.Perm) {
	s, pm := l.Scope.LFreshen(ctx, sc)
	return Lam{Scope: s.(nameless.Bind[nameless.Name[Expr], Expr])}, pm
}

// Swap implements nameless.Alpha.
func (l Lam) Swap(ctx nameless.Ctx, pm nameless.Perm) nameless.Alpha {
	return Lam{Scope: l.Scope.Swap(ctx, pm).(nameless.Bind[nameless.Name[Expr], Expr])}
}

// Close implements nameless.Alpha.
func (l Lam) Close(ctx nameless.Ctx, idx nameless.PatternIndex) nameless.Alpha {
	return Lam{Scope: l.Scope.Close(ctx, idx).(nameless.Bind[nameless.Name[Expr], Expr])}
}

// Open implements nameless.Alpha.
func (l Lam) Open(ctx nameless.Ctx, idx nameless.PatternIndex) nameless.Alpha {
	return Lam{Scope: l.Scope.Open(ctx, idx).(nameless.Bind[nameless.Name[Expr], Expr])}
}

// Aeq implements nameless.Alpha.
func (TNil) Aeq(_ nameless.Ctx, other nameless.Alpha) bool {
	_, ok := other.(TNil)
	return ok
}

// FreeNames implements nameless.Alpha.
func (TNil) FreeNames(_ nameless.Ctx, _ func(nameless.AnyName) bool) bool { return true }

// Binders implements nameless.Alpha.
func (TNil) Binders(acc []nameless.AnyName) []nameless.AnyName { return acc }

// Freshen implements nameless.Alpha.
func (t TNil) Freshen(_ nameless.Ctx, _ nameless.FreshSource) (nameless.Alpha, nameless.Perm) {
	return t, nameless.Perm{}
}

// LFreshen implements nameless.Alpha.
func (t TNil) LFreshen(_ nameless.Ctx, _ *nameless.LocalScope) (nameless.Alpha, nameless.Perm) {
	return t, nameless.Perm{}
}

// Swap implements nameless.Alpha.
func (t TNil) Swap(_ nameless.Ctx, _ nameless.Perm) nameless.Alpha { return t }

// Close implements nameless.Alpha.
func (t TNil) Close(_ nameless.Ctx, _ nameless.PatternIndex) nameless.Alpha { return t }

// Open implements nameless.Alpha.
func (t TNil) Open(_ nameless.Ctx, _ nameless.PatternIndex) nameless.Alpha { return t }

// Aeq implements nameless.Alpha.
func (t TCons) Aeq(ctx nameless.Ctx, other nameless.Alpha) bool {
	o, ok := other.(TCons)
	return ok && t.Seg.Aeq(ctx, o.Seg)
}

// FreeNames implements nameless.Alpha.
func (t TCons) FreeNames(ctx nameless.Ctx, yield func(nameless.AnyName) bool) bool {
	return t.Seg.FreeNames(ctx, yield)
}

// Binders implements nameless.Alpha.
func (t TCons) Binders(acc []nameless.AnyName) []nameless.AnyName {
	return t.Seg.Binders(acc)
}

// Freshen implements nameless.Alpha.
func (t TCons) Freshen(ctx nameless.Ctx, src nameless.FreshSource) (nameless.Alpha, nameless.Perm) {
	s, pm := t.Seg.Freshen(ctx, src)
	return TCons{Seg: s.(nameless.Rebind[Entry, Tele])}, pm
}

// LFreshen implements nameless.Alpha.
func (t TCons) LFreshen(ctx nameless.Ctx, sc *nameless.LocalScope) (nameless.Alpha, nameless.Perm) {
	s, pm := t.Seg.LFreshen(ctx, sc)
	return TCons{Seg: s.(nameless.Rebind[Entry, Tele])}, pm
}

// Swap implements nameless.Alpha.
func (t TCons) Swap(ctx nameless.Ctx, pm nameless.Perm) nameless.Alpha {
	return TCons{Seg: t.Seg.Swap(ctx, pm).(nameless.Rebind[Entry, Tele])}
}

// Close implements nameless.Alpha.
func (t TCons) Close(ctx nameless.Ctx, idx nameless.PatternIndex) nameless.Alpha {
	return TCons{Seg: t.Seg.Close(ctx, idx).(nameless.Rebind[Entry, Tele])}
}

// Open implements nameless.Alpha.
func (t TCons) Open(ctx nameless.Ctx, idx nameless.PatternIndex) nameless.Alpha {
	return TCons{Seg: t.Seg.Open(ctx, idx).(nameless.Rebind[Entry, Tele])}
}

// Aeq implements nameless.Alpha.
func (l Let) Aeq(ctx nameless.Ctx, other nameless.Alpha) bool {
	o, ok := other.(Let)
	return ok && l.Scope.Aeq(ctx, o.Scope)
}

// FreeNames implements nameless.Alpha.
func (l Let) FreeNames(ctx nameless.Ctx, yield func(nameless.AnyName) bool) bool {
	return l.Scope.FreeNames(ctx, yield)
}

// Binders implements nameless.Alpha.
func (l Let) Binders(acc []nameless.AnyName) []nameless.AnyName {
	return l.Scope.Binders(acc)
}

// Freshen implements nameless.Alpha.
func (l Let) Freshen(ctx nameless.Ctx, src nameless.FreshSource) (nameless.Alpha, nameless.Perm) {
	s, pm := l.Scope.Freshen(ctx, src)
	return Let{Scope: s.(nameless.Bind[Tele, Expr])}, pm
}

// LFreshen implements nameless.Alpha.
func (l Let) LFreshen(ctx nameless.Ctx, sc *nameless.LocalScope) (nameless.Alpha, nameless.Perm) {
	s, pm := l.Scope.LFreshen(ctx, sc)
	return Let{Scope: s.(nameless.Bind[Tele, Expr])}, pm
}

// Swap implements nameless.Alpha.
func (l Let) Swap(ctx nameless.Ctx, pm nameless.Perm) nameless.Alpha {
	return Let{Scope: l.Scope.Swap(ctx, pm).(nameless.Bind[Tele, Expr])}
}

// Close implements nameless.Alpha.
func (l Let) Close(ctx nameless.Ctx, idx nameless.PatternIndex) nameless.Alpha {
	return Let{Scope: l.Scope.Close(ctx, idx).(nameless.Bind[Tele, Expr])}
}

// Open implements nameless.Alpha.
func (l Let) Open(ctx nameless.Ctx, idx nameless.PatternIndex) nameless.Alpha {
	return Let{Scope: l.Scope.Open(ctx, idx).(nameless.Bind[Tele, Expr])}
}
