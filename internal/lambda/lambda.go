// Package lambda implements an untyped lambda calculus with sequential
// let bindings on top of the nameless binding algebra. It exists for the
// repository's example programs and doubles as a reference for how a
// client syntax type implements the Alpha interface: every composite
// node delegates field by field, and only the algebra's own node types
// (Bind, Rebind, Embed) adjust the traversal context.
package lambda

import (
	"fmt"

	"github.com/gitrdm/nameless/pkg/nameless"
)

// Expr is the syntax of the calculus. All constructors are value types.
type Expr interface {
	nameless.Alpha
	isExpr()
}

// V is a variable reference.
type V struct {
	Name nameless.Name[Expr]
}

// App is function application.
type App struct {
	Fn  Expr
	Arg Expr
}

// Lam is a lambda abstraction: one name bound over a body.
type Lam struct {
	Scope nameless.Bind[nameless.Name[Expr], Expr]
}

// Entry is one telescope segment: a name together with its embedded
// right-hand side. The Embed keeps the right-hand side in term position,
// so names inside it are references, not binders.
type Entry = nameless.Tuple[nameless.Name[Expr], nameless.Embed[Expr]]

// Tele is a telescope of let bindings: later entries may reference names
// introduced by earlier ones.
type Tele interface {
	nameless.Alpha
	isTele()
}

// TNil is the empty telescope.
type TNil struct{}

// TCons prepends one entry to a telescope; the tail is closed relative
// to the entry's name.
type TCons struct {
	Seg nameless.Rebind[Entry, Tele]
}

// Let binds a full telescope over a body.
type Let struct {
	Scope nameless.Bind[Tele, Expr]
}

func (V) isExpr()   {}
func (App) isExpr() {}
func (Lam) isExpr() {}
func (Let) isExpr() {}

func (TNil) isTele()  {}
func (TCons) isTele() {}

// Var returns a variable reference to n.
func Var(n nameless.Name[Expr]) Expr { return V{Name: n} }

// Abs builds a lambda abstraction binding n over body.
func Abs(n nameless.Name[Expr], body Expr) Expr {
	return Lam{Scope: nameless.NewBind(n, body)}
}

// LetIn builds a sequential let: names[i] is bound to values[i], and
// each value may reference the names before it. It panics if the slices
// have different lengths.
func LetIn(names []nameless.Name[Expr], values []Expr, body Expr) Expr {
	if len(names) != len(values) {
		panic(fmt.Sprintf("LetIn: %d names but %d values", len(names), len(values)))
	}
	tele := Tele(TNil{})
	for i := len(names) - 1; i >= 0; i-- {
		entry := nameless.NewTuple(names[i], nameless.NewEmbed(values[i]))
		tele = TCons{Seg: nameless.NewRebind(entry, tele)}
	}
	return Let{Scope: nameless.NewBind(tele, body)}
}

func (v V) String() string { return v.Name.String() }

func (a App) String() string { return fmt.Sprintf("(%v %v)", a.Fn, a.Arg) }

func (l Lam) String() string { return fmt.Sprintf("(lam %v)", l.Scope) }

func (TNil) String() string { return "·" }

func (t TCons) String() string { return t.Seg.String() }

func (l Let) String() string { return fmt.Sprintf("(let %v)", l.Scope) }
