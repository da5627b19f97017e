// Package main walks through the nameless binding algebra using the
// lambda calculus from internal/lambda: alpha-equivalence, fresh and
// locally fresh unbinding, simultaneous unbinding, and telescopes.
package main

import (
	"fmt"

	"github.com/gitrdm/nameless/internal/lambda"
	"github.com/gitrdm/nameless/pkg/nameless"
)

func main() {
	fmt.Println("=== Nameless Examples ===")
	fmt.Println()

	alphaEquivalence()
	freshUnbinding()
	localUnbinding()
	simultaneousUnbinding()
	telescopes()
}

func v(hint string) nameless.Name[lambda.Expr] {
	return nameless.NewName[lambda.Expr](hint)
}

// alphaEquivalence shows that binder spellings do not matter.
func alphaEquivalence() {
	fmt.Println("1. Alpha-Equivalence:")

	x, y, z := v("x"), v("y"), v("z")
	idX := lambda.Abs(x, lambda.Var(x))
	idY := lambda.Abs(y, lambda.Var(y))
	constZ := lambda.Abs(x, lambda.Var(z))

	fmt.Printf("   %v aeq %v => %v\n", idX, idY, nameless.Aeq(idX, idY))
	fmt.Printf("   %v aeq %v => %v\n", idX, constZ, nameless.Aeq(idX, constZ))
	fmt.Println()
}

// freshUnbinding opens a scope with globally fresh names.
func freshUnbinding() {
	fmt.Println("2. Fresh Unbinding:")

	src := nameless.NewCounterSource()
	x, y := v("x"), v("y")
	term := lambda.Abs(x, lambda.App{Fn: lambda.Var(x), Arg: lambda.Var(y)}).(lambda.Lam)

	n1, body1 := nameless.Unbind(src, term.Scope)
	n2, body2 := nameless.Unbind(src, term.Scope)

	fmt.Printf("   first unbind:  %v . %v\n", n1, body1)
	fmt.Printf("   second unbind: %v . %v\n", n2, body2)
	fmt.Printf("   bodies alpha-equal after rebinding => %v\n",
		nameless.Aeq(lambda.Abs(n1, body1), lambda.Abs(n2, body2)))
	fmt.Println()
}

// localUnbinding opens a scope with the smallest name not already in
// scope, and retracts it when the continuation returns.
func localUnbinding() {
	fmt.Println("3. Local Unbinding:")

	sc := nameless.NewLocalScope(v("x").Any())
	x := v("x")
	term := lambda.Abs(x, lambda.Var(x)).(lambda.Lam)

	rendered := nameless.Lunbind(sc, term.Scope,
		func(n nameless.Name[lambda.Expr], body lambda.Expr) string {
			return fmt.Sprintf("%v . %v", n, body)
		})
	fmt.Printf("   with x in scope: %v\n", rendered)
	fmt.Println()
}

// simultaneousUnbinding opens two scopes with the same fresh names so
// their bodies can be compared or zipped positionally.
func simultaneousUnbinding() {
	fmt.Println("4. Simultaneous Unbinding:")

	src := nameless.NewCounterSource()
	x, y := v("x"), v("y")
	b1 := lambda.Abs(x, lambda.Var(x)).(lambda.Lam)
	b2 := lambda.Abs(y, lambda.Var(y)).(lambda.Lam)

	n1, body1, n2, body2, ok := nameless.Unbind2(src, b1.Scope, b2.Scope)
	fmt.Printf("   aligned: %v . %v and %v . %v (ok=%v)\n", n1, body1, n2, body2, ok)
	fmt.Printf("   same name both sides => %v\n", n1.Equal(n2))
	fmt.Println()
}

// telescopes unfolds a sequential let where the second binding refers to
// the first.
func telescopes() {
	fmt.Println("5. Telescopes:")

	src := nameless.NewCounterSource()
	x, y, z := v("x"), v("y"), v("z")

	// let x = z; y = (x x) in y
	e := lambda.LetIn(
		[]nameless.Name[lambda.Expr]{x, y},
		[]lambda.Expr{lambda.Var(z), lambda.App{Fn: lambda.Var(x), Arg: lambda.Var(x)}},
		lambda.Var(y),
	)
	fmt.Printf("   term:    %v\n", e)
	fmt.Printf("   unfolds: %v\n", lambda.Reduce(src, e, 10))
	fmt.Println()
}
