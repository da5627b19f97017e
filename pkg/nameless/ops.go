package nameless

import "iter"

// Aeq reports alpha-equivalence of two values: structural equality up to
// consistent renaming of bound variables. Reflexive, symmetric and
// transitive over well-formed values.
func Aeq[T Alpha](a, b T) bool {
	return a.Aeq(TermCtx(), b)
}

// FreeNamesAny returns the lazy sequence of every free name occurrence
// in a, in fold order. The sequence may contain duplicates if a name
// occurs more than once.
func FreeNamesAny(a Alpha) iter.Seq[AnyName] {
	return func(yield func(AnyName) bool) {
		a.FreeNames(TermCtx(), yield)
	}
}

// FreeNames returns the free name occurrences of a restricted to sort S.
// Occurrences of other sorts are skipped, not reported as errors.
func FreeNames[S any](a Alpha) iter.Seq[Name[S]] {
	return func(yield func(Name[S]) bool) {
		a.FreeNames(TermCtx(), func(n AnyName) bool {
			if nm, ok := ToName[S](n); ok {
				return yield(nm)
			}
			return true
		})
	}
}

// Freshen replaces every binding occurrence in pattern p with a
// brand-new name drawn from src. It returns the renamed pattern and the
// permutation exchanging each old identity with its replacement, which
// is the identity outside those names.
func Freshen[P Alpha](src FreshSource, p P) (P, Perm) {
	p2, pm := p.Freshen(PatternCtx(), src)
	return p2.(P), pm
}

// Lfreshen is Freshen against the locally tracked in-scope set of sc:
// replacements avoid exactly the names in scope, not all names ever
// minted. The continuation receives the renamed pattern and permutation
// and runs with the in-scope set extended by the replacements; the
// extension is retracted when the continuation returns, on any exit
// path.
func Lfreshen[P Alpha, R any](sc *LocalScope, p P, cont func(P, Perm) R) R {
	sc.push()
	defer sc.pop()
	p2, pm := p.LFreshen(PatternCtx(), sc)
	return cont(p2.(P), pm)
}

// ApplyPerm applies a permutation to every concrete name occurrence in
// t, free and binding alike. Pure: no freshness effect is involved.
func ApplyPerm[T Alpha](pm Perm, t T) T {
	return t.Swap(TermCtx(), pm).(T)
}
