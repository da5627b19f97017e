package nameless

import "fmt"

// Unbind2 opens two bindings as though they shared one set of bound
// identities, so their bodies can be compared or merged directly. It
// first aligns the second pattern's declared names onto the first's, in
// each pattern's own declaration-fold order; if the counts differ no
// bijection exists and ok is false. On success the first pattern is
// freshened against src, both bodies are opened with the freshened
// names, and the second pattern is carried onto the same names by the
// composed permutation rather than freshened independently.
func Unbind2[P1, T1, P2, T2 Alpha](src FreshSource, b1 Bind[P1, T1], b2 Bind[P2, T2]) (P1, T1, P2, T2, bool) {
	align, ok := Align(Binders(b2.pattern), Binders(b1.pattern))
	if !ok {
		var p1 P1
		var t1 T1
		var p2 P2
		var t2 T2
		return p1, t1, p2, t2, false
	}
	p1, pm := Freshen(src, b1.pattern)
	idx := NewPatternIndex(p1)
	t1 := b1.body.Open(TermCtx(), idx).(T1)
	p2 := b2.pattern.Swap(PatternCtx(), Compose(pm, align)).(P2)
	t2 := b2.body.Open(TermCtx(), idx).(T2)
	return p1, t1, p2, t2, true
}

// Lunbind2 is Unbind2 with locally fresh names from sc. The continuation
// is always invoked: with ok false and zero values when alignment fails,
// and with the aligned quadruple otherwise. On success the chosen names
// are in scope for the dynamic extent of the continuation.
func Lunbind2[P1, T1, P2, T2 Alpha, R any](sc *LocalScope, b1 Bind[P1, T1], b2 Bind[P2, T2], cont func(p1 P1, t1 T1, p2 P2, t2 T2, ok bool) R) R {
	align, ok := Align(Binders(b2.pattern), Binders(b1.pattern))
	if !ok {
		var p1 P1
		var t1 T1
		var p2 P2
		var t2 T2
		return cont(p1, t1, p2, t2, false)
	}
	return Lfreshen(sc, b1.pattern, func(p1 P1, pm Perm) R {
		idx := NewPatternIndex(p1)
		t1 := b1.body.Open(TermCtx(), idx).(T1)
		p2 := b2.pattern.Swap(PatternCtx(), Compose(pm, align)).(P2)
		t2 := b2.body.Open(TermCtx(), idx).(T2)
		return cont(p1, t1, p2, t2, true)
	})
}

// Unbind2Plus is Unbind2 with the alignment failure escalated to an
// error, for callers with no local handling for an absent result.
func Unbind2Plus[P1, T1, P2, T2 Alpha](src FreshSource, b1 Bind[P1, T1], b2 Bind[P2, T2]) (P1, T1, P2, T2, error) {
	p1, t1, p2, t2, ok := Unbind2(src, b1, b2)
	if !ok {
		return p1, t1, p2, t2, fmt.Errorf(
			"Unbind2Plus: patterns declare different numbers of binding occurrences (%d vs %d)",
			len(Binders(b1.pattern)), len(Binders(b2.pattern)))
	}
	return p1, t1, p2, t2, nil
}
