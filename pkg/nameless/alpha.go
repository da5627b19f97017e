package nameless

// Ctx is the traversal position context threaded through every Alpha
// primitive. It records whether traversal is currently in term position
// (where a bare name is a reference) or pattern position (where a bare
// name is a binding occurrence), together with the binder nesting level
// used to resolve binder-relative internal references.
//
// Ctx values are immutable; the transition methods return adjusted
// copies. The mode must switch from term to pattern exactly when
// traversal crosses into a pattern (the pattern of a Bind), back to term
// inside an Embed, and the level must grow by one when descending into
// the body of a Bind or the second component of a Rebind. The Bind,
// Rebind and Embed implementations in this package perform those
// transitions; client composite types simply pass the context through to
// their fields unchanged.
type Ctx struct {
	mode  ctxMode
	level int
}

type ctxMode uint8

const (
	modeTerm ctxMode = iota
	modePat
)

// TermCtx returns the starting context for a term-position traversal.
func TermCtx() Ctx { return Ctx{mode: modeTerm} }

// PatternCtx returns the starting context for a pattern-position traversal.
func PatternCtx() Ctx { return Ctx{mode: modePat} }

// Term returns a copy of the context switched to term position.
func (c Ctx) Term() Ctx { c.mode = modeTerm; return c }

// Pattern returns a copy of the context switched to pattern position.
func (c Ctx) Pattern() Ctx { c.mode = modePat; return c }

// IncrLevel returns a copy of the context one binder level deeper.
func (c Ctx) IncrLevel() Ctx { c.level++; return c }

// InTermPosition reports whether the context is in term position.
func (c Ctx) InTermPosition() bool { return c.mode == modeTerm }

// InPatternPosition reports whether the context is in pattern position.
func (c Ctx) InPatternPosition() bool { return c.mode == modePat }

// Level returns the current binder nesting level.
func (c Ctx) Level() int { return c.level }

// Alpha is the capability every concrete syntax type must provide for
// the algebra to operate on it. Composite types implement each method by
// delegating to their fields with the same context (only this package's
// own node types adjust the context); the uniform method set makes the
// interface a natural target for code generation.
//
// The Swap, Close and Open primitives return Alpha; callers recover the
// concrete type with a type assertion. An implementation that returns a
// value of a different type than its receiver is a programming error.
type Alpha interface {
	// Aeq reports structural equality up to consistent renaming of
	// bound variables, relative to ctx.
	Aeq(ctx Ctx, other Alpha) bool

	// FreeNames folds over every free name occurrence in fold order,
	// calling yield for each. It stops and returns false as soon as
	// yield returns false, and returns true otherwise.
	FreeNames(ctx Ctx, yield func(AnyName) bool) bool

	// Binders appends the binding occurrences this value declares when
	// read as a pattern, in declaration-fold order.
	Binders(acc []AnyName) []AnyName

	// Freshen replaces every binding occurrence with a brand-new name
	// drawn from src, returning the renamed value and the permutation
	// exchanging old and new identities. In term position it is the
	// identity.
	Freshen(ctx Ctx, src FreshSource) (Alpha, Perm)

	// LFreshen is Freshen against the locally tracked in-scope set of
	// sc instead of a global source. Names it picks are recorded in
	// sc's current frame so later picks avoid them.
	LFreshen(ctx Ctx, sc *LocalScope) (Alpha, Perm)

	// Swap applies the permutation to every concrete name occurrence,
	// free and binding alike. Binder-relative references are untouched.
	Swap(ctx Ctx, pm Perm) Alpha

	// Close converts free occurrences of the pattern's declared names
	// into binder-relative references at the current level.
	Close(ctx Ctx, idx PatternIndex) Alpha

	// Open is the inverse of Close: it replaces binder-relative
	// references at the current level with the pattern's concrete names.
	Open(ctx Ctx, idx PatternIndex) Alpha
}

// PatternIndex is the two-way lookup over a pattern's declared binding
// occurrences that Close and Open resolve against: name to position and
// position to name, both in declaration-fold order.
type PatternIndex struct {
	names []AnyName
	pos   map[AnyName]int
}

// NewPatternIndex builds the lookup for pattern p. If p declares the
// same name more than once, the first (leftmost) occurrence wins for the
// name-to-position direction.
func NewPatternIndex(p Alpha) PatternIndex {
	names := p.Binders(nil)
	pos := make(map[AnyName]int, len(names))
	for i, n := range names {
		if _, seen := pos[n]; !seen {
			pos[n] = i
		}
	}
	return PatternIndex{names: names, pos: pos}
}

// IndexOf returns the declaration position of n, if p declares it.
func (x PatternIndex) IndexOf(n AnyName) (int, bool) {
	i, ok := x.pos[n]
	return i, ok
}

// NameAt returns the i-th declared name, if i is in range.
func (x PatternIndex) NameAt(i int) (AnyName, bool) {
	if i < 0 || i >= len(x.names) {
		return AnyName{}, false
	}
	return x.names[i], true
}

// Arity returns the number of binding occurrences the pattern declares.
func (x PatternIndex) Arity() int { return len(x.names) }

// Binders returns the binding occurrences pattern p declares, in
// declaration-fold order. The result may contain duplicates if p
// declares the same name twice.
func Binders(p Alpha) []AnyName { return p.Binders(nil) }
