package nameless

// nameKey is a sort-blind name identity. The local avoid set tracks
// identities rather than sorted names so picks never collide with an
// in-scope name of any sort.
type nameKey struct {
	hint  string
	token int64
}

// LocalScope is the locally tracked in-scope name set backing Lfreshen,
// Lunbind and Lunbind2. Extensions are organized as a stack of frames:
// each continuation-passing operation pushes a frame, records every name
// it picks or is told to avoid in that frame, and pops it when the
// continuation returns, so retraction happens exactly once on every exit
// path. A LocalScope is single-threaded by design.
type LocalScope struct {
	avoid  map[nameKey]struct{}
	frames [][]nameKey
}

// NewLocalScope returns a scope whose permanent avoid set contains the
// given names. Names added here are never retracted.
func NewLocalScope(avoid ...AnyName) *LocalScope {
	sc := &LocalScope{avoid: make(map[nameKey]struct{}, len(avoid))}
	for _, n := range avoid {
		sc.avoid[nameKey{n.id.hint, n.id.token}] = struct{}{}
	}
	return sc
}

// InScope reports whether the identity of n is currently in scope.
func (sc *LocalScope) InScope(n AnyName) bool {
	_, ok := sc.avoid[nameKey{n.id.hint, n.id.token}]
	return ok
}

func (sc *LocalScope) push() {
	sc.frames = append(sc.frames, nil)
}

func (sc *LocalScope) pop() {
	last := len(sc.frames) - 1
	for _, k := range sc.frames[last] {
		delete(sc.avoid, k)
	}
	sc.frames = sc.frames[:last]
}

// add inserts k into the avoid set, recording it in the current frame so
// pop retracts it. Already-present identities are not recorded twice, so
// an inner frame never retracts an outer frame's entry. With no open
// frame the insertion is permanent.
func (sc *LocalScope) add(k nameKey) {
	if _, ok := sc.avoid[k]; ok {
		return
	}
	sc.avoid[k] = struct{}{}
	if n := len(sc.frames); n > 0 {
		sc.frames[n-1] = append(sc.frames[n-1], k)
	}
}

// pick returns the first identity with the given hint that is not in
// scope, trying the bare hint and then hint#1, hint#2, in order. The
// chosen identity is added to the current frame. Deterministic: the same
// scope contents always yield the same pick.
func (sc *LocalScope) pick(hint string) ident {
	for t := int64(0); ; t++ {
		k := nameKey{hint, t}
		if _, ok := sc.avoid[k]; !ok {
			sc.add(k)
			return ident{hint: hint, token: t}
		}
	}
}

// WithInScope runs f with the given names added to the in-scope set and
// retracts the extension when f returns, on any exit path.
func WithInScope[R any](sc *LocalScope, names []AnyName, f func() R) R {
	sc.push()
	defer sc.pop()
	for _, n := range names {
		sc.add(nameKey{n.id.hint, n.id.token})
	}
	return f()
}
