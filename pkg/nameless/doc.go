// Package nameless implements a locally nameless binding algebra: a
// reusable toolkit for syntax trees that contain variable binders.
//
// Client syntax types implement the Alpha interface once per concrete
// shape, delegating field by field; the package derives the interesting
// operations from those primitives:
//
//   - Aeq: alpha-equivalence (equality up to consistent renaming of
//     bound variables)
//   - FreeNamesAny / FreeNames: lazy free-variable queries
//   - Freshen / Lfreshen / ApplyPerm: globally- and locally-unique
//     capture-avoiding renaming, and pure permutation application
//   - NewBind / Unbind / Lunbind: freezing a scope by closing a term
//     against a pattern, and reopening it with fresh concrete names
//   - Unbind2 / Lunbind2 / Unbind2Plus: simultaneous unbinding of two
//     independently constructed bindings over one shared fresh-name set
//   - NewRebind / Unrebind: telescopes (dependent binder sequences)
//   - NewEmbed / Unembed: non-binding payloads riding in pattern position
//
// Bound variables are tracked internally by binder-relative position
// (level and index); opened terms carry human-readable hints again.
// Terms and patterns are never mutated in place: every operation returns
// a new value, so the only shared mutable state is the fresh-identity
// source, which is safe for concurrent use.
package nameless
