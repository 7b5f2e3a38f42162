// Package audit models the append-only audit trail.
//
// An Entry records one state-changing action: who did it, what was done, to which
// resource, and the resource state before and after. Snapshots are stored as Value
// trees, a closed JSON-compatible representation produced by Sanitize. Sanitize
// accepts any Go value, never panics and is idempotent, so building an entry cannot
// fail because of an unusual snapshot.
package audit
