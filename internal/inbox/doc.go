// Package inbox holds the authoritative collection of sent SMS records for
// the current reporting period, plus the view state (status filter, search
// term, page) from which the visible slice is derived.
//
// # Ownership
//
// The Store is single-writer: it is only ever touched from the UI update
// loop, so it carries no locks. Network results re-enter through ApplyLoad
// and FailLoad, which discard responses issued for a view state that is no
// longer current.
package inbox
