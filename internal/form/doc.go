// Package form implements the API-key configuration controller as a pure
// reducer: Update maps (State, Event) to a new State plus the effects the
// shell must run (fetch, test, save, delayed reload). Keeping the reducer
// free of UI and network imports makes the section-visibility and
// save-affordance invariants testable in isolation.
package form
