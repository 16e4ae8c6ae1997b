// Package tui is the terminal front end: bubbletea models that bind the
// form reducer and inbox store to widgets and render them.
//
// # Single writer
//
// Every state mutation happens inside Update on the program goroutine.
// Network calls run as tea.Cmds and re-enter the loop as messages carrying
// the load token they were issued with, so a response that arrives after
// the view has moved on is discarded instead of applied.
//
// # Surface
//
// All collaborators a view needs are declared on the Surface descriptor
// and resolved once at construction. A missing collaborator fails fast
// with one error enumerating every absent field; no view starts half-wired.
package tui
