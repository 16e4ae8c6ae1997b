// Package keys defines the supported completion-API providers and the
// format rules their credentials must satisfy before the console will
// offer to test or save them.
package keys
