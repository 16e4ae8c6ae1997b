// Package report renders the inbox's current filtered view to a
// standalone HTML file for sharing outside the console. Message content is
// untrusted; html/template's contextual escaping keeps it inert.
package report
