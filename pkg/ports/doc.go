// Package ports declares the driven-side interfaces of the dispatcher.
// The router depends on these, never on concrete adapters, so tests can
// substitute recording fakes for real subprocess execution.
package ports
