// Package toolchain defines the domain vocabulary of the kevm dispatcher:
// backends, subcommands, the MODE/SCHEDULE configuration constants, and the
// contract types (Tool, Result) shared between the router and the process
// adapter. Everything here is a transient, process-lifetime value.
package toolchain
