// Package host exposes the low-level XRPL programmability host ABI plus the
// typed primitives built directly on top of it: the Error code enumeration,
// the result-code decoders, and the trace sinks.
//
// The ABI has two realizations selected at build time. When compiled for a
// WASM guest target the package functions call the functions imported from
// the host module "host_lib". On native targets they delegate to a swappable
// Bindings implementation so that contract code links and runs under plain
// `go test`; the default StubBindings only echoes buffer lengths, while
// package hostsim provides a fixture-driven simulator.
//
// Most contracts should prefer the high-level accessors in the currenttx,
// currentobj, ledgerobj and escrow packages, which wrap these calls.
package host
