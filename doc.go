// Package xrplwasm is the Go library for XRPL smart escrows.
//
// A smart escrow attaches a WebAssembly contract to an escrow entry; when
// an EscrowFinish transaction targets the escrow, the ledger runs the
// contract's exported finish function and releases the funds only when
// the verdict is exactly 1; any other value, error codes included, leaves
// the escrow in place. This module covers both sides of that boundary: the
// guest packages a contract is written against, and a host-side simulator
// and runner for developing and testing contracts off-ledger.
//
// # Package Layout
//
//	host/        Raw host ABI, result decoding and typed field readers
//	locator/     Packed paths addressing nested and array fields
//	sfield/      Serialized field identifiers
//	types/       Fixed-size ledger value types
//	currenttx/   Fields of the finishing transaction
//	currentobj/  Fields of the escrow under evaluation
//	ledgerobj/   Fields of slot-cached ledger entries
//	escrow/      Typed escrow facades over currentobj and ledgerobj
//	keylet/      Ledger entry key computation
//	errors/      Structured errors for the host-side tooling
//	hostsim/     Fixture-backed host implementation for tests
//	runner/      wazero-based contract runner
//	cmd/         The escrow-run command line tool
//
// # Writing a Contract
//
// A contract is a Go main package exporting finish:
//
//	//go:wasmexport finish
//	func finish() int32 {
//	    sqn, err := host.LedgerSequence()
//	    if err != nil {
//	        return host.ErrInternal.Code()
//	    }
//	    if sqn >= 5 {
//	        return 1
//	    }
//	    return 0
//	}
//
// Build it with TinyGo targeting wasip1 and attach the binary with an
// EscrowCreate transaction, or run it locally:
//
//	escrow-run -wasm contract.wasm -fixture ledger.json
//
// Native tests swap the host bindings for a simulator:
//
//	fix, _ := hostsim.Parse(fixtureJSON)
//	prev := host.SetBindings(hostsim.New(fix))
//	defer host.SetBindings(prev)
//
// The examples directory holds complete contracts with their tests.
package xrplwasm
