package host

import "github.com/xrpl-wasm/xrpl-wasm-go/types"

// Typed views over the ledger-header and utility host functions.

// LedgerSequence returns the sequence number of the current ledger.
func LedgerSequence() (uint32, error) {
	code := GetLedgerSqn()
	return Decode(code, func() uint32 { return uint32(code) })
}

// ParentLedgerTime returns the close time of the parent ledger in seconds
// since the Ripple epoch. Time gates compare against this value, never
// against wall-clock time.
func ParentLedgerTime() (uint32, error) {
	code := GetParentLedgerTime()
	return Decode(code, func() uint32 { return uint32(code) })
}

// ParentLedgerHash returns the identifying hash of the parent ledger.
func ParentLedgerHash() (types.Hash256, error) {
	var h types.Hash256
	code := GetParentLedgerHash(h[:])
	return DecodeExpected(code, types.Hash256Size, func() types.Hash256 { return h })
}

// BaseFee returns the current reference transaction cost in drops.
func BaseFee() (uint32, error) {
	code := GetBaseFee()
	return Decode(code, func() uint32 { return uint32(code) })
}

// IsAmendmentEnabled reports whether the amendment with the given 32-byte
// identifier is active on the network.
func IsAmendmentEnabled(amendment types.Hash256) (bool, error) {
	code := AmendmentEnabled(amendment[:])
	return Decode(code, func() bool { return code != 0 })
}

// Sha512Half hashes data with SHA-512 and returns the first half, the hash
// the ledger uses for all identifying indexes.
func Sha512Half(data []byte) (types.Hash256, error) {
	var h types.Hash256
	code := ComputeSha512Half(data, h[:])
	return DecodeExpected(code, types.Hash256Size, func() types.Hash256 { return h })
}

// VerifySignature checks signature over message against pubKey.
func VerifySignature(message, signature []byte, pubKey types.PublicKey) (bool, error) {
	code := CheckSig(message, signature, pubKey[:])
	return Decode(code, func() bool { return code != 0 })
}
