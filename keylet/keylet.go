// Package keylet computes ledger-entry keys through the host. A keylet is a
// 34 byte value, a 2 byte entry type prefix followed by the 32 byte index,
// and is the handle cache_ledger_obj needs to pull an entry into a slot.
package keylet

import (
	"github.com/xrpl-wasm/xrpl-wasm-go/host"
	"github.com/xrpl-wasm/xrpl-wasm-go/types"
)

// Size is the length of every keylet the host produces.
const Size = 34

// Keylet identifies a ledger entry by type prefix and index.
type Keylet [Size]byte

// Bytes returns the keylet as a slice over the backing array.
func (k *Keylet) Bytes() []byte { return k[:] }

func decode(code int32, buf *Keylet) (Keylet, error) {
	return host.DecodeExpected(code, Size, func() Keylet { return *buf })
}

// Account computes the keylet of an AccountRoot entry.
func Account(account types.AccountID) (Keylet, error) {
	var k Keylet
	return decode(host.AccountKeylet(account[:], k[:]), &k)
}

// Amm computes the keylet of an AMM entry from its two serialized issues.
func Amm(issue1, issue2 []byte) (Keylet, error) {
	var k Keylet
	return decode(host.AmmKeylet(issue1, issue2, k[:]), &k)
}

// Check computes the keylet of a Check entry.
func Check(account types.AccountID, sequence uint32) (Keylet, error) {
	var k Keylet
	return decode(host.CheckKeylet(account[:], int32(sequence), k[:]), &k)
}

// Credential computes the keylet of a Credential entry.
func Credential(subject, issuer types.AccountID, credentialType []byte) (Keylet, error) {
	var k Keylet
	return decode(host.CredentialKeylet(subject[:], issuer[:], credentialType, k[:]), &k)
}

// Delegate computes the keylet of a Delegate entry.
func Delegate(account, authorize types.AccountID) (Keylet, error) {
	var k Keylet
	return decode(host.DelegateKeylet(account[:], authorize[:], k[:]), &k)
}

// DepositPreauth computes the keylet of a DepositPreauth entry.
func DepositPreauth(account, authorize types.AccountID) (Keylet, error) {
	var k Keylet
	return decode(host.DepositPreauthKeylet(account[:], authorize[:], k[:]), &k)
}

// Did computes the keylet of a DID entry.
func Did(account types.AccountID) (Keylet, error) {
	var k Keylet
	return decode(host.DidKeylet(account[:], k[:]), &k)
}

// Escrow computes the keylet of an Escrow entry from its owner and the
// sequence number of the EscrowCreate transaction.
func Escrow(owner types.AccountID, sequence uint32) (Keylet, error) {
	var k Keylet
	return decode(host.EscrowKeylet(owner[:], int32(sequence), k[:]), &k)
}

// Line computes the keylet of a RippleState entry.
func Line(account1, account2 types.AccountID, currency types.Hash160) (Keylet, error) {
	var k Keylet
	return decode(host.LineKeylet(account1[:], account2[:], currency[:], k[:]), &k)
}

// MptIssuance computes the keylet of an MPTokenIssuance entry.
func MptIssuance(issuer types.AccountID, sequence uint32) (Keylet, error) {
	var k Keylet
	return decode(host.MptIssuanceKeylet(issuer[:], int32(sequence), k[:]), &k)
}

// Mptoken computes the keylet of an MPToken entry.
func Mptoken(issuanceID types.Hash192, holder types.AccountID) (Keylet, error) {
	var k Keylet
	return decode(host.MptokenKeylet(issuanceID[:], holder[:], k[:]), &k)
}

// NftOffer computes the keylet of an NFTokenOffer entry.
func NftOffer(account types.AccountID, sequence uint32) (Keylet, error) {
	var k Keylet
	return decode(host.NftOfferKeylet(account[:], int32(sequence), k[:]), &k)
}

// Offer computes the keylet of an Offer entry.
func Offer(account types.AccountID, sequence uint32) (Keylet, error) {
	var k Keylet
	return decode(host.OfferKeylet(account[:], int32(sequence), k[:]), &k)
}

// Oracle computes the keylet of an Oracle entry.
func Oracle(account types.AccountID, documentID uint32) (Keylet, error) {
	var k Keylet
	return decode(host.OracleKeylet(account[:], int32(documentID), k[:]), &k)
}

// Paychan computes the keylet of a PayChannel entry.
func Paychan(account, destination types.AccountID, sequence uint32) (Keylet, error) {
	var k Keylet
	return decode(host.PaychanKeylet(account[:], destination[:], int32(sequence), k[:]), &k)
}

// PermissionedDomain computes the keylet of a PermissionedDomain entry.
func PermissionedDomain(account types.AccountID, sequence uint32) (Keylet, error) {
	var k Keylet
	return decode(host.PermissionedDomainKeylet(account[:], int32(sequence), k[:]), &k)
}

// Signers computes the keylet of a SignerList entry.
func Signers(account types.AccountID) (Keylet, error) {
	var k Keylet
	return decode(host.SignersKeylet(account[:], k[:]), &k)
}

// Ticket computes the keylet of a Ticket entry.
func Ticket(account types.AccountID, sequence uint32) (Keylet, error) {
	var k Keylet
	return decode(host.TicketKeylet(account[:], int32(sequence), k[:]), &k)
}

// Vault computes the keylet of a Vault entry.
func Vault(account types.AccountID, sequence uint32) (Keylet, error) {
	var k Keylet
	return decode(host.VaultKeylet(account[:], int32(sequence), k[:]), &k)
}

// Cache loads the ledger entry named by the keylet into a host slot and
// returns the slot number. Slot 0 asks the host to pick a free slot.
func (k *Keylet) Cache(slot int32) (int32, error) {
	code := host.CacheLedgerObj(k[:], slot)
	if code < 0 {
		return 0, host.ErrorFromCode(code)
	}
	return code, nil
}
