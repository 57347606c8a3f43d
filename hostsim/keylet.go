package hostsim

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/xrpl-wasm/xrpl-wasm-go/host"
	"github.com/xrpl-wasm/xrpl-wasm-go/types"
)

// Ledger namespace bytes, the first input to every entry index hash.
const (
	spaceAccount            = 'a'
	spaceAmm                = 'A'
	spaceCheck              = 'C'
	spaceCredential         = 'D'
	spaceDelegate           = 'E'
	spaceDepositPreauth     = 'p'
	spaceDid                = 'I'
	spaceEscrow             = 'u'
	spaceLine               = 'r'
	spaceMptIssuance        = '~'
	spaceMptoken            = 't'
	spaceNftOffer           = 'q'
	spaceOffer              = 'o'
	spaceOracle             = 'R'
	spacePaychan            = 'x'
	spacePermissionedDomain = 'm'
	spaceSigners            = 'S'
	spaceTicket             = 'T'
	spaceVault              = 'V'
)

// Entry type codes, the 2-byte keylet prefix.
const (
	entryAccountRoot        uint16 = 0x0061
	entryAmm                uint16 = 0x0079
	entryCheck              uint16 = 0x0043
	entryCredential         uint16 = 0x0081
	entryDelegate           uint16 = 0x0083
	entryDepositPreauth     uint16 = 0x0070
	entryDid                uint16 = 0x0049
	entryEscrow             uint16 = 0x0075
	entryLine               uint16 = 0x0072
	entryMptIssuance        uint16 = 0x007e
	entryMptoken            uint16 = 0x007f
	entryNftOffer           uint16 = 0x0037
	entryOffer              uint16 = 0x006f
	entryOracle             uint16 = 0x0080
	entryPaychan            uint16 = 0x0078
	entryPermissionedDomain uint16 = 0x0082
	entrySigners            uint16 = 0x0053
	entryTicket             uint16 = 0x0054
	entryVault              uint16 = 0x0084
)

// writeKeylet derives a 34-byte keylet: the big-endian entry type followed
// by sha512-half over the namespace byte and the keying material.
func writeKeylet(out []byte, entryType uint16, space byte, parts ...[]byte) int32 {
	if len(out) < 34 {
		return fail(host.ErrBufferTooSmall)
	}
	h := sha512.New()
	h.Write([]byte{space})
	for _, p := range parts {
		h.Write(p)
	}
	sum := h.Sum(nil)
	binary.BigEndian.PutUint16(out, entryType)
	copy(out[2:34], sum[:32])
	return 34
}

func seqBytes(sequence int32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(sequence))
	return b[:]
}

func checkAccount(account []byte) bool {
	return len(account) == types.AccountIDSize
}

func (e *Env) AccountKeylet(account, out []byte) int32 {
	if !checkAccount(account) {
		return fail(host.ErrInvalidAccount)
	}
	return writeKeylet(out, entryAccountRoot, spaceAccount, account)
}

func (e *Env) AmmKeylet(issue1, issue2, out []byte) int32 {
	if len(issue1) == 0 || len(issue2) == 0 {
		return fail(host.ErrInvalidArgument)
	}
	return writeKeylet(out, entryAmm, spaceAmm, issue1, issue2)
}

func (e *Env) CheckKeylet(account []byte, sequence int32, out []byte) int32 {
	if !checkAccount(account) {
		return fail(host.ErrInvalidAccount)
	}
	return writeKeylet(out, entryCheck, spaceCheck, account, seqBytes(sequence))
}

func (e *Env) CredentialKeylet(subject, issuer, credentialType, out []byte) int32 {
	if !checkAccount(subject) || !checkAccount(issuer) {
		return fail(host.ErrInvalidAccount)
	}
	if len(credentialType) == 0 {
		return fail(host.ErrInvalidArgument)
	}
	return writeKeylet(out, entryCredential, spaceCredential, subject, issuer, credentialType)
}

func (e *Env) DelegateKeylet(account, authorize, out []byte) int32 {
	if !checkAccount(account) || !checkAccount(authorize) {
		return fail(host.ErrInvalidAccount)
	}
	return writeKeylet(out, entryDelegate, spaceDelegate, account, authorize)
}

func (e *Env) DepositPreauthKeylet(account, authorize, out []byte) int32 {
	if !checkAccount(account) || !checkAccount(authorize) {
		return fail(host.ErrInvalidAccount)
	}
	return writeKeylet(out, entryDepositPreauth, spaceDepositPreauth, account, authorize)
}

func (e *Env) DidKeylet(account, out []byte) int32 {
	if !checkAccount(account) {
		return fail(host.ErrInvalidAccount)
	}
	return writeKeylet(out, entryDid, spaceDid, account)
}

func (e *Env) EscrowKeylet(account []byte, sequence int32, out []byte) int32 {
	if !checkAccount(account) {
		return fail(host.ErrInvalidAccount)
	}
	return writeKeylet(out, entryEscrow, spaceEscrow, account, seqBytes(sequence))
}

func (e *Env) LineKeylet(account1, account2, currency, out []byte) int32 {
	if !checkAccount(account1) || !checkAccount(account2) {
		return fail(host.ErrInvalidAccount)
	}
	if len(currency) != types.Hash160Size {
		return fail(host.ErrInvalidArgument)
	}
	// RippleState entries key the two accounts in canonical order.
	lo, hi := account1, account2
	for i := range lo {
		if lo[i] != hi[i] {
			if lo[i] > hi[i] {
				lo, hi = hi, lo
			}
			break
		}
	}
	return writeKeylet(out, entryLine, spaceLine, lo, hi, currency)
}

func (e *Env) MptIssuanceKeylet(issuer []byte, sequence int32, out []byte) int32 {
	if !checkAccount(issuer) {
		return fail(host.ErrInvalidAccount)
	}
	return writeKeylet(out, entryMptIssuance, spaceMptIssuance, issuer, seqBytes(sequence))
}

func (e *Env) MptokenKeylet(mptID, holder, out []byte) int32 {
	if len(mptID) != types.Hash192Size {
		return fail(host.ErrInvalidArgument)
	}
	if !checkAccount(holder) {
		return fail(host.ErrInvalidAccount)
	}
	return writeKeylet(out, entryMptoken, spaceMptoken, mptID, holder)
}

func (e *Env) NftOfferKeylet(account []byte, sequence int32, out []byte) int32 {
	if !checkAccount(account) {
		return fail(host.ErrInvalidAccount)
	}
	return writeKeylet(out, entryNftOffer, spaceNftOffer, account, seqBytes(sequence))
}

func (e *Env) OfferKeylet(account []byte, sequence int32, out []byte) int32 {
	if !checkAccount(account) {
		return fail(host.ErrInvalidAccount)
	}
	return writeKeylet(out, entryOffer, spaceOffer, account, seqBytes(sequence))
}

func (e *Env) OracleKeylet(account []byte, documentID int32, out []byte) int32 {
	if !checkAccount(account) {
		return fail(host.ErrInvalidAccount)
	}
	return writeKeylet(out, entryOracle, spaceOracle, account, seqBytes(documentID))
}

func (e *Env) PaychanKeylet(account, destination []byte, sequence int32, out []byte) int32 {
	if !checkAccount(account) || !checkAccount(destination) {
		return fail(host.ErrInvalidAccount)
	}
	return writeKeylet(out, entryPaychan, spacePaychan, account, destination, seqBytes(sequence))
}

func (e *Env) PermissionedDomainKeylet(account []byte, sequence int32, out []byte) int32 {
	if !checkAccount(account) {
		return fail(host.ErrInvalidAccount)
	}
	return writeKeylet(out, entryPermissionedDomain, spacePermissionedDomain, account, seqBytes(sequence))
}

func (e *Env) SignersKeylet(account, out []byte) int32 {
	if !checkAccount(account) {
		return fail(host.ErrInvalidAccount)
	}
	return writeKeylet(out, entrySigners, spaceSigners, account)
}

func (e *Env) TicketKeylet(account []byte, sequence int32, out []byte) int32 {
	if !checkAccount(account) {
		return fail(host.ErrInvalidAccount)
	}
	return writeKeylet(out, entryTicket, spaceTicket, account, seqBytes(sequence))
}

func (e *Env) VaultKeylet(account []byte, sequence int32, out []byte) int32 {
	if !checkAccount(account) {
		return fail(host.ErrInvalidAccount)
	}
	return writeKeylet(out, entryVault, spaceVault, account, seqBytes(sequence))
}
