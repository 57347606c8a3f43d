//go:build !tinygo.wasm && !wasip1

package host

// StubBindings is the default native Bindings. Every buffer getter reports
// its output buffer length as the result code, which is exactly the
// "success" shape fixed-width accessors expect, so contract code compiles
// and round-trips under plain `go test` without a host. It is not a host
// simulator: tests that need realistic field values should install a
// hostsim environment instead.
type StubBindings struct{}

var active Bindings = StubBindings{}

// SetBindings installs b as the ABI implementation used by all package-level
// functions on native builds and returns the previous one. Tests typically
// defer a restore:
//
//	prev := host.SetBindings(env)
//	defer host.SetBindings(prev)
func SetBindings(b Bindings) Bindings {
	prev := active
	active = b
	return prev
}

// ActiveBindings returns the currently installed native Bindings.
func ActiveBindings() Bindings { return active }

func (StubBindings) GetLedgerSqn() int32                 { return 0 }
func (StubBindings) GetParentLedgerTime() int32          { return 0 }
func (StubBindings) GetParentLedgerHash(out []byte) int32 { return int32(len(out)) }
func (StubBindings) GetBaseFee() int32                   { return 0 }
func (StubBindings) AmendmentEnabled(amendment []byte) int32 { return 0 }

func (StubBindings) CacheLedgerObj(keylet []byte, cacheNum int32) int32 { return cacheNum }

func (StubBindings) GetTxField(field int32, out []byte) int32 { return int32(len(out)) }
func (StubBindings) GetCurrentLedgerObjField(field int32, out []byte) int32 {
	return int32(len(out))
}
func (StubBindings) GetLedgerObjField(cacheNum, field int32, out []byte) int32 {
	return int32(len(out))
}
func (StubBindings) GetTxNestedField(locator, out []byte) int32 { return int32(len(out)) }
func (StubBindings) GetCurrentLedgerObjNestedField(locator, out []byte) int32 {
	return int32(len(out))
}
func (StubBindings) GetLedgerObjNestedField(cacheNum int32, locator, out []byte) int32 {
	return int32(len(out))
}

func (StubBindings) GetTxArrayLen(field int32) int32                 { return 0 }
func (StubBindings) GetCurrentLedgerObjArrayLen(field int32) int32   { return 0 }
func (StubBindings) GetLedgerObjArrayLen(cacheNum, field int32) int32 { return 0 }
func (StubBindings) GetTxNestedArrayLen(locator []byte) int32        { return 0 }
func (StubBindings) GetCurrentLedgerObjNestedArrayLen(locator []byte) int32 { return 0 }
func (StubBindings) GetLedgerObjNestedArrayLen(cacheNum int32, locator []byte) int32 {
	return 0
}

func (StubBindings) UpdateData(data []byte) int32 { return int32(len(data)) }

func (StubBindings) ComputeSha512Half(data, out []byte) int32 { return int32(len(out)) }
func (StubBindings) CheckSig(message, signature, pubKey []byte) int32 { return 1 }

func (StubBindings) AccountKeylet(account, out []byte) int32 { return int32(len(out)) }
func (StubBindings) AmmKeylet(issue1, issue2, out []byte) int32 { return int32(len(out)) }
func (StubBindings) CheckKeylet(account []byte, sequence int32, out []byte) int32 {
	return int32(len(out))
}
func (StubBindings) CredentialKeylet(subject, issuer, credentialType, out []byte) int32 {
	return int32(len(out))
}
func (StubBindings) DelegateKeylet(account, authorize, out []byte) int32 {
	return int32(len(out))
}
func (StubBindings) DepositPreauthKeylet(account, authorize, out []byte) int32 {
	return int32(len(out))
}
func (StubBindings) DidKeylet(account, out []byte) int32 { return int32(len(out)) }
func (StubBindings) EscrowKeylet(account []byte, sequence int32, out []byte) int32 {
	return int32(len(out))
}
func (StubBindings) LineKeylet(account1, account2, currency, out []byte) int32 {
	return int32(len(out))
}
func (StubBindings) MptIssuanceKeylet(issuer []byte, sequence int32, out []byte) int32 {
	return int32(len(out))
}
func (StubBindings) MptokenKeylet(mptID, holder, out []byte) int32 { return int32(len(out)) }
func (StubBindings) NftOfferKeylet(account []byte, sequence int32, out []byte) int32 {
	return int32(len(out))
}
func (StubBindings) OfferKeylet(account []byte, sequence int32, out []byte) int32 {
	return int32(len(out))
}
func (StubBindings) OracleKeylet(account []byte, documentID int32, out []byte) int32 {
	return int32(len(out))
}
func (StubBindings) PaychanKeylet(account, destination []byte, sequence int32, out []byte) int32 {
	return int32(len(out))
}
func (StubBindings) PermissionedDomainKeylet(account []byte, sequence int32, out []byte) int32 {
	return int32(len(out))
}
func (StubBindings) SignersKeylet(account, out []byte) int32 { return int32(len(out)) }
func (StubBindings) TicketKeylet(account []byte, sequence int32, out []byte) int32 {
	return int32(len(out))
}
func (StubBindings) VaultKeylet(account []byte, sequence int32, out []byte) int32 {
	return int32(len(out))
}

func (StubBindings) GetNFT(account, nftID, out []byte) int32 { return int32(len(out)) }
func (StubBindings) GetNFTIssuer(nftID, out []byte) int32    { return int32(len(out)) }
func (StubBindings) GetNFTTaxon(nftID, out []byte) int32     { return int32(len(out)) }
func (StubBindings) GetNFTFlags(nftID []byte) int32          { return 0 }
func (StubBindings) GetNFTTransferFee(nftID []byte) int32    { return 0 }
func (StubBindings) GetNFTSerial(nftID, out []byte) int32    { return int32(len(out)) }

func (StubBindings) FloatFromInt(value int64, out []byte, roundingMode int32) int32 {
	return int32(len(out))
}
func (StubBindings) FloatFromUint(value, out []byte, roundingMode int32) int32 {
	return int32(len(out))
}
func (StubBindings) FloatSet(exponent int32, mantissa int64, out []byte, roundingMode int32) int32 {
	return int32(len(out))
}
func (StubBindings) FloatCompare(a, b []byte) int32 { return 0 }
func (StubBindings) FloatAdd(a, b, out []byte, roundingMode int32) int32 {
	return int32(len(out))
}
func (StubBindings) FloatSubtract(a, b, out []byte, roundingMode int32) int32 {
	return int32(len(out))
}
func (StubBindings) FloatMultiply(a, b, out []byte, roundingMode int32) int32 {
	return int32(len(out))
}
func (StubBindings) FloatDivide(a, b, out []byte, roundingMode int32) int32 {
	return int32(len(out))
}
func (StubBindings) FloatPow(a []byte, n int32, out []byte, roundingMode int32) int32 {
	return int32(len(out))
}
func (StubBindings) FloatRoot(a []byte, n int32, out []byte, roundingMode int32) int32 {
	return int32(len(out))
}
func (StubBindings) FloatLog(a, out []byte, roundingMode int32) int32 {
	return int32(len(out))
}

func (StubBindings) Trace(msg, data []byte, asHex int32) int32 { return 0 }
func (StubBindings) TraceNum(msg []byte, number int64) int32   { return 0 }
func (StubBindings) TraceAccount(msg, account []byte) int32    { return 0 }
func (StubBindings) TraceOpaqueFloat(msg, opaqueFloat []byte) int32 { return 0 }
func (StubBindings) TraceAmount(msg, amount []byte) int32      { return 0 }
