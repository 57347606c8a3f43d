//go:build !tinygo.wasm && !wasip1

package host

// Native realization of the ABI: every package-level function forwards to
// the active Bindings. The WASM realization in abi_wasm.go declares the same
// function set against the imported host module.

func GetLedgerSqn() int32                  { return active.GetLedgerSqn() }
func GetParentLedgerTime() int32           { return active.GetParentLedgerTime() }
func GetParentLedgerHash(out []byte) int32 { return active.GetParentLedgerHash(out) }
func GetBaseFee() int32                    { return active.GetBaseFee() }

func AmendmentEnabled(amendment []byte) int32 { return active.AmendmentEnabled(amendment) }

func CacheLedgerObj(keylet []byte, cacheNum int32) int32 {
	return active.CacheLedgerObj(keylet, cacheNum)
}

func GetTxField(field int32, out []byte) int32 { return active.GetTxField(field, out) }

func GetCurrentLedgerObjField(field int32, out []byte) int32 {
	return active.GetCurrentLedgerObjField(field, out)
}

func GetLedgerObjField(cacheNum, field int32, out []byte) int32 {
	return active.GetLedgerObjField(cacheNum, field, out)
}

func GetTxNestedField(locator, out []byte) int32 {
	return active.GetTxNestedField(locator, out)
}

func GetCurrentLedgerObjNestedField(locator, out []byte) int32 {
	return active.GetCurrentLedgerObjNestedField(locator, out)
}

func GetLedgerObjNestedField(cacheNum int32, locator, out []byte) int32 {
	return active.GetLedgerObjNestedField(cacheNum, locator, out)
}

func GetTxArrayLen(field int32) int32 { return active.GetTxArrayLen(field) }

func GetCurrentLedgerObjArrayLen(field int32) int32 {
	return active.GetCurrentLedgerObjArrayLen(field)
}

func GetLedgerObjArrayLen(cacheNum, field int32) int32 {
	return active.GetLedgerObjArrayLen(cacheNum, field)
}

func GetTxNestedArrayLen(locator []byte) int32 { return active.GetTxNestedArrayLen(locator) }

func GetCurrentLedgerObjNestedArrayLen(locator []byte) int32 {
	return active.GetCurrentLedgerObjNestedArrayLen(locator)
}

func GetLedgerObjNestedArrayLen(cacheNum int32, locator []byte) int32 {
	return active.GetLedgerObjNestedArrayLen(cacheNum, locator)
}

func UpdateData(data []byte) int32 { return active.UpdateData(data) }

func ComputeSha512Half(data, out []byte) int32 { return active.ComputeSha512Half(data, out) }

func CheckSig(message, signature, pubKey []byte) int32 {
	return active.CheckSig(message, signature, pubKey)
}

func AccountKeylet(account, out []byte) int32 { return active.AccountKeylet(account, out) }

func AmmKeylet(issue1, issue2, out []byte) int32 { return active.AmmKeylet(issue1, issue2, out) }

func CheckKeylet(account []byte, sequence int32, out []byte) int32 {
	return active.CheckKeylet(account, sequence, out)
}

func CredentialKeylet(subject, issuer, credentialType, out []byte) int32 {
	return active.CredentialKeylet(subject, issuer, credentialType, out)
}

func DelegateKeylet(account, authorize, out []byte) int32 {
	return active.DelegateKeylet(account, authorize, out)
}

func DepositPreauthKeylet(account, authorize, out []byte) int32 {
	return active.DepositPreauthKeylet(account, authorize, out)
}

func DidKeylet(account, out []byte) int32 { return active.DidKeylet(account, out) }

func EscrowKeylet(account []byte, sequence int32, out []byte) int32 {
	return active.EscrowKeylet(account, sequence, out)
}

func LineKeylet(account1, account2, currency, out []byte) int32 {
	return active.LineKeylet(account1, account2, currency, out)
}

func MptIssuanceKeylet(issuer []byte, sequence int32, out []byte) int32 {
	return active.MptIssuanceKeylet(issuer, sequence, out)
}

func MptokenKeylet(mptID, holder, out []byte) int32 {
	return active.MptokenKeylet(mptID, holder, out)
}

func NftOfferKeylet(account []byte, sequence int32, out []byte) int32 {
	return active.NftOfferKeylet(account, sequence, out)
}

func OfferKeylet(account []byte, sequence int32, out []byte) int32 {
	return active.OfferKeylet(account, sequence, out)
}

func OracleKeylet(account []byte, documentID int32, out []byte) int32 {
	return active.OracleKeylet(account, documentID, out)
}

func PaychanKeylet(account, destination []byte, sequence int32, out []byte) int32 {
	return active.PaychanKeylet(account, destination, sequence, out)
}

func PermissionedDomainKeylet(account []byte, sequence int32, out []byte) int32 {
	return active.PermissionedDomainKeylet(account, sequence, out)
}

func SignersKeylet(account, out []byte) int32 { return active.SignersKeylet(account, out) }

func TicketKeylet(account []byte, sequence int32, out []byte) int32 {
	return active.TicketKeylet(account, sequence, out)
}

func VaultKeylet(account []byte, sequence int32, out []byte) int32 {
	return active.VaultKeylet(account, sequence, out)
}

func GetNFT(account, nftID, out []byte) int32 { return active.GetNFT(account, nftID, out) }

func GetNFTIssuer(nftID, out []byte) int32 { return active.GetNFTIssuer(nftID, out) }

func GetNFTTaxon(nftID, out []byte) int32 { return active.GetNFTTaxon(nftID, out) }

func GetNFTFlags(nftID []byte) int32 { return active.GetNFTFlags(nftID) }

func GetNFTTransferFee(nftID []byte) int32 { return active.GetNFTTransferFee(nftID) }

func GetNFTSerial(nftID, out []byte) int32 { return active.GetNFTSerial(nftID, out) }

func FloatFromInt(value int64, out []byte, roundingMode int32) int32 {
	return active.FloatFromInt(value, out, roundingMode)
}

func FloatFromUint(value, out []byte, roundingMode int32) int32 {
	return active.FloatFromUint(value, out, roundingMode)
}

func FloatSet(exponent int32, mantissa int64, out []byte, roundingMode int32) int32 {
	return active.FloatSet(exponent, mantissa, out, roundingMode)
}

func FloatCompare(a, b []byte) int32 { return active.FloatCompare(a, b) }

func FloatAdd(a, b, out []byte, roundingMode int32) int32 {
	return active.FloatAdd(a, b, out, roundingMode)
}

func FloatSubtract(a, b, out []byte, roundingMode int32) int32 {
	return active.FloatSubtract(a, b, out, roundingMode)
}

func FloatMultiply(a, b, out []byte, roundingMode int32) int32 {
	return active.FloatMultiply(a, b, out, roundingMode)
}

func FloatDivide(a, b, out []byte, roundingMode int32) int32 {
	return active.FloatDivide(a, b, out, roundingMode)
}

func FloatPow(a []byte, n int32, out []byte, roundingMode int32) int32 {
	return active.FloatPow(a, n, out, roundingMode)
}

func FloatRoot(a []byte, n int32, out []byte, roundingMode int32) int32 {
	return active.FloatRoot(a, n, out, roundingMode)
}

func FloatLog(a, out []byte, roundingMode int32) int32 {
	return active.FloatLog(a, out, roundingMode)
}

func rawTrace(msg, data []byte, asHex int32) int32 { return active.Trace(msg, data, asHex) }

func rawTraceNum(msg []byte, number int64) int32 { return active.TraceNum(msg, number) }

func rawTraceAccount(msg, account []byte) int32 { return active.TraceAccount(msg, account) }

func rawTraceOpaqueFloat(msg, opaqueFloat []byte) int32 {
	return active.TraceOpaqueFloat(msg, opaqueFloat)
}

func rawTraceAmount(msg, amount []byte) int32 { return active.TraceAmount(msg, amount) }
