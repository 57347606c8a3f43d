//go:build tinygo.wasm || wasip1

package host

// WASM realization of the ABI: raw imports from the host module "host_lib"
// plus thin slice wrappers exposing the same function set as abi_native.go.
// Pointers are 32-bit offsets into the guest's own linear memory; the host
// reads and writes there directly.

//go:wasmimport host_lib get_ledger_sqn
func hostGetLedgerSqn() int32

//go:wasmimport host_lib get_parent_ledger_time
func hostGetParentLedgerTime() int32

//go:wasmimport host_lib get_parent_ledger_hash
func hostGetParentLedgerHash(outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib get_base_fee
func hostGetBaseFee() int32

//go:wasmimport host_lib amendment_enabled
func hostAmendmentEnabled(amendmentPtr *byte, amendmentLen uint32) int32

//go:wasmimport host_lib cache_ledger_obj
func hostCacheLedgerObj(keyletPtr *byte, keyletLen uint32, cacheNum int32) int32

//go:wasmimport host_lib get_tx_field
func hostGetTxField(field int32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib get_current_ledger_obj_field
func hostGetCurrentLedgerObjField(field int32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib get_ledger_obj_field
func hostGetLedgerObjField(cacheNum, field int32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib get_tx_nested_field
func hostGetTxNestedField(locPtr *byte, locLen uint32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib get_current_ledger_obj_nested_field
func hostGetCurrentLedgerObjNestedField(locPtr *byte, locLen uint32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib get_ledger_obj_nested_field
func hostGetLedgerObjNestedField(cacheNum int32, locPtr *byte, locLen uint32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib get_tx_array_len
func hostGetTxArrayLen(field int32) int32

//go:wasmimport host_lib get_current_ledger_obj_array_len
func hostGetCurrentLedgerObjArrayLen(field int32) int32

//go:wasmimport host_lib get_ledger_obj_array_len
func hostGetLedgerObjArrayLen(cacheNum, field int32) int32

//go:wasmimport host_lib get_tx_nested_array_len
func hostGetTxNestedArrayLen(locPtr *byte, locLen uint32) int32

//go:wasmimport host_lib get_current_ledger_obj_nested_array_len
func hostGetCurrentLedgerObjNestedArrayLen(locPtr *byte, locLen uint32) int32

//go:wasmimport host_lib get_ledger_obj_nested_array_len
func hostGetLedgerObjNestedArrayLen(cacheNum int32, locPtr *byte, locLen uint32) int32

//go:wasmimport host_lib update_data
func hostUpdateData(dataPtr *byte, dataLen uint32) int32

//go:wasmimport host_lib compute_sha512_half
func hostComputeSha512Half(dataPtr *byte, dataLen uint32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib check_sig
func hostCheckSig(msgPtr *byte, msgLen uint32, sigPtr *byte, sigLen uint32, keyPtr *byte, keyLen uint32) int32

//go:wasmimport host_lib account_keylet
func hostAccountKeylet(accountPtr *byte, accountLen uint32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib amm_keylet
func hostAmmKeylet(issue1Ptr *byte, issue1Len uint32, issue2Ptr *byte, issue2Len uint32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib check_keylet
func hostCheckKeylet(accountPtr *byte, accountLen uint32, sequence int32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib credential_keylet
func hostCredentialKeylet(subjectPtr *byte, subjectLen uint32, issuerPtr *byte, issuerLen uint32, typePtr *byte, typeLen uint32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib delegate_keylet
func hostDelegateKeylet(accountPtr *byte, accountLen uint32, authPtr *byte, authLen uint32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib deposit_preauth_keylet
func hostDepositPreauthKeylet(accountPtr *byte, accountLen uint32, authPtr *byte, authLen uint32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib did_keylet
func hostDidKeylet(accountPtr *byte, accountLen uint32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib escrow_keylet
func hostEscrowKeylet(accountPtr *byte, accountLen uint32, sequence int32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib line_keylet
func hostLineKeylet(a1Ptr *byte, a1Len uint32, a2Ptr *byte, a2Len uint32, curPtr *byte, curLen uint32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib mpt_issuance_keylet
func hostMptIssuanceKeylet(issuerPtr *byte, issuerLen uint32, sequence int32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib mptoken_keylet
func hostMptokenKeylet(mptPtr *byte, mptLen uint32, holderPtr *byte, holderLen uint32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib nft_offer_keylet
func hostNftOfferKeylet(accountPtr *byte, accountLen uint32, sequence int32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib offer_keylet
func hostOfferKeylet(accountPtr *byte, accountLen uint32, sequence int32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib oracle_keylet
func hostOracleKeylet(accountPtr *byte, accountLen uint32, documentID int32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib paychan_keylet
func hostPaychanKeylet(accountPtr *byte, accountLen uint32, destPtr *byte, destLen uint32, sequence int32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib permissioned_domain_keylet
func hostPermissionedDomainKeylet(accountPtr *byte, accountLen uint32, sequence int32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib signers_keylet
func hostSignersKeylet(accountPtr *byte, accountLen uint32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib ticket_keylet
func hostTicketKeylet(accountPtr *byte, accountLen uint32, sequence int32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib vault_keylet
func hostVaultKeylet(accountPtr *byte, accountLen uint32, sequence int32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib get_nft
func hostGetNFT(accountPtr *byte, accountLen uint32, nftPtr *byte, nftLen uint32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib get_nft_issuer
func hostGetNFTIssuer(nftPtr *byte, nftLen uint32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib get_nft_taxon
func hostGetNFTTaxon(nftPtr *byte, nftLen uint32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib get_nft_flags
func hostGetNFTFlags(nftPtr *byte, nftLen uint32) int32

//go:wasmimport host_lib get_nft_transfer_fee
func hostGetNFTTransferFee(nftPtr *byte, nftLen uint32) int32

//go:wasmimport host_lib get_nft_serial
func hostGetNFTSerial(nftPtr *byte, nftLen uint32, outPtr *byte, outLen uint32) int32

//go:wasmimport host_lib float_from_int
func hostFloatFromInt(value int64, outPtr *byte, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_from_uint
func hostFloatFromUint(valuePtr *byte, valueLen uint32, outPtr *byte, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_set
func hostFloatSet(exponent int32, mantissa int64, outPtr *byte, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_compare
func hostFloatCompare(aPtr *byte, aLen uint32, bPtr *byte, bLen uint32) int32

//go:wasmimport host_lib float_add
func hostFloatAdd(aPtr *byte, aLen uint32, bPtr *byte, bLen uint32, outPtr *byte, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_subtract
func hostFloatSubtract(aPtr *byte, aLen uint32, bPtr *byte, bLen uint32, outPtr *byte, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_multiply
func hostFloatMultiply(aPtr *byte, aLen uint32, bPtr *byte, bLen uint32, outPtr *byte, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_divide
func hostFloatDivide(aPtr *byte, aLen uint32, bPtr *byte, bLen uint32, outPtr *byte, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_pow
func hostFloatPow(aPtr *byte, aLen uint32, n int32, outPtr *byte, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_root
func hostFloatRoot(aPtr *byte, aLen uint32, n int32, outPtr *byte, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_log
func hostFloatLog(aPtr *byte, aLen uint32, outPtr *byte, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib trace
func hostTrace(msgPtr *byte, msgLen uint32, dataPtr *byte, dataLen uint32, asHex int32) int32

//go:wasmimport host_lib trace_num
func hostTraceNum(msgPtr *byte, msgLen uint32, number int64) int32

//go:wasmimport host_lib trace_account
func hostTraceAccount(msgPtr *byte, msgLen uint32, accountPtr *byte, accountLen uint32) int32

//go:wasmimport host_lib trace_opaque_float
func hostTraceOpaqueFloat(msgPtr *byte, msgLen uint32, floatPtr *byte, floatLen uint32) int32

//go:wasmimport host_lib trace_amount
func hostTraceAmount(msgPtr *byte, msgLen uint32, amountPtr *byte, amountLen uint32) int32

// ptr returns a pointer to the first byte of b, or nil for an empty slice.
// The host treats a (nil, 0) pair as an empty buffer.
func ptr(b []byte) *byte {
	if len(b) == 0 {
		return nil
	}
	return &b[0]
}

func blen(b []byte) uint32 { return uint32(len(b)) }

func GetLedgerSqn() int32        { return hostGetLedgerSqn() }
func GetParentLedgerTime() int32 { return hostGetParentLedgerTime() }

func GetParentLedgerHash(out []byte) int32 {
	return hostGetParentLedgerHash(ptr(out), blen(out))
}

func GetBaseFee() int32 { return hostGetBaseFee() }

func AmendmentEnabled(amendment []byte) int32 {
	return hostAmendmentEnabled(ptr(amendment), blen(amendment))
}

func CacheLedgerObj(keylet []byte, cacheNum int32) int32 {
	return hostCacheLedgerObj(ptr(keylet), blen(keylet), cacheNum)
}

func GetTxField(field int32, out []byte) int32 {
	return hostGetTxField(field, ptr(out), blen(out))
}

func GetCurrentLedgerObjField(field int32, out []byte) int32 {
	return hostGetCurrentLedgerObjField(field, ptr(out), blen(out))
}

func GetLedgerObjField(cacheNum, field int32, out []byte) int32 {
	return hostGetLedgerObjField(cacheNum, field, ptr(out), blen(out))
}

func GetTxNestedField(locator, out []byte) int32 {
	return hostGetTxNestedField(ptr(locator), blen(locator), ptr(out), blen(out))
}

func GetCurrentLedgerObjNestedField(locator, out []byte) int32 {
	return hostGetCurrentLedgerObjNestedField(ptr(locator), blen(locator), ptr(out), blen(out))
}

func GetLedgerObjNestedField(cacheNum int32, locator, out []byte) int32 {
	return hostGetLedgerObjNestedField(cacheNum, ptr(locator), blen(locator), ptr(out), blen(out))
}

func GetTxArrayLen(field int32) int32 { return hostGetTxArrayLen(field) }

func GetCurrentLedgerObjArrayLen(field int32) int32 {
	return hostGetCurrentLedgerObjArrayLen(field)
}

func GetLedgerObjArrayLen(cacheNum, field int32) int32 {
	return hostGetLedgerObjArrayLen(cacheNum, field)
}

func GetTxNestedArrayLen(locator []byte) int32 {
	return hostGetTxNestedArrayLen(ptr(locator), blen(locator))
}

func GetCurrentLedgerObjNestedArrayLen(locator []byte) int32 {
	return hostGetCurrentLedgerObjNestedArrayLen(ptr(locator), blen(locator))
}

func GetLedgerObjNestedArrayLen(cacheNum int32, locator []byte) int32 {
	return hostGetLedgerObjNestedArrayLen(cacheNum, ptr(locator), blen(locator))
}

func UpdateData(data []byte) int32 { return hostUpdateData(ptr(data), blen(data)) }

func ComputeSha512Half(data, out []byte) int32 {
	return hostComputeSha512Half(ptr(data), blen(data), ptr(out), blen(out))
}

func CheckSig(message, signature, pubKey []byte) int32 {
	return hostCheckSig(ptr(message), blen(message), ptr(signature), blen(signature), ptr(pubKey), blen(pubKey))
}

func AccountKeylet(account, out []byte) int32 {
	return hostAccountKeylet(ptr(account), blen(account), ptr(out), blen(out))
}

func AmmKeylet(issue1, issue2, out []byte) int32 {
	return hostAmmKeylet(ptr(issue1), blen(issue1), ptr(issue2), blen(issue2), ptr(out), blen(out))
}

func CheckKeylet(account []byte, sequence int32, out []byte) int32 {
	return hostCheckKeylet(ptr(account), blen(account), sequence, ptr(out), blen(out))
}

func CredentialKeylet(subject, issuer, credentialType, out []byte) int32 {
	return hostCredentialKeylet(ptr(subject), blen(subject), ptr(issuer), blen(issuer), ptr(credentialType), blen(credentialType), ptr(out), blen(out))
}

func DelegateKeylet(account, authorize, out []byte) int32 {
	return hostDelegateKeylet(ptr(account), blen(account), ptr(authorize), blen(authorize), ptr(out), blen(out))
}

func DepositPreauthKeylet(account, authorize, out []byte) int32 {
	return hostDepositPreauthKeylet(ptr(account), blen(account), ptr(authorize), blen(authorize), ptr(out), blen(out))
}

func DidKeylet(account, out []byte) int32 {
	return hostDidKeylet(ptr(account), blen(account), ptr(out), blen(out))
}

func EscrowKeylet(account []byte, sequence int32, out []byte) int32 {
	return hostEscrowKeylet(ptr(account), blen(account), sequence, ptr(out), blen(out))
}

func LineKeylet(account1, account2, currency, out []byte) int32 {
	return hostLineKeylet(ptr(account1), blen(account1), ptr(account2), blen(account2), ptr(currency), blen(currency), ptr(out), blen(out))
}

func MptIssuanceKeylet(issuer []byte, sequence int32, out []byte) int32 {
	return hostMptIssuanceKeylet(ptr(issuer), blen(issuer), sequence, ptr(out), blen(out))
}

func MptokenKeylet(mptID, holder, out []byte) int32 {
	return hostMptokenKeylet(ptr(mptID), blen(mptID), ptr(holder), blen(holder), ptr(out), blen(out))
}

func NftOfferKeylet(account []byte, sequence int32, out []byte) int32 {
	return hostNftOfferKeylet(ptr(account), blen(account), sequence, ptr(out), blen(out))
}

func OfferKeylet(account []byte, sequence int32, out []byte) int32 {
	return hostOfferKeylet(ptr(account), blen(account), sequence, ptr(out), blen(out))
}

func OracleKeylet(account []byte, documentID int32, out []byte) int32 {
	return hostOracleKeylet(ptr(account), blen(account), documentID, ptr(out), blen(out))
}

func PaychanKeylet(account, destination []byte, sequence int32, out []byte) int32 {
	return hostPaychanKeylet(ptr(account), blen(account), ptr(destination), blen(destination), sequence, ptr(out), blen(out))
}

func PermissionedDomainKeylet(account []byte, sequence int32, out []byte) int32 {
	return hostPermissionedDomainKeylet(ptr(account), blen(account), sequence, ptr(out), blen(out))
}

func SignersKeylet(account, out []byte) int32 {
	return hostSignersKeylet(ptr(account), blen(account), ptr(out), blen(out))
}

func TicketKeylet(account []byte, sequence int32, out []byte) int32 {
	return hostTicketKeylet(ptr(account), blen(account), sequence, ptr(out), blen(out))
}

func VaultKeylet(account []byte, sequence int32, out []byte) int32 {
	return hostVaultKeylet(ptr(account), blen(account), sequence, ptr(out), blen(out))
}

func GetNFT(account, nftID, out []byte) int32 {
	return hostGetNFT(ptr(account), blen(account), ptr(nftID), blen(nftID), ptr(out), blen(out))
}

func GetNFTIssuer(nftID, out []byte) int32 {
	return hostGetNFTIssuer(ptr(nftID), blen(nftID), ptr(out), blen(out))
}

func GetNFTTaxon(nftID, out []byte) int32 {
	return hostGetNFTTaxon(ptr(nftID), blen(nftID), ptr(out), blen(out))
}

func GetNFTFlags(nftID []byte) int32 { return hostGetNFTFlags(ptr(nftID), blen(nftID)) }

func GetNFTTransferFee(nftID []byte) int32 {
	return hostGetNFTTransferFee(ptr(nftID), blen(nftID))
}

func GetNFTSerial(nftID, out []byte) int32 {
	return hostGetNFTSerial(ptr(nftID), blen(nftID), ptr(out), blen(out))
}

func FloatFromInt(value int64, out []byte, roundingMode int32) int32 {
	return hostFloatFromInt(value, ptr(out), blen(out), roundingMode)
}

func FloatFromUint(value, out []byte, roundingMode int32) int32 {
	return hostFloatFromUint(ptr(value), blen(value), ptr(out), blen(out), roundingMode)
}

func FloatSet(exponent int32, mantissa int64, out []byte, roundingMode int32) int32 {
	return hostFloatSet(exponent, mantissa, ptr(out), blen(out), roundingMode)
}

func FloatCompare(a, b []byte) int32 {
	return hostFloatCompare(ptr(a), blen(a), ptr(b), blen(b))
}

func FloatAdd(a, b, out []byte, roundingMode int32) int32 {
	return hostFloatAdd(ptr(a), blen(a), ptr(b), blen(b), ptr(out), blen(out), roundingMode)
}

func FloatSubtract(a, b, out []byte, roundingMode int32) int32 {
	return hostFloatSubtract(ptr(a), blen(a), ptr(b), blen(b), ptr(out), blen(out), roundingMode)
}

func FloatMultiply(a, b, out []byte, roundingMode int32) int32 {
	return hostFloatMultiply(ptr(a), blen(a), ptr(b), blen(b), ptr(out), blen(out), roundingMode)
}

func FloatDivide(a, b, out []byte, roundingMode int32) int32 {
	return hostFloatDivide(ptr(a), blen(a), ptr(b), blen(b), ptr(out), blen(out), roundingMode)
}

func FloatPow(a []byte, n int32, out []byte, roundingMode int32) int32 {
	return hostFloatPow(ptr(a), blen(a), n, ptr(out), blen(out), roundingMode)
}

func FloatRoot(a []byte, n int32, out []byte, roundingMode int32) int32 {
	return hostFloatRoot(ptr(a), blen(a), n, ptr(out), blen(out), roundingMode)
}

func FloatLog(a, out []byte, roundingMode int32) int32 {
	return hostFloatLog(ptr(a), blen(a), ptr(out), blen(out), roundingMode)
}

func rawTrace(msg, data []byte, asHex int32) int32 {
	return hostTrace(ptr(msg), blen(msg), ptr(data), blen(data), asHex)
}

func rawTraceNum(msg []byte, number int64) int32 {
	return hostTraceNum(ptr(msg), blen(msg), number)
}

func rawTraceAccount(msg, account []byte) int32 {
	return hostTraceAccount(ptr(msg), blen(msg), ptr(account), blen(account))
}

func rawTraceOpaqueFloat(msg, opaqueFloat []byte) int32 {
	return hostTraceOpaqueFloat(ptr(msg), blen(msg), ptr(opaqueFloat), blen(opaqueFloat))
}

func rawTraceAmount(msg, amount []byte) int32 {
	return hostTraceAmount(ptr(msg), blen(msg), ptr(amount), blen(amount))
}
