package host

// Bindings is the native realization of the host ABI. Each method mirrors one
// imported host function, with pointer/length pairs expressed as byte slices.
// The active Bindings backs every package-level ABI function on non-WASM
// builds; swap it with SetBindings to run contracts against a simulator.
//
// All methods follow the host calling convention: a non-negative return is
// the value (scalar getters) or the number of bytes written (buffer
// getters), and a negative return is an error code from the closed set in
// codes.go.
type Bindings interface {
	// Ledger headers.
	GetLedgerSqn() int32
	GetParentLedgerTime() int32
	GetParentLedgerHash(out []byte) int32
	GetBaseFee() int32
	AmendmentEnabled(amendment []byte) int32

	// Slot cache.
	CacheLedgerObj(keylet []byte, cacheNum int32) int32

	// Field getters.
	GetTxField(field int32, out []byte) int32
	GetCurrentLedgerObjField(field int32, out []byte) int32
	GetLedgerObjField(cacheNum, field int32, out []byte) int32
	GetTxNestedField(locator, out []byte) int32
	GetCurrentLedgerObjNestedField(locator, out []byte) int32
	GetLedgerObjNestedField(cacheNum int32, locator, out []byte) int32

	// Array lengths.
	GetTxArrayLen(field int32) int32
	GetCurrentLedgerObjArrayLen(field int32) int32
	GetLedgerObjArrayLen(cacheNum, field int32) int32
	GetTxNestedArrayLen(locator []byte) int32
	GetCurrentLedgerObjNestedArrayLen(locator []byte) int32
	GetLedgerObjNestedArrayLen(cacheNum int32, locator []byte) int32

	// Mutation of the current ledger object.
	UpdateData(data []byte) int32

	// Crypto.
	ComputeSha512Half(data, out []byte) int32
	CheckSig(message, signature, pubKey []byte) int32

	// Keylets.
	AccountKeylet(account, out []byte) int32
	AmmKeylet(issue1, issue2, out []byte) int32
	CheckKeylet(account []byte, sequence int32, out []byte) int32
	CredentialKeylet(subject, issuer, credentialType, out []byte) int32
	DelegateKeylet(account, authorize, out []byte) int32
	DepositPreauthKeylet(account, authorize, out []byte) int32
	DidKeylet(account, out []byte) int32
	EscrowKeylet(account []byte, sequence int32, out []byte) int32
	LineKeylet(account1, account2, currency, out []byte) int32
	MptIssuanceKeylet(issuer []byte, sequence int32, out []byte) int32
	MptokenKeylet(mptID, holder, out []byte) int32
	NftOfferKeylet(account []byte, sequence int32, out []byte) int32
	OfferKeylet(account []byte, sequence int32, out []byte) int32
	OracleKeylet(account []byte, documentID int32, out []byte) int32
	PaychanKeylet(account, destination []byte, sequence int32, out []byte) int32
	PermissionedDomainKeylet(account []byte, sequence int32, out []byte) int32
	SignersKeylet(account, out []byte) int32
	TicketKeylet(account []byte, sequence int32, out []byte) int32
	VaultKeylet(account []byte, sequence int32, out []byte) int32

	// NFTs.
	GetNFT(account, nftID, out []byte) int32
	GetNFTIssuer(nftID, out []byte) int32
	GetNFTTaxon(nftID, out []byte) int32
	GetNFTFlags(nftID []byte) int32
	GetNFTTransferFee(nftID []byte) int32
	GetNFTSerial(nftID, out []byte) int32

	// Opaque float arithmetic.
	FloatFromInt(value int64, out []byte, roundingMode int32) int32
	FloatFromUint(value, out []byte, roundingMode int32) int32
	FloatSet(exponent int32, mantissa int64, out []byte, roundingMode int32) int32
	FloatCompare(a, b []byte) int32
	FloatAdd(a, b, out []byte, roundingMode int32) int32
	FloatSubtract(a, b, out []byte, roundingMode int32) int32
	FloatMultiply(a, b, out []byte, roundingMode int32) int32
	FloatDivide(a, b, out []byte, roundingMode int32) int32
	FloatPow(a []byte, n int32, out []byte, roundingMode int32) int32
	FloatRoot(a []byte, n int32, out []byte, roundingMode int32) int32
	FloatLog(a, out []byte, roundingMode int32) int32

	// Trace sinks.
	Trace(msg, data []byte, asHex int32) int32
	TraceNum(msg []byte, number int64) int32
	TraceAccount(msg, account []byte) int32
	TraceOpaqueFloat(msg, opaqueFloat []byte) int32
	TraceAmount(msg, amount []byte) int32
}

// Float rounding modes accepted by the float host functions.
const (
	RoundToNearest  int32 = 0
	RoundTowardZero int32 = 1
	RoundDownward   int32 = 2
	RoundUpward     int32 = 3
)
