package hostsim

import "github.com/xrpl-wasm/xrpl-wasm-go/sfield"

type fieldKind int

const (
	kindUInt16 fieldKind = iota
	kindUInt32
	kindUInt64
	kindHash128
	kindHash160
	kindHash192
	kindHash256
	kindAccount
	kindAmount
	kindBlob
	kindObject
	kindArray
	// kindVector256 is an array of bare Hash256 values rather than of
	// inner objects (CredentialIDs, Amendments).
	kindVector256
)

func (k fieldKind) width() int {
	switch k {
	case kindUInt16:
		return 2
	case kindUInt32:
		return 4
	case kindUInt64:
		return 8
	case kindHash128:
		return 16
	case kindHash160, kindAccount:
		return 20
	case kindHash192:
		return 24
	case kindHash256:
		return 32
	default:
		return 0
	}
}

func (k fieldKind) leaf() bool {
	return k != kindObject && k != kindArray && k != kindVector256
}

type fieldInfo struct {
	name string
	kind fieldKind
}

// fieldTable maps sfield ids to the fixture key and value shape. Fields the
// simulator does not know yield ErrInvalidField, the same answer rippled
// gives for an unrecognized field code.
var fieldTable = map[int32]fieldInfo{
	sfield.LedgerEntryType: {"LedgerEntryType", kindUInt16},
	sfield.TransactionType: {"TransactionType", kindUInt16},
	sfield.SignerWeight:    {"SignerWeight", kindUInt16},
	sfield.TransferFee:     {"TransferFee", kindUInt16},

	sfield.NetworkID:            {"NetworkID", kindUInt32},
	sfield.Flags:                {"Flags", kindUInt32},
	sfield.SourceTag:            {"SourceTag", kindUInt32},
	sfield.Sequence:             {"Sequence", kindUInt32},
	sfield.PreviousTxnLgrSeq:    {"PreviousTxnLgrSeq", kindUInt32},
	sfield.LedgerSequence:       {"LedgerSequence", kindUInt32},
	sfield.Expiration:           {"Expiration", kindUInt32},
	sfield.OwnerCount:           {"OwnerCount", kindUInt32},
	sfield.DestinationTag:       {"DestinationTag", kindUInt32},
	sfield.LastUpdateTime:       {"LastUpdateTime", kindUInt32},
	sfield.OfferSequence:        {"OfferSequence", kindUInt32},
	sfield.LastLedgerSequence:   {"LastLedgerSequence", kindUInt32},
	sfield.CancelAfter:          {"CancelAfter", kindUInt32},
	sfield.FinishAfter:          {"FinishAfter", kindUInt32},
	sfield.SettleDelay:          {"SettleDelay", kindUInt32},
	sfield.TicketSequence:       {"TicketSequence", kindUInt32},
	sfield.NFTokenTaxon:         {"NFTokenTaxon", kindUInt32},
	sfield.OracleDocumentID:     {"OracleDocumentID", kindUInt32},
	sfield.ComputationAllowance: {"ComputationAllowance", kindUInt32},

	sfield.IndexNext:       {"IndexNext", kindUInt64},
	sfield.IndexPrevious:   {"IndexPrevious", kindUInt64},
	sfield.BookNode:        {"BookNode", kindUInt64},
	sfield.OwnerNode:       {"OwnerNode", kindUInt64},
	sfield.BaseFee:         {"BaseFee", kindUInt64},
	sfield.ExchangeRate:    {"ExchangeRate", kindUInt64},
	sfield.LowNode:         {"LowNode", kindUInt64},
	sfield.HighNode:        {"HighNode", kindUInt64},
	sfield.DestinationNode: {"DestinationNode", kindUInt64},
	sfield.AssetPrice:      {"AssetPrice", kindUInt64},

	sfield.EmailHash: {"EmailHash", kindHash128},

	sfield.LedgerHash:    {"LedgerHash", kindHash256},
	sfield.ParentHash:    {"ParentHash", kindHash256},
	sfield.PreviousTxnID: {"PreviousTxnID", kindHash256},
	sfield.LedgerIndex:   {"LedgerIndex", kindHash256},
	sfield.WalletLocator: {"WalletLocator", kindHash256},
	sfield.RootIndex:     {"RootIndex", kindHash256},
	sfield.AccountTxnID:  {"AccountTxnID", kindHash256},
	sfield.NFTokenID:     {"NFTokenID", kindHash256},
	sfield.BookDirectory: {"BookDirectory", kindHash256},
	sfield.InvoiceID:     {"InvoiceID", kindHash256},
	sfield.Channel:       {"Channel", kindHash256},
	sfield.CheckID:       {"CheckID", kindHash256},
	sfield.DomainID:      {"DomainID", kindHash256},
	sfield.VaultID:       {"VaultID", kindHash256},

	sfield.Amount:      {"Amount", kindAmount},
	sfield.Balance:     {"Balance", kindAmount},
	sfield.LimitAmount: {"LimitAmount", kindAmount},
	sfield.TakerPays:   {"TakerPays", kindAmount},
	sfield.TakerGets:   {"TakerGets", kindAmount},
	sfield.Fee:         {"Fee", kindAmount},
	sfield.SendMax:     {"SendMax", kindAmount},
	sfield.DeliverMin:  {"DeliverMin", kindAmount},

	sfield.PublicKey:      {"PublicKey", kindBlob},
	sfield.MessageKey:     {"MessageKey", kindBlob},
	sfield.SigningPubKey:  {"SigningPubKey", kindBlob},
	sfield.TxnSignature:   {"TxnSignature", kindBlob},
	sfield.URI:            {"URI", kindBlob},
	sfield.Signature:      {"Signature", kindBlob},
	sfield.Domain:         {"Domain", kindBlob},
	sfield.MemoType:       {"MemoType", kindBlob},
	sfield.MemoData:       {"MemoData", kindBlob},
	sfield.MemoFormat:     {"MemoFormat", kindBlob},
	sfield.Fulfillment:    {"Fulfillment", kindBlob},
	sfield.Condition:      {"Condition", kindBlob},
	sfield.DIDDocument:    {"DIDDocument", kindBlob},
	sfield.Data:           {"Data", kindBlob},
	sfield.AssetClass:     {"AssetClass", kindBlob},
	sfield.Provider:       {"Provider", kindBlob},
	sfield.CredentialType: {"CredentialType", kindBlob},
	sfield.FinishFunction: {"FinishFunction", kindBlob},

	sfield.Account:     {"Account", kindAccount},
	sfield.Owner:       {"Owner", kindAccount},
	sfield.Destination: {"Destination", kindAccount},
	sfield.Issuer:      {"Issuer", kindAccount},
	sfield.Authorize:   {"Authorize", kindAccount},
	sfield.Unauthorize: {"Unauthorize", kindAccount},
	sfield.RegularKey:  {"RegularKey", kindAccount},
	sfield.Holder:      {"Holder", kindAccount},
	sfield.Delegate:    {"Delegate", kindAccount},
	sfield.Subject:     {"Subject", kindAccount},

	sfield.TakerPaysCurrency: {"TakerPaysCurrency", kindHash160},
	sfield.TakerPaysIssuer:   {"TakerPaysIssuer", kindHash160},
	sfield.TakerGetsCurrency: {"TakerGetsCurrency", kindHash160},
	sfield.TakerGetsIssuer:   {"TakerGetsIssuer", kindHash160},

	sfield.MPTokenIssuanceID: {"MPTokenIssuanceID", kindHash192},
	sfield.ShareMPTID:        {"ShareMPTID", kindHash192},

	sfield.Memo:        {"Memo", kindObject},
	sfield.SignerEntry: {"SignerEntry", kindObject},
	sfield.NFToken:     {"NFToken", kindObject},
	sfield.Signer:      {"Signer", kindObject},
	sfield.PriceData:   {"PriceData", kindObject},
	sfield.Credential:  {"Credential", kindObject},

	sfield.Signers:              {"Signers", kindArray},
	sfield.SignerEntries:        {"SignerEntries", kindArray},
	sfield.Memos:                {"Memos", kindArray},
	sfield.NFTokens:             {"NFTokens", kindArray},
	sfield.PriceDataSeries:      {"PriceDataSeries", kindArray},
	sfield.AuthorizeCredentials: {"AuthorizeCredentials", kindArray},
	sfield.AcceptedCredentials:  {"AcceptedCredentials", kindArray},
	sfield.CredentialIDs:        {"CredentialIDs", kindVector256},
}
