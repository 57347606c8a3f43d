// Package sfield holds the serialization-field identifiers of the XRPL
// binary format. Each constant encodes (type code << 16) | field code, the
// form the host field getters expect.
//
// Object- and array-typed fields (Memo, Memos, …) have no direct getters;
// they are only legal inside a locator path, where an array slot must be
// followed by an index and an object slot by one of its member fields.
package sfield

// UInt16 fields (2 bytes).
const (
	LedgerEntryType int32 = 65537
	TransactionType int32 = 65538
	SignerWeight    int32 = 65539
	TransferFee     int32 = 65540
)

// UInt32 fields (4 bytes).
const (
	NetworkID            int32 = 131073
	Flags                int32 = 131074
	SourceTag            int32 = 131075
	Sequence             int32 = 131076
	PreviousTxnLgrSeq    int32 = 131077
	LedgerSequence       int32 = 131078
	CloseTime            int32 = 131079
	ParentCloseTime      int32 = 131080
	Expiration           int32 = 131082
	TransferRate         int32 = 131083
	OwnerCount           int32 = 131085
	DestinationTag       int32 = 131086
	LastUpdateTime       int32 = 131087
	OfferSequence        int32 = 131097
	LastLedgerSequence   int32 = 131099
	CancelAfter          int32 = 131108
	FinishAfter          int32 = 131109
	SettleDelay          int32 = 131111
	TicketSequence       int32 = 131113
	NFTokenTaxon         int32 = 131114
	OracleDocumentID     int32 = 131123
	ComputationAllowance int32 = 131129
)

// UInt64 fields (8 bytes).
const (
	IndexNext       int32 = 196609
	IndexPrevious   int32 = 196610
	BookNode        int32 = 196611
	OwnerNode       int32 = 196612
	BaseFee         int32 = 196613
	ExchangeRate    int32 = 196614
	LowNode         int32 = 196615
	HighNode        int32 = 196616
	DestinationNode int32 = 196617
	AssetPrice      int32 = 196631
)

// Hash128 fields (16 bytes).
const (
	EmailHash int32 = 262145
)

// Hash256 fields (32 bytes).
const (
	LedgerHash    int32 = 327681
	ParentHash    int32 = 327682
	PreviousTxnID int32 = 327685
	LedgerIndex   int32 = 327686
	WalletLocator int32 = 327687
	RootIndex     int32 = 327688
	AccountTxnID  int32 = 327689
	NFTokenID     int32 = 327690
	BookDirectory int32 = 327696
	InvoiceID     int32 = 327697
	Channel       int32 = 327702
	CheckID       int32 = 327704
	DomainID      int32 = 327714
	VaultID       int32 = 327715
)

// Amount fields (variable, up to 48 bytes).
const (
	Amount      int32 = 393217
	Balance     int32 = 393218
	LimitAmount int32 = 393219
	TakerPays   int32 = 393220
	TakerGets   int32 = 393221
	Fee         int32 = 393224
	SendMax     int32 = 393225
	DeliverMin  int32 = 393226
)

// Blob fields (variable length).
const (
	PublicKey      int32 = 458753
	MessageKey     int32 = 458754
	SigningPubKey  int32 = 458755
	TxnSignature   int32 = 458756
	URI            int32 = 458757
	Signature      int32 = 458758
	Domain         int32 = 458759
	MemoType       int32 = 458764
	MemoData       int32 = 458765
	MemoFormat     int32 = 458766
	Fulfillment    int32 = 458768
	Condition      int32 = 458769
	DIDDocument    int32 = 458778
	Data           int32 = 458779
	AssetClass     int32 = 458780
	Provider       int32 = 458781
	CredentialType int32 = 458783
	FinishFunction int32 = 458784
)

// AccountID fields (20 bytes).
const (
	Account     int32 = 524289
	Owner       int32 = 524290
	Destination int32 = 524291
	Issuer      int32 = 524292
	Authorize   int32 = 524293
	Unauthorize int32 = 524294
	RegularKey  int32 = 524296
	Holder      int32 = 524299
	Delegate    int32 = 524300
	Subject     int32 = 524312
)

// Object fields. Locator-only: no direct getter accepts these.
const (
	Memo        int32 = 917514
	SignerEntry int32 = 917515
	NFToken     int32 = 917516
	Signer      int32 = 917520
	PriceData   int32 = 917536
	Credential  int32 = 917537
)

// Array fields. Locator-only: no direct getter accepts these.
const (
	Signers              int32 = 983043
	SignerEntries        int32 = 983044
	Memos                int32 = 983049
	NFTokens             int32 = 983050
	PriceDataSeries      int32 = 983064
	AuthorizeCredentials int32 = 983066
	AcceptedCredentials  int32 = 983068
)

// Vector256 fields. Locator-only.
const (
	CredentialIDs int32 = 1245189
)

// Hash160 fields (20 bytes).
const (
	TakerPaysCurrency int32 = 1114113
	TakerPaysIssuer   int32 = 1114114
	TakerGetsCurrency int32 = 1114115
	TakerGetsIssuer   int32 = 1114116
)

// Hash192 fields (24 bytes).
const (
	MPTokenIssuanceID int32 = 1376257
	ShareMPTID        int32 = 1376258
)
