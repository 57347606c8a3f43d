package hostsim

import (
	"crypto/ed25519"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/xrpl-wasm/xrpl-wasm-go/host"
	"github.com/xrpl-wasm/xrpl-wasm-go/types"
)

// slotCount is the number of usable cache slots. Slot 0 is the "pick any
// free slot" request, so usable slots are 1..slotCount.
const slotCount = 255

// Env implements host.Bindings over a Fixture. It is not safe for
// concurrent use; contracts execute on a single goroutine.
type Env struct {
	fix    *Fixture
	logger *zap.Logger
	slots  [slotCount + 1]Object
	traces []TraceEntry
}

// TraceEntry is one captured trace call.
type TraceEntry struct {
	Message string
	Data    []byte
	Number  int64
	HasNum  bool
}

// Option configures an Env.
type Option func(*Env)

// WithLogger routes trace output through the given logger in addition to
// capturing it.
func WithLogger(l *zap.Logger) Option {
	return func(e *Env) { e.logger = l }
}

// New builds an Env over a parsed fixture.
func New(fix *Fixture, opts ...Option) *Env {
	e := &Env{
		fix:    fix,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Traces returns the trace calls captured so far.
func (e *Env) Traces() []TraceEntry { return e.traces }

// UpdatedData returns the escrow contract data as last written by the
// contract, or the fixture value when never written.
func (e *Env) UpdatedData() []byte {
	if s, ok := e.fix.Escrow["Data"].(string); ok {
		if b, ok := hexBytes(s); ok {
			return b
		}
	}
	return nil
}

func fail(err host.Error) int32 { return err.Code() }

// Ledger headers.

func (e *Env) GetLedgerSqn() int32 {
	return int32(e.fix.Ledger.Sequence)
}

func (e *Env) GetParentLedgerTime() int32 {
	return int32(e.fix.Ledger.ParentCloseTime)
}

func (e *Env) GetParentLedgerHash(out []byte) int32 {
	h, ok := hexBytes(e.fix.Ledger.ParentHash)
	if !ok || len(h) != types.Hash256Size {
		return fail(host.ErrInternal)
	}
	if len(out) < types.Hash256Size {
		return fail(host.ErrBufferTooSmall)
	}
	copy(out, h)
	return types.Hash256Size
}

func (e *Env) GetBaseFee() int32 {
	return int32(e.fix.Ledger.BaseFee)
}

func (e *Env) AmendmentEnabled(amendment []byte) int32 {
	if len(amendment) != types.Hash256Size {
		return fail(host.ErrInvalidArgument)
	}
	want := hex.EncodeToString(amendment)
	for _, a := range e.fix.Ledger.Amendments {
		if a == want {
			return 1
		}
	}
	return 0
}

// Slot cache.

// CacheLedgerObj loads an entry into a slot. It accepts either a full
// 34-byte keylet or a bare 32-byte object index; the index form matches
// any entry whose keylet ends in those bytes.
func (e *Env) CacheLedgerObj(keylet []byte, cacheNum int32) int32 {
	if len(keylet) != 34 && len(keylet) != 32 {
		return fail(host.ErrInvalidArgument)
	}
	if cacheNum < 0 || cacheNum > slotCount {
		return fail(host.ErrSlotOutOfRange)
	}
	var obj Object
	if len(keylet) == 34 {
		obj = e.fix.Entries[hex.EncodeToString(keylet)]
	} else {
		index := hex.EncodeToString(keylet)
		for key, entry := range e.fix.Entries {
			if strings.HasSuffix(key, index) {
				obj = entry
				break
			}
		}
	}
	if obj == nil {
		return fail(host.ErrLedgerObjNotFound)
	}
	slot := cacheNum
	if slot == 0 {
		for i := int32(1); i <= slotCount; i++ {
			if e.slots[i] == nil {
				slot = i
				break
			}
		}
		if slot == 0 {
			return fail(host.ErrSlotsFull)
		}
	}
	e.slots[slot] = obj
	return slot
}

func (e *Env) slotObject(cacheNum int32) (Object, host.Error) {
	if cacheNum < 1 || cacheNum > slotCount {
		return nil, host.ErrSlotOutOfRange
	}
	obj := e.slots[cacheNum]
	if obj == nil {
		return nil, host.ErrEmptySlot
	}
	return obj, 0
}

// Field getters.

func (e *Env) GetTxField(field int32, out []byte) int32 {
	return readField(e.fix.Tx, field, out)
}

func (e *Env) GetCurrentLedgerObjField(field int32, out []byte) int32 {
	return readField(e.fix.Escrow, field, out)
}

func (e *Env) GetLedgerObjField(cacheNum, field int32, out []byte) int32 {
	obj, errc := e.slotObject(cacheNum)
	if errc != 0 {
		return fail(errc)
	}
	return readField(obj, field, out)
}

func (e *Env) GetTxNestedField(locator, out []byte) int32 {
	return readNested(e.fix.Tx, locator, out)
}

func (e *Env) GetCurrentLedgerObjNestedField(locator, out []byte) int32 {
	return readNested(e.fix.Escrow, locator, out)
}

func (e *Env) GetLedgerObjNestedField(cacheNum int32, locator, out []byte) int32 {
	obj, errc := e.slotObject(cacheNum)
	if errc != 0 {
		return fail(errc)
	}
	return readNested(obj, locator, out)
}

// Array lengths.

func (e *Env) GetTxArrayLen(field int32) int32 {
	return readArrayLen(e.fix.Tx, field)
}

func (e *Env) GetCurrentLedgerObjArrayLen(field int32) int32 {
	return readArrayLen(e.fix.Escrow, field)
}

func (e *Env) GetLedgerObjArrayLen(cacheNum, field int32) int32 {
	obj, errc := e.slotObject(cacheNum)
	if errc != 0 {
		return fail(errc)
	}
	return readArrayLen(obj, field)
}

func (e *Env) GetTxNestedArrayLen(locator []byte) int32 {
	return readNestedArrayLen(e.fix.Tx, locator)
}

func (e *Env) GetCurrentLedgerObjNestedArrayLen(locator []byte) int32 {
	return readNestedArrayLen(e.fix.Escrow, locator)
}

func (e *Env) GetLedgerObjNestedArrayLen(cacheNum int32, locator []byte) int32 {
	obj, errc := e.slotObject(cacheNum)
	if errc != 0 {
		return fail(errc)
	}
	return readNestedArrayLen(obj, locator)
}

// Mutation.

func (e *Env) UpdateData(data []byte) int32 {
	if len(data) > types.ContractDataSize {
		return fail(host.ErrDataFieldTooLarge)
	}
	e.fix.Escrow["Data"] = hex.EncodeToString(data)
	return int32(len(data))
}

// Crypto.

func (e *Env) ComputeSha512Half(data, out []byte) int32 {
	if len(out) < types.Hash256Size {
		return fail(host.ErrBufferTooSmall)
	}
	sum := sha512.Sum512(data)
	copy(out, sum[:types.Hash256Size])
	return types.Hash256Size
}

// CheckSig verifies ed25519 signatures, recognized by the 0xED key prefix.
// Other key types report an invalid signature.
func (e *Env) CheckSig(message, signature, pubKey []byte) int32 {
	if len(pubKey) != types.PublicKeySize || pubKey[0] != 0xED {
		return 0
	}
	if len(signature) != ed25519.SignatureSize {
		return 0
	}
	if ed25519.Verify(ed25519.PublicKey(pubKey[1:]), message, signature) {
		return 1
	}
	return 0
}

// Trace sinks.

func (e *Env) Trace(msg, data []byte, asHex int32) int32 {
	entry := TraceEntry{Message: string(msg)}
	if len(data) > 0 {
		entry.Data = append([]byte(nil), data...)
	}
	e.traces = append(e.traces, entry)
	if asHex != 0 || !isPrintable(data) {
		e.logger.Debug("trace", zap.String("msg", entry.Message), zap.String("data", hex.EncodeToString(data)))
	} else {
		e.logger.Debug("trace", zap.String("msg", entry.Message), zap.ByteString("data", data))
	}
	return int32(len(msg) + len(data))
}

func (e *Env) TraceNum(msg []byte, number int64) int32 {
	e.traces = append(e.traces, TraceEntry{Message: string(msg), Number: number, HasNum: true})
	e.logger.Debug("trace", zap.String("msg", string(msg)), zap.Int64("num", number))
	return int32(len(msg))
}

func (e *Env) TraceAccount(msg, account []byte) int32 {
	return e.Trace(msg, account, 1)
}

func (e *Env) TraceOpaqueFloat(msg, opaqueFloat []byte) int32 {
	if len(opaqueFloat) != opaqueFloatSize {
		return fail(host.ErrInvalidFloatInput)
	}
	f, errc := floatValue(opaqueFloat)
	if errc != 0 {
		return fail(errc)
	}
	return e.Trace(msg, []byte(fmt.Sprintf("%g", f)), 0)
}

func (e *Env) TraceAmount(msg, amount []byte) int32 {
	return e.Trace(msg, amount, 1)
}

func isPrintable(data []byte) bool {
	for _, b := range data {
		if b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}
