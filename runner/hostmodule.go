package runner

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"

	"github.com/xrpl-wasm/xrpl-wasm-go/errors"
	"github.com/xrpl-wasm/xrpl-wasm-go/host"
	"github.com/xrpl-wasm/xrpl-wasm-go/hostsim"
)

// hostFuncNames is the full host_lib export surface, used for upfront
// missing-import detection before instantiation.
var hostFuncNames = func() map[string]bool {
	m := make(map[string]bool)
	for _, d := range hostDefs(nil) {
		m[d.name] = true
	}
	return m
}()

func importProvided(module, name string) bool {
	switch module {
	case "host_lib":
		return hostFuncNames[name]
	case "wasi_snapshot_preview1":
		return true
	default:
		return false
	}
}

func registerWASIStubs(ctx context.Context, rt wazero.Runtime) error {
	if _, err := wasi_snapshot_preview1.NewBuilder(rt).Instantiate(ctx); err != nil {
		return errors.Registration(errors.PhaseLink, "wasi_snapshot_preview1", "", err)
	}
	return nil
}

// ret packs a signed host result code into the single i32 result slot.
func ret(code int32) uint64 { return uint64(uint32(code)) }

// oob is the result for any guest pointer/length pair outside linear memory.
var oob = ret(host.ErrPointerOutOfBounds.Code())

// span reads the (ptr, len) pair at stack[i] as a view into guest memory.
// The view is writable, so out buffers need no copy back.
func span(mod api.Module, stack []uint64, i int) ([]byte, bool) {
	n := uint32(stack[i+1])
	if n == 0 {
		return nil, true
	}
	return mod.Memory().Read(uint32(stack[i]), n)
}

// Adapters from host calling shapes to wazero's stack convention. Every
// host_lib function returns one i32.

func fn0(f func() int32) api.GoModuleFunc {
	return func(_ context.Context, _ api.Module, stack []uint64) {
		stack[0] = ret(f())
	}
}

func buf1(f func(a []byte) int32) api.GoModuleFunc {
	return func(_ context.Context, mod api.Module, stack []uint64) {
		a, ok := span(mod, stack, 0)
		if !ok {
			stack[0] = oob
			return
		}
		stack[0] = ret(f(a))
	}
}

func buf2(f func(a, b []byte) int32) api.GoModuleFunc {
	return func(_ context.Context, mod api.Module, stack []uint64) {
		a, ok1 := span(mod, stack, 0)
		b, ok2 := span(mod, stack, 2)
		if !ok1 || !ok2 {
			stack[0] = oob
			return
		}
		stack[0] = ret(f(a, b))
	}
}

func buf3(f func(a, b, c []byte) int32) api.GoModuleFunc {
	return func(_ context.Context, mod api.Module, stack []uint64) {
		a, ok1 := span(mod, stack, 0)
		b, ok2 := span(mod, stack, 2)
		c, ok3 := span(mod, stack, 4)
		if !ok1 || !ok2 || !ok3 {
			stack[0] = oob
			return
		}
		stack[0] = ret(f(a, b, c))
	}
}

func buf4(f func(a, b, c, d []byte) int32) api.GoModuleFunc {
	return func(_ context.Context, mod api.Module, stack []uint64) {
		a, ok1 := span(mod, stack, 0)
		b, ok2 := span(mod, stack, 2)
		c, ok3 := span(mod, stack, 4)
		d, ok4 := span(mod, stack, 6)
		if !ok1 || !ok2 || !ok3 || !ok4 {
			stack[0] = oob
			return
		}
		stack[0] = ret(f(a, b, c, d))
	}
}

func int1(f func(v int32) int32) api.GoModuleFunc {
	return func(_ context.Context, _ api.Module, stack []uint64) {
		stack[0] = ret(f(int32(uint32(stack[0]))))
	}
}

func int2(f func(a, b int32) int32) api.GoModuleFunc {
	return func(_ context.Context, _ api.Module, stack []uint64) {
		stack[0] = ret(f(int32(uint32(stack[0])), int32(uint32(stack[1]))))
	}
}

func bufInt(f func(a []byte, v int32) int32) api.GoModuleFunc {
	return func(_ context.Context, mod api.Module, stack []uint64) {
		a, ok := span(mod, stack, 0)
		if !ok {
			stack[0] = oob
			return
		}
		stack[0] = ret(f(a, int32(uint32(stack[2]))))
	}
}

func intBuf(f func(v int32, a []byte) int32) api.GoModuleFunc {
	return func(_ context.Context, mod api.Module, stack []uint64) {
		a, ok := span(mod, stack, 1)
		if !ok {
			stack[0] = oob
			return
		}
		stack[0] = ret(f(int32(uint32(stack[0])), a))
	}
}

func int2Buf(f func(a, b int32, out []byte) int32) api.GoModuleFunc {
	return func(_ context.Context, mod api.Module, stack []uint64) {
		out, ok := span(mod, stack, 2)
		if !ok {
			stack[0] = oob
			return
		}
		stack[0] = ret(f(int32(uint32(stack[0])), int32(uint32(stack[1])), out))
	}
}

func intBuf2(f func(v int32, a, b []byte) int32) api.GoModuleFunc {
	return func(_ context.Context, mod api.Module, stack []uint64) {
		a, ok1 := span(mod, stack, 1)
		b, ok2 := span(mod, stack, 3)
		if !ok1 || !ok2 {
			stack[0] = oob
			return
		}
		stack[0] = ret(f(int32(uint32(stack[0])), a, b))
	}
}

func bufIntBuf(f func(a []byte, v int32, out []byte) int32) api.GoModuleFunc {
	return func(_ context.Context, mod api.Module, stack []uint64) {
		a, ok1 := span(mod, stack, 0)
		out, ok2 := span(mod, stack, 3)
		if !ok1 || !ok2 {
			stack[0] = oob
			return
		}
		stack[0] = ret(f(a, int32(uint32(stack[2])), out))
	}
}

func buf2IntBuf(f func(a, b []byte, v int32, out []byte) int32) api.GoModuleFunc {
	return func(_ context.Context, mod api.Module, stack []uint64) {
		a, ok1 := span(mod, stack, 0)
		b, ok2 := span(mod, stack, 2)
		out, ok3 := span(mod, stack, 5)
		if !ok1 || !ok2 || !ok3 {
			stack[0] = oob
			return
		}
		stack[0] = ret(f(a, b, int32(uint32(stack[4])), out))
	}
}

func buf2Int(f func(a, b []byte, v int32) int32) api.GoModuleFunc {
	return func(_ context.Context, mod api.Module, stack []uint64) {
		a, ok1 := span(mod, stack, 0)
		b, ok2 := span(mod, stack, 2)
		if !ok1 || !ok2 {
			stack[0] = oob
			return
		}
		stack[0] = ret(f(a, b, int32(uint32(stack[4]))))
	}
}

func buf3Int(f func(a, b, c []byte, v int32) int32) api.GoModuleFunc {
	return func(_ context.Context, mod api.Module, stack []uint64) {
		a, ok1 := span(mod, stack, 0)
		b, ok2 := span(mod, stack, 2)
		c, ok3 := span(mod, stack, 4)
		if !ok1 || !ok2 || !ok3 {
			stack[0] = oob
			return
		}
		stack[0] = ret(f(a, b, c, int32(uint32(stack[6]))))
	}
}

func bufIntBufInt(f func(a []byte, n int32, out []byte, mode int32) int32) api.GoModuleFunc {
	return func(_ context.Context, mod api.Module, stack []uint64) {
		a, ok1 := span(mod, stack, 0)
		out, ok2 := span(mod, stack, 3)
		if !ok1 || !ok2 {
			stack[0] = oob
			return
		}
		stack[0] = ret(f(a, int32(uint32(stack[2])), out, int32(uint32(stack[5]))))
	}
}

func i64BufInt(f func(v int64, out []byte, mode int32) int32) api.GoModuleFunc {
	return func(_ context.Context, mod api.Module, stack []uint64) {
		out, ok := span(mod, stack, 1)
		if !ok {
			stack[0] = oob
			return
		}
		stack[0] = ret(f(int64(stack[0]), out, int32(uint32(stack[3]))))
	}
}

func intI64BufInt(f func(e int32, m int64, out []byte, mode int32) int32) api.GoModuleFunc {
	return func(_ context.Context, mod api.Module, stack []uint64) {
		out, ok := span(mod, stack, 2)
		if !ok {
			stack[0] = oob
			return
		}
		stack[0] = ret(f(int32(uint32(stack[0])), int64(stack[1]), out, int32(uint32(stack[4]))))
	}
}

func bufI64(f func(a []byte, v int64) int32) api.GoModuleFunc {
	return func(_ context.Context, mod api.Module, stack []uint64) {
		a, ok := span(mod, stack, 0)
		if !ok {
			stack[0] = oob
			return
		}
		stack[0] = ret(f(a, int64(stack[2])))
	}
}

type hostDef struct {
	name   string
	params []api.ValueType
	fn     api.GoModuleFunc
}

const (
	i32 = api.ValueTypeI32
	i64 = api.ValueTypeI64
)

func vt(ts ...api.ValueType) []api.ValueType { return ts }

// hostDefs lists every host_lib export with its wasm signature. The fn
// closures only capture env, so a nil env is fine when the table is used
// for name lookup alone.
func hostDefs(env *hostsim.Env) []hostDef {
	return []hostDef{
		{"get_ledger_sqn", vt(), fn0(env.GetLedgerSqn)},
		{"get_parent_ledger_time", vt(), fn0(env.GetParentLedgerTime)},
		{"get_parent_ledger_hash", vt(i32, i32), buf1(env.GetParentLedgerHash)},
		{"get_base_fee", vt(), fn0(env.GetBaseFee)},
		{"amendment_enabled", vt(i32, i32), buf1(env.AmendmentEnabled)},

		{"cache_ledger_obj", vt(i32, i32, i32), bufInt(env.CacheLedgerObj)},

		{"get_tx_field", vt(i32, i32, i32), intBuf(env.GetTxField)},
		{"get_current_ledger_obj_field", vt(i32, i32, i32), intBuf(env.GetCurrentLedgerObjField)},
		{"get_ledger_obj_field", vt(i32, i32, i32, i32), int2Buf(env.GetLedgerObjField)},
		{"get_tx_nested_field", vt(i32, i32, i32, i32), buf2(env.GetTxNestedField)},
		{"get_current_ledger_obj_nested_field", vt(i32, i32, i32, i32), buf2(env.GetCurrentLedgerObjNestedField)},
		{"get_ledger_obj_nested_field", vt(i32, i32, i32, i32, i32), intBuf2(env.GetLedgerObjNestedField)},

		{"get_tx_array_len", vt(i32), int1(env.GetTxArrayLen)},
		{"get_current_ledger_obj_array_len", vt(i32), int1(env.GetCurrentLedgerObjArrayLen)},
		{"get_ledger_obj_array_len", vt(i32, i32), int2(env.GetLedgerObjArrayLen)},
		{"get_tx_nested_array_len", vt(i32, i32), buf1(env.GetTxNestedArrayLen)},
		{"get_current_ledger_obj_nested_array_len", vt(i32, i32), buf1(env.GetCurrentLedgerObjNestedArrayLen)},
		{"get_ledger_obj_nested_array_len", vt(i32, i32, i32), intBuf(env.GetLedgerObjNestedArrayLen)},

		{"update_data", vt(i32, i32), buf1(env.UpdateData)},
		{"compute_sha512_half", vt(i32, i32, i32, i32), buf2(env.ComputeSha512Half)},
		{"check_sig", vt(i32, i32, i32, i32, i32, i32), buf3(env.CheckSig)},

		{"account_keylet", vt(i32, i32, i32, i32), buf2(env.AccountKeylet)},
		{"amm_keylet", vt(i32, i32, i32, i32, i32, i32), buf3(env.AmmKeylet)},
		{"check_keylet", vt(i32, i32, i32, i32, i32), bufIntBuf(env.CheckKeylet)},
		{"credential_keylet", vt(i32, i32, i32, i32, i32, i32, i32, i32), buf4(env.CredentialKeylet)},
		{"delegate_keylet", vt(i32, i32, i32, i32, i32, i32), buf3(env.DelegateKeylet)},
		{"deposit_preauth_keylet", vt(i32, i32, i32, i32, i32, i32), buf3(env.DepositPreauthKeylet)},
		{"did_keylet", vt(i32, i32, i32, i32), buf2(env.DidKeylet)},
		{"escrow_keylet", vt(i32, i32, i32, i32, i32), bufIntBuf(env.EscrowKeylet)},
		{"line_keylet", vt(i32, i32, i32, i32, i32, i32, i32, i32), buf4(env.LineKeylet)},
		{"mpt_issuance_keylet", vt(i32, i32, i32, i32, i32), bufIntBuf(env.MptIssuanceKeylet)},
		{"mptoken_keylet", vt(i32, i32, i32, i32, i32, i32), buf3(env.MptokenKeylet)},
		{"nft_offer_keylet", vt(i32, i32, i32, i32, i32), bufIntBuf(env.NftOfferKeylet)},
		{"offer_keylet", vt(i32, i32, i32, i32, i32), bufIntBuf(env.OfferKeylet)},
		{"oracle_keylet", vt(i32, i32, i32, i32, i32), bufIntBuf(env.OracleKeylet)},
		{"paychan_keylet", vt(i32, i32, i32, i32, i32, i32, i32), buf2IntBuf(env.PaychanKeylet)},
		{"permissioned_domain_keylet", vt(i32, i32, i32, i32, i32), bufIntBuf(env.PermissionedDomainKeylet)},
		{"signers_keylet", vt(i32, i32, i32, i32), buf2(env.SignersKeylet)},
		{"ticket_keylet", vt(i32, i32, i32, i32, i32), bufIntBuf(env.TicketKeylet)},
		{"vault_keylet", vt(i32, i32, i32, i32, i32), bufIntBuf(env.VaultKeylet)},

		{"get_nft", vt(i32, i32, i32, i32, i32, i32), buf3(env.GetNFT)},
		{"get_nft_issuer", vt(i32, i32, i32, i32), buf2(env.GetNFTIssuer)},
		{"get_nft_taxon", vt(i32, i32, i32, i32), buf2(env.GetNFTTaxon)},
		{"get_nft_flags", vt(i32, i32), buf1(env.GetNFTFlags)},
		{"get_nft_transfer_fee", vt(i32, i32), buf1(env.GetNFTTransferFee)},
		{"get_nft_serial", vt(i32, i32, i32, i32), buf2(env.GetNFTSerial)},

		{"float_from_int", vt(i64, i32, i32, i32), i64BufInt(env.FloatFromInt)},
		{"float_from_uint", vt(i32, i32, i32, i32, i32), buf2Int(env.FloatFromUint)},
		{"float_set", vt(i32, i64, i32, i32, i32), intI64BufInt(env.FloatSet)},
		{"float_compare", vt(i32, i32, i32, i32), buf2(env.FloatCompare)},
		{"float_add", vt(i32, i32, i32, i32, i32, i32, i32), buf3Int(env.FloatAdd)},
		{"float_subtract", vt(i32, i32, i32, i32, i32, i32, i32), buf3Int(env.FloatSubtract)},
		{"float_multiply", vt(i32, i32, i32, i32, i32, i32, i32), buf3Int(env.FloatMultiply)},
		{"float_divide", vt(i32, i32, i32, i32, i32, i32, i32), buf3Int(env.FloatDivide)},
		{"float_pow", vt(i32, i32, i32, i32, i32, i32), bufIntBufInt(env.FloatPow)},
		{"float_root", vt(i32, i32, i32, i32, i32, i32), bufIntBufInt(env.FloatRoot)},
		{"float_log", vt(i32, i32, i32, i32, i32), buf2Int(env.FloatLog)},

		{"trace", vt(i32, i32, i32, i32, i32), buf2Int(env.Trace)},
		{"trace_num", vt(i32, i32, i64), bufI64(env.TraceNum)},
		{"trace_account", vt(i32, i32, i32, i32), buf2(env.TraceAccount)},
		{"trace_opaque_float", vt(i32, i32, i32, i32), buf2(env.TraceOpaqueFloat)},
		{"trace_amount", vt(i32, i32, i32, i32), buf2(env.TraceAmount)},
	}
}

// registerHostModule instantiates the host_lib module over env.
func registerHostModule(ctx context.Context, rt wazero.Runtime, env *hostsim.Env) error {
	b := rt.NewHostModuleBuilder("host_lib")
	for _, d := range hostDefs(env) {
		b.NewFunctionBuilder().
			WithGoModuleFunction(d.fn, d.params, vt(i32)).
			Export(d.name)
	}
	if _, err := b.Instantiate(ctx); err != nil {
		return errors.Registration(errors.PhaseLink, "host_lib", "", err)
	}
	return nil
}
