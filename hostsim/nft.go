package hostsim

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/xrpl-wasm/xrpl-wasm-go/host"
	"github.com/xrpl-wasm/xrpl-wasm-go/types"
)

// NFT getters. An NFTokenID packs its metadata into the 32-byte identifier:
// flags (BE u16), transfer fee (BE u16), issuer (20 bytes), taxon (BE u32)
// and serial (BE u32). URIs come from the fixture's nfts map keyed by the
// hex identifier.

func validNFTID(id []byte) bool { return len(id) == types.Hash256Size }

func (e *Env) GetNFT(account, id, out []byte) int32 {
	if !checkAccount(account) {
		return fail(host.ErrInvalidAccount)
	}
	if !validNFTID(id) {
		return fail(host.ErrInvalidArgument)
	}
	uri, ok := e.fix.NFTs[hex.EncodeToString(id)]
	if !ok {
		return fail(host.ErrFieldNotFound)
	}
	b, ok := hexBytes(uri)
	if !ok {
		return fail(host.ErrDecoding)
	}
	if len(out) < len(b) {
		return fail(host.ErrBufferTooSmall)
	}
	copy(out, b)
	return int32(len(b))
}

func (e *Env) GetNFTIssuer(id, out []byte) int32 {
	if !validNFTID(id) {
		return fail(host.ErrInvalidArgument)
	}
	if len(out) < types.AccountIDSize {
		return fail(host.ErrBufferTooSmall)
	}
	copy(out, id[4:24])
	return types.AccountIDSize
}

func (e *Env) GetNFTTaxon(id, out []byte) int32 {
	if !validNFTID(id) {
		return fail(host.ErrInvalidArgument)
	}
	if len(out) < 4 {
		return fail(host.ErrBufferTooSmall)
	}
	binary.LittleEndian.PutUint32(out, binary.BigEndian.Uint32(id[24:28]))
	return 4
}

func (e *Env) GetNFTFlags(id []byte) int32 {
	if !validNFTID(id) {
		return fail(host.ErrInvalidArgument)
	}
	return int32(binary.BigEndian.Uint16(id[0:2]))
}

func (e *Env) GetNFTTransferFee(id []byte) int32 {
	if !validNFTID(id) {
		return fail(host.ErrInvalidArgument)
	}
	return int32(binary.BigEndian.Uint16(id[2:4]))
}

func (e *Env) GetNFTSerial(id, out []byte) int32 {
	if !validNFTID(id) {
		return fail(host.ErrInvalidArgument)
	}
	if len(out) < 4 {
		return fail(host.ErrBufferTooSmall)
	}
	binary.LittleEndian.PutUint32(out, binary.BigEndian.Uint32(id[28:32]))
	return 4
}
