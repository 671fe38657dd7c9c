package ordermanager

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Order identifiers are hex keccak-256 digests of the tuple that defines
// uniqueness for the order kind. The derivation must stay stable for the
// lifetime of the store; a digest collision against a live record is treated
// as a fatal internal error, never overwritten.

func generateID(components ...[]byte) string {
	return common.Bytes2Hex(crypto.Keccak256(components...))
}

func u64be(v uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return buf[:]
}

// AskID is derived from (collection, token). At most one live ask can exist
// per asset.
func AskID(collection, tokenID string) string {
	return generateID([]byte(collection), []byte(tokenID))
}

// BidID folds in the call height and the shared nonce, so every submission
// gets a distinct identity even from the same creator on the same asset.
func BidID(collection, tokenID string, height, nonce uint64) string {
	return generateID([]byte(collection), []byte(tokenID), u64be(height), u64be(nonce))
}

func CollectionBidID(collection string, height, nonce uint64) string {
	return generateID([]byte(collection), u64be(height), u64be(nonce))
}
