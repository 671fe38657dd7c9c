package xkv

import (
	"github.com/zeromicro/go-zero/core/stores/kv"
)

// Store wraps the go-zero kv store so callers do not depend on the go-zero
// package layout directly.
type Store struct {
	kv.Store
}

func NewStore(c kv.KvConf) *Store {
	return &Store{Store: kv.NewStore(c)}
}
