package dao

import (
	"context"

	"gorm.io/gorm"

	"github.com/public-awesome/marketplace-sub000/src/pkg/xkv"
)

// Dao bundles the database handle and the kv cache. All SQL lives in this
// package; services go through Dao instead of touching gorm directly.
type Dao struct {
	ctx context.Context

	DB      *gorm.DB
	KvStore *xkv.Store
}

func New(ctx context.Context, db *gorm.DB, kvStore *xkv.Store) *Dao {
	return &Dao{
		ctx:     ctx,
		DB:      db,
		KvStore: kvStore,
	}
}
