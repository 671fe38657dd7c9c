package svc

import (
	"context"

	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/kv"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"gorm.io/gorm"

	"github.com/public-awesome/marketplace-sub000/src/config"
	"github.com/public-awesome/marketplace-sub000/src/dao"
	"github.com/public-awesome/marketplace-sub000/src/pkg/gdb"
	"github.com/public-awesome/marketplace-sub000/src/pkg/xkv"
	"github.com/public-awesome/marketplace-sub000/src/pkg/xzap"
)

type ServerCtx struct {
	C       *config.Config
	DB      *gorm.DB
	Dao     *dao.Dao
	KvStore *xkv.Store
}

// NewServiceContext builds everything the HTTP service needs: logger,
// optional redis cache, database, schema migration and the seeded params
// row.
func NewServiceContext(c *config.Config) (*ServerCtx, error) {
	if _, err := xzap.SetUp(c.Log); err != nil {
		return nil, err
	}

	var store *xkv.Store
	if c.Kv != nil && len(c.Kv.Redis) > 0 {
		var kvConf kv.KvConf
		for _, con := range c.Kv.Redis {
			kvConf = append(kvConf, cache.NodeConf{
				RedisConf: redis.RedisConf{
					Host: con.Host,
					Type: con.Type,
					Pass: con.Pass,
				},
				Weight: 1,
			})
		}
		store = xkv.NewStore(kvConf)
	}

	db, err := gdb.NewDB(c.DB)
	if err != nil {
		return nil, err
	}
	if err := dao.Migrate(db); err != nil {
		return nil, err
	}
	if err := dao.EnsureParams(db, c.Market.Params()); err != nil {
		return nil, err
	}

	d := dao.New(context.Background(), db, store)

	serverCtx := NewServerCtx(
		WithDB(db),
		WithKv(store),
		WithDao(d),
	)
	serverCtx.C = c

	return serverCtx, nil
}
