package svc

import (
	"context"

	"NFTAuctionEngine/src/cache"
	"NFTAuctionEngine/src/config"
	"NFTAuctionEngine/src/custody"
	"NFTAuctionEngine/src/dao"
	"NFTAuctionEngine/src/engine"
	"NFTAuctionEngine/src/pkg/gdb"
	"NFTAuctionEngine/src/pkg/xzap"
	"NFTAuctionEngine/src/wallet"

	evbus "github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	zerocache "github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/kv"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"gorm.io/gorm"
)

type ServerCtx struct {
	C       *config.Config
	DB      *gorm.DB
	Dao     *dao.Dao
	KvStore kv.Store
	Cached  *cache.Cached
	Engine  *engine.Engine
	Wallet  *wallet.Ledger
	Custody *custody.Registry
}

// NewServiceContext wires logging, storage, cache, the collaborator
// implementations and the engine itself.
func NewServiceContext(c *config.Config) (*ServerCtx, error) {
	_, err := xzap.SetUp(c.Log)
	if err != nil {
		return nil, err
	}

	var store kv.Store
	if c.Kv != nil && len(c.Kv.Redis) > 0 {
		var kvConf kv.KvConf
		for _, con := range c.Kv.Redis {
			kvConf = append(kvConf, zerocache.NodeConf{
				RedisConf: redis.RedisConf{
					Host: con.Host,
					Type: con.Type,
					Pass: con.Pass,
				},
				Weight: 1,
			})
		}
		store = kv.NewStore(kvConf)
	}

	db, err := gdb.NewDB(&c.DB)
	if err != nil {
		return nil, err
	}

	d := dao.New(context.Background(), db, store)
	if c.DB.AutoMigrate {
		if err := d.Migrate(); err != nil {
			return nil, errors.Wrap(err, "failed on migrate engine tables")
		}
	}

	custodyReg := custody.NewRegistry(d)
	fundsLedger := wallet.NewLedger(d)
	eng := engine.New(db, d, custodyReg, fundsLedger, evbus.New(), engine.SystemClock(), c.Auction)
	if err := eng.Init(context.Background()); err != nil {
		return nil, errors.Wrap(err, "failed on init engine")
	}

	serverCtx := NewServerCtx(
		WithDB(db),
		WithDao(d),
		WithKv(store),
		WithCached(cache.NewCache(context.Background(), store)),
		WithEngine(eng),
	)
	serverCtx.C = c
	serverCtx.Wallet = fundsLedger
	serverCtx.Custody = custodyReg
	return serverCtx, nil
}
