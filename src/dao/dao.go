package dao

import (
	"context"

	"NFTAuctionEngine/src/model"

	"github.com/zeromicro/go-zero/core/stores/kv"
	"gorm.io/gorm"
)

// Dao is the storage access layer. All methods run against d.DB, which is
// either the root connection or, via WithTx, the transaction of the engine
// operation currently executing.
type Dao struct {
	ctx     context.Context
	DB      *gorm.DB
	KvStore kv.Store
}

func New(ctx context.Context, db *gorm.DB, kvStore kv.Store) *Dao {
	return &Dao{
		ctx:     ctx,
		DB:      db,
		KvStore: kvStore,
	}
}

// WithTx returns a shallow copy of the dao bound to the given transaction.
func (d *Dao) WithTx(tx *gorm.DB) *Dao {
	return &Dao{
		ctx:     d.ctx,
		DB:      tx,
		KvStore: d.KvStore,
	}
}

// Migrate creates the engine tables. Used by deployments without managed
// schema and by the test harness.
func (d *Dao) Migrate() error {
	return d.DB.AutoMigrate(
		&model.Offer{},
		&model.Refund{},
		&model.Role{},
		&model.EngineState{},
		&model.Activity{},
		&model.Balance{},
		&model.Asset{},
	)
}
