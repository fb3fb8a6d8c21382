package svc

import (
	"NFTAuctionEngine/src/cache"
	"NFTAuctionEngine/src/dao"
	"NFTAuctionEngine/src/engine"

	"github.com/zeromicro/go-zero/core/stores/kv"
	"gorm.io/gorm"
)

type CtxConfig struct {
	db      *gorm.DB
	dao     *dao.Dao
	KvStore kv.Store
	Cached  *cache.Cached
	Engine  *engine.Engine
}

type CtxOption func(conf *CtxConfig)

func NewServerCtx(options ...CtxOption) *ServerCtx {
	c := &CtxConfig{}
	for _, opt := range options {
		opt(c)
	}
	return &ServerCtx{
		DB:      c.db,
		Dao:     c.dao,
		KvStore: c.KvStore,
		Cached:  c.Cached,
		Engine:  c.Engine,
	}
}

func WithDB(db *gorm.DB) CtxOption {
	return func(conf *CtxConfig) {
		conf.db = db
	}
}

func WithDao(dao *dao.Dao) CtxOption {
	return func(conf *CtxConfig) {
		conf.dao = dao
	}
}

func WithKv(kv kv.Store) CtxOption {
	return func(conf *CtxConfig) {
		conf.KvStore = kv
	}
}

func WithCached(cached *cache.Cached) CtxOption {
	return func(conf *CtxConfig) {
		conf.Cached = cached
	}
}

func WithEngine(e *engine.Engine) CtxOption {
	return func(conf *CtxConfig) {
		conf.Engine = e
	}
}
