package cache

import (
	"context"

	"github.com/zeromicro/go-zero/core/stores/kv"
)

type Cached struct {
	ctx     context.Context
	KvStore kv.Store
}

func NewCache(ctx context.Context, kvStore kv.Store) *Cached {
	return &Cached{
		ctx:     ctx,
		KvStore: kvStore,
	}
}
