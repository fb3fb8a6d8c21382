package dao

import (
	"context"
	"testing"

	"NFTAuctionEngine/src/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDao(t *testing.T) *Dao {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	d := New(context.Background(), db, nil)
	require.NoError(t, d.Migrate())
	return d
}

func TestQueryActivitiesPagination(t *testing.T) {
	d := newTestDao(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		require.NoError(t, d.AddActivity(ctx, 1, "7", model.ActivityBidAccepted, "0xb0b", decimal.NewFromInt(int64(100+i))))
	}
	require.NoError(t, d.AddActivity(ctx, 2, "8", model.ActivityOfferCreated, "0xa11ce", decimal.Zero))

	page1, total, err := d.QueryActivities(ctx, 1, nil, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.Len(t, page1, 3)

	// the total must not depend on the requested page
	page2, total, err := d.QueryActivities(ctx, 1, nil, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.Len(t, page2, 3)

	page3, total, err := d.QueryActivities(ctx, 1, nil, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.Len(t, page3, 1)

	// event-type filter applies to both rows and count
	_, total, err = d.QueryActivities(ctx, 0, []string{model.ActivityOfferCreated}, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}
