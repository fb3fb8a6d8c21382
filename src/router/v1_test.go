package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"NFTAuctionEngine/src/cache"
	"NFTAuctionEngine/src/config"
	"NFTAuctionEngine/src/custody"
	"NFTAuctionEngine/src/dao"
	"NFTAuctionEngine/src/engine"
	"NFTAuctionEngine/src/service/svc"
	"NFTAuctionEngine/src/wallet"

	evbus "github.com/asaskevich/EventBus"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testArtist  = "0xa11ce"
	testBidder  = "0xb0b"
	testBidder2 = "0xca201"
	testCharity = "0xc4a217"
)

type testClock struct {
	now int64
}

func (c *testClock) Now() int64 {
	return c.now
}

func newTestRouter(t *testing.T) (*gin.Engine, *testClock) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	ctx := context.Background()
	d := dao.New(ctx, db, nil)
	require.NoError(t, d.Migrate())

	custodyReg := custody.NewRegistry(d)
	fundsLedger := wallet.NewLedger(d)
	clk := &testClock{now: 1_000_000}
	eng := engine.New(db, d, custodyReg, fundsLedger, evbus.New(), clk, engine.Config{
		MaxFeeBps: 2000,
		Admins:    []string{testArtist},
	})
	require.NoError(t, eng.Init(ctx))

	require.NoError(t, custodyReg.Register(ctx, "0xc01", "7", testArtist, eng.Operator()))
	require.NoError(t, fundsLedger.Deposit(ctx, testBidder, decimal.NewFromInt(1_000_000)))
	require.NoError(t, fundsLedger.Deposit(ctx, testBidder2, decimal.NewFromInt(1_000_000)))

	serverCtx := svc.NewServerCtx(
		svc.WithDB(db),
		svc.WithDao(d),
		svc.WithCached(cache.NewCache(ctx, nil)),
		svc.WithEngine(eng),
	)
	serverCtx.C = &config.Config{Api: config.Api{MaxNum: 100}}
	serverCtx.Wallet = fundsLedger
	serverCtx.Custody = custodyReg

	return NewRouter(serverCtx), clk
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) envelope {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestOfferLifecycleOverHTTP(t *testing.T) {
	router, clk := newTestRouter(t)

	env := doJSON(t, router, http.MethodPost, "/api/v1/offers", gin.H{
		"caller":              testArtist,
		"asset_id":            "7",
		"collection_address":  "0xc01",
		"min_bid":             "100",
		"end_time":            clk.now + 60,
		"fee_basis_points":    500,
		"artist_address":      testArtist,
		"beneficiary_address": testCharity,
	})
	require.Equal(t, 200, env.Code, env.Msg)

	var offer struct {
		OfferID int64  `json:"offer_id"`
		State   string `json:"state"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &offer))
	assert.Equal(t, "active", offer.State)
	require.NotZero(t, offer.OfferID)

	bidsPath := fmt.Sprintf("/api/v1/offers/%d/bids", offer.OfferID)

	// below-minimum bid is a business error, not a transport one
	env = doJSON(t, router, http.MethodPost, bidsPath, gin.H{
		"bidder": testBidder,
		"amount": "50",
	})
	assert.Equal(t, 7000, env.Code)

	env = doJSON(t, router, http.MethodPost, bidsPath, gin.H{
		"bidder": testBidder,
		"amount": "200",
	})
	require.Equal(t, 200, env.Code, env.Msg)
	var bidResp struct {
		CurrentBidder    string `json:"current_bidder"`
		CurrentBidAmount string `json:"current_bid_amount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &bidResp))
	assert.Equal(t, testBidder, bidResp.CurrentBidder)
	assert.Equal(t, "200", bidResp.CurrentBidAmount)

	env = doJSON(t, router, http.MethodPost, bidsPath, gin.H{
		"bidder": testBidder2,
		"amount": "300",
	})
	require.Equal(t, 200, env.Code, env.Msg)

	// outbid stake shows up as owed refund
	env = doJSON(t, router, http.MethodGet,
		fmt.Sprintf("/api/v1/refunds/%s/%d", testBidder, offer.OfferID), nil)
	require.Equal(t, 200, env.Code, env.Msg)
	var refund struct {
		Amount string `json:"amount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &refund))
	assert.Equal(t, "200", refund.Amount)

	env = doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/v1/offers/%d/refund", offer.OfferID), gin.H{"caller": testBidder})
	require.Equal(t, 200, env.Code, env.Msg)

	// the listing keeps the zeroed entry as withdrawal history
	env = doJSON(t, router, http.MethodGet, "/api/v1/refunds/"+testBidder, nil)
	require.Equal(t, 200, env.Code, env.Msg)
	var refunds struct {
		Result []struct {
			Amount     string `json:"amount"`
			UpdateTime int64  `json:"update_time"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &refunds))
	require.Len(t, refunds.Result, 1)
	assert.Equal(t, "0", refunds.Result[0].Amount)
	assert.NotZero(t, refunds.Result[0].UpdateTime)

	// window over, anyone may close
	clk.now += 90
	env = doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/v1/offers/%d/close", offer.OfferID), gin.H{"caller": testBidder2})
	require.Equal(t, 200, env.Code, env.Msg)
	var closed struct {
		State         string `json:"state"`
		CurrentBidder string `json:"current_bidder"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &closed))
	assert.Equal(t, "closed", closed.State)
	assert.Equal(t, testBidder2, closed.CurrentBidder)

	env = doJSON(t, router, http.MethodGet, "/api/v1/offers?state=closed", nil)
	require.Equal(t, 200, env.Code, env.Msg)
	var list struct {
		Count int64 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, int64(1), list.Count)
}

func TestAdminEndpointsOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)

	env := doJSON(t, router, http.MethodPost, "/api/v1/admin/pause", gin.H{"caller": testBidder})
	assert.Equal(t, 7000, env.Code)

	env = doJSON(t, router, http.MethodPost, "/api/v1/admin/pause", gin.H{"caller": testArtist})
	require.Equal(t, 200, env.Code, env.Msg)

	env = doJSON(t, router, http.MethodPost, "/api/v1/admin/unpause", gin.H{"caller": testArtist})
	require.Equal(t, 200, env.Code, env.Msg)

	env = doJSON(t, router, http.MethodPost, "/api/v1/admin/max-fee", gin.H{
		"caller":      testArtist,
		"max_fee_bps": 1000,
	})
	require.Equal(t, 200, env.Code, env.Msg)

	env = doJSON(t, router, http.MethodPost, "/api/v1/admin/roles", gin.H{
		"caller":  testArtist,
		"role":    "artist",
		"address": testBidder,
	})
	require.Equal(t, 200, env.Code, env.Msg)

	env = doJSON(t, router, http.MethodDelete, "/api/v1/admin/roles", gin.H{
		"caller":  testArtist,
		"role":    "artist",
		"address": testBidder,
	})
	require.Equal(t, 200, env.Code, env.Msg)
}
