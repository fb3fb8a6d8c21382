package engine

import (
	"context"
	"testing"

	"NFTAuctionEngine/src/custody"
	"NFTAuctionEngine/src/dao"
	"NFTAuctionEngine/src/model"
	"NFTAuctionEngine/src/wallet"

	evbus "github.com/asaskevich/EventBus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	adminAddr   = "0xadmin"
	artistAddr  = "0xartist"
	charityAddr = "0xcharity"
	bidder1     = "0xbidder1"
	bidder2     = "0xbidder2"

	collectionAddr = "0xcollection"
	tokenID        = "1"
	operatorName   = "auction_engine"
)

type fakeClock struct {
	now int64
}

func (c *fakeClock) Now() int64 {
	return c.now
}

func (c *fakeClock) advance(seconds int64) {
	c.now += seconds
}

type testEnv struct {
	t      *testing.T
	ctx    context.Context
	eng    *Engine
	dao    *dao.Dao
	clock  *fakeClock
	funds  *wallet.Ledger
	assets *custody.Registry
	bus    evbus.Bus
}

func newTestEnv(t *testing.T, overrides ...func(*Config)) *testEnv {
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

	cfg := Config{
		MaxFeeBps: 2000,
		Operator:  operatorName,
		Admins:    []string{adminAddr},
		Artists:   []string{artistAddr},
	}
	for _, o := range overrides {
		o(&cfg)
	}

	clk := &fakeClock{now: 1_000_000}
	assets := custody.NewRegistry(d)
	funds := wallet.NewLedger(d)
	bus := evbus.New()
	eng := New(db, d, assets, funds, bus, clk, cfg)
	require.NoError(t, eng.Init(ctx))

	// artist's assets, approved for escrow
	require.NoError(t, assets.Register(ctx, collectionAddr, tokenID, artistAddr, operatorName))
	require.NoError(t, assets.Register(ctx, collectionAddr, "2", artistAddr, operatorName))

	// fund the bidders
	require.NoError(t, funds.Deposit(ctx, bidder1, decimal.NewFromInt(1_000_000)))
	require.NoError(t, funds.Deposit(ctx, bidder2, decimal.NewFromInt(1_000_000)))

	return &testEnv{
		t:      t,
		ctx:    ctx,
		eng:    eng,
		dao:    d,
		clock:  clk,
		funds:  funds,
		assets: assets,
		bus:    bus,
	}
}

func (env *testEnv) defaultOffer() CreateOfferParams {
	return CreateOfferParams{
		Caller:             artistAddr,
		AssetID:            tokenID,
		CollectionAddress:  collectionAddr,
		MinBid:             decimal.NewFromInt(100),
		MaxBid:             decimal.NewFromInt(10_000),
		StartTime:          env.clock.now,
		EndTime:            env.clock.now + 20,
		FeeBasisPoints:     500,
		ArtistAddress:      artistAddr,
		BeneficiaryAddress: charityAddr,
	}
}

func (env *testEnv) create(mutators ...func(*CreateOfferParams)) *model.Offer {
	env.t.Helper()
	p := env.defaultOffer()
	for _, m := range mutators {
		m(&p)
	}
	offer, err := env.eng.CreateOffer(env.ctx, p)
	require.NoError(env.t, err)
	return offer
}

func (env *testEnv) balance(addr string) decimal.Decimal {
	amount, err := env.funds.BalanceOf(env.ctx, addr)
	require.NoError(env.t, err)
	return amount
}

func (env *testEnv) owner(assetID string) string {
	owner, err := env.assets.OwnerOf(env.ctx, collectionAddr, assetID)
	require.NoError(env.t, err)
	return owner
}

func bid(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount)
}

func TestCreateOfferValidation(t *testing.T) {
	env := newTestEnv(t)
	env.create()

	cases := []struct {
		name    string
		mutate  func(*CreateOfferParams)
		wantErr error
	}{
		{
			name:    "duplicate active offer",
			mutate:  func(p *CreateOfferParams) {},
			wantErr: ErrDuplicateOffer,
		},
		{
			name: "fee above cap",
			mutate: func(p *CreateOfferParams) {
				p.AssetID = "2"
				p.FeeBasisPoints = 5000
			},
			wantErr: ErrFeeTooHigh,
		},
		{
			name: "zero artist address",
			mutate: func(p *CreateOfferParams) {
				p.AssetID = "2"
				p.ArtistAddress = "0x0000000000000000000000000000000000000000"
			},
			wantErr: ErrInvalidAddress,
		},
		{
			name: "zero beneficiary address",
			mutate: func(p *CreateOfferParams) {
				p.AssetID = "2"
				p.BeneficiaryAddress = ""
			},
			wantErr: ErrInvalidAddress,
		},
		{
			name: "max bid below min bid",
			mutate: func(p *CreateOfferParams) {
				p.AssetID = "2"
				p.MinBid = bid(1000)
				p.MaxBid = bid(100)
			},
			wantErr: ErrInvalidBidRange,
		},
		{
			name: "end in past",
			mutate: func(p *CreateOfferParams) {
				p.AssetID = "2"
				p.EndTime = env.clock.now - 120
			},
			wantErr: ErrEndInPast,
		},
		{
			name: "end before start",
			mutate: func(p *CreateOfferParams) {
				p.AssetID = "2"
				p.StartTime = env.clock.now + 30
				p.EndTime = env.clock.now + 20
			},
			wantErr: ErrEndBeforeStart,
		},
		{
			name: "caller without role",
			mutate: func(p *CreateOfferParams) {
				p.AssetID = "2"
				p.Caller = bidder1
			},
			wantErr: ErrArtistOrAdminOnly,
		},
		{
			name: "asset not approved",
			mutate: func(p *CreateOfferParams) {
				p.AssetID = "99"
			},
			wantErr: ErrAssetNotApproved,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := env.defaultOffer()
			tc.mutate(&p)
			_, err := env.eng.CreateOffer(env.ctx, p)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	// maxBid zero disables the cap and is always a valid range
	offer := env.create(func(p *CreateOfferParams) {
		p.AssetID = "2"
		p.MaxBid = decimal.Zero
	})
	assert.Equal(t, model.OfferStateActive, offer.State)
}

func TestMakeBidValidation(t *testing.T) {
	env := newTestEnv(t)
	offer := env.create()

	_, err := env.eng.MakeBid(env.ctx, 999, bidder1, bid(500))
	assert.ErrorIs(t, err, ErrOfferNotFound)

	_, err = env.eng.MakeBid(env.ctx, offer.ID, bidder1, bid(10))
	assert.ErrorIs(t, err, ErrBelowMinBid)

	_, err = env.eng.MakeBid(env.ctx, offer.ID, bidder1, bid(200))
	require.NoError(t, err)

	_, err = env.eng.MakeBid(env.ctx, offer.ID, bidder2, bid(300))
	require.NoError(t, err)

	// equal to current loses
	_, err = env.eng.MakeBid(env.ctx, offer.ID, bidder1, bid(300))
	assert.ErrorIs(t, err, ErrBelowCurrentBid)

	_, err = env.eng.MakeBid(env.ctx, offer.ID, bidder1, bid(250))
	assert.ErrorIs(t, err, ErrBelowCurrentBid)
}

func TestMakeBidWindow(t *testing.T) {
	env := newTestEnv(t)
	offer := env.create(func(p *CreateOfferParams) {
		p.StartTime = env.clock.now + 10
		p.EndTime = env.clock.now + 30
	})

	_, err := env.eng.MakeBid(env.ctx, offer.ID, bidder1, bid(200))
	assert.ErrorIs(t, err, ErrOfferNotStarted)

	env.clock.advance(10)
	_, err = env.eng.MakeBid(env.ctx, offer.ID, bidder1, bid(200))
	require.NoError(t, err)

	env.clock.advance(30)
	_, err = env.eng.MakeBid(env.ctx, offer.ID, bidder2, bid(2000))
	assert.ErrorIs(t, err, ErrOfferEnded)
}

func TestOutbidMovesStakeToVault(t *testing.T) {
	env := newTestEnv(t)
	offer := env.create()

	_, err := env.eng.MakeBid(env.ctx, offer.ID, bidder1, bid(200))
	require.NoError(t, err)
	assert.Equal(t, "999800", env.balance(bidder1).String())

	_, err = env.eng.MakeBid(env.ctx, offer.ID, bidder2, bid(300))
	require.NoError(t, err)

	// the displaced stake is owed, not pushed back
	assert.Equal(t, "999800", env.balance(bidder1).String())
	owed, err := env.eng.GetRefund(env.ctx, offer.ID, bidder1)
	require.NoError(t, err)
	assert.Equal(t, "200", owed.String())

	amount, err := env.eng.WithdrawRefund(env.ctx, offer.ID, bidder1)
	require.NoError(t, err)
	assert.Equal(t, "200", amount.String())
	assert.Equal(t, "1000000", env.balance(bidder1).String())

	// entry is zeroed, a second withdrawal finds nothing
	_, err = env.eng.WithdrawRefund(env.ctx, offer.ID, bidder1)
	assert.ErrorIs(t, err, ErrNoRefundFound)
}

func TestSelfOutbidAccumulatesRefunds(t *testing.T) {
	env := newTestEnv(t)
	offer := env.create()

	_, err := env.eng.WithdrawRefund(env.ctx, offer.ID, bidder1)
	assert.ErrorIs(t, err, ErrNoRefundFound)

	for _, amount := range []int64{200, 300, 400} {
		_, err := env.eng.MakeBid(env.ctx, offer.ID, bidder1, bid(amount))
		require.NoError(t, err)
	}

	// 200 + 300 accumulated, 400 is the live stake
	owed, err := env.eng.GetRefund(env.ctx, offer.ID, bidder1)
	require.NoError(t, err)
	assert.Equal(t, "500", owed.String())

	refunds, err := env.eng.GetRefunds(env.ctx, bidder1)
	require.NoError(t, err)
	require.Len(t, refunds, 1)
	assert.Equal(t, "500", refunds[0].Amount.String())

	amount, err := env.eng.WithdrawRefund(env.ctx, offer.ID, bidder1)
	require.NoError(t, err)
	assert.Equal(t, "500", amount.String())

	// only the live bid remains in escrow
	assert.Equal(t, "400", env.balance(wallet.EscrowAccount).String())

	refunds, err = env.eng.GetRefunds(env.ctx, bidder1)
	require.NoError(t, err)
	require.Len(t, refunds, 1)
	assert.True(t, refunds[0].Amount.IsZero())
}

func TestCapBidClosesImmediately(t *testing.T) {
	env := newTestEnv(t)
	offer := env.create()

	updated, err := env.eng.MakeBid(env.ctx, offer.ID, bidder1, bid(10_000))
	require.NoError(t, err)
	assert.Equal(t, model.OfferStateClosed, updated.State)

	// settled within the same operation: asset and funds have moved
	assert.Equal(t, bidder1, env.owner(tokenID))
	assert.Equal(t, "500", env.balance(artistAddr).String())     // 10000 * 5%
	assert.Equal(t, "9500", env.balance(charityAddr).String())

	_, err = env.eng.MakeBid(env.ctx, offer.ID, bidder2, bid(20_000))
	assert.ErrorIs(t, err, ErrOfferNotActive)
}

func TestClosePastOffer(t *testing.T) {
	env := newTestEnv(t)
	offer := env.create()

	_, err := env.eng.MakeBid(env.ctx, offer.ID, bidder1, bid(200))
	require.NoError(t, err)

	env.clock.advance(30)

	_, err = env.eng.MakeBid(env.ctx, offer.ID, bidder2, bid(20_000))
	assert.ErrorIs(t, err, ErrOfferEnded)

	// any participant may close an expired offer
	closed, err := env.eng.CloseOffer(env.ctx, offer.ID, bidder2)
	require.NoError(t, err)
	assert.Equal(t, model.OfferStateClosed, closed.State)
	assert.Equal(t, bidder1, env.owner(tokenID))
	assert.Equal(t, "10", env.balance(artistAddr).String())  // 200 * 5%
	assert.Equal(t, "190", env.balance(charityAddr).String())

	_, err = env.eng.CloseOffer(env.ctx, offer.ID, bidder2)
	assert.ErrorIs(t, err, ErrOfferNotActive)
}

func TestCloseExpiredWithoutBidCancels(t *testing.T) {
	env := newTestEnv(t)
	offer := env.create()

	env.clock.advance(30)

	closed, err := env.eng.CloseOffer(env.ctx, offer.ID, bidder1)
	require.NoError(t, err)
	assert.Equal(t, model.OfferStateCancelled, closed.State)
	assert.Equal(t, artistAddr, env.owner(tokenID))
}

func TestForcedEarlyClose(t *testing.T) {
	env := newTestEnv(t)
	offer := env.create()

	_, err := env.eng.MakeBid(env.ctx, offer.ID, bidder1, bid(200))
	require.NoError(t, err)

	// before expiry only an admin may close
	_, err = env.eng.CloseOffer(env.ctx, offer.ID, bidder1)
	assert.ErrorIs(t, err, ErrAdminOnly)

	closed, err := env.eng.CloseOffer(env.ctx, offer.ID, adminAddr)
	require.NoError(t, err)
	assert.Equal(t, model.OfferStateClosed, closed.State)
	assert.Equal(t, bidder1, env.owner(tokenID))
}

func TestForcedEarlyCloseNoBidPolicy(t *testing.T) {
	t.Run("cancel policy returns the asset", func(t *testing.T) {
		env := newTestEnv(t)
		offer := env.create()

		closed, err := env.eng.CloseOffer(env.ctx, offer.ID, adminAddr)
		require.NoError(t, err)
		assert.Equal(t, model.OfferStateCancelled, closed.State)
		assert.Equal(t, artistAddr, env.owner(tokenID))
	})

	t.Run("reject policy refuses", func(t *testing.T) {
		env := newTestEnv(t, func(cfg *Config) {
			cfg.EarlyCloseNoBid = EarlyCloseReject
		})
		offer := env.create()

		_, err := env.eng.CloseOffer(env.ctx, offer.ID, adminAddr)
		assert.ErrorIs(t, err, ErrOfferStillActive)
	})
}

func TestCancelOffer(t *testing.T) {
	env := newTestEnv(t)
	offer := env.create()

	err := env.eng.CancelOffer(env.ctx, 123, bidder1)
	assert.ErrorIs(t, err, ErrOfferNotFound)

	// window still open
	err = env.eng.CancelOffer(env.ctx, offer.ID, bidder1)
	assert.ErrorIs(t, err, ErrOfferStillActive)

	env.clock.advance(30)

	err = env.eng.CancelOffer(env.ctx, offer.ID, bidder1)
	require.NoError(t, err)
	assert.Equal(t, artistAddr, env.owner(tokenID))

	err = env.eng.CancelOffer(env.ctx, offer.ID, bidder1)
	assert.ErrorIs(t, err, ErrOfferNotActive)
}

func TestCancelOfferWithBidRefused(t *testing.T) {
	env := newTestEnv(t)
	offer := env.create()

	_, err := env.eng.MakeBid(env.ctx, offer.ID, bidder1, bid(200))
	require.NoError(t, err)

	env.clock.advance(30)

	err = env.eng.CancelOffer(env.ctx, offer.ID, bidder1)
	assert.ErrorIs(t, err, ErrOfferStillActive)
}

func TestNewOfferAfterFinalization(t *testing.T) {
	env := newTestEnv(t)
	offer := env.create()

	env.clock.advance(30)
	require.NoError(t, env.eng.CancelOffer(env.ctx, offer.ID, bidder1))

	// the same asset may be offered again once history is finalized
	require.NoError(t, env.assets.Register(env.ctx, collectionAddr, tokenID, artistAddr, operatorName))
	again := env.create(func(p *CreateOfferParams) {
		p.StartTime = env.clock.now
		p.EndTime = env.clock.now + 20
	})
	assert.NotEqual(t, offer.ID, again.ID)
	assert.Equal(t, model.OfferStateActive, again.State)
}

func TestPauseGatesMutations(t *testing.T) {
	env := newTestEnv(t)
	offer := env.create()

	err := env.eng.Pause(env.ctx, bidder1)
	assert.ErrorIs(t, err, ErrAdminOnly)

	require.NoError(t, env.eng.Pause(env.ctx, adminAddr))

	_, err = env.eng.MakeBid(env.ctx, offer.ID, bidder1, bid(200))
	assert.ErrorIs(t, err, ErrPaused)

	err = env.eng.Pause(env.ctx, adminAddr)
	assert.ErrorIs(t, err, ErrPaused)

	require.NoError(t, env.eng.Unpause(env.ctx, adminAddr))

	err = env.eng.Unpause(env.ctx, adminAddr)
	assert.ErrorIs(t, err, ErrNotPaused)

	_, err = env.eng.MakeBid(env.ctx, offer.ID, bidder1, bid(200))
	require.NoError(t, err)
}

func TestRoleAdministration(t *testing.T) {
	env := newTestEnv(t)

	err := env.eng.ChangeMaxFee(env.ctx, artistAddr, 5000)
	assert.ErrorIs(t, err, ErrAdminOnly)

	err = env.eng.GrantRole(env.ctx, adminAddr, "owner", bidder1)
	assert.ErrorIs(t, err, ErrUnknownRole)

	// a freshly granted artist can create offers
	require.NoError(t, env.eng.GrantRole(env.ctx, adminAddr, model.RoleArtist, bidder1))
	offer := env.create(func(p *CreateOfferParams) {
		p.Caller = bidder1
	})
	assert.Equal(t, model.OfferStateActive, offer.State)

	require.NoError(t, env.eng.RevokeRole(env.ctx, adminAddr, model.RoleArtist, bidder1))
	p := env.defaultOffer()
	p.AssetID = "2"
	p.Caller = bidder1
	_, err = env.eng.CreateOffer(env.ctx, p)
	assert.ErrorIs(t, err, ErrArtistOrAdminOnly)

	// raising the cap admits a higher fee
	require.NoError(t, env.eng.ChangeMaxFee(env.ctx, adminAddr, 5000))
	offer2 := env.create(func(p *CreateOfferParams) {
		p.AssetID = "2"
		p.FeeBasisPoints = 4000
	})
	assert.Equal(t, int64(4000), offer2.FeeBasisPoints)

	err = env.eng.ChangeMaxFee(env.ctx, adminAddr, 20_000)
	assert.ErrorIs(t, err, ErrFeeTooHigh)
}

func TestMoneyConservation(t *testing.T) {
	env := newTestEnv(t)
	offer := env.create()

	deposited := decimal.Zero
	for i, amount := range []int64{200, 300, 400, 550} {
		bidder := bidder1
		if i%2 == 1 {
			bidder = bidder2
		}
		_, err := env.eng.MakeBid(env.ctx, offer.ID, bidder, bid(amount))
		require.NoError(t, err)
		deposited = deposited.Add(bid(amount))
	}

	// escrow holds exactly everything ever deposited
	assert.Equal(t, deposited.String(), env.balance(wallet.EscrowAccount).String())

	// and it decomposes into refunds owed plus the live bid
	owedSum, err := env.dao.SumRefunds(env.ctx, offer.ID)
	require.NoError(t, err)
	current, err := env.eng.GetOffer(env.ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, deposited.String(), owedSum.Add(current.CurrentBidAmount).String())

	// settlement plus withdrawals drain escrow to zero
	env.clock.advance(30)
	_, err = env.eng.CloseOffer(env.ctx, offer.ID, bidder1)
	require.NoError(t, err)
	_, err = env.eng.WithdrawRefund(env.ctx, offer.ID, bidder1)
	require.NoError(t, err)
	_, err = env.eng.WithdrawRefund(env.ctx, offer.ID, bidder2)
	require.NoError(t, err)
	assert.True(t, env.balance(wallet.EscrowAccount).IsZero())

	// fee split of the winning 550: floor(550*500/10000)=27 to the artist
	assert.Equal(t, "27", env.balance(artistAddr).String())
	assert.Equal(t, "523", env.balance(charityAddr).String())
}

func TestInsufficientFundsAbortsBid(t *testing.T) {
	env := newTestEnv(t)
	offer := env.create()

	_, err := env.eng.MakeBid(env.ctx, offer.ID, "0xpauper", bid(200))
	require.Error(t, err)

	// nothing moved, nothing recorded
	current, err := env.eng.GetOffer(env.ctx, offer.ID)
	require.NoError(t, err)
	assert.False(t, current.HasBid())
	assert.True(t, env.balance(wallet.EscrowAccount).IsZero())
}

func TestEventsPublishedAfterCommit(t *testing.T) {
	env := newTestEnv(t)
	offer := env.create()

	var bids []BidAcceptedEvent
	require.NoError(t, env.bus.Subscribe(TopicBidAccepted, func(e BidAcceptedEvent) {
		bids = append(bids, e)
	}))
	var closes []OfferClosedEvent
	require.NoError(t, env.bus.Subscribe(TopicOfferClosed, func(e OfferClosedEvent) {
		closes = append(closes, e)
	}))

	_, err := env.eng.MakeBid(env.ctx, offer.ID, bidder1, bid(200))
	require.NoError(t, err)

	// a rejected bid publishes nothing
	_, err = env.eng.MakeBid(env.ctx, offer.ID, bidder2, bid(100))
	assert.ErrorIs(t, err, ErrBelowCurrentBid)

	_, err = env.eng.MakeBid(env.ctx, offer.ID, bidder2, bid(10_000))
	require.NoError(t, err)

	require.Len(t, bids, 2)
	assert.Equal(t, "200", bids[0].Amount.String())
	assert.Equal(t, bidder1, bids[0].Bidder)
	require.Len(t, closes, 1)
	assert.Equal(t, bidder2, closes[0].Winner)
	assert.Equal(t, "10000", closes[0].Amount.String())
}

func TestSubscriberCanIssueOperations(t *testing.T) {
	env := newTestEnv(t)
	offer := env.create()

	// a synchronous subscriber reacting to a bid by driving another engine
	// operation must not block on the admission lock
	var reentryErr error
	called := false
	require.NoError(t, env.bus.Subscribe(TopicBidAccepted, func(e BidAcceptedEvent) {
		called = true
		_, reentryErr = env.eng.WithdrawRefund(env.ctx, e.OfferID, bidder2)
	}))

	_, err := env.eng.MakeBid(env.ctx, offer.ID, bidder1, bid(200))
	require.NoError(t, err)
	require.True(t, called)
	assert.ErrorIs(t, reentryErr, ErrNoRefundFound)
}

func TestActivityJournal(t *testing.T) {
	env := newTestEnv(t)
	offer := env.create()

	_, err := env.eng.MakeBid(env.ctx, offer.ID, bidder1, bid(200))
	require.NoError(t, err)
	_, err = env.eng.MakeBid(env.ctx, offer.ID, bidder2, bid(10_000))
	require.NoError(t, err)

	activities, total, err := env.dao.QueryActivities(env.ctx, offer.ID, nil, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total) // created, 2 bids, closed

	types := make([]string, 0, len(activities))
	for _, a := range activities {
		types = append(types, a.EventType)
	}
	assert.Contains(t, types, model.ActivityOfferCreated)
	assert.Contains(t, types, model.ActivityBidAccepted)
	assert.Contains(t, types, model.ActivityOfferClosed)
}
