package engine

import (
	"context"
	"sync"

	"NFTAuctionEngine/src/dao"
	"NFTAuctionEngine/src/model"

	evbus "github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// EarlyCloseNoBid selects what an admin-forced close before the window end
// does with an offer that never received a bid.
const (
	EarlyCloseCancel = "cancel"
	EarlyCloseReject = "reject"
)

// Config is the construction-time engine configuration.
type Config struct {
	MaxFeeBps       int64    `toml:"max_fee_bps" mapstructure:"max_fee_bps" json:"max_fee_bps"`
	EarlyCloseNoBid string   `toml:"early_close_no_bid" mapstructure:"early_close_no_bid" json:"early_close_no_bid"`
	Operator        string   `toml:"operator" mapstructure:"operator" json:"operator"`
	Admins          []string `toml:"admins" mapstructure:"admins" json:"admins"`
	Artists         []string `toml:"artists" mapstructure:"artists" json:"artists"`
}

// Engine is the auction/escrow state machine. Every externally triggered
// operation runs serially under mu and inside one database transaction, so
// no operation can observe a partially-applied effect of another.
type Engine struct {
	mu      sync.Mutex
	db      *gorm.DB
	dao     *dao.Dao
	custody AssetCustody
	funds   FundsVault
	bus     evbus.Bus
	clock   Clock
	cfg     Config
}

func New(db *gorm.DB, d *dao.Dao, custody AssetCustody, funds FundsVault, bus evbus.Bus, clock Clock, cfg Config) *Engine {
	if clock == nil {
		clock = SystemClock()
	}
	if bus == nil {
		bus = evbus.New()
	}
	if cfg.EarlyCloseNoBid == "" {
		cfg.EarlyCloseNoBid = EarlyCloseCancel
	}
	if cfg.Operator == "" {
		cfg.Operator = "auction_engine"
	}
	return &Engine{
		db:      db,
		dao:     d,
		custody: custody,
		funds:   funds,
		bus:     bus,
		clock:   clock,
		cfg:     cfg,
	}
}

// Bus exposes the notification bus for subscribers.
func (e *Engine) Bus() evbus.Bus {
	return e.bus
}

// Operator is the identity the custody collaborator must have approved
// before an offer can be created.
func (e *Engine) Operator() string {
	return e.cfg.Operator
}

// Init seeds the global state row and the initial role holders.
func (e *Engine) Init(ctx context.Context) error {
	return e.run(ctx, func(ctx context.Context, d *dao.Dao, ev *eventLog) error {
		if err := d.InitEngineState(ctx, e.cfg.MaxFeeBps); err != nil {
			return err
		}
		for _, admin := range e.cfg.Admins {
			if err := d.GrantRole(ctx, model.RoleAdmin, admin); err != nil {
				return err
			}
		}
		for _, artist := range e.cfg.Artists {
			if err := d.GrantRole(ctx, model.RoleArtist, artist); err != nil {
				return err
			}
		}
		return nil
	})
}

// run admits one operation into the ledger: serial order, one transaction,
// all-or-nothing. Events are published only after commit, and outside the
// admission lock so a synchronous subscriber may issue its own operations.
func (e *Engine) run(ctx context.Context, fn func(ctx context.Context, d *dao.Dao, ev *eventLog) error) error {
	ev := &eventLog{}
	err := func() error {
		e.mu.Lock()
		defer e.mu.Unlock()
		return e.db.Transaction(func(tx *gorm.DB) error {
			return fn(dao.CtxWithTx(ctx, tx), e.dao.WithTx(tx), ev)
		})
	}()
	if err != nil {
		return err
	}
	for _, event := range ev.events {
		e.bus.Publish(event.Topic(), event)
	}
	return nil
}

// loadActiveOffer fetches an offer and checks it is still open for state
// transitions.
func (e *Engine) loadActiveOffer(ctx context.Context, d *dao.Dao, offerID int64) (*model.Offer, error) {
	offer, err := d.GetOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, ErrOfferNotFound
	}
	if offer.State != model.OfferStateActive {
		return nil, ErrOfferNotActive
	}
	return offer, nil
}

func (e *Engine) engineState(ctx context.Context, d *dao.Dao) (*model.EngineState, error) {
	state, err := d.GetEngineState(ctx)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, errors.New("engine state not initialized")
	}
	return state, nil
}
