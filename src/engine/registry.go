package engine

import (
	"context"

	"NFTAuctionEngine/src/dao"
	"NFTAuctionEngine/src/model"
	"NFTAuctionEngine/src/utils"

	"github.com/shopspring/decimal"
)

// CreateOfferParams is the full offer tuple supplied by an artist or admin.
type CreateOfferParams struct {
	Caller             string
	AssetID            string
	CollectionAddress  string
	MinBid             decimal.Decimal
	MaxBid             decimal.Decimal
	StartTime          int64
	EndTime            int64
	FeeBasisPoints     int64
	ArtistAddress      string
	BeneficiaryAddress string
}

// CreateOffer allocates a new Active offer for an asset. The asset must be
// approved for escrow with the custody collaborator, and at most one Active
// offer may exist per asset.
func (e *Engine) CreateOffer(ctx context.Context, p CreateOfferParams) (*model.Offer, error) {
	var offer *model.Offer
	err := e.run(ctx, func(ctx context.Context, d *dao.Dao, ev *eventLog) error {
		if err := e.requireNotPaused(ctx, d); err != nil {
			return err
		}
		if err := e.requireArtistOrAdmin(ctx, d, p.Caller); err != nil {
			return err
		}

		exists, err := d.HasActiveOffer(ctx, p.CollectionAddress, p.AssetID)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateOffer
		}

		state, err := e.engineState(ctx, d)
		if err != nil {
			return err
		}
		if p.FeeBasisPoints < 0 || p.FeeBasisPoints > state.MaxFeeBps {
			return ErrFeeTooHigh
		}
		if utils.IsZeroAddress(p.ArtistAddress) || utils.IsZeroAddress(p.BeneficiaryAddress) {
			return ErrInvalidAddress
		}
		if p.MinBid.IsNegative() || p.MaxBid.IsNegative() {
			return ErrInvalidBidRange
		}
		if !p.MaxBid.IsZero() && p.MaxBid.LessThan(p.MinBid) {
			return ErrInvalidBidRange
		}
		now := e.clock.Now()
		if p.EndTime < now {
			return ErrEndInPast
		}
		if p.EndTime <= p.StartTime {
			return ErrEndBeforeStart
		}

		approved, err := e.custody.IsApprovedFor(ctx, p.CollectionAddress, p.AssetID, e.cfg.Operator)
		if err != nil {
			return err
		}
		if !approved {
			return ErrAssetNotApproved
		}

		offer = &model.Offer{
			AssetID:            p.AssetID,
			CollectionAddress:  p.CollectionAddress,
			MinBid:             p.MinBid,
			MaxBid:             p.MaxBid,
			StartTime:          p.StartTime,
			EndTime:            p.EndTime,
			FeeBasisPoints:     p.FeeBasisPoints,
			ArtistAddress:      p.ArtistAddress,
			BeneficiaryAddress: p.BeneficiaryAddress,
			CurrentBidAmount:   decimal.Zero,
			State:              model.OfferStateActive,
		}
		if err := d.CreateOffer(ctx, offer); err != nil {
			return err
		}
		if err := d.AddActivity(ctx, offer.ID, offer.AssetID, model.ActivityOfferCreated, p.Caller, decimal.Zero); err != nil {
			return err
		}
		ev.add(OfferCreatedEvent{Offer: *offer})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return offer, nil
}

// CancelOffer tears down an offer that expired without a single bid and
// returns the asset to the artist. Cancelling early, or after any bid was
// placed, fails.
func (e *Engine) CancelOffer(ctx context.Context, offerID int64, caller string) error {
	return e.run(ctx, func(ctx context.Context, d *dao.Dao, ev *eventLog) error {
		if err := e.requireNotPaused(ctx, d); err != nil {
			return err
		}
		offer, err := e.loadActiveOffer(ctx, d, offerID)
		if err != nil {
			return err
		}
		if offer.HasBid() || e.clock.Now() <= offer.EndTime {
			return ErrOfferStillActive
		}
		return e.cancel(ctx, d, ev, offer)
	})
}

// cancel finalizes an offer as Cancelled and hands the asset back to the
// artist. State moves before the custody interaction.
func (e *Engine) cancel(ctx context.Context, d *dao.Dao, ev *eventLog, offer *model.Offer) error {
	if err := d.UpdateOfferState(ctx, offer.ID, model.OfferStateActive, model.OfferStateCancelled); err != nil {
		return err
	}
	offer.State = model.OfferStateCancelled
	if err := e.custody.Transfer(ctx, offer.CollectionAddress, offer.AssetID, offer.ArtistAddress); err != nil {
		return err
	}
	if err := d.AddActivity(ctx, offer.ID, offer.AssetID, model.ActivityOfferCancelled, offer.ArtistAddress, decimal.Zero); err != nil {
		return err
	}
	ev.add(OfferCancelledEvent{OfferID: offer.ID})
	return nil
}

// GetOffer is the read-only offer lookup.
func (e *Engine) GetOffer(ctx context.Context, offerID int64) (*model.Offer, error) {
	offer, err := e.dao.GetOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, ErrOfferNotFound
	}
	return offer, nil
}
