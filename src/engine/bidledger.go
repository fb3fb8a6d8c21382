package engine

import (
	"context"

	"NFTAuctionEngine/src/dao"
	"NFTAuctionEngine/src/model"

	"github.com/shopspring/decimal"
)

// MakeBid validates and records a bid against an offer's current state and
// time window. The displaced leader's stake moves into the refund vault,
// never back to them directly. A bid reaching the offer's cap settles the
// offer within the same operation.
func (e *Engine) MakeBid(ctx context.Context, offerID int64, bidder string, amount decimal.Decimal) (*model.Offer, error) {
	var updated *model.Offer
	err := e.run(ctx, func(ctx context.Context, d *dao.Dao, ev *eventLog) error {
		if err := e.requireNotPaused(ctx, d); err != nil {
			return err
		}
		offer, err := e.loadActiveOffer(ctx, d, offerID)
		if err != nil {
			return err
		}

		now := e.clock.Now()
		if now > offer.EndTime {
			return ErrOfferEnded
		}
		if now < offer.StartTime {
			return ErrOfferNotStarted
		}
		if offer.CapReached() {
			return ErrMaxBidReached
		}
		if !offer.HasBid() && amount.LessThan(offer.MinBid) {
			return ErrBelowMinBid
		}
		if offer.HasBid() && amount.LessThanOrEqual(offer.CurrentBidAmount) {
			return ErrBelowCurrentBid
		}

		// deposit the stake into escrow before touching the offer
		if err := e.funds.Collect(ctx, bidder, amount); err != nil {
			return err
		}

		// the displaced leader's stake becomes withdrawable, accumulating
		// with anything already owed on this offer
		if offer.HasBid() {
			if err := d.CreditRefund(ctx, offer.ID, offer.CurrentBidder, offer.CurrentBidAmount); err != nil {
				return err
			}
		}

		offer.CurrentBidder = bidder
		offer.CurrentBidAmount = amount
		if err := d.UpdateOfferBid(ctx, offer); err != nil {
			return err
		}
		if err := d.AddActivity(ctx, offer.ID, offer.AssetID, model.ActivityBidAccepted, bidder, amount); err != nil {
			return err
		}
		ev.add(BidAcceptedEvent{OfferID: offer.ID, Bidder: bidder, Amount: amount})

		// cap bid settles immediately, inside the same atomic unit
		if !offer.MaxBid.IsZero() && amount.GreaterThanOrEqual(offer.MaxBid) {
			if err := e.settle(ctx, d, ev, offer); err != nil {
				return err
			}
		}

		updated = offer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
