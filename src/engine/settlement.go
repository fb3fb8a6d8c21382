package engine

import (
	"context"

	"NFTAuctionEngine/src/dao"
	"NFTAuctionEngine/src/model"

	"github.com/shopspring/decimal"
)

var feeDenominator = decimal.NewFromInt(10000)

// SplitFee computes the artist's fee share and the beneficiary's remainder
// for a winning amount. Basis-points division truncates toward zero and the
// truncation remainder accrues to the beneficiary, so the two outputs always
// sum exactly to the input.
func SplitFee(amount decimal.Decimal, feeBps int64) (artistFee, beneficiary decimal.Decimal) {
	artistFee = amount.Mul(decimal.NewFromInt(feeBps)).Div(feeDenominator).Floor()
	beneficiary = amount.Sub(artistFee)
	return artistFee, beneficiary
}

// CloseOffer finalizes an offer: by anyone once the window has passed, or by
// an admin at any time as a forced close. An offer that never received a bid
// is finalized as Cancelled and the asset returns to the artist; a forced
// early close of a bid-less offer follows the configured policy.
func (e *Engine) CloseOffer(ctx context.Context, offerID int64, caller string) (*model.Offer, error) {
	var closed *model.Offer
	err := e.run(ctx, func(ctx context.Context, d *dao.Dao, ev *eventLog) error {
		if err := e.requireNotPaused(ctx, d); err != nil {
			return err
		}
		offer, err := e.loadActiveOffer(ctx, d, offerID)
		if err != nil {
			return err
		}

		if e.clock.Now() <= offer.EndTime {
			// before expiry only an admin may force the close
			if err := e.requireAdmin(ctx, d, caller); err != nil {
				return err
			}
			if !offer.HasBid() && e.cfg.EarlyCloseNoBid == EarlyCloseReject {
				return ErrOfferStillActive
			}
		}

		if !offer.HasBid() {
			// no-winner expiry behaves as a cancel
			if err := e.cancel(ctx, d, ev, offer); err != nil {
				return err
			}
			closed = offer
			return nil
		}

		if err := e.settle(ctx, d, ev, offer); err != nil {
			return err
		}
		closed = offer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return closed, nil
}

// settle disburses a won offer: mark Closed first, then move funds and the
// asset. Assumes the offer row is Active and carries a winner.
func (e *Engine) settle(ctx context.Context, d *dao.Dao, ev *eventLog, offer *model.Offer) error {
	if err := d.UpdateOfferState(ctx, offer.ID, model.OfferStateActive, model.OfferStateClosed); err != nil {
		return err
	}
	offer.State = model.OfferStateClosed

	artistFee, beneficiaryAmount := SplitFee(offer.CurrentBidAmount, offer.FeeBasisPoints)
	if artistFee.IsPositive() {
		if err := e.funds.Payout(ctx, offer.ArtistAddress, artistFee); err != nil {
			return err
		}
	}
	if beneficiaryAmount.IsPositive() {
		if err := e.funds.Payout(ctx, offer.BeneficiaryAddress, beneficiaryAmount); err != nil {
			return err
		}
	}
	if err := e.custody.Transfer(ctx, offer.CollectionAddress, offer.AssetID, offer.CurrentBidder); err != nil {
		return err
	}

	if err := d.AddActivity(ctx, offer.ID, offer.AssetID, model.ActivityOfferClosed, offer.CurrentBidder, offer.CurrentBidAmount); err != nil {
		return err
	}
	ev.add(OfferClosedEvent{OfferID: offer.ID, Winner: offer.CurrentBidder, Amount: offer.CurrentBidAmount})
	return nil
}
