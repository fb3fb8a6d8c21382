package engine

import (
	"context"

	"NFTAuctionEngine/src/dao"
	"NFTAuctionEngine/src/model"

	"github.com/shopspring/decimal"
)

// GetRefund returns the amount owed to a bidder on one offer.
func (e *Engine) GetRefund(ctx context.Context, offerID int64, bidder string) (decimal.Decimal, error) {
	return e.dao.GetRefund(ctx, offerID, bidder)
}

// GetRefunds lists every refund entry of a bidder, withdrawn ones included.
func (e *Engine) GetRefunds(ctx context.Context, bidder string) ([]model.Refund, error) {
	return e.dao.QueryRefunds(ctx, bidder)
}

// WithdrawRefund pays out everything owed to the caller on one offer. The
// ledger entry is zeroed before funds leave escrow, so a repeated attempt
// observes an empty entry and fails the ordinary precondition check. This
// pull model is the sole path by which an outbid participant recovers funds.
func (e *Engine) WithdrawRefund(ctx context.Context, offerID int64, caller string) (decimal.Decimal, error) {
	var amount decimal.Decimal
	err := e.run(ctx, func(ctx context.Context, d *dao.Dao, ev *eventLog) error {
		if err := e.requireNotPaused(ctx, d); err != nil {
			return err
		}

		owed, err := d.ZeroRefund(ctx, offerID, caller)
		if err != nil {
			return err
		}
		if owed.IsZero() {
			return ErrNoRefundFound
		}

		if err := e.funds.Payout(ctx, caller, owed); err != nil {
			return err
		}
		if err := d.AddActivity(ctx, offerID, "", model.ActivityRefundWithdrawn, caller, owed); err != nil {
			return err
		}
		ev.add(RefundWithdrawnEvent{OfferID: offerID, Bidder: caller, Amount: owed})
		amount = owed
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}
