package dao

import (
	"context"
	"time"

	"NFTAuctionEngine/src/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CreditRefund accumulates an owed amount onto the (offer, bidder) entry,
// creating the row on first credit. Accumulation, never overwrite.
func (d *Dao) CreditRefund(ctx context.Context, offerID int64, bidder string, amount decimal.Decimal) error {
	now := time.Now().UnixMilli()

	var refund model.Refund
	err := d.DB.WithContext(ctx).Table(model.RefundTableName()).
		Where("offer_id = ? and bidder = ?", offerID, bidder).
		Take(&refund).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		refund = model.Refund{
			OfferID:    offerID,
			Bidder:     bidder,
			Amount:     amount,
			CreateTime: now,
			UpdateTime: now,
		}
		if err := d.DB.WithContext(ctx).Table(model.RefundTableName()).Create(&refund).Error; err != nil {
			return errors.Wrap(err, "failed on create refund entry")
		}
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed on get refund entry")
	}

	err = d.DB.WithContext(ctx).Table(model.RefundTableName()).
		Where("id = ?", refund.ID).
		Updates(map[string]interface{}{
			"amount":      refund.Amount.Add(amount),
			"update_time": now,
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed on accumulate refund entry")
	}
	return nil
}

// GetRefund returns the owed amount for one (bidder, offer) pair; zero when
// no entry exists.
func (d *Dao) GetRefund(ctx context.Context, offerID int64, bidder string) (decimal.Decimal, error) {
	var refund model.Refund
	err := d.DB.WithContext(ctx).Table(model.RefundTableName()).
		Where("offer_id = ? and bidder = ?", offerID, bidder).
		Take(&refund).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed on get refund entry")
	}
	return refund.Amount, nil
}

// QueryRefunds lists every refund entry of one bidder, including zeroed
// (already withdrawn) ones.
func (d *Dao) QueryRefunds(ctx context.Context, bidder string) ([]model.Refund, error) {
	var refunds []model.Refund
	err := d.DB.WithContext(ctx).Table(model.RefundTableName()).
		Where("bidder = ?", bidder).
		Order("offer_id asc").
		Find(&refunds).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed on query refunds")
	}
	return refunds, nil
}

// ZeroRefund clears an owed entry and returns the amount that was owed. The
// ledger is zeroed before any funds move (effects before interaction).
func (d *Dao) ZeroRefund(ctx context.Context, offerID int64, bidder string) (decimal.Decimal, error) {
	var refund model.Refund
	err := d.DB.WithContext(ctx).Table(model.RefundTableName()).
		Where("offer_id = ? and bidder = ?", offerID, bidder).
		Take(&refund).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed on get refund entry")
	}
	if refund.Amount.IsZero() {
		return decimal.Zero, nil
	}

	err = d.DB.WithContext(ctx).Table(model.RefundTableName()).
		Where("id = ?", refund.ID).
		Updates(map[string]interface{}{
			"amount":      decimal.Zero,
			"update_time": time.Now().UnixMilli(),
		}).Error
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed on zero refund entry")
	}
	return refund.Amount, nil
}

// SumRefunds totals the outstanding owed amounts for one offer.
func (d *Dao) SumRefunds(ctx context.Context, offerID int64) (decimal.Decimal, error) {
	var refunds []model.Refund
	err := d.DB.WithContext(ctx).Table(model.RefundTableName()).
		Where("offer_id = ?", offerID).
		Find(&refunds).Error
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed on sum refunds")
	}
	total := decimal.Zero
	for _, r := range refunds {
		total = total.Add(r.Amount)
	}
	return total, nil
}
