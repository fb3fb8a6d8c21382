package dao

import (
	"context"
	"time"

	"NFTAuctionEngine/src/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateOffer inserts a new offer row in Active state.
func (d *Dao) CreateOffer(ctx context.Context, offer *model.Offer) error {
	now := time.Now().UnixMilli()
	offer.CreateTime = now
	offer.UpdateTime = now
	if err := d.DB.WithContext(ctx).Table(model.OfferTableName()).Create(offer).Error; err != nil {
		return errors.Wrap(err, "failed on create offer")
	}
	return nil
}

// GetOffer loads one offer by id. Returns (nil, nil) when the row does not
// exist so the engine can map it to its own not-found error.
func (d *Dao) GetOffer(ctx context.Context, offerID int64) (*model.Offer, error) {
	var offer model.Offer
	err := d.DB.WithContext(ctx).Table(model.OfferTableName()).
		Where("id = ?", offerID).
		Take(&offer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed on get offer")
	}
	return &offer, nil
}

// HasActiveOffer reports whether an Active offer already exists for the asset.
func (d *Dao) HasActiveOffer(ctx context.Context, collectionAddr, assetID string) (bool, error) {
	var count int64
	err := d.DB.WithContext(ctx).Table(model.OfferTableName()).
		Where("collection_address = ? and asset_id = ? and state = ?",
			collectionAddr, assetID, model.OfferStateActive).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed on count active offers")
	}
	return count > 0, nil
}

// UpdateOfferBid writes the new leader onto an offer row.
func (d *Dao) UpdateOfferBid(ctx context.Context, offer *model.Offer) error {
	offer.UpdateTime = time.Now().UnixMilli()
	err := d.DB.WithContext(ctx).Table(model.OfferTableName()).
		Where("id = ?", offer.ID).
		Updates(map[string]interface{}{
			"current_bidder":     offer.CurrentBidder,
			"current_bid_amount": offer.CurrentBidAmount,
			"update_time":        offer.UpdateTime,
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed on update offer bid")
	}
	return nil
}

// UpdateOfferState finalizes an offer. The state filter guards against a
// row that was finalized by a concurrent admission.
func (d *Dao) UpdateOfferState(ctx context.Context, offerID int64, from, to int8) error {
	res := d.DB.WithContext(ctx).Table(model.OfferTableName()).
		Where("id = ? and state = ?", offerID, from).
		Updates(map[string]interface{}{
			"state":       to,
			"update_time": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return errors.Wrap(res.Error, "failed on update offer state")
	}
	if res.RowsAffected == 0 {
		return errors.New("offer state transition lost")
	}
	return nil
}

// QueryOffers lists offers newest first, optionally filtered by state.
func (d *Dao) QueryOffers(ctx context.Context, state *int8, page, pageSize int) ([]model.Offer, int64, error) {
	db := d.DB.WithContext(ctx).Table(model.OfferTableName())
	if state != nil {
		db = db.Where("state = ?", *state)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed on count offers")
	}

	var offers []model.Offer
	err := db.Order("id desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&offers).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed on query offers")
	}
	return offers, total, nil
}
