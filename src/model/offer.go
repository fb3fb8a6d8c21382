package model

import (
	"github.com/shopspring/decimal"
)

// Offer lifecycle states. An offer is finalized exactly once; Closed and
// Cancelled rows are immutable history.
const (
	OfferStateActive int8 = iota
	OfferStateClosed
	OfferStateCancelled
)

// Offer is one asset's auction record: bid window, limits, fee terms and the
// current leader. At most one Active row may exist per (collection, asset).
type Offer struct {
	ID                 int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	AssetID            string          `json:"asset_id" gorm:"type:varchar(128);not null;index:idx_offer_asset"`
	CollectionAddress  string          `json:"collection_address" gorm:"type:varchar(66);not null;index:idx_offer_asset"`
	MinBid             decimal.Decimal `json:"min_bid" gorm:"type:decimal(78,0);not null"`
	MaxBid             decimal.Decimal `json:"max_bid" gorm:"type:decimal(78,0);not null"` // zero means no cap
	StartTime          int64           `json:"start_time" gorm:"not null"`
	EndTime            int64           `json:"end_time" gorm:"not null"`
	FeeBasisPoints     int64           `json:"fee_basis_points" gorm:"not null"`
	ArtistAddress      string          `json:"artist_address" gorm:"type:varchar(66);not null"`
	BeneficiaryAddress string          `json:"beneficiary_address" gorm:"type:varchar(66);not null"`
	CurrentBidder      string          `json:"current_bidder" gorm:"type:varchar(66)"`
	CurrentBidAmount   decimal.Decimal `json:"current_bid_amount" gorm:"type:decimal(78,0);not null"`
	State              int8            `json:"state" gorm:"not null;index"`
	CreateTime         int64           `json:"create_time" gorm:"not null"`
	UpdateTime         int64           `json:"update_time" gorm:"not null"`
}

func OfferTableName() string {
	return "au_offers"
}

func (Offer) TableName() string {
	return OfferTableName()
}

// HasBid reports whether any bid was ever accepted on the offer.
func (o *Offer) HasBid() bool {
	return o.CurrentBidder != ""
}

// CapReached reports whether the cap bid has been hit (maxBid zero disables
// the cap entirely).
func (o *Offer) CapReached() bool {
	return !o.MaxBid.IsZero() && o.CurrentBidAmount.GreaterThanOrEqual(o.MaxBid)
}
