package model

import (
	"github.com/shopspring/decimal"
)

// Refund is the owed-amount ledger entry for one bidder on one offer.
// Repeated outbids accumulate into the same row; withdrawal zeroes it.
type Refund struct {
	ID         int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	OfferID    int64           `json:"offer_id" gorm:"not null;uniqueIndex:uk_refund_offer_bidder"`
	Bidder     string          `json:"bidder" gorm:"type:varchar(66);not null;uniqueIndex:uk_refund_offer_bidder;index:idx_refund_bidder"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(78,0);not null"`
	CreateTime int64           `json:"create_time" gorm:"not null"`
	UpdateTime int64           `json:"update_time" gorm:"not null"`
}

func RefundTableName() string {
	return "au_refunds"
}

func (Refund) TableName() string {
	return RefundTableName()
}
