package model

import (
	"github.com/shopspring/decimal"
)

// Activity event types, journaled for every observable notification.
const (
	ActivityOfferCreated    = "offer_created"
	ActivityBidAccepted     = "bid_accepted"
	ActivityOfferClosed     = "offer_closed"
	ActivityOfferCancelled  = "offer_cancelled"
	ActivityRefundWithdrawn = "refund_withdrawn"
	ActivityMaxFeeChanged   = "max_fee_changed"
	ActivityPaused          = "paused"
	ActivityUnpaused        = "unpaused"
	ActivityRoleGranted     = "role_granted"
	ActivityRoleRevoked     = "role_revoked"
)

// Activity is one row of the engine's event journal.
type Activity struct {
	ID         string          `json:"id" gorm:"type:varchar(36);primaryKey"`
	OfferID    int64           `json:"offer_id" gorm:"index"`
	AssetID    string          `json:"asset_id" gorm:"type:varchar(128)"`
	EventType  string          `json:"event_type" gorm:"type:varchar(32);not null;index"`
	Actor      string          `json:"actor" gorm:"type:varchar(66)"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(78,0);not null"`
	CreateTime int64           `json:"create_time" gorm:"not null;index"`
}

func ActivityTableName() string {
	return "au_activities"
}

func (Activity) TableName() string {
	return ActivityTableName()
}
