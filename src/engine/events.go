package engine

import (
	"NFTAuctionEngine/src/model"

	"github.com/shopspring/decimal"
)

// EventBus topics for engine notifications.
const (
	TopicOfferCreated    = "auction:offer_created"
	TopicBidAccepted     = "auction:bid_accepted"
	TopicOfferClosed     = "auction:offer_closed"
	TopicOfferCancelled  = "auction:offer_cancelled"
	TopicRefundWithdrawn = "auction:refund_withdrawn"
	TopicMaxFeeChanged   = "auction:max_fee_changed"
	TopicPaused          = "auction:paused"
	TopicUnpaused        = "auction:unpaused"
	TopicRoleGranted     = "auction:role_granted"
	TopicRoleRevoked     = "auction:role_revoked"
)

// Event is one observable engine notification. Events are published on the
// bus only after the operation that produced them has committed.
type Event interface {
	Topic() string
}

type OfferCreatedEvent struct {
	Offer model.Offer `json:"offer"`
}

func (OfferCreatedEvent) Topic() string { return TopicOfferCreated }

type BidAcceptedEvent struct {
	OfferID int64           `json:"offer_id"`
	Bidder  string          `json:"bidder"`
	Amount  decimal.Decimal `json:"amount"`
}

func (BidAcceptedEvent) Topic() string { return TopicBidAccepted }

type OfferClosedEvent struct {
	OfferID int64           `json:"offer_id"`
	Winner  string          `json:"winner"`
	Amount  decimal.Decimal `json:"amount"`
}

func (OfferClosedEvent) Topic() string { return TopicOfferClosed }

type OfferCancelledEvent struct {
	OfferID int64 `json:"offer_id"`
}

func (OfferCancelledEvent) Topic() string { return TopicOfferCancelled }

type RefundWithdrawnEvent struct {
	OfferID int64           `json:"offer_id"`
	Bidder  string          `json:"bidder"`
	Amount  decimal.Decimal `json:"amount"`
}

func (RefundWithdrawnEvent) Topic() string { return TopicRefundWithdrawn }

type MaxFeeChangedEvent struct {
	MaxFeeBps int64 `json:"max_fee_bps"`
}

func (MaxFeeChangedEvent) Topic() string { return TopicMaxFeeChanged }

type PausedEvent struct {
	Account string `json:"account"`
}

func (PausedEvent) Topic() string { return TopicPaused }

type UnpausedEvent struct {
	Account string `json:"account"`
}

func (UnpausedEvent) Topic() string { return TopicUnpaused }

type RoleGrantedEvent struct {
	Role    string `json:"role"`
	Address string `json:"address"`
}

func (RoleGrantedEvent) Topic() string { return TopicRoleGranted }

type RoleRevokedEvent struct {
	Role    string `json:"role"`
	Address string `json:"address"`
}

func (RoleRevokedEvent) Topic() string { return TopicRoleRevoked }

// eventLog collects the events of one in-flight operation until commit.
type eventLog struct {
	events []Event
}

func (l *eventLog) add(e Event) {
	l.events = append(l.events, e)
}
