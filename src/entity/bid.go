package entity

import (
	"github.com/shopspring/decimal"
)

type MakeBidReq struct {
	Bidder string          `json:"bidder" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

type MakeBidResp struct {
	OfferID          int64           `json:"offer_id"`
	CurrentBidder    string          `json:"current_bidder"`
	CurrentBidAmount decimal.Decimal `json:"current_bid_amount"`
	State            string          `json:"state"`
}
