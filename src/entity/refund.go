package entity

import "github.com/shopspring/decimal"

type WithdrawRefundReq struct {
	Caller string `json:"caller" binding:"required"`
}

type WithdrawRefundResp struct {
	OfferID int64           `json:"offer_id"`
	Amount  decimal.Decimal `json:"amount"`
}

// RefundInfo is one refund ledger entry. A zero amount with a set
// update_time is withdrawal history, not an absent entry.
type RefundInfo struct {
	OfferID    int64           `json:"offer_id"`
	Amount     decimal.Decimal `json:"amount"`
	UpdateTime int64           `json:"update_time,omitempty"`
}

type RefundsResp struct {
	Result []RefundInfo `json:"result"`
}
