package entity

import "github.com/shopspring/decimal"

type ActivityFilterParams struct {
	OfferID    int64    `json:"offer_id"`
	EventTypes []string `json:"event_types"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
}

type ActivityInfo struct {
	ID        string          `json:"id"`
	OfferID   int64           `json:"offer_id"`
	AssetID   string          `json:"asset_id"`
	EventType string          `json:"event_type"`
	Actor     string          `json:"actor"`
	Amount    decimal.Decimal `json:"amount"`
	EventTime int64           `json:"event_time"`
}

type ActivitiesResp struct {
	Result []ActivityInfo `json:"result"`
	Count  int64          `json:"count"`
}
