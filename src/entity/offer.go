package entity

import "github.com/shopspring/decimal"

type CreateOfferReq struct {
	Caller             string          `json:"caller" binding:"required"`
	AssetID            string          `json:"asset_id" binding:"required"`
	CollectionAddress  string          `json:"collection_address" binding:"required"`
	MinBid             decimal.Decimal `json:"min_bid"`
	MaxBid             decimal.Decimal `json:"max_bid"`
	StartTime          int64           `json:"start_time"`
	EndTime            int64           `json:"end_time" binding:"required"`
	FeeBasisPoints     int64           `json:"fee_basis_points"`
	ArtistAddress      string          `json:"artist_address" binding:"required"`
	BeneficiaryAddress string          `json:"beneficiary_address" binding:"required"`
}

type OfferInfo struct {
	OfferID            int64           `json:"offer_id"`
	AssetID            string          `json:"asset_id"`
	CollectionAddress  string          `json:"collection_address"`
	MinBid             decimal.Decimal `json:"min_bid"`
	MaxBid             decimal.Decimal `json:"max_bid"`
	StartTime          int64           `json:"start_time"`
	EndTime            int64           `json:"end_time"`
	FeeBasisPoints     int64           `json:"fee_basis_points"`
	ArtistAddress      string          `json:"artist_address"`
	BeneficiaryAddress string          `json:"beneficiary_address"`
	CurrentBidder      string          `json:"current_bidder"`
	CurrentBidAmount   decimal.Decimal `json:"current_bid_amount"`
	State              string          `json:"state"`
}

type OffersResp struct {
	Result []OfferInfo `json:"result"`
	Count  int64       `json:"count"`
}

type CloseOfferReq struct {
	Caller string `json:"caller" binding:"required"`
}

type CancelOfferReq struct {
	Caller string `json:"caller" binding:"required"`
}
