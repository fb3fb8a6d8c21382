package utils

import "NFTAuctionEngine/src/model"

type StateNameMap map[int8]string

var StateToName = StateNameMap{
	model.OfferStateActive:    "active",
	model.OfferStateClosed:    "closed",
	model.OfferStateCancelled: "cancelled",
}

var NameToState = map[string]int8{
	"active":    model.OfferStateActive,
	"closed":    model.OfferStateClosed,
	"cancelled": model.OfferStateCancelled,
}
