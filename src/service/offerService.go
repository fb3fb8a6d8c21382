package service

import (
	"context"

	"NFTAuctionEngine/src/engine"
	"NFTAuctionEngine/src/entity"
	"NFTAuctionEngine/src/model"
	"NFTAuctionEngine/src/service/svc"
	"NFTAuctionEngine/src/utils"
)

func toOfferInfo(offer *model.Offer) entity.OfferInfo {
	return entity.OfferInfo{
		OfferID:            offer.ID,
		AssetID:            offer.AssetID,
		CollectionAddress:  offer.CollectionAddress,
		MinBid:             offer.MinBid,
		MaxBid:             offer.MaxBid,
		StartTime:          offer.StartTime,
		EndTime:            offer.EndTime,
		FeeBasisPoints:     offer.FeeBasisPoints,
		ArtistAddress:      offer.ArtistAddress,
		BeneficiaryAddress: offer.BeneficiaryAddress,
		CurrentBidder:      offer.CurrentBidder,
		CurrentBidAmount:   offer.CurrentBidAmount,
		State:              utils.StateToName[offer.State],
	}
}

// CreateOffer runs the create operation and returns the allocated offer.
func CreateOffer(ctx context.Context, serverCtx *svc.ServerCtx, req entity.CreateOfferReq) (*entity.OfferInfo, error) {
	offer, err := serverCtx.Engine.CreateOffer(ctx, engine.CreateOfferParams{
		Caller:             utils.NormalizeAddress(req.Caller),
		AssetID:            req.AssetID,
		CollectionAddress:  utils.NormalizeAddress(req.CollectionAddress),
		MinBid:             req.MinBid,
		MaxBid:             req.MaxBid,
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		FeeBasisPoints:     req.FeeBasisPoints,
		ArtistAddress:      utils.NormalizeAddress(req.ArtistAddress),
		BeneficiaryAddress: utils.NormalizeAddress(req.BeneficiaryAddress),
	})
	if err != nil {
		return nil, err
	}
	info := toOfferInfo(offer)
	return &info, nil
}

// GetOffers lists offers, optionally filtered by state name.
func GetOffers(ctx context.Context, serverCtx *svc.ServerCtx, stateName string, page, pageSize int) (*entity.OffersResp, error) {
	var state *int8
	if stateName != "" {
		if s, ok := utils.NameToState[stateName]; ok {
			state = &s
		}
	}
	offers, total, err := serverCtx.Dao.QueryOffers(ctx, state, page, pageSize)
	if err != nil {
		return nil, err
	}
	resp := &entity.OffersResp{Count: total, Result: make([]entity.OfferInfo, 0, len(offers))}
	for i := range offers {
		resp.Result = append(resp.Result, toOfferInfo(&offers[i]))
	}
	return resp, nil
}

// GetOfferDetail returns one offer.
func GetOfferDetail(ctx context.Context, serverCtx *svc.ServerCtx, offerID int64) (*entity.OfferInfo, error) {
	offer, err := serverCtx.Engine.GetOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	info := toOfferInfo(offer)
	return &info, nil
}

// CloseOffer settles an offer (or cancels a bid-less expired one).
func CloseOffer(ctx context.Context, serverCtx *svc.ServerCtx, offerID int64, caller string) (*entity.OfferInfo, error) {
	offer, err := serverCtx.Engine.CloseOffer(ctx, offerID, utils.NormalizeAddress(caller))
	if err != nil {
		return nil, err
	}
	info := toOfferInfo(offer)
	return &info, nil
}

// CancelOffer tears down an expired bid-less offer.
func CancelOffer(ctx context.Context, serverCtx *svc.ServerCtx, offerID int64, caller string) error {
	return serverCtx.Engine.CancelOffer(ctx, offerID, utils.NormalizeAddress(caller))
}
