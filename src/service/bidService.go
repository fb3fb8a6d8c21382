package service

import (
	"context"

	"NFTAuctionEngine/src/entity"
	"NFTAuctionEngine/src/pkg/xzap"
	"NFTAuctionEngine/src/service/svc"
	"NFTAuctionEngine/src/utils"

	"go.uber.org/zap"
)

// MakeBid places a bid and refreshes the offer leader snapshot cache.
func MakeBid(ctx context.Context, serverCtx *svc.ServerCtx, offerID int64, req entity.MakeBidReq) (*entity.MakeBidResp, error) {
	offer, err := serverCtx.Engine.MakeBid(ctx, offerID, utils.NormalizeAddress(req.Bidder), req.Amount)
	if err != nil {
		return nil, err
	}

	// snapshot cache is advisory; a failed write must not fail the bid
	if err := serverCtx.Cached.CacheOfferLeader(offer.ID, offer.CurrentBidder, offer.CurrentBidAmount); err != nil {
		xzap.WithContext(ctx).Warn("failed on cache offer leader", zap.Int64("offer_id", offer.ID), zap.Error(err))
	}

	return &entity.MakeBidResp{
		OfferID:          offer.ID,
		CurrentBidder:    offer.CurrentBidder,
		CurrentBidAmount: offer.CurrentBidAmount,
		State:            utils.StateToName[offer.State],
	}, nil
}
