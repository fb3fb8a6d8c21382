package service

import (
	"context"

	"NFTAuctionEngine/src/entity"
	"NFTAuctionEngine/src/service/svc"
	"NFTAuctionEngine/src/utils"

	"github.com/shopspring/decimal"
)

// WithdrawRefund pays out everything owed to the caller on one offer.
func WithdrawRefund(ctx context.Context, serverCtx *svc.ServerCtx, offerID int64, caller string) (*entity.WithdrawRefundResp, error) {
	amount, err := serverCtx.Engine.WithdrawRefund(ctx, offerID, utils.NormalizeAddress(caller))
	if err != nil {
		return nil, err
	}
	return &entity.WithdrawRefundResp{OfferID: offerID, Amount: amount}, nil
}

// GetRefunds lists every refund entry of a bidder.
func GetRefunds(ctx context.Context, serverCtx *svc.ServerCtx, bidder string) (*entity.RefundsResp, error) {
	refunds, err := serverCtx.Engine.GetRefunds(ctx, utils.NormalizeAddress(bidder))
	if err != nil {
		return nil, err
	}
	resp := &entity.RefundsResp{Result: make([]entity.RefundInfo, 0, len(refunds))}
	for _, r := range refunds {
		resp.Result = append(resp.Result, entity.RefundInfo{
			OfferID:    r.OfferID,
			Amount:     r.Amount,
			UpdateTime: r.UpdateTime,
		})
	}
	return resp, nil
}

// GetRefund returns the amount owed to a bidder on one offer.
func GetRefund(ctx context.Context, serverCtx *svc.ServerCtx, offerID int64, bidder string) (decimal.Decimal, error) {
	return serverCtx.Engine.GetRefund(ctx, offerID, utils.NormalizeAddress(bidder))
}
