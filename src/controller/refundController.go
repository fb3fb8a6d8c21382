package controller

import (
	"NFTAuctionEngine/src/entity"
	"NFTAuctionEngine/src/pkg/errcode"
	"NFTAuctionEngine/src/pkg/xhttp"
	"NFTAuctionEngine/src/service"
	"NFTAuctionEngine/src/service/svc"

	"github.com/gin-gonic/gin"
)

// WithdrawRefundHandler pays out everything owed to the caller on an offer.
func WithdrawRefundHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		offerID, ok := offerIDParam(c)
		if !ok {
			return
		}
		var req entity.WithdrawRefundReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.WithdrawRefund(c.Request.Context(), serverCtx, offerID, req.Caller)
		if err != nil {
			fail(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// RefundsHandler lists every refund entry of a bidder.
func RefundsHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		bidder := c.Param("address")
		if bidder == "" {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.GetRefunds(c.Request.Context(), serverCtx, bidder)
		if err != nil {
			fail(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// RefundHandler returns the amount owed to a bidder on one offer.
func RefundHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		bidder := c.Param("address")
		offerID, ok := offerIDParam(c)
		if !ok {
			return
		}
		amount, err := service.GetRefund(c.Request.Context(), serverCtx, offerID, bidder)
		if err != nil {
			fail(c, err)
			return
		}
		xhttp.OkJson(c, entity.RefundInfo{OfferID: offerID, Amount: amount})
	}
}
