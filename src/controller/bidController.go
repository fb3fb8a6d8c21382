package controller

import (
	"NFTAuctionEngine/src/entity"
	"NFTAuctionEngine/src/pkg/errcode"
	"NFTAuctionEngine/src/pkg/xhttp"
	"NFTAuctionEngine/src/service"
	"NFTAuctionEngine/src/service/svc"

	"github.com/gin-gonic/gin"
)

// MakeBidHandler places a bid on an offer.
func MakeBidHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		offerID, ok := offerIDParam(c)
		if !ok {
			return
		}
		var req entity.MakeBidReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		if !req.Amount.IsPositive() {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.MakeBid(c.Request.Context(), serverCtx, offerID, req)
		if err != nil {
			fail(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}
