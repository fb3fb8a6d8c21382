package controller

import (
	"strconv"

	"NFTAuctionEngine/src/entity"
	"NFTAuctionEngine/src/pkg/errcode"
	"NFTAuctionEngine/src/pkg/xhttp"
	"NFTAuctionEngine/src/service"
	"NFTAuctionEngine/src/service/svc"

	"github.com/gin-gonic/gin"
)

func offerIDParam(c *gin.Context) (int64, bool) {
	offerID, err := strconv.ParseInt(c.Param("offer_id"), 10, 64)
	if err != nil {
		xhttp.Error(c, errcode.ErrInvalidParams)
		return 0, false
	}
	return offerID, true
}

// CreateOfferHandler allocates a new offer. Artist or admin only.
func CreateOfferHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req entity.CreateOfferReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.CreateOffer(c.Request.Context(), serverCtx, req)
		if err != nil {
			fail(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// OffersHandler lists offers, newest first.
func OffersHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
		if page <= 0 {
			page = 1
		}
		if pageSize <= 0 || int64(pageSize) > serverCtx.C.Api.MaxNum {
			pageSize = 20
		}
		res, err := service.GetOffers(c.Request.Context(), serverCtx, c.Query("state"), page, pageSize)
		if err != nil {
			fail(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// OfferDetailHandler returns one offer.
func OfferDetailHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		offerID, ok := offerIDParam(c)
		if !ok {
			return
		}
		res, err := service.GetOfferDetail(c.Request.Context(), serverCtx, offerID)
		if err != nil {
			fail(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// CloseOfferHandler finalizes an offer: anyone after the window, admin any
// time.
func CloseOfferHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		offerID, ok := offerIDParam(c)
		if !ok {
			return
		}
		var req entity.CloseOfferReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		res, err := service.CloseOffer(c.Request.Context(), serverCtx, offerID, req.Caller)
		if err != nil {
			fail(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}

// CancelOfferHandler tears down an expired bid-less offer.
func CancelOfferHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		offerID, ok := offerIDParam(c)
		if !ok {
			return
		}
		var req entity.CancelOfferReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		if err := service.CancelOffer(c.Request.Context(), serverCtx, offerID, req.Caller); err != nil {
			fail(c, err)
			return
		}
		xhttp.OkJson(c, struct {
			OfferID int64 `json:"offer_id"`
		}{OfferID: offerID})
	}
}
