package controller

import (
	"NFTAuctionEngine/src/entity"
	"NFTAuctionEngine/src/pkg/errcode"
	"NFTAuctionEngine/src/pkg/xhttp"
	"NFTAuctionEngine/src/service"
	"NFTAuctionEngine/src/service/svc"

	"github.com/gin-gonic/gin"
)

// ChangeMaxFeeHandler updates the global fee cap. Admin only.
func ChangeMaxFeeHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req entity.ChangeMaxFeeReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		if err := service.ChangeMaxFee(c.Request.Context(), serverCtx, req); err != nil {
			fail(c, err)
			return
		}
		xhttp.OkJson(c, struct {
			MaxFeeBps int64 `json:"max_fee_bps"`
		}{MaxFeeBps: req.MaxFeeBps})
	}
}

// PauseHandler sets the global pause flag. Admin only.
func PauseHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req entity.PauseReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		if err := service.Pause(c.Request.Context(), serverCtx, req.Caller); err != nil {
			fail(c, err)
			return
		}
		xhttp.OkJson(c, nil)
	}
}

// UnpauseHandler clears the global pause flag. Admin only.
func UnpauseHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req entity.PauseReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		if err := service.Unpause(c.Request.Context(), serverCtx, req.Caller); err != nil {
			fail(c, err)
			return
		}
		xhttp.OkJson(c, nil)
	}
}

// GrantRoleHandler grants a capability role. Admin only.
func GrantRoleHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req entity.GrantRoleReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		if err := service.GrantRole(c.Request.Context(), serverCtx, req); err != nil {
			fail(c, err)
			return
		}
		xhttp.OkJson(c, nil)
	}
}

// RevokeRoleHandler removes a capability role. Admin only.
func RevokeRoleHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req entity.RevokeRoleReq
		if err := c.ShouldBindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}
		if err := service.RevokeRole(c.Request.Context(), serverCtx, req); err != nil {
			fail(c, err)
			return
		}
		xhttp.OkJson(c, nil)
	}
}
