package router

import (
	"NFTAuctionEngine/src/controller"
	"NFTAuctionEngine/src/middleware"
	"NFTAuctionEngine/src/service/svc"

	"github.com/gin-gonic/gin"
)

func initV1Route(router *gin.Engine, serverCtx *svc.ServerCtx) {
	apiV1 := router.Group("/api/v1")

	offers := apiV1.Group("/offers")
	offers.POST("", controller.CreateOfferHandler(serverCtx))                    // create offer (artist/admin)
	offers.GET("", controller.OffersHandler(serverCtx))                          // list offers
	offers.GET("/:offer_id", controller.OfferDetailHandler(serverCtx))           // offer detail
	offers.POST("/:offer_id/bids", controller.MakeBidHandler(serverCtx))         // place a bid
	offers.POST("/:offer_id/close", controller.CloseOfferHandler(serverCtx))     // settle offer
	offers.POST("/:offer_id/cancel", controller.CancelOfferHandler(serverCtx))   // cancel expired bid-less offer
	offers.POST("/:offer_id/refund", controller.WithdrawRefundHandler(serverCtx)) // withdraw owed refund

	refunds := apiV1.Group("/refunds")
	refunds.GET("/:address", controller.RefundsHandler(serverCtx))            // all refund entries of a bidder
	refunds.GET("/:address/:offer_id", controller.RefundHandler(serverCtx))   // one refund entry

	activities := apiV1.Group("/activities")
	activities.GET("", middleware.CacheApi(serverCtx.KvStore, 30),
		controller.ActivitiesHandler(serverCtx)) // event journal

	admin := apiV1.Group("/admin")
	admin.POST("/max-fee", controller.ChangeMaxFeeHandler(serverCtx)) // change global fee cap
	admin.POST("/pause", controller.PauseHandler(serverCtx))          // pause the engine
	admin.POST("/unpause", controller.UnpauseHandler(serverCtx))      // resume the engine
	admin.POST("/roles", controller.GrantRoleHandler(serverCtx))      // grant capability role
	admin.DELETE("/roles", controller.RevokeRoleHandler(serverCtx))   // revoke capability role
}
