package router

import (
	"NFTAuctionEngine/src/middleware"
	"NFTAuctionEngine/src/service/svc"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with recovery, request logging and CORS,
// then mounts the v1 api.
func NewRouter(serverCtx *svc.ServerCtx) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.RecoverMiddleware())
	router.Use(middleware.RLog())
	router.Use(middleware.Cors())
	pprof.Register(router)
	initV1Route(router, serverCtx)
	return router
}
