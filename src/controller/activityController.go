package controller

import (
	"encoding/json"

	"NFTAuctionEngine/src/entity"
	"NFTAuctionEngine/src/pkg/errcode"
	"NFTAuctionEngine/src/pkg/xhttp"
	"NFTAuctionEngine/src/service"
	"NFTAuctionEngine/src/service/svc"

	"github.com/gin-gonic/gin"
)

// ActivitiesHandler lists the engine's event journal. Filters arrive as a
// json blob in the filters query param.
func ActivitiesHandler(serverCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter entity.ActivityFilterParams
		if filterParam := c.Query("filters"); filterParam != "" {
			if err := json.Unmarshal([]byte(filterParam), &filter); err != nil {
				xhttp.Error(c, errcode.ErrInvalidParams)
				return
			}
		}
		res, err := service.GetActivities(c.Request.Context(), serverCtx, filter)
		if err != nil {
			fail(c, err)
			return
		}
		xhttp.OkJson(c, res)
	}
}
