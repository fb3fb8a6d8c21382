package service

import (
	"context"

	"NFTAuctionEngine/src/entity"
	"NFTAuctionEngine/src/service/svc"
	"NFTAuctionEngine/src/utils"

	"github.com/pkg/errors"
)

// GetActivities lists the event journal with optional offer and event-type
// filters.
func GetActivities(ctx context.Context, serverCtx *svc.ServerCtx, filter entity.ActivityFilterParams) (*entity.ActivitiesResp, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 || filter.PageSize > int(serverCtx.C.Api.MaxNum) {
		filter.PageSize = 20
	}
	eventTypes := utils.RemoveRepeatedElement(filter.EventTypes)

	activities, total, err := serverCtx.Dao.QueryActivities(ctx, filter.OfferID, eventTypes, filter.Page, filter.PageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed on query activities")
	}

	resp := &entity.ActivitiesResp{Count: total, Result: make([]entity.ActivityInfo, 0, len(activities))}
	for _, a := range activities {
		resp.Result = append(resp.Result, entity.ActivityInfo{
			ID:        a.ID,
			OfferID:   a.OfferID,
			AssetID:   a.AssetID,
			EventType: a.EventType,
			Actor:     a.Actor,
			Amount:    a.Amount,
			EventTime: a.CreateTime,
		})
	}
	return resp, nil
}
