package service

import (
	"context"

	"NFTAuctionEngine/src/entity"
	"NFTAuctionEngine/src/service/svc"
	"NFTAuctionEngine/src/utils"
)

func ChangeMaxFee(ctx context.Context, serverCtx *svc.ServerCtx, req entity.ChangeMaxFeeReq) error {
	return serverCtx.Engine.ChangeMaxFee(ctx, utils.NormalizeAddress(req.Caller), req.MaxFeeBps)
}

func Pause(ctx context.Context, serverCtx *svc.ServerCtx, caller string) error {
	return serverCtx.Engine.Pause(ctx, utils.NormalizeAddress(caller))
}

func Unpause(ctx context.Context, serverCtx *svc.ServerCtx, caller string) error {
	return serverCtx.Engine.Unpause(ctx, utils.NormalizeAddress(caller))
}

func GrantRole(ctx context.Context, serverCtx *svc.ServerCtx, req entity.GrantRoleReq) error {
	return serverCtx.Engine.GrantRole(ctx, utils.NormalizeAddress(req.Caller), req.Role, utils.NormalizeAddress(req.Address))
}

func RevokeRole(ctx context.Context, serverCtx *svc.ServerCtx, req entity.RevokeRoleReq) error {
	return serverCtx.Engine.RevokeRole(ctx, utils.NormalizeAddress(req.Caller), req.Role, utils.NormalizeAddress(req.Address))
}
