package engine

import (
	"context"

	"github.com/shopspring/decimal"
)

// AssetCustody is the external asset-custody collaborator: it can transfer
// a uniquely identified asset and report whether the engine is entitled to
// move it. Implementations called from inside an engine operation receive a
// context carrying the operation's transaction.
type AssetCustody interface {
	IsApprovedFor(ctx context.Context, collectionAddr, assetID, operator string) (bool, error)
	Transfer(ctx context.Context, collectionAddr, assetID, to string) error
}

// FundsVault moves value between the environment's accounts and the
// engine's escrow. Collect pulls a bid deposit in; Payout pushes funds out
// on settlement or refund withdrawal.
type FundsVault interface {
	Collect(ctx context.Context, from string, amount decimal.Decimal) error
	Payout(ctx context.Context, to string, amount decimal.Decimal) error
}
