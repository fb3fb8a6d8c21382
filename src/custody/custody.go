package custody

import (
	"context"

	"NFTAuctionEngine/src/dao"
	"NFTAuctionEngine/src/model"

	"github.com/pkg/errors"
)

// Registry is the DB-backed asset-custody provider for single-ledger
// deployments: a table of who holds each asset and which operator may move
// it. Calls made from inside an engine operation join its transaction
// through the context.
type Registry struct {
	dao *dao.Dao
}

func NewRegistry(d *dao.Dao) *Registry {
	return &Registry{dao: d}
}

// Register records (or updates) custody of an asset.
func (r *Registry) Register(ctx context.Context, collectionAddr, assetID, owner, approved string) error {
	return r.dao.Tx(ctx).UpsertAsset(ctx, &model.Asset{
		CollectionAddress: collectionAddr,
		AssetID:           assetID,
		Owner:             owner,
		Approved:          approved,
	})
}

// IsApprovedFor reports whether the operator may transfer the asset.
func (r *Registry) IsApprovedFor(ctx context.Context, collectionAddr, assetID, operator string) (bool, error) {
	asset, err := r.dao.Tx(ctx).GetAsset(ctx, collectionAddr, assetID)
	if err != nil {
		return false, err
	}
	if asset == nil {
		return false, nil
	}
	return asset.Approved == operator || asset.Owner == operator, nil
}

// Transfer moves custody and clears the standing approval.
func (r *Registry) Transfer(ctx context.Context, collectionAddr, assetID, to string) error {
	if err := r.dao.Tx(ctx).TransferAsset(ctx, collectionAddr, assetID, to); err != nil {
		return errors.Wrap(err, "failed on custody transfer")
	}
	return nil
}

// OwnerOf reports the current holder of an asset.
func (r *Registry) OwnerOf(ctx context.Context, collectionAddr, assetID string) (string, error) {
	asset, err := r.dao.Tx(ctx).GetAsset(ctx, collectionAddr, assetID)
	if err != nil {
		return "", err
	}
	if asset == nil {
		return "", errors.New("asset not found")
	}
	return asset.Owner, nil
}
