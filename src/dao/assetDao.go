package dao

import (
	"context"
	"time"

	"NFTAuctionEngine/src/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GetAsset loads one custody record. Returns (nil, nil) when unknown.
func (d *Dao) GetAsset(ctx context.Context, collectionAddr, assetID string) (*model.Asset, error) {
	var asset model.Asset
	err := d.DB.WithContext(ctx).Table(model.AssetTableName()).
		Where("collection_address = ? and asset_id = ?", collectionAddr, assetID).
		Take(&asset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed on get asset")
	}
	return &asset, nil
}

// UpsertAsset registers or updates a custody record.
func (d *Dao) UpsertAsset(ctx context.Context, asset *model.Asset) error {
	existing, err := d.GetAsset(ctx, asset.CollectionAddress, asset.AssetID)
	if err != nil {
		return err
	}
	asset.UpdateTime = time.Now().UnixMilli()
	if existing == nil {
		if err := d.DB.WithContext(ctx).Table(model.AssetTableName()).Create(asset).Error; err != nil {
			return errors.Wrap(err, "failed on create asset")
		}
		return nil
	}
	err = d.DB.WithContext(ctx).Table(model.AssetTableName()).
		Where("id = ?", existing.ID).
		Updates(map[string]interface{}{
			"owner":       asset.Owner,
			"approved":    asset.Approved,
			"update_time": asset.UpdateTime,
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed on update asset")
	}
	return nil
}

// TransferAsset moves custody to a new owner and clears any approval.
func (d *Dao) TransferAsset(ctx context.Context, collectionAddr, assetID, to string) error {
	res := d.DB.WithContext(ctx).Table(model.AssetTableName()).
		Where("collection_address = ? and asset_id = ?", collectionAddr, assetID).
		Updates(map[string]interface{}{
			"owner":       to,
			"approved":    "",
			"update_time": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return errors.Wrap(res.Error, "failed on transfer asset")
	}
	if res.RowsAffected == 0 {
		return errors.New("asset not found")
	}
	return nil
}
