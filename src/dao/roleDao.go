package dao

import (
	"context"
	"time"

	"NFTAuctionEngine/src/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// HasRole reports whether the address holds the given role.
func (d *Dao) HasRole(ctx context.Context, role, address string) (bool, error) {
	var count int64
	err := d.DB.WithContext(ctx).Table(model.RoleTableName()).
		Where("role = ? and address = ?", role, address).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed on query role")
	}
	return count > 0, nil
}

// GrantRole inserts a (role, address) grant. Granting twice is a no-op.
func (d *Dao) GrantRole(ctx context.Context, role, address string) error {
	has, err := d.HasRole(ctx, role, address)
	if err != nil {
		return err
	}
	if has {
		return nil
	}
	grant := &model.Role{
		Role:       role,
		Address:    address,
		CreateTime: time.Now().UnixMilli(),
	}
	if err := d.DB.WithContext(ctx).Table(model.RoleTableName()).Create(grant).Error; err != nil {
		return errors.Wrap(err, "failed on grant role")
	}
	return nil
}

// RevokeRole removes a (role, address) grant if present.
func (d *Dao) RevokeRole(ctx context.Context, role, address string) error {
	err := d.DB.WithContext(ctx).Table(model.RoleTableName()).
		Where("role = ? and address = ?", role, address).
		Delete(&model.Role{}).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrap(err, "failed on revoke role")
	}
	return nil
}
