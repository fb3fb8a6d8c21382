package dao

import (
	"context"
	"time"

	"NFTAuctionEngine/src/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetBalance returns the funds ledger balance of one account; zero when the
// account has no row.
func (d *Dao) GetBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	var balance model.Balance
	err := d.DB.WithContext(ctx).Table(model.BalanceTableName()).
		Where("address = ?", address).
		Take(&balance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed on get balance")
	}
	return balance.Amount, nil
}

// AddBalance credits an account, creating the row when absent.
func (d *Dao) AddBalance(ctx context.Context, address string, amount decimal.Decimal) error {
	now := time.Now().UnixMilli()

	var balance model.Balance
	err := d.DB.WithContext(ctx).Table(model.BalanceTableName()).
		Where("address = ?", address).
		Take(&balance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		balance = model.Balance{
			Address:    address,
			Amount:     amount,
			UpdateTime: now,
		}
		if err := d.DB.WithContext(ctx).Table(model.BalanceTableName()).Create(&balance).Error; err != nil {
			return errors.Wrap(err, "failed on create balance")
		}
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed on get balance")
	}

	err = d.DB.WithContext(ctx).Table(model.BalanceTableName()).
		Where("address = ?", address).
		Updates(map[string]interface{}{
			"amount":      balance.Amount.Add(amount),
			"update_time": now,
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed on add balance")
	}
	return nil
}

// SubBalance debits an account. Fails when the balance does not cover the
// amount; the caller's transaction rolls back.
func (d *Dao) SubBalance(ctx context.Context, address string, amount decimal.Decimal) error {
	var balance model.Balance
	err := d.DB.WithContext(ctx).Table(model.BalanceTableName()).
		Where("address = ?", address).
		Take(&balance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.New("insufficient funds")
	}
	if err != nil {
		return errors.Wrap(err, "failed on get balance")
	}
	if balance.Amount.LessThan(amount) {
		return errors.New("insufficient funds")
	}

	err = d.DB.WithContext(ctx).Table(model.BalanceTableName()).
		Where("address = ?", address).
		Updates(map[string]interface{}{
			"amount":      balance.Amount.Sub(amount),
			"update_time": time.Now().UnixMilli(),
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed on sub balance")
	}
	return nil
}
