package dao

import (
	"context"
	"time"

	"NFTAuctionEngine/src/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GetEngineState loads the single global state row.
func (d *Dao) GetEngineState(ctx context.Context) (*model.EngineState, error) {
	var state model.EngineState
	err := d.DB.WithContext(ctx).Table(model.EngineStateTableName()).
		Where("id = ?", model.EngineStateID).
		Take(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed on get engine state")
	}
	return &state, nil
}

// InitEngineState seeds the state row on first boot; an existing row wins
// over the construction-time config.
func (d *Dao) InitEngineState(ctx context.Context, maxFeeBps int64) error {
	state, err := d.GetEngineState(ctx)
	if err != nil {
		return err
	}
	if state != nil {
		return nil
	}
	row := &model.EngineState{
		ID:         model.EngineStateID,
		Paused:     false,
		MaxFeeBps:  maxFeeBps,
		UpdateTime: time.Now().UnixMilli(),
	}
	if err := d.DB.WithContext(ctx).Table(model.EngineStateTableName()).Create(row).Error; err != nil {
		return errors.Wrap(err, "failed on init engine state")
	}
	return nil
}

// SetPaused flips the global pause flag.
func (d *Dao) SetPaused(ctx context.Context, paused bool) error {
	err := d.DB.WithContext(ctx).Table(model.EngineStateTableName()).
		Where("id = ?", model.EngineStateID).
		Updates(map[string]interface{}{
			"paused":      paused,
			"update_time": time.Now().UnixMilli(),
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed on set paused flag")
	}
	return nil
}

// SetMaxFeeBps updates the global fee cap.
func (d *Dao) SetMaxFeeBps(ctx context.Context, maxFeeBps int64) error {
	err := d.DB.WithContext(ctx).Table(model.EngineStateTableName()).
		Where("id = ?", model.EngineStateID).
		Updates(map[string]interface{}{
			"max_fee_bps": maxFeeBps,
			"update_time": time.Now().UnixMilli(),
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed on set max fee")
	}
	return nil
}
