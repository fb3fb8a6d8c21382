package engine

import (
	"context"

	"NFTAuctionEngine/src/dao"
	"NFTAuctionEngine/src/model"

	"github.com/shopspring/decimal"
)

// requireNotPaused is the guard consulted by every non-admin mutating
// operation.
func (e *Engine) requireNotPaused(ctx context.Context, d *dao.Dao) error {
	state, err := e.engineState(ctx, d)
	if err != nil {
		return err
	}
	if state.Paused {
		return ErrPaused
	}
	return nil
}

// requireAdmin gates the admin-only operations.
func (e *Engine) requireAdmin(ctx context.Context, d *dao.Dao, caller string) error {
	has, err := d.HasRole(ctx, model.RoleAdmin, caller)
	if err != nil {
		return err
	}
	if !has {
		return ErrAdminOnly
	}
	return nil
}

// requireArtistOrAdmin gates offer creation. Admin implicitly satisfies the
// artist capability.
func (e *Engine) requireArtistOrAdmin(ctx context.Context, d *dao.Dao, caller string) error {
	isAdmin, err := d.HasRole(ctx, model.RoleAdmin, caller)
	if err != nil {
		return err
	}
	if isAdmin {
		return nil
	}
	isArtist, err := d.HasRole(ctx, model.RoleArtist, caller)
	if err != nil {
		return err
	}
	if !isArtist {
		return ErrArtistOrAdminOnly
	}
	return nil
}

// HasRole reports whether an address holds a capability role.
func (e *Engine) HasRole(ctx context.Context, role, address string) (bool, error) {
	return e.dao.HasRole(ctx, role, address)
}

// Paused reports the global pause flag.
func (e *Engine) Paused(ctx context.Context) (bool, error) {
	state, err := e.engineState(ctx, e.dao)
	if err != nil {
		return false, err
	}
	return state.Paused, nil
}

// MaxFeeBps reports the configured fee cap.
func (e *Engine) MaxFeeBps(ctx context.Context) (int64, error) {
	state, err := e.engineState(ctx, e.dao)
	if err != nil {
		return 0, err
	}
	return state.MaxFeeBps, nil
}

// Pause sets the global pause flag. Admin only; pausing twice fails.
func (e *Engine) Pause(ctx context.Context, caller string) error {
	return e.run(ctx, func(ctx context.Context, d *dao.Dao, ev *eventLog) error {
		if err := e.requireAdmin(ctx, d, caller); err != nil {
			return err
		}
		state, err := e.engineState(ctx, d)
		if err != nil {
			return err
		}
		if state.Paused {
			return ErrPaused
		}
		if err := d.SetPaused(ctx, true); err != nil {
			return err
		}
		if err := d.AddActivity(ctx, 0, "", model.ActivityPaused, caller, decimal.Zero); err != nil {
			return err
		}
		ev.add(PausedEvent{Account: caller})
		return nil
	})
}

// Unpause clears the global pause flag. Admin only; unpausing a running
// engine fails.
func (e *Engine) Unpause(ctx context.Context, caller string) error {
	return e.run(ctx, func(ctx context.Context, d *dao.Dao, ev *eventLog) error {
		if err := e.requireAdmin(ctx, d, caller); err != nil {
			return err
		}
		state, err := e.engineState(ctx, d)
		if err != nil {
			return err
		}
		if !state.Paused {
			return ErrNotPaused
		}
		if err := d.SetPaused(ctx, false); err != nil {
			return err
		}
		if err := d.AddActivity(ctx, 0, "", model.ActivityUnpaused, caller, decimal.Zero); err != nil {
			return err
		}
		ev.add(UnpausedEvent{Account: caller})
		return nil
	})
}

// ChangeMaxFee updates the global fee cap. Admin only.
func (e *Engine) ChangeMaxFee(ctx context.Context, caller string, maxFeeBps int64) error {
	return e.run(ctx, func(ctx context.Context, d *dao.Dao, ev *eventLog) error {
		if err := e.requireAdmin(ctx, d, caller); err != nil {
			return err
		}
		if maxFeeBps < 0 || maxFeeBps > 10000 {
			return ErrFeeTooHigh
		}
		if err := d.SetMaxFeeBps(ctx, maxFeeBps); err != nil {
			return err
		}
		if err := d.AddActivity(ctx, 0, "", model.ActivityMaxFeeChanged, caller, decimal.NewFromInt(maxFeeBps)); err != nil {
			return err
		}
		ev.add(MaxFeeChangedEvent{MaxFeeBps: maxFeeBps})
		return nil
	})
}

// GrantRole grants a capability role. Admin only.
func (e *Engine) GrantRole(ctx context.Context, caller, role, address string) error {
	return e.run(ctx, func(ctx context.Context, d *dao.Dao, ev *eventLog) error {
		if err := e.requireAdmin(ctx, d, caller); err != nil {
			return err
		}
		if role != model.RoleAdmin && role != model.RoleArtist {
			return ErrUnknownRole
		}
		if err := d.GrantRole(ctx, role, address); err != nil {
			return err
		}
		if err := d.AddActivity(ctx, 0, "", model.ActivityRoleGranted, address, decimal.Zero); err != nil {
			return err
		}
		ev.add(RoleGrantedEvent{Role: role, Address: address})
		return nil
	})
}

// RevokeRole removes a capability role. Admin only.
func (e *Engine) RevokeRole(ctx context.Context, caller, role, address string) error {
	return e.run(ctx, func(ctx context.Context, d *dao.Dao, ev *eventLog) error {
		if err := e.requireAdmin(ctx, d, caller); err != nil {
			return err
		}
		if role != model.RoleAdmin && role != model.RoleArtist {
			return ErrUnknownRole
		}
		if err := d.RevokeRole(ctx, role, address); err != nil {
			return err
		}
		if err := d.AddActivity(ctx, 0, "", model.ActivityRoleRevoked, address, decimal.Zero); err != nil {
			return err
		}
		ev.add(RoleRevokedEvent{Role: role, Address: address})
		return nil
	})
}
