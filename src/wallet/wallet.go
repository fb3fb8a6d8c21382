package wallet

import (
	"context"

	"NFTAuctionEngine/src/dao"

	"github.com/shopspring/decimal"
)

// EscrowAccount is the ledger account that holds all bid deposits between
// acceptance and settlement or withdrawal.
const EscrowAccount = "auction_escrow"

// Ledger is the DB-backed funds vault: a balances table moved only by the
// engine operation currently executing. Calls made from inside an engine
// operation join its transaction through the context.
type Ledger struct {
	dao *dao.Dao
}

func NewLedger(d *dao.Dao) *Ledger {
	return &Ledger{dao: d}
}

// Collect pulls a bid deposit from the bidder into escrow. Fails when the
// bidder's balance does not cover the amount, aborting the whole bid.
func (l *Ledger) Collect(ctx context.Context, from string, amount decimal.Decimal) error {
	d := l.dao.Tx(ctx)
	if err := d.SubBalance(ctx, from, amount); err != nil {
		return err
	}
	return d.AddBalance(ctx, EscrowAccount, amount)
}

// Payout releases escrowed funds to a stakeholder or a refunded bidder.
func (l *Ledger) Payout(ctx context.Context, to string, amount decimal.Decimal) error {
	d := l.dao.Tx(ctx)
	if err := d.SubBalance(ctx, EscrowAccount, amount); err != nil {
		return err
	}
	return d.AddBalance(ctx, to, amount)
}

// Deposit funds an account from outside the engine (environment on-ramp).
func (l *Ledger) Deposit(ctx context.Context, to string, amount decimal.Decimal) error {
	return l.dao.Tx(ctx).AddBalance(ctx, to, amount)
}

// BalanceOf reports an account's ledger balance.
func (l *Ledger) BalanceOf(ctx context.Context, address string) (decimal.Decimal, error) {
	return l.dao.Tx(ctx).GetBalance(ctx, address)
}
