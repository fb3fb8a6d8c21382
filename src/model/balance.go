package model

import (
	"github.com/shopspring/decimal"
)

// Balance is one account row of the funds ledger used by the DB-backed
// funds vault. Amounts are in the smallest indivisible unit.
type Balance struct {
	Address    string          `json:"address" gorm:"type:varchar(66);primaryKey"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(78,0);not null"`
	UpdateTime int64           `json:"update_time" gorm:"not null"`
}

func BalanceTableName() string {
	return "au_balances"
}

func (Balance) TableName() string {
	return BalanceTableName()
}
