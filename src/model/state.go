package model

// EngineState is the single-row global configuration mutated by admin
// operations: the pause flag and the fee cap.
type EngineState struct {
	ID         int64 `json:"id" gorm:"primaryKey"`
	Paused     bool  `json:"paused" gorm:"not null"`
	MaxFeeBps  int64 `json:"max_fee_bps" gorm:"not null"`
	UpdateTime int64 `json:"update_time" gorm:"not null"`
}

func EngineStateTableName() string {
	return "au_engine_state"
}

func (EngineState) TableName() string {
	return EngineStateTableName()
}

// EngineStateID is the id of the only row in the state table.
const EngineStateID = 1
