package entity

type ChangeMaxFeeReq struct {
	Caller    string `json:"caller" binding:"required"`
	MaxFeeBps int64  `json:"max_fee_bps"`
}

type PauseReq struct {
	Caller string `json:"caller" binding:"required"`
}

type GrantRoleReq struct {
	Caller  string `json:"caller" binding:"required"`
	Role    string `json:"role" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type RevokeRoleReq struct {
	Caller  string `json:"caller" binding:"required"`
	Role    string `json:"role" binding:"required"`
	Address string `json:"address" binding:"required"`
}
