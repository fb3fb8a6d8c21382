package model

// Asset is one custody record of the DB-backed asset registry: who holds a
// uniquely identified asset and which operator is approved to move it.
type Asset struct {
	ID                int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	CollectionAddress string `json:"collection_address" gorm:"type:varchar(66);not null;uniqueIndex:uk_asset"`
	AssetID           string `json:"asset_id" gorm:"type:varchar(128);not null;uniqueIndex:uk_asset"`
	Owner             string `json:"owner" gorm:"type:varchar(66);not null"`
	Approved          string `json:"approved" gorm:"type:varchar(66)"`
	UpdateTime        int64  `json:"update_time" gorm:"not null"`
}

func AssetTableName() string {
	return "au_assets"
}

func (Asset) TableName() string {
	return AssetTableName()
}
