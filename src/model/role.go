package model

// Capability roles. Admin implicitly satisfies Artist.
const (
	RoleAdmin  = "admin"
	RoleArtist = "artist"
)

// Role is one (role, address) capability grant.
type Role struct {
	ID         int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Role       string `json:"role" gorm:"type:varchar(32);not null;uniqueIndex:uk_role_address"`
	Address    string `json:"address" gorm:"type:varchar(66);not null;uniqueIndex:uk_role_address"`
	CreateTime int64  `json:"create_time" gorm:"not null"`
}

func RoleTableName() string {
	return "au_roles"
}

func (Role) TableName() string {
	return RoleTableName()
}
