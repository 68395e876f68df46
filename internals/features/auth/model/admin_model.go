package model

import (
	"time"

	"github.com/google/uuid"
)

type AdminModel struct {
	AdminID        uuid.UUID `gorm:"column:admin_id;type:uuid;default:gen_random_uuid();primaryKey" json:"admin_id"`
	AdminUsername  string    `gorm:"column:admin_username;type:varchar(50);not null;unique" json:"admin_username"`
	AdminPassword  string    `gorm:"column:admin_password;type:text;not null" json:"-"` // bcrypt hash
	AdminNama      string    `gorm:"column:admin_nama;type:varchar(100)" json:"admin_nama"`
	AdminCreatedAt time.Time `gorm:"column:admin_created_at;default:current_timestamp" json:"admin_created_at"`
}

func (AdminModel) TableName() string {
	return "admins"
}
