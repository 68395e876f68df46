package model

import (
	"time"

	"github.com/google/uuid"
)

type KhatibModel struct {
	KhatibID           uuid.UUID `gorm:"column:khatib_id;type:uuid;default:gen_random_uuid();primaryKey" json:"khatib_id"`
	KhatibNama         string    `gorm:"column:khatib_nama;type:varchar(100);not null" json:"khatib_nama"`
	KhatibGelar        string    `gorm:"column:khatib_gelar;type:varchar(100)" json:"khatib_gelar"`
	KhatibSpesialisasi string    `gorm:"column:khatib_spesialisasi;type:varchar(100);not null" json:"khatib_spesialisasi"`
	KhatibNoHp         string    `gorm:"column:khatib_no_hp;type:varchar(20)" json:"khatib_no_hp"`
	KhatibEmail        string    `gorm:"column:khatib_email;type:varchar(100)" json:"khatib_email"`
	KhatibAktif        bool      `gorm:"column:khatib_aktif;not null;default:true" json:"khatib_aktif"`
	KhatibFotoURL      *string   `gorm:"column:khatib_foto_url;type:text" json:"khatib_foto_url,omitempty"`
	KhatibCreatedAt    time.Time `gorm:"column:khatib_created_at;default:current_timestamp" json:"khatib_created_at"`
	KhatibUpdatedAt    time.Time `gorm:"column:khatib_updated_at;autoUpdateTime" json:"khatib_updated_at"`
}

func (KhatibModel) TableName() string {
	return "khatib"
}
