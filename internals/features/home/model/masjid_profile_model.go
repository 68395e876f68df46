package model

import (
	"time"

	"gorm.io/datatypes"
)

// MasjidProfileModel adalah profil tunggal masjid (satu baris saja).
// Rekening dan sosmed disimpan sebagai jsonb agar mudah ditambah
// tanpa migrasi kolom.
type MasjidProfileModel struct {
	MasjidProfileID int `gorm:"column:masjid_profile_id;primaryKey;default:1" json:"masjid_profile_id"`

	MasjidProfileNama     string `gorm:"column:masjid_profile_nama;type:varchar(100);not null" json:"masjid_profile_nama"`
	MasjidProfileAlamat   string `gorm:"column:masjid_profile_alamat;type:text" json:"masjid_profile_alamat"`
	MasjidProfileSambutan string `gorm:"column:masjid_profile_sambutan;type:text" json:"masjid_profile_sambutan"`

	// Koordinat dipakai untuk mengambil jadwal sholat dari AlAdhan
	MasjidProfileLatitude  float64 `gorm:"column:masjid_profile_latitude" json:"masjid_profile_latitude"`
	MasjidProfileLongitude float64 `gorm:"column:masjid_profile_longitude" json:"masjid_profile_longitude"`

	MasjidProfileRekening datatypes.JSON `gorm:"column:masjid_profile_rekening;type:jsonb" json:"masjid_profile_rekening,omitempty"`
	MasjidProfileSosmed   datatypes.JSON `gorm:"column:masjid_profile_sosmed;type:jsonb" json:"masjid_profile_sosmed,omitempty"`

	MasjidProfileUpdatedAt time.Time `gorm:"column:masjid_profile_updated_at;autoUpdateTime" json:"masjid_profile_updated_at"`
}

func (MasjidProfileModel) TableName() string {
	return "masjid_profile"
}
