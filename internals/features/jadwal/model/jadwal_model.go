package model

import (
	"time"

	"github.com/google/uuid"

	KhatibModel "alhidayah_backend/internals/features/khatib/model"
)

type JadwalModel struct {
	JadwalID            uuid.UUID  `gorm:"column:jadwal_id;type:uuid;default:gen_random_uuid();primaryKey" json:"jadwal_id"`
	JadwalTanggal       string     `gorm:"column:jadwal_tanggal;type:date;not null" json:"jadwal_tanggal"` // "YYYY-MM-DD"
	JadwalWaktu         string     `gorm:"column:jadwal_waktu;type:varchar(5)" json:"jadwal_waktu"`        // "HH:MM"
	JadwalJenisKegiatan string     `gorm:"column:jadwal_jenis_kegiatan;type:varchar(50);not null" json:"jadwal_jenis_kegiatan"`
	JadwalTopik         string     `gorm:"column:jadwal_topik;type:varchar(200);not null" json:"jadwal_topik"`
	JadwalKeterangan    string     `gorm:"column:jadwal_keterangan;type:text" json:"jadwal_keterangan"`
	JadwalKhatibID      *uuid.UUID `gorm:"column:jadwal_khatib_id;type:uuid;index" json:"jadwal_khatib_id,omitempty"`

	// Nama khatib TIDAK disimpan di tabel ini: selalu di-resolve lewat join
	// saat baca supaya tidak pernah divergen dari record khatib.
	Khatib *KhatibModel.KhatibModel `gorm:"foreignKey:JadwalKhatibID;references:KhatibID" json:"khatib,omitempty"`

	JadwalCreatedAt time.Time `gorm:"column:jadwal_created_at;default:current_timestamp" json:"jadwal_created_at"`
	JadwalUpdatedAt time.Time `gorm:"column:jadwal_updated_at;autoUpdateTime" json:"jadwal_updated_at"`
}

func (JadwalModel) TableName() string {
	return "jadwal"
}
