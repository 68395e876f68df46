package model

import (
	"time"

	"github.com/google/uuid"
)

type TransaksiModel struct {
	TransaksiID         uuid.UUID `gorm:"column:transaksi_id;type:uuid;default:gen_random_uuid();primaryKey" json:"transaksi_id"`
	TransaksiTanggal    string    `gorm:"column:transaksi_tanggal;type:date;not null" json:"transaksi_tanggal"` // "YYYY-MM-DD"
	TransaksiKeterangan string    `gorm:"column:transaksi_keterangan;type:text;not null" json:"transaksi_keterangan"`
	TransaksiKategori   string    `gorm:"column:transaksi_kategori;type:varchar(50);not null" json:"transaksi_kategori"`
	TransaksiJenis      string    `gorm:"column:transaksi_jenis;type:varchar(10);not null;check:transaksi_jenis IN ('masuk','keluar')" json:"transaksi_jenis"`
	TransaksiJumlah     int       `gorm:"column:transaksi_jumlah;not null;check:transaksi_jumlah > 0" json:"transaksi_jumlah"`
	TransaksiCreatedAt  time.Time `gorm:"column:transaksi_created_at;default:current_timestamp" json:"transaksi_created_at"`
	TransaksiUpdatedAt  time.Time `gorm:"column:transaksi_updated_at;autoUpdateTime" json:"transaksi_updated_at"`
}

func (TransaksiModel) TableName() string {
	return "transaksi"
}
