package model

import (
	"time"

	"github.com/google/uuid"
)

type DonasiModel struct {
	DonasiID uuid.UUID `gorm:"column:donasi_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donasi_id"`

	DonasiNama   string `gorm:"column:donasi_nama;type:varchar(50);not null" json:"donasi_nama"`
	DonasiJumlah int    `gorm:"column:donasi_jumlah;not null;check:donasi_jumlah > 0" json:"donasi_jumlah"`
	DonasiPesan  string `gorm:"column:donasi_pesan;type:text" json:"donasi_pesan"`

	DonasiStatus  string `gorm:"column:donasi_status;type:varchar(20);default:'pending'" json:"donasi_status"` // pending/paid/expired/canceled
	DonasiOrderID string `gorm:"column:donasi_order_id;type:varchar(100);not null;unique" json:"donasi_order_id"`

	DonasiPaymentToken   string `gorm:"column:donasi_payment_token;type:text" json:"donasi_payment_token"`
	DonasiPaymentGateway string `gorm:"column:donasi_payment_gateway;type:varchar(50);default:'midtrans'" json:"donasi_payment_gateway"`

	DonasiPaidAt    *time.Time `gorm:"column:donasi_paid_at" json:"donasi_paid_at,omitempty"`
	DonasiCreatedAt time.Time  `gorm:"column:donasi_created_at;autoCreateTime" json:"donasi_created_at"`
	DonasiUpdatedAt time.Time  `gorm:"column:donasi_updated_at;autoUpdateTime" json:"donasi_updated_at"`
}

func (DonasiModel) TableName() string {
	return "donasi"
}
