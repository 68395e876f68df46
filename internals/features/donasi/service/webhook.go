package service

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"gorm.io/gorm"

	"alhidayah_backend/internals/constants"
	"alhidayah_backend/internals/features/donasi/model"
	transaksiModel "alhidayah_backend/internals/features/keuangan/model"
	helper "alhidayah_backend/internals/helpers"
)

// HandleDonasiStatusWebhook memperbarui status donasi berdasarkan notifikasi
// Midtrans. Pembayaran yang berhasil otomatis dicatat sebagai pemasukan kas
// dengan kategori "Donasi Transfer".
func HandleDonasiStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, _ := body["order_id"].(string)
	transactionStatus, _ := body["transaction_status"].(string)
	if orderID == "" || transactionStatus == "" {
		return fmt.Errorf("payload webhook tidak lengkap")
	}
	if serverKey != "" && !signatureValid(body, serverKey) {
		return fmt.Errorf("signature webhook tidak valid: order_id=%s", orderID)
	}

	var donasi model.DonasiModel
	if err := db.Where("donasi_order_id = ?", orderID).First(&donasi).Error; err != nil {
		return fmt.Errorf("donasi tidak ditemukan: %w", err)
	}

	switch transactionStatus {
	case "settlement", "capture":
		// Webhook Midtrans bisa terkirim lebih dari sekali untuk order yang
		// sama, jadi pencatatan kas hanya dilakukan pada transisi pertama.
		if donasi.DonasiStatus == "paid" {
			return nil
		}
		return db.Transaction(func(tx *gorm.DB) error {
			now := helper.NowJakarta()
			updates := map[string]interface{}{
				"donasi_status":  "paid",
				"donasi_paid_at": now,
			}
			if err := tx.Model(&donasi).Updates(updates).Error; err != nil {
				return fmt.Errorf("gagal memperbarui status donasi: %w", err)
			}

			masuk := transaksiModel.TransaksiModel{
				TransaksiTanggal:    now.Format("2006-01-02"),
				TransaksiKeterangan: "Donasi online - " + donasi.DonasiNama,
				TransaksiKategori:   "Donasi Transfer",
				TransaksiJenis:      constants.JenisMasuk,
				TransaksiJumlah:     donasi.DonasiJumlah,
			}
			if err := tx.Create(&masuk).Error; err != nil {
				return fmt.Errorf("gagal mencatat pemasukan donasi: %w", err)
			}
			return nil
		})
	case "expire":
		return setStatus(db, &donasi, "expired")
	case "cancel", "deny":
		return setStatus(db, &donasi, "canceled")
	default:
		// pending dan status lain dibiarkan apa adanya
		return nil
	}
}

// signatureValid memverifikasi signature_key dari Midtrans:
// sha512(order_id + status_code + gross_amount + server_key).
func signatureValid(body map[string]interface{}, key string) bool {
	sig, _ := body["signature_key"].(string)
	orderID, _ := body["order_id"].(string)
	statusCode, _ := body["status_code"].(string)
	grossAmount, _ := body["gross_amount"].(string)
	if sig == "" || statusCode == "" || grossAmount == "" {
		return false
	}
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + key))
	expected := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(expected), []byte(sig)) == 1
}

func setStatus(db *gorm.DB, donasi *model.DonasiModel, status string) error {
	if err := db.Model(donasi).Update("donasi_status", status).Error; err != nil {
		return fmt.Errorf("gagal memperbarui status donasi: %w", err)
	}
	return nil
}
