package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"alhidayah_backend/internals/features/donasi/model"
)

var (
	SnapClient snap.Client

	// disimpan untuk verifikasi signature_key di webhook
	serverKey string
)

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
func InitMidtrans(key string) {
	serverKey = key
	SnapClient.New(key, midtrans.Sandbox)
}

// GenerateSnapToken membuat token Snap Midtrans berdasarkan data donasi.
func GenerateSnapToken(d *model.DonasiModel) (token string, redirectURL string, err error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  d.DonasiOrderID,
			GrossAmt: int64(d.DonasiJumlah),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: d.DonasiNama,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}

	return resp.Token, resp.RedirectURL, nil
}
