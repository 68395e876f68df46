package dto

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alhidayah_backend/internals/constants"
	"alhidayah_backend/internals/features/keuangan/model"
)

func TestValidateTransaksiFields(t *testing.T) {
	cases := []struct {
		name       string
		tanggal    string
		keterangan string
		kategori   string
		jenis      string
		jumlah     int
		wantErr    string
	}{
		{
			name:       "valid masuk",
			tanggal:    "2025-01-03",
			keterangan: "Infaq Jumat pekan pertama",
			kategori:   "Infaq Jumat",
			jenis:      constants.JenisMasuk,
			jumlah:     500000,
		},
		{
			name:       "valid keluar operasional",
			tanggal:    "2025-01-10",
			keterangan: "Beli alat kebersihan",
			kategori:   "Operasional",
			jenis:      constants.JenisKeluar,
			jumlah:     50000,
		},
		{
			name:       "keterangan kosong",
			tanggal:    "2025-01-03",
			keterangan: "   ",
			kategori:   "Infaq Jumat",
			jenis:      constants.JenisMasuk,
			jumlah:     1000,
			wantErr:    "Keterangan wajib diisi.",
		},
		{
			name:       "tanggal kosong",
			tanggal:    "",
			keterangan: "Infaq",
			kategori:   "Infaq Jumat",
			jenis:      constants.JenisMasuk,
			jumlah:     1000,
			wantErr:    "Tanggal wajib diisi.",
		},
		{
			name:       "jumlah nol",
			tanggal:    "2025-01-03",
			keterangan: "Infaq",
			kategori:   "Infaq Jumat",
			jenis:      constants.JenisMasuk,
			jumlah:     0,
			wantErr:    "Jumlah harus lebih dari 0.",
		},
		{
			name:       "jumlah negatif",
			tanggal:    "2025-01-03",
			keterangan: "Infaq",
			kategori:   "Infaq Jumat",
			jenis:      constants.JenisMasuk,
			jumlah:     -500,
			wantErr:    "Jumlah harus lebih dari 0.",
		},
		{
			name:       "jenis tidak dikenal",
			tanggal:    "2025-01-03",
			keterangan: "Infaq",
			kategori:   "Infaq Jumat",
			jenis:      "transfer",
			jumlah:     1000,
			wantErr:    "Jenis tidak valid.",
		},
		{
			name:       "kategori keluar dipakai untuk jenis masuk",
			tanggal:    "2025-01-03",
			keterangan: "Listrik",
			kategori:   "Listrik & Air",
			jenis:      constants.JenisMasuk,
			jumlah:     200000,
			wantErr:    "Kategori tidak valid.",
		},
		{
			name:       "kategori masuk dipakai untuk jenis keluar",
			tanggal:    "2025-01-03",
			keterangan: "Zakat keluar",
			kategori:   "Zakat",
			jenis:      constants.JenisKeluar,
			jumlah:     200000,
			wantErr:    "Kategori tidak valid.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTransaksiFields(tc.tanggal, tc.keterangan, tc.kategori, tc.jenis, tc.jumlah)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			fe, ok := err.(*fiber.Error)
			require.True(t, ok)
			assert.Equal(t, fiber.StatusBadRequest, fe.Code)
			assert.Equal(t, tc.wantErr, fe.Message)
		})
	}
}

// Skenario update partial: ganti jenis saja harus ditolak kalau kategori
// lama jadi tidak cocok dengan jenis baru.
func TestUpdateMergeRevalidatesPasanganJenisKategori(t *testing.T) {
	existing := model.TransaksiModel{
		TransaksiTanggal:    "2025-02-07",
		TransaksiKeterangan: "Kotak amal Jumat",
		TransaksiKategori:   "Kotak Amal",
		TransaksiJenis:      constants.JenisMasuk,
		TransaksiJumlah:     750000,
	}

	jenisBaru := constants.JenisKeluar
	req := TransaksiUpdateRequest{TransaksiJenis: &jenisBaru}

	merged := existing
	updates := req.ApplyTo(&merged)
	require.Equal(t, map[string]interface{}{"transaksi_jenis": "keluar"}, updates)

	err := ValidateTransaksiFields(
		merged.TransaksiTanggal, merged.TransaksiKeterangan,
		merged.TransaksiKategori, merged.TransaksiJenis, merged.TransaksiJumlah,
	)
	require.Error(t, err)
	assert.Equal(t, "Kategori tidak valid.", err.(*fiber.Error).Message)

	// record lama tidak boleh ikut berubah
	assert.Equal(t, constants.JenisMasuk, existing.TransaksiJenis)
}

func TestApplyToMergesOnlySentFields(t *testing.T) {
	existing := model.TransaksiModel{
		TransaksiTanggal:    "2025-02-07",
		TransaksiKeterangan: "Kotak amal",
		TransaksiKategori:   "Kotak Amal",
		TransaksiJenis:      constants.JenisMasuk,
		TransaksiJumlah:     750000,
	}

	jumlah := 800000
	keterangan := "  Kotak amal Jumat  "
	req := TransaksiUpdateRequest{
		TransaksiJumlah:     &jumlah,
		TransaksiKeterangan: &keterangan,
	}

	merged := existing
	updates := req.ApplyTo(&merged)

	assert.Len(t, updates, 2)
	assert.Equal(t, 800000, merged.TransaksiJumlah)
	assert.Equal(t, "Kotak amal Jumat", merged.TransaksiKeterangan)
	assert.Equal(t, "Kotak Amal", merged.TransaksiKategori)
	assert.Equal(t, "2025-02-07", merged.TransaksiTanggal)
}

func TestHitungRingkasan(t *testing.T) {
	rows := []model.TransaksiModel{
		{TransaksiJenis: constants.JenisMasuk, TransaksiJumlah: 500000},
		{TransaksiJenis: constants.JenisKeluar, TransaksiJumlah: 150000},
		{TransaksiJenis: constants.JenisMasuk, TransaksiJumlah: 250000},
		{TransaksiJenis: constants.JenisKeluar, TransaksiJumlah: 100000},
	}

	got := HitungRingkasan(rows)
	assert.Equal(t, 750000, got.Masuk)
	assert.Equal(t, 250000, got.Keluar)
	assert.Equal(t, 500000, got.Saldo)

	// urutan tidak berpengaruh
	reversed := []model.TransaksiModel{rows[3], rows[2], rows[1], rows[0]}
	assert.Equal(t, got, HitungRingkasan(reversed))
}

func TestHitungRingkasanKosong(t *testing.T) {
	got := HitungRingkasan(nil)
	assert.Zero(t, got.Masuk)
	assert.Zero(t, got.Keluar)
	assert.Zero(t, got.Saldo)
}

func TestHitungRingkasanSaldoNegatif(t *testing.T) {
	rows := []model.TransaksiModel{
		{TransaksiJenis: constants.JenisMasuk, TransaksiJumlah: 100000},
		{TransaksiJenis: constants.JenisKeluar, TransaksiJumlah: 300000},
	}
	assert.Equal(t, -200000, HitungRingkasan(rows).Saldo)
}
