package database

import (
	"log"

	authModel "alhidayah_backend/internals/features/auth/model"
	donasiModel "alhidayah_backend/internals/features/donasi/model"
	homeModel "alhidayah_backend/internals/features/home/model"
	jadwalModel "alhidayah_backend/internals/features/jadwal/model"
	khatibModel "alhidayah_backend/internals/features/khatib/model"
	transaksiModel "alhidayah_backend/internals/features/keuangan/model"
	programModel "alhidayah_backend/internals/features/program/model"
)

// Migrate menjalankan AutoMigrate untuk seluruh tabel aplikasi.
// Urutan penting: khatib dulu karena jadwal punya FK ke khatib.
func Migrate() {
	if err := DB.AutoMigrate(
		&khatibModel.KhatibModel{},
		&jadwalModel.JadwalModel{},
		&transaksiModel.TransaksiModel{},
		&programModel.ProgramImageModel{},
		&authModel.AdminModel{},
		&donasiModel.DonasiModel{},
		&homeModel.MasjidProfileModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi database: %v", err)
	}
	log.Println("✅ Migrasi database selesai")
}
