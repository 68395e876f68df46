package constants

// ==========================
// Jenis transaksi keuangan
// ==========================
const (
	JenisMasuk  = "masuk"
	JenisKeluar = "keluar"
)

// Kategori pemasukan & pengeluaran kas masjid.
// Dua daftar ini saling lepas: kategori masuk tidak pernah dipakai
// untuk transaksi keluar, dan sebaliknya.
var (
	KategoriMasuk = []string{
		"Infaq Jumat",
		"Kotak Amal",
		"Donasi Transfer",
		"Wakaf",
		"Zakat",
	}

	KategoriKeluar = []string{
		"Listrik & Air",
		"Kebersihan",
		"Operasional",
		"Kajian & Kegiatan",
		"Pembangunan & Renovasi",
	}
)

// KategoriForJenis mengembalikan daftar kategori yang sah untuk satu jenis.
// Jenis di luar masuk/keluar → nil.
func KategoriForJenis(jenis string) []string {
	switch jenis {
	case JenisMasuk:
		return KategoriMasuk
	case JenisKeluar:
		return KategoriKeluar
	default:
		return nil
	}
}

// IsValidKategori memeriksa pasangan jenis+kategori.
func IsValidKategori(jenis, kategori string) bool {
	for _, k := range KategoriForJenis(jenis) {
		if k == kategori {
			return true
		}
	}
	return false
}
