package constants

// Jenis kegiatan yang bisa dijadwalkan. Dipakai validasi jadwal
// (create & update lewat predicate yang sama).
var JenisKegiatan = []string{
	"Khutbah Jumat",
	"Kajian Sabtu",
	"Tahsin Al-Qur'an",
	"Tahfidz",
	"TPA Al-Hidayah",
	"Maulid & Kegiatan Khusus",
}

func IsValidJenisKegiatan(jenis string) bool {
	for _, j := range JenisKegiatan {
		if j == jenis {
			return true
		}
	}
	return false
}

// ==========================
// Slot gambar program
// ==========================
// Key tetap untuk kartu program di halaman publik. Upsert gambar hanya
// boleh menyasar salah satu key ini.
var ProgramKeys = []string{
	"tpa-al-hidayah",
	"kajian-sabtu",
	"wakaf-produktif",
	"tahsin-alquran",
}

func IsValidProgramKey(key string) bool {
	for _, k := range ProgramKeys {
		if k == key {
			return true
		}
	}
	return false
}
