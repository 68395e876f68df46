package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alhidayah_backend/internals/features/home/dto"
	"alhidayah_backend/internals/features/home/model"
	"alhidayah_backend/internals/features/home/service"
	helper "alhidayah_backend/internals/helpers"
)

type HomeController struct {
	DB     *gorm.DB
	Sholat *service.SholatService
}

func NewHomeController(db *gorm.DB) *HomeController {
	return &HomeController{
		DB:     db,
		Sholat: service.NewSholatService(),
	}
}

// =============================
// Profil masjid
// =============================

func (ctrl *HomeController) loadProfil(c *fiber.Ctx) (*model.MasjidProfileModel, error) {
	var profil model.MasjidProfileModel
	err := ctrl.DB.WithContext(c.Context()).First(&profil).Error
	if err != nil {
		return nil, err
	}
	return &profil, nil
}

// 🟢 GET PROFIL: profil masjid untuk halaman depan (publik)
func (ctrl *HomeController) GetProfil(c *fiber.Ctx) error {
	profil, err := ctrl.loadProfil(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Profil belum pernah diisi, kirim bentuk kosong
			return helper.JsonOK(c, "Profil masjid berhasil diambil", dto.ToProfilResponse(&model.MasjidProfileModel{}))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil masjid")
	}
	return helper.JsonOK(c, "Profil masjid berhasil diambil", dto.ToProfilResponse(profil))
}

// 🟢 UPDATE PROFIL: partial update profil masjid (admin)
func (ctrl *HomeController) UpdateProfil(c *fiber.Ctx) error {
	var body dto.ProfilUpdateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := body.Validate(); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	updates := body.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada data yang diubah.")
	}

	profil, err := ctrl.loadProfil(c)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil masjid")
		}
		// Baris pertama dibuat sekali, update berikutnya tinggal merge
		profil = &model.MasjidProfileModel{MasjidProfileID: 1}
		if err := ctrl.DB.WithContext(c.Context()).Create(profil).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan profil masjid")
		}
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(profil).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui profil masjid")
	}

	if err := ctrl.DB.WithContext(c.Context()).First(profil).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil masjid")
	}
	return helper.JsonUpdated(c, "Profil masjid berhasil diperbarui", dto.ToProfilResponse(profil))
}

// =============================
// Jadwal sholat
// =============================

// Koordinat default Jakarta, dipakai kalau profil belum diisi
const (
	defaultLatitude  = -6.2
	defaultLongitude = 106.816666
)

// 🟢 GET JADWAL SHOLAT: jadwal sholat hari ini (publik, cache 1 jam)
func (ctrl *HomeController) GetJadwalSholat(c *fiber.Ctx) error {
	lat, lng := defaultLatitude, defaultLongitude
	if profil, err := ctrl.loadProfil(c); err == nil {
		if profil.MasjidProfileLatitude != 0 || profil.MasjidProfileLongitude != 0 {
			lat, lng = profil.MasjidProfileLatitude, profil.MasjidProfileLongitude
		}
	}

	jadwal := ctrl.Sholat.JadwalHariIni(c.Context(), lat, lng)
	return helper.JsonOK(c, "Jadwal sholat berhasil diambil", jadwal)
}
