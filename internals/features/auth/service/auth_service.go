package service

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"alhidayah_backend/internals/configs"
	"alhidayah_backend/internals/features/auth/dto"
	"alhidayah_backend/internals/features/auth/model"
	helper "alhidayah_backend/internals/helpers"
)

const accessTTLDefault = 24 * time.Hour

var validate = validator.New()

// ==========================
// ISSUE TOKEN
// ==========================

// IssueAdminToken membuat access token HS256 untuk satu admin.
func IssueAdminToken(adminID uuid.UUID, username, secret string, now time.Time, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret kosong")
	}
	if ttl <= 0 {
		ttl = accessTTLDefault
	}
	claims := jwt.MapClaims{
		"sub":      adminID.String(),
		"username": username,
		"role":     "admin",
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ==========================
// LOGIN
// ==========================

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username dan password wajib diisi.")
	}

	var admin model.AdminModel
	if err := db.WithContext(c.Context()).
		Where("admin_username = ?", body.Username).
		First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// pesan sengaja sama dengan salah password
			return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.AdminPassword), []byte(body.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah.")
	}

	now := time.Now().UTC()
	accessToken, err := IssueAdminToken(admin.AdminID, admin.AdminUsername, configs.JWTSecret, now, accessTTLDefault)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(accessTTLDefault),
	})

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: accessToken,
		Username:    admin.AdminUsername,
		Nama:        admin.AdminNama,
	})
}

// ==========================
// LOGOUT
// ==========================

func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// ==========================
// SEED ADMIN AWAL
// ==========================

// SeedAdmin membuat akun admin pertama dari ENV jika tabel masih kosong.
func SeedAdmin(db *gorm.DB) {
	if configs.AdminPassword == "" {
		return
	}

	var count int64
	if err := db.Model(&model.AdminModel{}).Count(&count).Error; err != nil {
		log.Printf("[ERROR] cek admin: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(configs.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] hash password admin: %v", err)
		return
	}

	admin := model.AdminModel{
		AdminUsername: configs.AdminUsername,
		AdminPassword: string(hash),
		AdminNama:     "Administrator",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[ERROR] seed admin: %v", err)
		return
	}
	log.Printf("✅ Admin awal '%s' berhasil dibuat.", admin.AdminUsername)
}
