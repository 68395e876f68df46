package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	helper "alhidayah_backend/internals/helpers"
)

// JadwalSholat adalah jadwal sholat harian yang dikirim ke frontend.
type JadwalSholat struct {
	Tanggal string `json:"tanggal"`
	Subuh   string `json:"subuh"`
	Dzuhur  string `json:"dzuhur"`
	Ashar   string `json:"ashar"`
	Maghrib string `json:"maghrib"`
	Isya    string `json:"isya"`
}

// placeholderJadwal dikirim saat AlAdhan tidak bisa dihubungi, supaya
// halaman depan tetap tampil tanpa error.
func placeholderJadwal() JadwalSholat {
	return JadwalSholat{
		Tanggal: helper.TodayJakarta(),
		Subuh:   "--:--",
		Dzuhur:  "--:--",
		Ashar:   "--:--",
		Maghrib: "--:--",
		Isya:    "--:--",
	}
}

type aladhanResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings struct {
			Fajr    string `json:"Fajr"`
			Dhuhr   string `json:"Dhuhr"`
			Asr     string `json:"Asr"`
			Maghrib string `json:"Maghrib"`
			Isha    string `json:"Isha"`
		} `json:"timings"`
	} `json:"data"`
}

// SholatService mengambil jadwal sholat harian dari AlAdhan (method 20 =
// Kemenag RI) dan menyimpannya di memori selama satu jam.
type SholatService struct {
	BaseURL    string
	HTTPClient *http.Client
	CacheTTL   time.Duration

	mu        sync.Mutex
	cached    JadwalSholat
	cachedAt  time.Time
	cachedDay string
	cachedLat float64
	cachedLng float64
}

func NewSholatService() *SholatService {
	return &SholatService{
		BaseURL:    "https://api.aladhan.com",
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		CacheTTL:   time.Hour,
	}
}

// JadwalHariIni mengembalikan jadwal sholat hari ini (WIB). Kegagalan
// jaringan tidak pernah menjadi error, tapi jatuh ke placeholder "--:--".
func (s *SholatService) JadwalHariIni(ctx context.Context, lat, lng float64) JadwalSholat {
	today := helper.TodayJakarta()

	// Cache diketok per hari DAN per koordinat: pindah lokasi di profil
	// langsung memicu fetch baru, tidak menunggu TTL habis.
	s.mu.Lock()
	if s.cachedDay == today && s.cachedLat == lat && s.cachedLng == lng &&
		time.Since(s.cachedAt) < s.CacheTTL {
		cached := s.cached
		s.mu.Unlock()
		return cached
	}
	s.mu.Unlock()

	jadwal, err := s.fetch(ctx, lat, lng)
	if err != nil {
		log.Println("[WARN] gagal mengambil jadwal sholat:", err)
		return placeholderJadwal()
	}

	s.mu.Lock()
	s.cached = jadwal
	s.cachedAt = time.Now()
	s.cachedDay = today
	s.cachedLat = lat
	s.cachedLng = lng
	s.mu.Unlock()

	return jadwal
}

func (s *SholatService) fetch(ctx context.Context, lat, lng float64) (JadwalSholat, error) {
	// AlAdhan memakai format tanggal DD-MM-YYYY
	now := helper.NowJakarta()
	url := fmt.Sprintf("%s/v1/timings/%s?latitude=%f&longitude=%f&method=20",
		s.BaseURL, now.Format("02-01-2006"), lat, lng)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return JadwalSholat{}, err
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return JadwalSholat{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return JadwalSholat{}, fmt.Errorf("aladhan status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return JadwalSholat{}, err
	}

	var parsed aladhanResponse
	if err := sonic.Unmarshal(body, &parsed); err != nil {
		return JadwalSholat{}, err
	}
	if parsed.Code != 200 {
		return JadwalSholat{}, fmt.Errorf("aladhan code %d", parsed.Code)
	}

	t := parsed.Data.Timings
	return JadwalSholat{
		Tanggal: helper.TodayJakarta(),
		Subuh:   cleanTime(t.Fajr),
		Dzuhur:  cleanTime(t.Dhuhr),
		Ashar:   cleanTime(t.Asr),
		Maghrib: cleanTime(t.Maghrib),
		Isya:    cleanTime(t.Isha),
	}, nil
}

// cleanTime membuang suffix zona seperti "04:38 (WIB)" -> "04:38".
func cleanTime(v string) string {
	if i := strings.Index(v, " "); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}
