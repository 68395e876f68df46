package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aladhanBody = `{
	"code": 200,
	"data": {
		"timings": {
			"Fajr": "04:38 (WIB)",
			"Dhuhr": "11:58 (WIB)",
			"Asr": "15:21 (WIB)",
			"Maghrib": "17:52 (WIB)",
			"Isha": "19:04 (WIB)"
		}
	}
}`

func newTestService(baseURL string) *SholatService {
	return &SholatService{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 2 * time.Second},
		CacheTTL:   time.Hour,
	}
}

func TestJadwalHariIni(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.RawQuery, "method=20")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(aladhanBody))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL)
	got := svc.JadwalHariIni(context.Background(), -6.2, 106.816666)

	assert.Equal(t, "04:38", got.Subuh)
	assert.Equal(t, "11:58", got.Dzuhur)
	assert.Equal(t, "15:21", got.Ashar)
	assert.Equal(t, "17:52", got.Maghrib)
	assert.Equal(t, "19:04", got.Isya)
	assert.NotEmpty(t, got.Tanggal)
}

func TestJadwalHariIniCache(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(aladhanBody))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL)
	first := svc.JadwalHariIni(context.Background(), -6.2, 106.8)
	second := svc.JadwalHariIni(context.Background(), -6.2, 106.8)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "panggilan kedua harus dari cache")
}

func TestJadwalHariIniKoordinatBerubahTembusCache(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(aladhanBody))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL)
	_ = svc.JadwalHariIni(context.Background(), -6.2, 106.8)
	_ = svc.JadwalHariIni(context.Background(), -7.8, 110.4) // profil pindah lokasi

	assert.Equal(t, int32(2), atomic.LoadInt32(&hits), "koordinat baru harus memicu fetch baru")
}

func TestJadwalHariIniUpstreamMati(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := newTestService(srv.URL)
	got := svc.JadwalHariIni(context.Background(), -6.2, 106.8)

	assert.Equal(t, "--:--", got.Subuh)
	assert.Equal(t, "--:--", got.Dzuhur)
	assert.Equal(t, "--:--", got.Ashar)
	assert.Equal(t, "--:--", got.Maghrib)
	assert.Equal(t, "--:--", got.Isya)
}

func TestJadwalHariIniBodyRusak(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("bukan json"))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL)
	got := svc.JadwalHariIni(context.Background(), -6.2, 106.8)
	assert.Equal(t, "--:--", got.Subuh)
}

func TestJadwalHariIniKegagalanTidakDicache(t *testing.T) {
	var fail int32 = 1
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&fail) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(aladhanBody))
	}))
	defer srv.Close()

	svc := newTestService(srv.URL)
	got := svc.JadwalHariIni(context.Background(), -6.2, 106.8)
	require.Equal(t, "--:--", got.Subuh)

	atomic.StoreInt32(&fail, 0)
	got = svc.JadwalHariIni(context.Background(), -6.2, 106.8)
	assert.Equal(t, "04:38", got.Subuh, "setelah upstream pulih, fetch berikutnya harus sukses")
}

func TestCleanTime(t *testing.T) {
	assert.Equal(t, "04:38", cleanTime("04:38 (WIB)"))
	assert.Equal(t, "04:38", cleanTime("04:38"))
	assert.Equal(t, "", cleanTime(""))
}
