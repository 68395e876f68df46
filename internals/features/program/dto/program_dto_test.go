package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alhidayah_backend/internals/constants"
	"alhidayah_backend/internals/features/program/model"
)

func TestMaterializeAllSemuaKeyMuncul(t *testing.T) {
	url := "https://cdn.example.com/program/kajian-sabtu.webp"
	rows := []model.ProgramImageModel{
		{ProgramImageKey: "kajian-sabtu", ProgramImageURL: &url},
	}

	out := MaterializeAll(rows)
	require.Len(t, out, len(constants.ProgramKeys))

	byKey := map[string]*string{}
	for _, item := range out {
		byKey[item.ProgramImageKey] = item.ProgramImageURL
	}

	require.Contains(t, byKey, "kajian-sabtu")
	require.NotNil(t, byKey["kajian-sabtu"])
	assert.Equal(t, url, *byKey["kajian-sabtu"])

	// slot tanpa row tetap ada dengan URL null
	require.Contains(t, byKey, "tpa-al-hidayah")
	assert.Nil(t, byKey["tpa-al-hidayah"])
}

func TestMaterializeAllKosong(t *testing.T) {
	out := MaterializeAll(nil)
	require.Len(t, out, len(constants.ProgramKeys))
	for _, item := range out {
		assert.Nil(t, item.ProgramImageURL)
		assert.True(t, constants.IsValidProgramKey(item.ProgramImageKey))
	}
}

func TestMaterializeAllUrutanStabil(t *testing.T) {
	a := MaterializeAll(nil)
	b := MaterializeAll(nil)
	assert.Equal(t, a, b)
}
