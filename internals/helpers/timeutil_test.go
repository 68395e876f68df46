package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowJakartaOffset(t *testing.T) {
	now := NowJakarta()
	_, offset := now.Zone()
	assert.Equal(t, 7*3600, offset, "WIB = UTC+7")
}

func TestTodayJakartaFormat(t *testing.T) {
	today := TodayJakarta()
	parsed, err := time.Parse("2006-01-02", today)
	require.NoError(t, err)
	assert.Equal(t, today, parsed.Format("2006-01-02"))
}
