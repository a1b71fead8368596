package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/akuntansi-app/akuntansi-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalCalendarDate(t *testing.T) {
	var d dto.Date
	require.NoError(t, json.Unmarshal([]byte(`"2023-05-10"`), &d))
	assert.Equal(t, time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC), d.Time)
}

func TestDate_UnmarshalRFC3339Fallback(t *testing.T) {
	var d dto.Date
	require.NoError(t, json.Unmarshal([]byte(`"2023-05-10T15:04:05Z"`), &d))
	assert.Equal(t, 2023, d.Year())
	assert.Equal(t, time.May, d.Month())
	assert.Equal(t, 10, d.Day())
}

func TestDate_UnmarshalRejectsGarbage(t *testing.T) {
	var d dto.Date
	assert.Error(t, json.Unmarshal([]byte(`"10/05/2023"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`42`), &d))
}

func TestDate_MarshalRoundTrip(t *testing.T) {
	d := dto.NewDate(time.Date(2023, 5, 10, 13, 0, 0, 0, time.UTC))
	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2023-05-10"`, string(out))
}

func TestNewPagination(t *testing.T) {
	p := dto.NewPagination(2, 10, 35)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 4, p.TotalPages)
	assert.Equal(t, int64(35), p.TotalItems)
	assert.Equal(t, 10, p.ItemsPerPage)

	// Out-of-range inputs are clamped to sane defaults.
	p = dto.NewPagination(0, 0, 0)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 0, p.TotalPages)
	assert.Equal(t, 10, p.ItemsPerPage)
}
