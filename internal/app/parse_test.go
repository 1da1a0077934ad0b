package app

import (
	"testing"
	"time"

	"github.com/arothstein/ritual/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, domain.NewDate(2024, time.January, 2), d)

	for _, bad := range []string{"", "2024-1-2", "02-01-2024", "2024-13-01", "yesterday"} {
		_, err := ParseDate(bad)
		require.Error(t, err, "input %q", bad)
		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr, "input %q", bad)
	}
}

func TestParseMonth(t *testing.T) {
	y, m, err := ParseMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.February, m)

	for _, bad := range []string{"", "2024", "2024-2", "2024-00", "2024-13"} {
		_, _, err := ParseMonth(bad)
		require.Error(t, err, "input %q", bad)
	}

	assert.Equal(t, "2024-02", FormatMonth(2024, time.February))
}
