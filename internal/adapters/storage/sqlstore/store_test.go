package sqlstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRebind(t *testing.T) {
	pg := &Store{dialect: Dialect{Numbered: true}}
	lite := &Store{dialect: Dialect{}}

	q := `SELECT 1 FROM pets WHERE id = ? AND species = ? AND age >= ?`
	require.Equal(t, `SELECT 1 FROM pets WHERE id = $1 AND species = $2 AND age >= $3`, pg.rebind(q))
	require.Equal(t, q, lite.rebind(q))
}

func TestPlaceholders(t *testing.T) {
	require.Equal(t, "?", placeholders(1))
	require.Equal(t, "?, ?, ?", placeholders(3))
}

func TestTimestamp_Scan(t *testing.T) {
	var ts timestamp

	require.NoError(t, ts.Scan("2024-05-01 10:30:00.5+00:00"))
	require.Equal(t, "2024-05-01", ts.Format("2006-01-02"))

	require.NoError(t, ts.Scan([]byte("2024-06-02T08:00:00Z")))
	require.Equal(t, 6, int(ts.Month()))

	require.Error(t, ts.Scan("yesterday"))
	require.Error(t, ts.Scan(3.5))
}
