package cmn

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationUntilNext(t *testing.T) {
	loc := time.FixedZone("CST", 8*3600)

	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{"before midnight", time.Date(2024, 1, 15, 23, 0, 0, 0, loc), time.Hour},
		{"exactly midnight", time.Date(2024, 1, 15, 0, 0, 0, 0, loc), 24 * time.Hour},
		{"just after midnight", time.Date(2024, 1, 15, 0, 0, 1, 0, loc), 24*time.Hour - time.Second},
		{"month boundary", time.Date(2024, 1, 31, 12, 0, 0, 0, loc), 12 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationUntilNext(tt.now, 0, 0, 0))
		})
	}
}

func TestInitDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, InitDir(dir))
	require.NoError(t, InitDir(dir))
	assert.Error(t, InitDir(""))
}

func TestNewReply(t *testing.T) {
	reply := NewReply("success", map[string]int{"luck": 7})
	assert.Equal(t, 0, reply.Status)
	assert.JSONEq(t, `{"luck":7}`, string(reply.Data))

	reply = NewReply("success", func() {})
	assert.Equal(t, -1, reply.Status)
}
