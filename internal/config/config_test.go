package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 800, cfg.ConfigWidth)
	require.Equal(t, 600, cfg.ChatWidth)
	require.Equal(t, 400, cfg.ChatHeight)
	require.Equal(t, 20, cfg.ChatGap)
	require.Equal(t, 16*time.Millisecond, cfg.PollInterval)
	require.Equal(t, float32(151), cfg.MetaWidth)
	require.Equal(t, float32(454), cfg.ContentWrap)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SCREADER_CHAT_GAP", "40")
	t.Setenv("SCREADER_POLL_INTERVAL", "50ms")
	t.Setenv("SCREADER_CONTENT_WRAP", "300")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 40, cfg.ChatGap)
	require.Equal(t, 50*time.Millisecond, cfg.PollInterval)
	require.Equal(t, float32(300), cfg.ContentWrap)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"not a number", "SCREADER_CHAT_WIDTH", "wide"},
		{"zero width", "SCREADER_CHAT_WIDTH", "0"},
		{"negative gap", "SCREADER_CHAT_GAP", "-1"},
		{"zero interval", "SCREADER_POLL_INTERVAL", "0s"},
		{"username wider than block", "SCREADER_USERNAME_WRAP", "500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			require.Error(t, err)
		})
	}
}
