package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Run("accepts known levels", func(t *testing.T) {
		for value, want := range map[string]zerolog.Level{
			"trace": zerolog.TraceLevel,
			"debug": zerolog.DebugLevel,
			"info":  zerolog.InfoLevel,
			"warn":  zerolog.WarnLevel,
			"error": zerolog.ErrorLevel,
		} {
			level, err := ParseLevel(value)
			require.NoError(t, err)
			require.Equal(t, want, level)
		}
	})

	t.Run("is case insensitive", func(t *testing.T) {
		level, err := ParseLevel("DEBUG")
		require.NoError(t, err)
		require.Equal(t, zerolog.DebugLevel, level)
	})

	t.Run("rejects unknown levels", func(t *testing.T) {
		_, err := ParseLevel("loud")
		require.Error(t, err)
		require.Contains(t, err.Error(), "loud")
	})
}

func TestSetGlobalLogger(t *testing.T) {
	original := Logger
	t.Cleanup(func() { SetGlobalLogger(original) })

	var buffer bytes.Buffer
	SetGlobalLogger(zerolog.New(&buffer))

	Info().Str("key", "value").Msg("hello")

	require.Contains(t, buffer.String(), `"message":"hello"`)
	require.Contains(t, buffer.String(), `"key":"value"`)
}
