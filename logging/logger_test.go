package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerJSON(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var b bytes.Buffer
	SetupLogger(Config{Level: "warn", Out: &b})
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	log.Info().Msg("hidden")
	log.Warn().Int("subdivisions", 65536).Msg("cap")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(b.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "cap", entry["message"])
	assert.Equal(t, 65536.0, entry["subdivisions"])
	assert.Contains(t, entry, "time")
}

func TestSetupLoggerPretty(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var b bytes.Buffer
	SetupLogger(Config{Level: "nonsense", Pretty: true, Out: &b})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	log.Info().Str("name", "order = 2").Msg("done")
	assert.Contains(t, b.String(), "done")
	assert.NotContains(t, b.String(), "{")
}
