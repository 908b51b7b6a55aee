package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El nombre del servicio va como campo fijo en cada línea emitida.
func TestNewWithWriter_CampoService(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, Config{Service: "magcin-api", Level: "info"})

	l.Info().Str("env", "test").Msg("arrancando")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "magcin-api", line["service"])
	assert.Equal(t, "arrancando", line["message"])
	assert.Equal(t, "info", line["level"])
}

// Sin Service no se emite el campo (p. ej. herramientas de un solo uso).
func TestNewWithWriter_SinService(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, Config{Level: "info"})

	l.Info().Msg("ok")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	_, tiene := line["service"]
	assert.False(t, tiene)
}

// El nivel configurado filtra los eventos por debajo.
func TestNewWithWriter_FiltraPorNivel(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, Config{Level: "warn"})

	l.Debug().Msg("invisible")
	l.Info().Msg("invisible")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("visible")
	assert.NotZero(t, buf.Len())
}

func TestParseLevel_DesconocidoCaeAInfo(t *testing.T) {
	assert.Equal(t, parseLevel("info"), parseLevel("nivel-inventado"))
}
