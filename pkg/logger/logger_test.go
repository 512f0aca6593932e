package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/gestormx/gestor-comercial/pkg/logger"
)

func TestNew_NivelConfigurado(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())
}

func TestNew_NivelDesconocidoCaeEnInfo(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "gritando"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}

func TestNew_NivelVacioCaeEnInfo(t *testing.T) {
	l := logger.New(logger.Config{Env: "development"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}

func TestNop_DescartaTodo(t *testing.T) {
	l := logger.Nop()
	assert.Equal(t, zerolog.Disabled, l.Zerolog().GetLevel())
	// No debe entrar en pánico al emitir sobre un logger apagado.
	l.Info().Str("clave", "valor").Msg("descartado")
}
