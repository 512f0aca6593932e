// Package logger envuelve zerolog con la configuración de la aplicación:
// consola legible en desarrollo, JSON estructurado en producción. Los
// componentes reciben *Logger por inyección; nadie usa el logger global
// directamente.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config parámetros del logger.
type Config struct {
	Env   string // development activa la salida de consola
	Level string // trace, debug, info, warn, error; info si no se reconoce
}

// Logger expone los constructores de eventos de zerolog.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger según el entorno y redirige además el logger
// global de zerolog, para que las librerías que escriben ahí salgan con el
// mismo formato.
func New(cfg Config) *Logger {
	var salida io.Writer = os.Stdout
	if cfg.Env == "development" {
		salida = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}

	nivel, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || nivel == zerolog.NoLevel {
		nivel = zerolog.InfoLevel
	}

	zl := zerolog.New(salida).Level(nivel).With().Timestamp().Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

// Nop devuelve un logger que descarta todo. Para tests y herramientas que no
// deben escribir a la salida.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With abre un sublogger con campos fijos.
func (l *Logger) With() zerolog.Context { return l.zl.With() }

// Zerolog expone el logger interno cuando se necesita la API directa.
func (l *Logger) Zerolog() zerolog.Logger { return l.zl }
