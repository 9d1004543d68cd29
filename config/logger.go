package config

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a console logger writing to w at the configured level.
// verbose forces debug.
func NewLogger(c Config, w io.Writer, verbose bool) *zap.Logger {
	level := c.Log.Level.Zap()
	if verbose {
		level.SetLevel(zap.DebugLevel)
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(zapcore.AddSync(w)), level)

	return zap.New(core)
}
