package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AccessTimeLayout is the wall-clock layout of access lines.
const AccessTimeLayout = "15:04:05"

// NewAccess creates the request logger. Each entry is rendered as
// "<HH:MM:SS> <message>" with no level, caller or field decoration; the access
// middleware puts everything else into the message.
func NewAccess(w zapcore.WriteSyncer) *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:          "time",
		MessageKey:       "message",
		EncodeTime:       zapcore.TimeEncoderOfLayout(AccessTimeLayout),
		EncodeDuration:   zapcore.MillisDurationEncoder,
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), w, zapcore.InfoLevel)
	return zap.New(core)
}
