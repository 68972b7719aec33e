package main

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, err
	}

	var conf zap.Config
	switch strings.ToLower(format) {
	case "json":
		conf = zap.NewProductionConfig()
		conf.EncoderConfig.TimeKey = "ts"
		conf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		conf = zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		conf.DisableStacktrace = true
	}
	conf.Level = zap.NewAtomicLevelAt(lvl)
	return conf.Build()
}
