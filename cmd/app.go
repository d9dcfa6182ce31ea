package main

import (
	"context"
	"fmt"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/leadsheet/internal/config"
	"github.com/Vovarama1992/leadsheet/internal/domain"
	"github.com/Vovarama1992/leadsheet/internal/domain/stations"
	"github.com/Vovarama1992/leadsheet/internal/infra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	cfg   *config.Config
	sugar *zap.SugaredLogger
	log   *logger.ZapLogger
	leads *domain.LeadService
}

func newApp(ctx context.Context) (*app, error) {

	// ENV
	envLoaded := config.LoadDotEnv()

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	// LOGGER
	zcfg := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	zcore, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	sugar := zcore.Sugar()
	zl := logger.NewZapLogger(sugar)

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "config loaded",
		Fields: map[string]any{
			"dotenv":      envLoaded,
			"configFile":  configPath,
			"worksheet":   cfg.Sheets.Worksheet,
			"spreadsheet": cfg.Sheets.SpreadsheetName,
		},
	})

	// BINDINGS
	bindings := infra.Connect(ctx, cfg, zl)

	// STATIONS
	s1 := stations.NewS1DecodeAudio(sugar)
	s2 := stations.NewS2SpoolAudio(cfg.AudioDir, sugar)
	s3 := stations.NewS3Transcribe(sugar)

	leads := domain.NewLeadService(bindings, zl, s1, s2, s3)

	return &app{
		cfg:   cfg,
		sugar: sugar,
		log:   zl,
		leads: leads,
	}, nil
}

func (a *app) close() {
	_ = a.sugar.Sync()
}
