package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/veltner/usagehook/internal/adapters/history"
	sessionsadapter "github.com/veltner/usagehook/internal/adapters/render/sessions"
	"github.com/veltner/usagehook/internal/adapters/usagelog"
	"github.com/veltner/usagehook/internal/application"
	"github.com/veltner/usagehook/internal/config"
	"github.com/veltner/usagehook/internal/domain"
	"github.com/veltner/usagehook/internal/logger"
	"github.com/veltner/usagehook/internal/ports"
)

type app struct {
	cfg              config.Config
	homeDir          string
	workDir          string
	recorder         *application.Recorder
	lister           *application.Lister
	sessionsRenderer func([]domain.LogFileStat, sessionsadapter.RenderOptions) (string, error)
	log              zerolog.Logger
	now              func() time.Time
}

// wireApp resolves the process-wide state (home directory, working
// directory, clock, stderr) once, at the edge; everything below takes
// these as parameters.
func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	cfg, err := config.Load(viper.New(), homeDir, workDir)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	log := logger.New(os.Stderr, cfg.LogLevel)
	usageLog := usagelog.NewWriter(cfg.OutputDir)

	return &app{
		cfg:              cfg,
		homeDir:          homeDir,
		workDir:          workDir,
		recorder:         application.NewRecorder(history.NewReader(cfg.HistoryPath), usageLog, ports.SystemClock{}, log),
		lister:           application.NewLister(usageLog),
		sessionsRenderer: sessionsadapter.Render,
		log:              log,
		now:              time.Now,
	}, nil
}
