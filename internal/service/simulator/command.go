package simulator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/lcdwatch/alarm-face/internal/audio"
	"github.com/lcdwatch/alarm-face/internal/config"
	"github.com/lcdwatch/alarm-face/internal/face"
	"github.com/lcdwatch/alarm-face/internal/face/alarmface"
	"github.com/lcdwatch/alarm-face/internal/logger"
	"github.com/lcdwatch/alarm-face/internal/repository/state"
)

// Options controls the simulator process and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// StateFile overrides the path the alarm table is persisted to.
	StateFile string
	// NoSound forces the silent buzzer regardless of configuration.
	NoSound bool
	// LogLevel overrides the configured log level.
	LogLevel string
}

// Run hosts the alarm face in the terminal until the user quits or the
// context is canceled. The alarm table is restored from the state file on
// start and written back on exit, standing in for the watch's powered
// session.
func Run(ctx context.Context, opts *Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if opts.StateFile != "" {
		cfg.StateFile = opts.StateFile
	}

	if opts.NoSound {
		cfg.NoSound = true
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	if err = setupLogging(cfg); err != nil {
		return err
	}

	ctx = logger.WithName(ctx, "alarm-sim")

	// Restore the alarm table from the previous run, if any.
	repo := state.NewFileRepository(cfg.StateFile)
	alarms := alarmface.New()

	h := NewHost(pickBuzzer(cfg), systemClock{}, cfg.ClockMode24h)
	alarms.Setup(h)

	snapshot, err := repo.Load(ctx)

	switch {
	case err == nil:
		alarms.SetSlots(snapshot.Slots)
		logger.InfoKV(ctx, "Alarm table restored", "state_file", cfg.StateFile)
	case errors.Is(err, state.ErrNotFound):
		// Fresh session; the defaulted table stands.
	default:
		logger.WarnKV(ctx, "Could not restore alarm table", "error", err)
	}

	logger.InfoKV(ctx, "Simulator starting",
		"state_file", cfg.StateFile, "clock_mode_24h", cfg.ClockMode24h, "sound", !cfg.NoSound)

	program := tea.NewProgram(NewModel(h, alarms), tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err = program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run program: %w", err)
	}

	// Persist the session so the next run resumes where this one ended.
	if err = repo.Save(ctx, &state.Snapshot{Slots: alarms.Slots(), SavedAt: time.Now()}); err != nil {
		return fmt.Errorf("persist alarm table: %w", err)
	}

	logger.InfoKV(ctx, "Simulator stopped", "alarm_enabled", h.AlarmEnabled())

	return nil
}

// setupLogging points the global logger at the configured log file; the
// terminal itself belongs to the watch display while the program runs.
func setupLogging(cfg *config.Config) error {
	lvl, ok := logger.ParseLogLevel(cfg.LogLevel)
	if !ok {
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}

	sink, err := os.OpenFile(filepath.Clean(cfg.LogFile),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, config.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	logger.SetLogger(logger.New(zap.NewAtomicLevelAt(lvl), sink))

	return nil
}

// pickBuzzer selects the audible or silent buzzer per configuration.
func pickBuzzer(cfg *config.Config) face.Buzzer {
	if cfg.NoSound {
		return audio.Silent{}
	}

	return audio.New()
}
