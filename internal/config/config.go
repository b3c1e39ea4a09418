// Package config resolves where the hook reads history from and writes
// usage logs to. Defaults reproduce the stock layout under the home and
// working directories; an optional TOML file under ~/.claude overrides
// them. The record pipeline itself consumes no flags or environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/veltner/usagehook/internal/domain"
)

const (
	configName = "usagehook"
	configType = "toml"

	claudeDir       = ".claude"
	historyFileName = "history.jsonl"

	historyPathKey = "history.path"
	outputDirKey   = "output.dir"
	logLevelKey    = "log.level"

	defaultLogLevel = "error"

	configDirMode   = 0o755
	configFileMode  = 0o644
	tempFilePattern = ".usagehook-*.toml.tmp"
)

type Config struct {
	HistoryPath string
	OutputDir   string
	LogLevel    string
}

// Load resolves the effective configuration. homeDir and workDir are
// passed in by the caller so the pipeline stays testable; only the entry
// point consults the platform for them.
func Load(cfg *viper.Viper, homeDir, workDir string) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, claudeDir))
	cfg.SetDefault(historyPathKey, defaultHistoryPath(homeDir))
	cfg.SetDefault(outputDirKey, defaultOutputDir(workDir))
	cfg.SetDefault(logLevelKey, defaultLogLevel)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	resolved := Config{
		HistoryPath: cfg.GetString(historyPathKey),
		OutputDir:   cfg.GetString(outputDirKey),
		LogLevel:    cfg.GetString(logLevelKey),
	}
	if resolved.HistoryPath == "" {
		return Config{}, errors.New("history path is empty")
	}
	if resolved.OutputDir == "" {
		return Config{}, errors.New("output dir is empty")
	}
	if !filepath.IsAbs(resolved.OutputDir) {
		resolved.OutputDir = filepath.Join(workDir, resolved.OutputDir)
	}

	return resolved, nil
}

func defaultHistoryPath(homeDir string) string {
	return filepath.Join(homeDir, claudeDir, historyFileName)
}

func defaultOutputDir(workDir string) string {
	return filepath.Join(workDir, claudeDir, "analytics", "tool_usage_history")
}

type fileSchema struct {
	History historySchema `toml:"history"`
	Output  outputSchema  `toml:"output"`
	Log     logSchema     `toml:"log"`
}

type historySchema struct {
	Path string `toml:"path"`
}

type outputSchema struct {
	Dir string `toml:"dir"`
}

type logSchema struct {
	Level string `toml:"level"`
}

// Init writes a config file populated with the defaults and returns its
// path. Refuses to overwrite an existing file.
func Init(homeDir, workDir string) (string, error) {
	path := filepath.Join(homeDir, claudeDir, configName+"."+configType)

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", domain.ErrConfigExists, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat config file: %w", err)
	}

	defaults := Config{
		HistoryPath: defaultHistoryPath(homeDir),
		OutputDir:   defaultOutputDir(workDir),
		LogLevel:    defaultLogLevel,
	}

	data, err := Render(defaults)
	if err != nil {
		return "", err
	}

	if err := writeFile(path, data); err != nil {
		return "", err
	}

	return path, nil
}

// Render encodes a configuration as TOML.
func Render(cfg Config) ([]byte, error) {
	data, err := toml.Marshal(fileSchema{
		History: historySchema{Path: cfg.HistoryPath},
		Output:  outputSchema{Dir: cfg.OutputDir},
		Log:     logSchema{Level: cfg.LogLevel},
	})
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	return data, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false

	return nil
}
