package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures where to fetch timings for and how the app behaves.
type Config struct {
	City           string
	Country        string
	Method         int
	APIBase        string
	Timezone       string
	RefreshMinutes int
	LogFile        string
	LogLevel       string
	RedisAddr      string
	CacheTTLHours  int
	Language       string
}

const (
	defaultConfigPath     = "~/.config/prayerclock/config.toml"
	defaultLogFile        = "~/.local/state/prayerclock/prayerclock.log"
	defaultCity           = "Bani Suwayf"
	defaultCountry        = "Egypt"
	defaultMethod         = 5 // Egyptian General Authority of Survey
	defaultAPIBase        = "https://api.aladhan.com"
	defaultRefreshMinutes = 60
	defaultLogLevel       = "info"
	defaultCacheTTLHours  = 24
	defaultLanguage       = "en"
)

// Environment variables that override file values.
const (
	EnvCity      = "PRAYERCLOCK_CITY"
	EnvCountry   = "PRAYERCLOCK_COUNTRY"
	EnvMethod    = "PRAYERCLOCK_METHOD"
	EnvAPIBase   = "PRAYERCLOCK_API_BASE"
	EnvRedisAddr = "PRAYERCLOCK_REDIS_ADDR"
	EnvLogLevel  = "PRAYERCLOCK_LOG_LEVEL"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		City:           defaultCity,
		Country:        defaultCountry,
		Method:         defaultMethod,
		APIBase:        defaultAPIBase,
		RefreshMinutes: defaultRefreshMinutes,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
		CacheTTLHours:  defaultCacheTTLHours,
		Language:       defaultLanguage,
	}
}

// LoadDotEnv loads a .env file from the working directory into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Load locates and parses the config file, falling back to defaults when
// missing, then applies environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg)
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		City           string `toml:"city"`
		Country        string `toml:"country"`
		Method         int    `toml:"method"`
		APIBase        string `toml:"api_base"`
		Timezone       string `toml:"timezone"`
		RefreshMinutes int    `toml:"refresh_minutes"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
		RedisAddr      string `toml:"redis_addr"`
		CacheTTLHours  int    `toml:"cache_ttl_hours"`
		Language       string `toml:"language"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.City = orDefault(raw.City, defaultCity)
	cfg.Country = orDefault(raw.Country, defaultCountry)
	cfg.APIBase = orDefault(raw.APIBase, defaultAPIBase)
	cfg.Timezone = strings.TrimSpace(raw.Timezone)
	cfg.LogLevel = strings.ToLower(orDefault(raw.LogLevel, defaultLogLevel))
	cfg.RedisAddr = strings.TrimSpace(raw.RedisAddr)
	cfg.Language = strings.ToLower(orDefault(raw.Language, defaultLanguage))
	cfg.LogFile = mustExpand(orDefault(raw.LogFile, defaultLogFile))
	if raw.Method > 0 {
		cfg.Method = raw.Method
	}
	if raw.RefreshMinutes > 0 {
		cfg.RefreshMinutes = raw.RefreshMinutes
	}
	if raw.CacheTTLHours > 0 {
		cfg.CacheTTLHours = raw.CacheTTLHours
	}

	return applyEnv(cfg)
}

func applyEnv(cfg Config) (Config, error) {
	if v := strings.TrimSpace(os.Getenv(EnvCity)); v != "" {
		cfg.City = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvCountry)); v != "" {
		cfg.Country = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvMethod)); v != "" {
		method, err := strconv.Atoi(v)
		if err != nil || method <= 0 {
			return Config{}, fmt.Errorf("parse %s %q: want a positive integer", EnvMethod, v)
		}
		cfg.Method = method
	}
	if v := strings.TrimSpace(os.Getenv(EnvAPIBase)); v != "" {
		cfg.APIBase = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvRedisAddr)); v != "" {
		cfg.RedisAddr = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	return cfg, nil
}

// RefreshInterval returns how often timings are re-fetched.
func (c Config) RefreshInterval() time.Duration {
	if c.RefreshMinutes <= 0 {
		return defaultRefreshMinutes * time.Minute
	}
	return time.Duration(c.RefreshMinutes) * time.Minute
}

// CacheTTL returns how long fetched days stay in the cache.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLHours <= 0 {
		return defaultCacheTTLHours * time.Hour
	}
	return time.Duration(c.CacheTTLHours) * time.Hour
}

// Location returns the configured timezone. An empty Timezone yields nil so
// callers can prefer the zone reported by the API.
func (c Config) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.Timezone)
	if name == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}

// LogPath returns the log file path, defaulting when unset.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogFile) == "" {
		return mustExpand(defaultLogFile)
	}
	return c.LogFile
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
