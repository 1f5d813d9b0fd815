package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// PlaceholderSheetID is the sheet id shipped in example .env files. A sheet id
// equal to it is treated as "not configured".
const PlaceholderSheetID = "YOUR_SHEET_ID_HERE"

type Config struct {
	Env                string   `mapstructure:"ENV"`
	Debug              bool     `mapstructure:"DEBUG"`
	Host               string   `mapstructure:"HOST"`
	Port               string   `mapstructure:"PORT"`
	SheetID            string   `mapstructure:"GOOGLE_SHEET_ID"`
	SheetRange         string   `mapstructure:"SHEET_RANGE"`
	CredentialsFile    string   `mapstructure:"CREDENTIALS_FILE"`
	CredentialsJSON    string   `mapstructure:"GOOGLE_CREDENTIALS"`
	CacheTimeout       int      `mapstructure:"CACHE_TIMEOUT"`
	FallbackFile       string   `mapstructure:"FALLBACK_FILE"`
	StaticDir          string   `mapstructure:"STATIC_DIR"`
	IndexFile          string   `mapstructure:"INDEX_FILE"`
	CORSOrigins        []string `mapstructure:"CORS_ORIGINS"`
	BarcodeEnabled     bool     `mapstructure:"BARCODE_ENABLED"`
	MapExtendedColumns bool     `mapstructure:"MAP_EXTENDED_COLUMNS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("DEBUG", true)
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "5000")
	v.SetDefault("GOOGLE_SHEET_ID", PlaceholderSheetID)
	v.SetDefault("SHEET_RANGE", "Sheet1!A1:Z1000")
	v.SetDefault("CREDENTIALS_FILE", "credentials.json")
	v.SetDefault("CACHE_TIMEOUT", 300)
	v.SetDefault("FALLBACK_FILE", "sample_data.json")
	v.SetDefault("STATIC_DIR", ".")
	v.SetDefault("INDEX_FILE", "index.htm")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("BARCODE_ENABLED", true)
	v.SetDefault("MAP_EXTENDED_COLUMNS", false)

	// Bind env vars explicitly so Unmarshal picks them up
	for _, key := range []string{
		"ENV", "DEBUG", "HOST", "PORT", "GOOGLE_SHEET_ID", "SHEET_RANGE",
		"CREDENTIALS_FILE", "GOOGLE_CREDENTIALS", "CACHE_TIMEOUT", "FALLBACK_FILE",
		"STATIC_DIR", "INDEX_FILE", "CORS_ORIGINS", "BARCODE_ENABLED", "MAP_EXTENDED_COLUMNS",
	} {
		_ = v.BindEnv(key)
	}

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if origins := v.GetString("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitList(origins)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// SheetConfigured reports whether a real spreadsheet id has been supplied.
func (c *Config) SheetConfigured() bool {
	return c.SheetID != "" && c.SheetID != PlaceholderSheetID
}

// CacheTTL returns the cache timeout as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTimeout) * time.Second
}

// Addr returns the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// SheetName returns the tab name of SheetRange ("Sheet1" for "Sheet1!A1:Z1000").
func (c *Config) SheetName() string {
	if i := strings.Index(c.SheetRange, "!"); i > 0 {
		return strings.Trim(c.SheetRange[:i], "'")
	}
	return "Sheet1"
}

// Validate rejects values the server cannot start with. A missing or
// placeholder sheet id is not an error: the server falls back to local data.
func (c *Config) Validate() error {
	if c.CacheTimeout < 0 {
		return fmt.Errorf("CACHE_TIMEOUT must not be negative, got %d", c.CacheTimeout)
	}
	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Port)
	}
	if strings.TrimSpace(c.SheetRange) == "" {
		return fmt.Errorf("SHEET_RANGE must not be empty")
	}
	return nil
}
