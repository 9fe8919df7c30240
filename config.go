package portfolio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadConfig.
const (
	EnvLedgerFile  = "FOLIO_LEDGER_FILE"
	EnvCurrency    = "FOLIO_CURRENCY"
	EnvAPIKey      = "CRYPTOCOMPARE_API_KEY"
	EnvEndpoint    = "FOLIO_PRICE_ENDPOINT"
	EnvCacheDir    = "FOLIO_CACHE_DIR"
	EnvCacheWindow = "FOLIO_CACHE_WINDOW"
	EnvConcurrency = "FOLIO_CONCURRENCY"
)

// Config holds the settings that do not change from one run to the other.
type Config struct {
	LedgerFile  string
	Currency    string
	APIKey      string
	Endpoint    string
	CacheDir    string        // os.TempDir() if empty
	CacheWindow time.Duration // 0 disables the price cache
	Concurrency int
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		LedgerFile:  "transactions.csv",
		Currency:    "USD",
		Endpoint:    DefaultPriceEndpoint,
		CacheWindow: time.Minute,
		Concurrency: DefaultConcurrency,
	}
}

// LoadConfig reads the configuration from the environment.
//
// If envFile exists it is loaded first; it never overrides a variable that
// is already set in the environment. A missing envFile is not an error.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("cannot load %q: %w", envFile, err)
		}
	}

	cfg := DefaultConfig()
	cfg.LedgerFile = getEnv(EnvLedgerFile, cfg.LedgerFile)
	cfg.Currency = getEnv(EnvCurrency, cfg.Currency)
	cfg.APIKey = getEnv(EnvAPIKey, cfg.APIKey)
	cfg.Endpoint = getEnv(EnvEndpoint, cfg.Endpoint)
	cfg.CacheDir = getEnv(EnvCacheDir, cfg.CacheDir)

	var errs error
	if v, ok := os.LookupEnv(EnvCacheWindow); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("invalid %s %q: %w", EnvCacheWindow, v, err))
		}
		cfg.CacheWindow = d
	}
	if v, ok := os.LookupEnv(EnvConcurrency); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("invalid %s %q: %w", EnvConcurrency, v, err))
		}
		cfg.Concurrency = n
	}
	if errs != nil {
		return cfg, errs
	}
	return cfg, nil
}

// Validate checks the configuration and returns every problem found.
func (c Config) Validate() error {
	var errs error
	if c.LedgerFile == "" {
		errs = errors.Join(errs, errors.New("ledger file cannot be empty"))
	}
	if _, err := CheckCurrency(c.Currency); err != nil {
		errs = errors.Join(errs, fmt.Errorf("invalid reference currency: %w", err))
	}
	if c.Concurrency < 1 {
		errs = errors.Join(errs, fmt.Errorf("invalid concurrency %d: must be at least 1", c.Concurrency))
	}
	if c.CacheWindow < 0 {
		errs = errors.Join(errs, fmt.Errorf("invalid cache window %v: must not be negative", c.CacheWindow))
	}
	return errs
}

// PriceSource returns the live price source described by the configuration.
func (c Config) PriceSource() *CryptoCompare {
	return &CryptoCompare{
		Endpoint: c.Endpoint,
		APIKey:   c.APIKey,
		Client:   CachedClient(c.CacheDir, c.CacheWindow),
	}
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}
