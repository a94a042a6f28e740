package config

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Service         ServiceConfig        `mapstructure:"service"`
	Storage         StorageConfig        `mapstructure:"storage"`
	ExternalClients ExternalClientConfig `mapstructure:"externalClients"`
	Prices          PricesConfig         `mapstructure:"prices"`
	Import          ImportConfig         `mapstructure:"import"`
	Logging         LoggingConfig        `mapstructure:"logging"`
	Scheduler       SchedulerConfig      `mapstructure:"scheduler"`
}

type ServiceType string

const (
	API    ServiceType = "API"
	WORKER ServiceType = "WORKER"
)

type ServiceConfig struct {
	Type ServiceType `mapstructure:"type"`
	Port string      `mapstructure:"port"`
}

type StorageConfig struct {
	DataDir          string `mapstructure:"dataDir"`
	Stocks           string `mapstructure:"stocks"`
	MutualFunds      string `mapstructure:"mutualFunds"`
	Loans            string `mapstructure:"loans"`
	CreditCards      string `mapstructure:"creditCards"`
	SavingsAccounts  string `mapstructure:"savingsAccounts"`
	OtherInvestments string `mapstructure:"otherInvestments"`
	History          string `mapstructure:"history"`
}

// Path joins a file name of the storage section with the data directory.
func (s StorageConfig) Path(file string) string {
	return filepath.Join(s.DataDir, file)
}

type ExternalClientConfig struct {
	Yahoo     YahooConfig   `mapstructure:"yahoo"`
	MFAPI     MFAPIConfig   `mapstructure:"mfapi"`
	UserAgent string        `mapstructure:"userAgent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type YahooConfig struct {
	BaseURL        string `mapstructure:"baseUrl"`
	ExchangeSuffix string `mapstructure:"exchangeSuffix"`
}

type MFAPIConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
}

// PricesConfig paces quote requests. RequestTimeout bounds a whole request
// that prices holdings, which fetches one identifier every RequestDelay.
type PricesConfig struct {
	RequestDelay   time.Duration `mapstructure:"requestDelay"`
	RequestTimeout time.Duration `mapstructure:"requestTimeout"`
}

// ImportConfig holds the tuning constants of the holdings extractor.
type ImportConfig struct {
	HeaderScanRows     int `mapstructure:"headerScanRows"`
	FallbackHeaderRows int `mapstructure:"fallbackHeaderRows"`
	FallbackOffsets    int `mapstructure:"fallbackOffsets"`
	MinPopulatedRows   int `mapstructure:"minPopulatedRows"`
}

type LoggingConfig struct {
	Level    string `mapstructure:"level"`
	ToFile   bool   `mapstructure:"toFile"`
	FilePath string `mapstructure:"filePath"`
}

type SchedulerConfig struct {
	SnapshotCron string `mapstructure:"snapshotCron"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("service.type", string(API))
	v.SetDefault("service.port", "8000")

	v.SetDefault("storage.dataDir", "assets/PersonalFiles")
	v.SetDefault("storage.stocks", "myPortfolio.csv")
	v.SetDefault("storage.mutualFunds", "myMFPortfolio.csv")
	v.SetDefault("storage.loans", "myLoans.csv")
	v.SetDefault("storage.creditCards", "myCreditCards.csv")
	v.SetDefault("storage.savingsAccounts", "mySavingsAccounts.csv")
	v.SetDefault("storage.otherInvestments", "myOtherInvestments.csv")
	v.SetDefault("storage.history", "myPortfolioHistory.csv")

	v.SetDefault("externalClients.yahoo.baseUrl", "https://query1.finance.yahoo.com")
	v.SetDefault("externalClients.yahoo.exchangeSuffix", ".NS")
	v.SetDefault("externalClients.mfapi.baseUrl", "https://api.mfapi.in")
	v.SetDefault("externalClients.userAgent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	v.SetDefault("externalClients.timeout", "30s")

	v.SetDefault("prices.requestDelay", "500ms")
	v.SetDefault("prices.requestTimeout", "5m")

	v.SetDefault("import.headerScanRows", 30)
	v.SetDefault("import.fallbackHeaderRows", 10)
	v.SetDefault("import.fallbackOffsets", 5)
	v.SetDefault("import.minPopulatedRows", 10)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.toFile", false)
	v.SetDefault("logging.filePath", "wallet.log")

	v.SetDefault("scheduler.snapshotCron", "0 18 * * 1-5")
}

// LoadConfig reads settings/appsettings.yaml from path. A missing file is not
// an error: defaults and WALLET_* environment variables still apply.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("appsettings")
	v.SetConfigType("yaml")
	v.SetEnvPrefix("wallet")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration made of defaults only.
func Default() *Config {
	var cfg Config
	v := viper.New()
	setDefaults(v)
	_ = v.Unmarshal(&cfg)
	return &cfg
}
