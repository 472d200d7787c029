// Package config loads the indexer configuration from a file, .env and SNI_
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrConfig marks configuration that cannot be read or is invalid.
var ErrConfig = errors.New("invalid config")

const (
	envPrefix = "SNI"
	envFile   = ".env"

	SourceRPC  = "rpc"
	SourceNATS = "nats"
)

// Config is the full indexer configuration.
type Config struct {
	Network  NetworkConfig  `mapstructure:"network"`
	Storage  StorageConfig  `mapstructure:"storage"`
	API      APIConfig      `mapstructure:"api"`
	Indexing IndexingConfig `mapstructure:"indexing"`
	Engine   EngineConfig   `mapstructure:"engine"`
	Log      LogConfig      `mapstructure:"log"`
}

// NetworkConfig holds the upstream RPC settings.
type NetworkConfig struct {
	RPCURL                  string        `mapstructure:"rpc_url"`
	WebsocketURL            string        `mapstructure:"websocket_url"`
	Commitment              string        `mapstructure:"commitment"`
	AutoDiscoverValidators  bool          `mapstructure:"auto_discover_validators"`
	MaxValidatorConnections int           `mapstructure:"max_validator_connections"`
	HealthInterval          time.Duration `mapstructure:"health_interval"`
	RequestTimeout          time.Duration `mapstructure:"request_timeout"`
	RPCRequestsPerSecond    int           `mapstructure:"rpc_requests_per_second"`
}

// StorageConfig selects the durable store.
type StorageConfig struct {
	DatabaseURL       string `mapstructure:"database_url"`
	EnableCompression bool   `mapstructure:"enable_compression"`
	BatchSize         int    `mapstructure:"batch_size"`
	FlushIntervalMS   int    `mapstructure:"flush_interval_ms"`
	MaxOpenConns      int    `mapstructure:"max_open_conns"` // 0 keeps the backend default
}

// APIConfig holds the HTTP and gRPC listener settings.
type APIConfig struct {
	Host             string   `mapstructure:"host"`
	Port             int      `mapstructure:"port"`
	GRPCPort         int      `mapstructure:"grpc_port"`
	EnableGraphQL    bool     `mapstructure:"enable_graphql"`
	EnableWebsockets bool     `mapstructure:"enable_websockets"`
	CORSOrigins      []string `mapstructure:"cors_origins"`
}

// IndexingConfig toggles what the pipeline produces.
type IndexingConfig struct {
	IndexAccounts      bool          `mapstructure:"index_accounts"`
	IndexTransactions  bool          `mapstructure:"index_transactions"`
	IndexBlocks        bool          `mapstructure:"index_blocks"`
	TrackValidators    bool          `mapstructure:"track_validators"`
	TrackNetworkHealth bool          `mapstructure:"track_network_health"`
	TrackSlotStatus    bool          `mapstructure:"track_slot_status"`
	ProgramFilters     []string      `mapstructure:"program_filters"`
	StatsInterval      time.Duration `mapstructure:"stats_interval"`
}

// EngineConfig selects and tunes the ingestion engine.
type EngineConfig struct {
	Source       string        `mapstructure:"source"`
	NATSURL      string        `mapstructure:"nats_url"`
	NATSSubject  string        `mapstructure:"nats_subject"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	FetchWorkers int           `mapstructure:"fetch_workers"`
	BufferSize   int           `mapstructure:"buffer_size"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Network: NetworkConfig{
			RPCURL:                  "https://api.mainnet-beta.solana.com",
			WebsocketURL:            "wss://api.mainnet-beta.solana.com",
			Commitment:              "confirmed",
			AutoDiscoverValidators:  true,
			MaxValidatorConnections: 5,
			HealthInterval:          30 * time.Second,
			RequestTimeout:          30 * time.Second,
			RPCRequestsPerSecond:    10,
		},
		Storage: StorageConfig{
			DatabaseURL:       "sqlite:sni.db",
			EnableCompression: true,
			BatchSize:         1000,
			FlushIntervalMS:   5000,
		},
		API: APIConfig{
			Host:             "0.0.0.0",
			Port:             8080,
			GRPCPort:         8081,
			EnableGraphQL:    true,
			EnableWebsockets: true,
			CORSOrigins:      []string{"*"},
		},
		Indexing: IndexingConfig{
			IndexAccounts:      true,
			IndexTransactions:  true,
			IndexBlocks:        true,
			TrackValidators:    true,
			TrackNetworkHealth: true,
			ProgramFilters:     []string{},
			StatsInterval:      60 * time.Second,
		},
		Engine: EngineConfig{
			Source:       SourceRPC,
			NATSSubject:  "sni.events",
			PollInterval: 400 * time.Millisecond,
			FetchWorkers: 4,
			BufferSize:   1024,
		},
	}
}

// Load reads the file at path, if it exists, over the defaults. A .env file
// in the working directory and SNI_ variables override both, e.g.
// SNI_STORAGE_DATABASE_URL. A missing file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: load %s: %v", ErrConfig, envFile, err)
	}

	v := newViper(Default())

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("%w: read %s: %v", ErrConfig, path, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: stat %s: %v", ErrConfig, path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration to path. The format follows the extension.
func (c *Config) Save(path string) error {
	v := viper.New()
	if err := v.MergeConfigMap(c.settings()); err != nil {
		return fmt.Errorf("merge config: %w", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Validate reports settings the pipeline cannot start with.
func (c *Config) Validate() error {
	var problems []string
	if c.Network.RPCURL == "" {
		problems = append(problems, "network.rpc_url is empty")
	}
	if c.Storage.DatabaseURL == "" {
		problems = append(problems, "storage.database_url is empty")
	}
	if c.API.Port < 0 || c.API.Port > 65535 {
		problems = append(problems, fmt.Sprintf("api.port %d out of range", c.API.Port))
	}
	if c.API.GRPCPort < 0 || c.API.GRPCPort > 65535 {
		problems = append(problems, fmt.Sprintf("api.grpc_port %d out of range", c.API.GRPCPort))
	}
	switch c.Engine.Source {
	case SourceRPC:
	case SourceNATS:
		if c.Engine.NATSURL == "" {
			problems = append(problems, "engine.nats_url is required for the nats source")
		}
	default:
		problems = append(problems, fmt.Sprintf("engine.source %q is not one of rpc, nats", c.Engine.Source))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrConfig, strings.Join(problems, "; "))
	}
	return nil
}

func newViper(defaults *Config) *viper.Viper {
	v := viper.New()
	for section, values := range defaults.settings() {
		for key, value := range values.(map[string]any) {
			v.SetDefault(section+"."+key, value)
		}
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// settings lays the config out by section and key. Durations are written as
// strings so saved files stay readable.
func (c *Config) settings() map[string]any {
	return map[string]any{
		"network": map[string]any{
			"rpc_url":                   c.Network.RPCURL,
			"websocket_url":             c.Network.WebsocketURL,
			"commitment":                c.Network.Commitment,
			"auto_discover_validators":  c.Network.AutoDiscoverValidators,
			"max_validator_connections": c.Network.MaxValidatorConnections,
			"health_interval":           c.Network.HealthInterval.String(),
			"request_timeout":           c.Network.RequestTimeout.String(),
			"rpc_requests_per_second":   c.Network.RPCRequestsPerSecond,
		},
		"storage": map[string]any{
			"database_url":       c.Storage.DatabaseURL,
			"enable_compression": c.Storage.EnableCompression,
			"batch_size":         c.Storage.BatchSize,
			"flush_interval_ms":  c.Storage.FlushIntervalMS,
			"max_open_conns":     c.Storage.MaxOpenConns,
		},
		"api": map[string]any{
			"host":              c.API.Host,
			"port":              c.API.Port,
			"grpc_port":         c.API.GRPCPort,
			"enable_graphql":    c.API.EnableGraphQL,
			"enable_websockets": c.API.EnableWebsockets,
			"cors_origins":      c.API.CORSOrigins,
		},
		"indexing": map[string]any{
			"index_accounts":       c.Indexing.IndexAccounts,
			"index_transactions":   c.Indexing.IndexTransactions,
			"index_blocks":         c.Indexing.IndexBlocks,
			"track_validators":     c.Indexing.TrackValidators,
			"track_network_health": c.Indexing.TrackNetworkHealth,
			"track_slot_status":    c.Indexing.TrackSlotStatus,
			"program_filters":      c.Indexing.ProgramFilters,
			"stats_interval":       c.Indexing.StatsInterval.String(),
		},
		"engine": map[string]any{
			"source":        c.Engine.Source,
			"nats_url":      c.Engine.NATSURL,
			"nats_subject":  c.Engine.NATSSubject,
			"poll_interval": c.Engine.PollInterval.String(),
			"fetch_workers": c.Engine.FetchWorkers,
			"buffer_size":   c.Engine.BufferSize,
		},
		"log": map[string]any{
			"debug":      c.Log.Debug,
			"sentry_dsn": c.Log.SentryDSN,
		},
	}
}
