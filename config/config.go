package config

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Custody  CustodyConfig  `mapstructure:"custody"`
	Approval ApprovalConfig `mapstructure:"approval"`
	API      APIConfig      `mapstructure:"api"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// LedgerConfig describes the XRPL endpoint and submission behaviour.
type LedgerConfig struct {
	Network        string        `mapstructure:"network"`  // testnet, mainnet
	Endpoint       string        `mapstructure:"endpoint"` // JSON-RPC URL; empty = network default
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	ValidationWait time.Duration `mapstructure:"validation_wait"` // total budget for finality polling
	PollInterval   time.Duration `mapstructure:"poll_interval"`
}

// URL resolves the endpoint, falling back to the public cluster for the
// configured network.
func (l LedgerConfig) URL() string {
	if l.Endpoint != "" {
		return l.Endpoint
	}
	if l.Network == "mainnet" {
		return "https://xrplcluster.com"
	}
	return "https://s.altnet.rippletest.net:51234"
}

// CustodyConfig holds the process-wide key material and escrow policy.
// The seeds and encryption key are loaded once at startup and injected;
// their absence is a fatal startup error.
type CustodyConfig struct {
	EncryptionKey      string        `mapstructure:"encryption_key"` // 64-char hex (AES-256)
	DelegateSeed       string        `mapstructure:"delegate_seed"`  // service regular-key seed
	GasSeed            string        `mapstructure:"gas_seed"`       // operational funding account seed
	DelegateAddress    string        `mapstructure:"delegate_address"`
	GasAddress         string        `mapstructure:"gas_address"`
	ReserveDrops       int64         `mapstructure:"reserve_drops"` // funding target per wallet
	SettlementCurrency string        `mapstructure:"settlement_currency"`
	SettlementIssuer   string        `mapstructure:"settlement_issuer"`
	TrustLineLimit     string        `mapstructure:"trust_line_limit"`
	EscrowCancelAfter  time.Duration `mapstructure:"escrow_cancel_after"` // expiry window on new escrows
}

// ApprovalConfig configures verification of client approval tokens
// (issued by the external 2FA collaborator) gating master-key export.
type ApprovalConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

type APIConfig struct {
	Key string `mapstructure:"key"` // static key for the trusted outer layer
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: XEA_ (XRPL Escrow
// Agent). Nested keys use underscore: XEA_CUSTODY_ENCRYPTION_KEY, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "escrow_agent")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("ledger.network", "testnet")
	v.SetDefault("ledger.endpoint", "")
	v.SetDefault("ledger.request_timeout", "10s")
	v.SetDefault("ledger.validation_wait", "20s")
	v.SetDefault("ledger.poll_interval", "1s")
	v.SetDefault("custody.encryption_key", "")
	v.SetDefault("custody.delegate_seed", "")
	v.SetDefault("custody.gas_seed", "")
	v.SetDefault("custody.delegate_address", "")
	v.SetDefault("custody.gas_address", "")
	v.SetDefault("custody.reserve_drops", 12_000_000) // 12 XRP base reserve
	v.SetDefault("custody.settlement_currency", "RLUSD")
	v.SetDefault("custody.settlement_issuer", "")
	v.SetDefault("custody.trust_line_limit", "1000000000")
	v.SetDefault("custody.escrow_cancel_after", "720h") // 30 days
	v.SetDefault("approval.secret", "")
	v.SetDefault("approval.issuer", "xrpl-escrow-agent")
	v.SetDefault("api.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: XEA_LEDGER_NETWORK -> ledger.network
	v.SetEnvPrefix("XEA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate enforces the configuration contract: missing key material is a
// fatal startup error, never a runtime surprise.
func (c *Config) Validate() error {
	key, err := hex.DecodeString(c.Custody.EncryptionKey)
	if err != nil || len(key) != 32 {
		return fmt.Errorf("custody.encryption_key must be 64 hex characters (32 bytes)")
	}
	if c.Custody.DelegateSeed == "" {
		return fmt.Errorf("custody.delegate_seed is required")
	}
	if c.Custody.GasSeed == "" {
		return fmt.Errorf("custody.gas_seed is required")
	}
	if c.Custody.ReserveDrops <= 0 {
		return fmt.Errorf("custody.reserve_drops must be positive")
	}
	if c.Ledger.Network != "testnet" && c.Ledger.Network != "mainnet" {
		return fmt.Errorf("ledger.network must be testnet or mainnet, got %q", c.Ledger.Network)
	}
	return nil
}
