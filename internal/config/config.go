// Package config provides types for handling configuration parameters.
package config

import (
	"flag"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config handles server-related constants and parameters.
//
// Values are resolved in the following order: defaults, optional JSON/YAML file given by
// CONFIG or -c, environment variables, command line flags.
type Config struct {
	ServerAddress        string        `json:"server_address" yaml:"server_address" env:"SERVER_ADDRESS" env-default:":8080"`
	GRPCAddress          string        `json:"grpc_address" yaml:"grpc_address" env:"GRPC_ADDRESS" env-default:":3200"`
	DatabaseDSN          string        `json:"database_dsn" yaml:"database_dsn" env:"DATABASE_DSN"`
	HotPepperAPIKey      string        `json:"hotpepper_api_key" yaml:"hotpepper_api_key" env:"HOTPEPPER_API_KEY"`
	HotPepperBaseURL     string        `json:"hotpepper_base_url" yaml:"hotpepper_base_url" env:"HOTPEPPER_BASE_URL" env-default:"https://webservice.recruit.co.jp/hotpepper/gourmet/v1/"`
	HotPepperResultCount int           `json:"hotpepper_result_count" yaml:"hotpepper_result_count" env:"HOTPEPPER_RESULT_COUNT" env-default:"30"`
	HotPepperFanout      int           `json:"hotpepper_fanout" yaml:"hotpepper_fanout" env:"HOTPEPPER_FANOUT" env-default:"4"`
	HotPepperTimeout     time.Duration `json:"hotpepper_timeout" yaml:"hotpepper_timeout" env:"HOTPEPPER_TIMEOUT" env-default:"0s"`
	RedisAddr            string        `json:"redis_addr" yaml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword        string        `json:"redis_password" yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB              int           `json:"redis_db" yaml:"redis_db" env:"REDIS_DB" env-default:"0"`
	CacheTTL             time.Duration `json:"cache_ttl" yaml:"cache_ttl" env:"CACHE_TTL" env-default:"24h"`
	CacheCapacity        int           `json:"cache_capacity" yaml:"cache_capacity" env:"CACHE_CAPACITY" env-default:"0"`
	JWTSecret            string        `json:"jwt_secret" yaml:"jwt_secret" env:"JWT_SECRET"`
	TrustedSubnet        string        `json:"trusted_subnet" yaml:"trusted_subnet" env:"TRUSTED_SUBNET"`
	TrustedProxy         string        `json:"trusted_proxy" yaml:"trusted_proxy" env:"TRUSTED_PROXY"`
	LogLevel             string        `json:"log_level" yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	ConfigPath           string        `json:"-" yaml:"-" env:"CONFIG"`
}

// NewDefaultConfiguration initializes a configuration struct.
func NewDefaultConfiguration() *Config {
	return &Config{}
}

// Parse sets configuration parameters from a file, environment and command line arguments.
func (c *Config) Parse(args []string) error {
	fs := flag.NewFlagSet("sharegourmet", flag.ContinueOnError)
	a := fs.String("a", "", "Server address")
	g := fs.String("g", "", "GRPC server address")
	d := fs.String("d", "", "PSQL DB connection")
	cf := fs.String("c", "", "Configuration file path")
	l := fs.String("l", "", "Log level")
	t := fs.String("t", "", "Trusted subnet in CIDR notation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.assignValues(*a, *g, *d, *cf, *l, *t)
}

// assignValues reads the file and environment, then overrides with non-empty flag values.
func (c *Config) assignValues(a, g, d, cf, l, t string) error {
	path := cf
	if path == "" {
		if err := cleanenv.ReadEnv(c); err != nil {
			return err
		}
		path = c.ConfigPath
	}
	if path != "" {
		if err := cleanenv.ReadConfig(path, c); err != nil {
			return err
		}
	}
	if a != "" {
		c.ServerAddress = a
	}
	if g != "" {
		c.GRPCAddress = g
	}
	if d != "" {
		c.DatabaseDSN = d
	}
	if l != "" {
		c.LogLevel = l
	}
	if t != "" {
		c.TrustedSubnet = t
	}
	return nil
}
