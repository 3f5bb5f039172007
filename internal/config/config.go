package config

import (
	"os"
	"time"

	"github.com/go-yaml/yaml"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

type Config struct {
	Server Server `yaml:"server"`
	Auth   Auth   `yaml:"auth"`
	Cache  Cache  `yaml:"cache"`
	Log    Log    `yaml:"log"`
	CORS   CORS   `yaml:"cors"`
}

type Server struct {
	Addr          string `yaml:"addr" envconfig:"ADDR"`
	PostgresDsn   string `yaml:"postgresDsn" envconfig:"POSTGRES_DSN"`
	RedisAddr     string `yaml:"redisAddr" envconfig:"REDIS_ADDR"`
	RedisPassword string `yaml:"redisPassword" envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redisDB" envconfig:"REDIS_DB"`
	MemcachedAddr string `yaml:"memcachedAddr" envconfig:"MEMCACHED_ADDR"`
	EnableTrace   bool   `yaml:"enableTrace" envconfig:"ENABLE_TRACE"`
	TraceEndpoint string `yaml:"traceEndpoint" envconfig:"TRACE_ENDPOINT"`
}

type Auth struct {
	JWTSecret      string        `yaml:"jwtSecret" envconfig:"JWT_SECRET"`
	TokenTTL       time.Duration `yaml:"tokenTTL" envconfig:"TOKEN_TTL"`
	BcryptCost     int           `yaml:"bcryptCost" envconfig:"BCRYPT_COST"`
	LoginRateLimit float64       `yaml:"loginRateLimit" envconfig:"LOGIN_RATE_LIMIT"`
}

type Cache struct {
	TTL time.Duration `yaml:"ttl" envconfig:"CACHE_TTL"`
}

type Log struct {
	Level  string `yaml:"level" envconfig:"LOG_LEVEL"`
	Format string `yaml:"format" envconfig:"LOG_FORMAT"` // json, text
}

type CORS struct {
	AllowOrigins []string `yaml:"allowOrigins" envconfig:"CORS_ALLOW_ORIGINS"`
}

// legacyEnv holds the unprefixed variable names the original deployment used.
type legacyEnv struct {
	JWTSecret   string `envconfig:"JWT_SECRET"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
}

// Default returns the configuration used when a key is absent from both file and env.
func Default() Config {
	return Config{
		Server: Server{
			Addr: ":8000",
		},
		Auth: Auth{
			TokenTTL:       time.Hour,
			BcryptCost:     10,
			LoginRateLimit: 10,
		},
		Cache: Cache{
			TTL: 5 * time.Minute,
		},
		Log: Log{
			Level:  "info",
			Format: "json",
		},
		CORS: CORS{
			AllowOrigins: []string{"*"},
		},
	}
}

// Load reads the configuration with Read and validates it for serving.
func Load(path string) (Config, error) {
	config, err := Read(path)
	if err != nil {
		return Config{}, err
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Read reads the YAML file at path (optional when empty) and overlays
// TUNEDECK_* environment variables.
func Read(path string) (Config, error) {
	config := Default()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return Config{}, errors.Wrap(err, "open config")
		}
		defer file.Close()

		err = yaml.NewDecoder(file).Decode(&config)
		if err != nil {
			return Config{}, errors.Wrap(err, "decode config")
		}
	}

	if err := applyEnv(&config); err != nil {
		return Config{}, err
	}

	return config, nil
}

func applyEnv(config *Config) error {
	var legacy legacyEnv
	if err := envconfig.Process("", &legacy); err != nil {
		return errors.Wrap(err, "process env")
	}
	if legacy.JWTSecret != "" {
		config.Auth.JWTSecret = legacy.JWTSecret
	}
	if legacy.DatabaseURL != "" {
		config.Server.PostgresDsn = legacy.DatabaseURL
	}

	// Prefixed variables win over the legacy names.
	sections := []any{&config.Server, &config.Auth, &config.Cache, &config.Log, &config.CORS}
	for _, section := range sections {
		if err := envconfig.Process("tunedeck", section); err != nil {
			return errors.Wrap(err, "process env")
		}
	}
	return nil
}

// Validate fails when the configuration cannot run a server. A missing signing
// secret aborts startup instead of turning every request into a 401.
func (c Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwtSecret (JWT_SECRET) must be configured")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.tokenTTL must be positive")
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return errors.Errorf("auth.bcryptCost %d out of range", c.Auth.BcryptCost)
	}
	return c.ValidateDatabase()
}

// ValidateDatabase checks only what the migrate and import commands need.
func (c Config) ValidateDatabase() error {
	if c.Server.PostgresDsn == "" {
		return errors.New("server.postgresDsn (DATABASE_URL) must be configured")
	}
	return nil
}
