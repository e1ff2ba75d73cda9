package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrInvalidMinStudents     = errors.New("minimum students must be positive")
	ErrInvalidDatabaseType    = errors.New("database type must be sqlite or postgres")
	ErrDatabaseURLRequired    = errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
	ErrInvalidVoteProbability = errors.New("vote probability must be between 0 and 1")
	ErrInvalidDeltaRange      = errors.New("minimum delta must not exceed maximum delta, and the range must fit in an int")
)

// Config is the server configuration
type Config struct {
	Port         int    `env:"PORT" envDefault:"5000"`
	MinStudents  int    `env:"MIN_STUDENTS" envDefault:"20"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"sqlite"`
	DatabaseURL  string `env:"DATABASE_URL"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
}

// ActorConfig configures a teacher or door client
type ActorConfig struct {
	ServerURL    string        `env:"CLASSROOM_URL" envDefault:"http://127.0.0.1:5000"`
	Name         string        `env:"NAME"`
	PollInterval time.Duration `env:"POLL_INTERVAL"`
	RetryDelay   time.Duration `env:"RETRY_DELAY" envDefault:"2s"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`

	// Teacher only
	VoteProbability float64 `env:"VOTE_PROBABILITY" envDefault:"0.4"`

	// Door only
	MinDelta int `env:"MIN_DELTA" envDefault:"-6"`
	MaxDelta int `env:"MAX_DELTA" envDefault:"9"`
}

// LoadDotEnv loads variables from the given .env files (default ".env").
// Missing files are ignored; variables already set are not overridden.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// ParseFlags reads the server config from the environment, then lets CLI
// flags override it
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("classroom", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.IntVar(&cfg.MinStudents, "m", cfg.MinStudents, "Students required before start voting opens")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Journal database type (sqlite or postgres)")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Journal database URL")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.MinStudents <= 0 {
		return Config{}, ErrInvalidMinStudents
	}

	switch cfg.DatabaseType {
	case "sqlite":
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = ":memory:"
		}
	case "postgres":
		if cfg.DatabaseURL == "" {
			return Config{}, ErrDatabaseURLRequired
		}
	default:
		return Config{}, ErrInvalidDatabaseType
	}

	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseTeacherFlags parses the teacher client config. The poll interval
// defaults to 5s.
func ParseTeacherFlags(args []string) (ActorConfig, error) {
	cfg, fs, err := actorFlagSet("teacher")
	if err != nil {
		return ActorConfig{}, err
	}
	fs.Float64Var(&cfg.VoteProbability, "v", cfg.VoteProbability, "Probability of voting yes each round")

	if err := fs.Parse(args); err != nil {
		return ActorConfig{}, err
	}

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	if cfg.VoteProbability < 0 || cfg.VoteProbability > 1 {
		return ActorConfig{}, ErrInvalidVoteProbability
	}
	return *cfg, validateActor(*cfg)
}

// ParseDoorFlags parses the door client config. A zero poll interval means
// a random 1-3s wait between reports.
func ParseDoorFlags(args []string) (ActorConfig, error) {
	cfg, fs, err := actorFlagSet("door")
	if err != nil {
		return ActorConfig{}, err
	}
	fs.IntVar(&cfg.MinDelta, "min-delta", cfg.MinDelta, "Smallest student delta per report")
	fs.IntVar(&cfg.MaxDelta, "max-delta", cfg.MaxDelta, "Largest student delta per report")

	if err := fs.Parse(args); err != nil {
		return ActorConfig{}, err
	}

	// MaxDelta-MinDelta+1 values are drawn from; that count must fit in an int
	if cfg.MinDelta > cfg.MaxDelta || cfg.MaxDelta-cfg.MinDelta+1 <= 0 {
		return ActorConfig{}, ErrInvalidDeltaRange
	}
	return *cfg, validateActor(*cfg)
}

func actorFlagSet(name string) (*ActorConfig, *flag.FlagSet, error) {
	cfg := &ActorConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.ServerURL, "u", cfg.ServerURL, "Classroom server URL")
	fs.StringVar(&cfg.Name, "n", cfg.Name, "Display name")
	fs.DurationVar(&cfg.PollInterval, "i", cfg.PollInterval, "Poll interval")
	fs.DurationVar(&cfg.RetryDelay, "r", cfg.RetryDelay, "Delay before retrying after a transport failure")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	return cfg, fs, nil
}

func validateActor(cfg ActorConfig) error {
	if cfg.ServerURL == "" {
		return errors.New("classroom URL required (use -u or CLASSROOM_URL env)")
	}
	if cfg.RetryDelay <= 0 {
		return errors.New("retry delay must be positive")
	}
	_, err := ParseLogLevel(cfg.LogLevel)
	return err
}

// ParseLogLevel converts a level name such as "info" or "WARN" to a slog.Level
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
