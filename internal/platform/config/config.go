package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	id "verisbt/pkg/domain"
)

// Server captures process level configuration.
type Server struct {
	Addr        string
	MetricsAddr string
	Environment string
	LogLevel    string

	Owner   common.Address
	Manager common.Address

	JWTSigningKey string
	TokenTTL      time.Duration

	DatabaseURL      string
	KafkaBrokers     []string
	KafkaEventsTopic string

	BootstrapFile   string
	ShutdownTimeout time.Duration
}

// Defaults used when the environment leaves a value unset.
const (
	DefaultAddr             = ":8080"
	DefaultMetricsAddr      = ":9090"
	DefaultEnvironment      = "dev"
	DefaultKafkaEventsTopic = "verisbt.events"
	DefaultManagerAddress   = "0x000000000000000000000000000000000000c0de"
	DevJWTSigningKey        = "dev-secret-key-change-in-production"
)

var TokenTTL = 15 * time.Minute
var ShutdownTimeout = 15 * time.Second

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	return fromLookup(os.Getenv)
}

func fromLookup(getenv func(string) string) (Server, error) {
	cfg := Server{
		Addr:             withDefault(getenv("VSBT_ADDR"), DefaultAddr),
		MetricsAddr:      withDefault(getenv("VSBT_METRICS_ADDR"), DefaultMetricsAddr),
		Environment:      withDefault(getenv("VSBT_ENV"), DefaultEnvironment),
		LogLevel:         withDefault(getenv("LOG_LEVEL"), "info"),
		JWTSigningKey:    getenv("JWT_SIGNING_KEY"),
		TokenTTL:         TokenTTL,
		DatabaseURL:      getenv("DATABASE_URL"),
		KafkaBrokers:     splitList(getenv("KAFKA_BROKERS")),
		KafkaEventsTopic: withDefault(getenv("KAFKA_EVENTS_TOPIC"), DefaultKafkaEventsTopic),
		BootstrapFile:    getenv("VSBT_BOOTSTRAP_FILE"),
		ShutdownTimeout:  ShutdownTimeout,
	}

	if raw := getenv("TOKEN_TTL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Server{}, fmt.Errorf("TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = d
	}

	if cfg.JWTSigningKey == "" {
		if !cfg.IsDev() {
			return Server{}, fmt.Errorf("JWT_SIGNING_KEY is required outside dev")
		}
		cfg.JWTSigningKey = DevJWTSigningKey
	}

	ownerRaw := getenv("VSBT_OWNER_ADDRESS")
	if ownerRaw == "" {
		return Server{}, fmt.Errorf("VSBT_OWNER_ADDRESS is required")
	}
	owner, err := id.ParseAddress(ownerRaw)
	if err != nil {
		return Server{}, fmt.Errorf("VSBT_OWNER_ADDRESS: %w", err)
	}
	cfg.Owner = owner

	manager, err := id.ParseAddress(withDefault(getenv("VSBT_MANAGER_ADDRESS"), DefaultManagerAddress))
	if err != nil {
		return Server{}, fmt.Errorf("VSBT_MANAGER_ADDRESS: %w", err)
	}
	if manager == owner {
		return Server{}, fmt.Errorf("VSBT_MANAGER_ADDRESS must differ from the owner")
	}
	cfg.Manager = manager

	return cfg, nil
}

func (s Server) IsDev() bool {
	return s.Environment == "dev" || s.Environment == "local"
}

func (s Server) UsePostgres() bool { return s.DatabaseURL != "" }

func (s Server) UseKafka() bool { return len(s.KafkaBrokers) > 0 }

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
