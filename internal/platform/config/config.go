package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full process configuration. Every field can be set through
// the environment; a .env or config.env file in the working directory is
// read first when present.
type Config struct {
	Server   Server
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Provider ProviderConfig
	Policy   PolicyConfig
	OTP      OTPConfig
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string
	Environment   string
	LogLevel      string
	AdminAPIToken string
	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string
}

// IsProduction reports whether the process runs with production defaults.
func (s Server) IsProduction() bool {
	return s.Environment == "production"
}

// DatabaseConfig holds the Postgres DSN. An empty URL selects in-memory stores.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig holds redis connection settings. An empty URL disables redis.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the audit event sink. No brokers keeps audit in memory.
type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
	Partitions int32
	Replicas   int16
}

// ProviderConfig configures the KYC/bank/company verification provider.
type ProviderConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	APIVersion   string
	Timeout      time.Duration
	// BreakerFailures consecutive outages open the provider circuit for
	// BreakerCooldown.
	BreakerFailures int
	BreakerCooldown time.Duration
	// Fake selects the deterministic in-process provider for local development.
	Fake bool
}

// PolicyConfig carries the contract constants that must be tunable without
// a code change.
type PolicyConfig struct {
	BlockThreshold   int
	ApproveThreshold int
	MinReferences    int
	MinPartners      int
	MaxPartners      int
}

// OTPConfig bounds how long an Aadhaar OTP reference stays usable.
type OTPConfig struct {
	ReferenceTTL time.Duration
}

// Load reads configuration via viper. Environment variables win over file values.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{
		Server: Server{
			Addr:          v.GetString("ONBOARDING_ADDR"),
			Environment:   v.GetString("APP_ENV"),
			LogLevel:      v.GetString("LOG_LEVEL"),
			AdminAPIToken: v.GetString("ADMIN_API_TOKEN"),
			JWTSigningKey: v.GetString("JWT_SIGNING_KEY"),
			JWTIssuer:     v.GetString("JWT_ISSUER"),
			JWTAudience:   v.GetString("JWT_AUDIENCE"),
		},
		Database: DatabaseConfig{
			URL:             v.GetString("DATABASE_URL"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		Redis: RedisConfig{
			URL:          v.GetString("REDIS_URL"),
			PoolSize:     v.GetInt("REDIS_POOL_SIZE"),
			MinIdleConns: v.GetInt("REDIS_MIN_IDLE_CONNS"),
			DialTimeout:  v.GetDuration("REDIS_DIAL_TIMEOUT"),
			ReadTimeout:  v.GetDuration("REDIS_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("REDIS_WRITE_TIMEOUT"),
		},
		Kafka: KafkaConfig{
			Brokers:    splitList(v.GetString("KAFKA_BROKERS")),
			AuditTopic: v.GetString("KAFKA_AUDIT_TOPIC"),
			Partitions: int32(v.GetInt("KAFKA_AUDIT_PARTITIONS")),
			Replicas:   int16(v.GetInt("KAFKA_AUDIT_REPLICAS")),
		},
		Provider: ProviderConfig{
			BaseURL:         v.GetString("PROVIDER_BASE_URL"),
			ClientID:        v.GetString("PROVIDER_CLIENT_ID"),
			ClientSecret:    v.GetString("PROVIDER_CLIENT_SECRET"),
			APIVersion:      v.GetString("PROVIDER_API_VERSION"),
			Timeout:         v.GetDuration("PROVIDER_TIMEOUT"),
			BreakerFailures: v.GetInt("PROVIDER_BREAKER_FAILURES"),
			BreakerCooldown: v.GetDuration("PROVIDER_BREAKER_COOLDOWN"),
			Fake:            v.GetBool("PROVIDER_FAKE"),
		},
		Policy: PolicyConfig{
			BlockThreshold:   v.GetInt("POLICY_BLOCK_THRESHOLD"),
			ApproveThreshold: v.GetInt("POLICY_APPROVE_THRESHOLD"),
			MinReferences:    v.GetInt("POLICY_MIN_REFERENCES"),
			MinPartners:      v.GetInt("POLICY_MIN_PARTNERS"),
			MaxPartners:      v.GetInt("POLICY_MAX_PARTNERS"),
		},
		OTP: OTPConfig{
			ReferenceTTL: v.GetDuration("OTP_REFERENCE_TTL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ONBOARDING_ADDR", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SIGNING_KEY", "dev-secret-key-change-in-production")
	v.SetDefault("JWT_ISSUER", "dsa-identity")
	v.SetDefault("JWT_AUDIENCE", "dsa-onboarding")

	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", time.Hour)

	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("REDIS_MIN_IDLE_CONNS", 2)
	v.SetDefault("REDIS_DIAL_TIMEOUT", 5*time.Second)
	v.SetDefault("REDIS_READ_TIMEOUT", 3*time.Second)
	v.SetDefault("REDIS_WRITE_TIMEOUT", 3*time.Second)

	v.SetDefault("KAFKA_AUDIT_TOPIC", "onboarding.audit")
	v.SetDefault("KAFKA_AUDIT_PARTITIONS", 3)
	v.SetDefault("KAFKA_AUDIT_REPLICAS", 1)

	v.SetDefault("PROVIDER_API_VERSION", "2.0")
	v.SetDefault("PROVIDER_TIMEOUT", 45*time.Second)
	v.SetDefault("PROVIDER_BREAKER_FAILURES", 5)
	v.SetDefault("PROVIDER_BREAKER_COOLDOWN", 30*time.Second)
	v.SetDefault("PROVIDER_FAKE", false)

	v.SetDefault("POLICY_BLOCK_THRESHOLD", 70)
	v.SetDefault("POLICY_APPROVE_THRESHOLD", 80)
	v.SetDefault("POLICY_MIN_REFERENCES", 2)
	v.SetDefault("POLICY_MIN_PARTNERS", 2)
	v.SetDefault("POLICY_MAX_PARTNERS", 10)

	v.SetDefault("OTP_REFERENCE_TTL", 10*time.Minute)
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
