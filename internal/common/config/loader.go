// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like GENAI_API_KEY
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment-specific overlay, e.g. config.production.yaml
	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = viper.MergeInConfig() // ignore error if not found

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile loads .env from the working directory or the project root,
// whichever is found first.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// findProjectRoot walks up from the working directory looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// expandEnvVars resolves ${VAR} placeholders in string config values.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// overrideEmptyConfig falls back to well-known environment variables for
// values that are still empty after expansion.
func overrideEmptyConfig(cfg *Config) {
	if cfg.GenAI.APIKey == "" {
		if val := os.Getenv("GENAI_API_KEY"); val != "" {
			cfg.GenAI.APIKey = val
		}
	}

	if cfg.Database.Postgres.User == "" {
		if val := os.Getenv("DB_USER"); val != "" {
			cfg.Database.Postgres.User = val
		}
	}
	if cfg.Database.Postgres.Password == "" {
		if val := os.Getenv("DB_PASSWORD"); val != "" {
			cfg.Database.Postgres.Password = val
		}
	}
}

// ApplyDefaults sets default values for optional configuration fields. The
// dialogue defaults mirror the assistant's fleet profile: 3 questionnaire
// rounds, at least 4 passengers and a budget ceiling of R$150.
func ApplyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "carassist"
	}

	if cfg.Database.Postgres.MaxConnections == 0 {
		cfg.Database.Postgres.MaxConnections = 25
	}
	if cfg.Database.Postgres.MaxIdle == 0 {
		cfg.Database.Postgres.MaxIdle = 5
	}
	if cfg.Database.Postgres.SSLMode == "" {
		cfg.Database.Postgres.SSLMode = "disable"
	}
	if cfg.Database.Redis.CacheTTLSec == 0 {
		cfg.Database.Redis.CacheTTLSec = 60
	}

	if cfg.GenAI.Model == "" {
		cfg.GenAI.Model = "gemini-2.0-flash"
	}
	if cfg.GenAI.QuestionMaxTokens == 0 {
		cfg.GenAI.QuestionMaxTokens = 100
	}
	if cfg.GenAI.AnswerMaxTokens == 0 {
		cfg.GenAI.AnswerMaxTokens = 300
	}
	if cfg.GenAI.SummaryMaxTokens == 0 {
		cfg.GenAI.SummaryMaxTokens = 500
	}
	if cfg.GenAI.Temperature == 0 {
		cfg.GenAI.Temperature = 0.2
	}
	if cfg.GenAI.SummaryTemperature == 0 {
		cfg.GenAI.SummaryTemperature = 0.3
	}

	if cfg.Dialogue.Rounds == 0 {
		cfg.Dialogue.Rounds = 3
	}
	if cfg.Dialogue.CompanyRounds == 0 {
		cfg.Dialogue.CompanyRounds = 3
	}
	if cfg.Dialogue.DefaultMinPassengers == 0 {
		cfg.Dialogue.DefaultMinPassengers = 4
	}
	if cfg.Dialogue.DefaultMaxBudget == 0 {
		cfg.Dialogue.DefaultMaxBudget = 150.0
	}
	if len(cfg.Dialogue.Categories) == 0 {
		cfg.Dialogue.Categories = []string{"sedan", "hatch", "suv"}
	}
	if len(cfg.Dialogue.NumericKeywords) == 0 {
		cfg.Dialogue.NumericKeywords = []string{"orçamento", "diária", "passageiro"}
	}
	if len(cfg.Dialogue.PassengerKeywords) == 0 {
		cfg.Dialogue.PassengerKeywords = []string{"passageiro"}
	}
	if len(cfg.Dialogue.BudgetKeywords) == 0 {
		cfg.Dialogue.BudgetKeywords = []string{"diária", "orçamento", "preço", "valor"}
	}
	if len(cfg.Dialogue.TypeKeywords) == 0 {
		cfg.Dialogue.TypeKeywords = []string{"tipo", "modelo"}
	}
	if len(cfg.Dialogue.RelevanceKeywords) == 0 {
		cfg.Dialogue.RelevanceKeywords = []string{
			"empresa", "serviços", "política", "história", "aluguel", "carros",
			"carmax", "anos", "horário", "abrem", "funcionamento",
		}
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	if cfg.Database.Postgres.Host == "" {
		return fmt.Errorf("database.postgres.host is required")
	}
	if cfg.Database.Postgres.Database == "" {
		return fmt.Errorf("database.postgres.database is required")
	}
	if cfg.Database.Postgres.User == "" {
		return fmt.Errorf("database.postgres.user is required")
	}

	if cfg.GenAI.APIKey == "" {
		return fmt.Errorf("genai.api_key is required")
	}

	if cfg.Database.Redis.Enabled && cfg.Database.Redis.Address == "" {
		return fmt.Errorf("database.redis.address is required when redis is enabled")
	}

	if cfg.Notifications.Enabled {
		if cfg.Notifications.AWSRegion == "" {
			return fmt.Errorf("notifications.aws_region is required when notifications are enabled")
		}
		if cfg.Notifications.BookingEmail == "" && cfg.Notifications.BookingPhone == "" {
			return fmt.Errorf("notifications require a booking_email or booking_phone")
		}
	}

	return nil
}

// CacheTTL converts the configured cache TTL to a time.Duration
func (r RedisConfig) CacheTTL() time.Duration {
	return time.Duration(r.CacheTTLSec) * time.Second
}
