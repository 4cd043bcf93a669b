// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Database      DatabaseConfig     `mapstructure:"database"`
	GenAI         GenAIConfig        `mapstructure:"genai"`
	Dialogue      DialogueConfig     `mapstructure:"dialogue"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Logging       LoggingConfig      `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Address     string `mapstructure:"address"`
	Password    string `mapstructure:"password"`
	DB          int    `mapstructure:"db"`
	CacheTTLSec int    `mapstructure:"cache_ttl_seconds"`
}

// GenAIConfig holds the settings for the Gemini collaborator calls.
type GenAIConfig struct {
	APIKey             string  `mapstructure:"api_key"`
	Model              string  `mapstructure:"model"`
	QuestionMaxTokens  int32   `mapstructure:"question_max_tokens"`
	AnswerMaxTokens    int32   `mapstructure:"answer_max_tokens"`
	SummaryMaxTokens   int32   `mapstructure:"summary_max_tokens"`
	Temperature        float32 `mapstructure:"temperature"`
	SummaryTemperature float32 `mapstructure:"summary_temperature"`
}

// DialogueConfig carries the tunables of the guided dialogue. Round counts,
// criteria defaults and keyword lists are configuration rather than compile
// time literals so the flows can be exercised with alternate values.
type DialogueConfig struct {
	Rounds               int      `mapstructure:"rounds"`
	CompanyRounds        int      `mapstructure:"company_rounds"`
	DefaultMinPassengers int      `mapstructure:"default_min_passengers"`
	DefaultMaxBudget     float64  `mapstructure:"default_max_budget"`
	Categories           []string `mapstructure:"categories"`
	NumericKeywords      []string `mapstructure:"numeric_keywords"`
	PassengerKeywords    []string `mapstructure:"passenger_keywords"`
	BudgetKeywords       []string `mapstructure:"budget_keywords"`
	TypeKeywords         []string `mapstructure:"type_keywords"`
	RelevanceKeywords    []string `mapstructure:"relevance_keywords"`
}

// NotificationConfig holds settings for the optional booking notification.
type NotificationConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	AWSRegion    string `mapstructure:"aws_region"`
	SenderEmail  string `mapstructure:"sender_email"`
	BookingEmail string `mapstructure:"booking_email"`
	BookingPhone string `mapstructure:"booking_phone"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
