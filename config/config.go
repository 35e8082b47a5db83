package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGoogle    = "google"
	ProviderAnthropic = "anthropic"
)

type SlackConfig struct {
	BotToken          string
	SigningSecret     string
	AppToken          string
	VerificationToken string // legacy, optional
	AlertWebhookURL   string
	BotUsername       string
}

// IsConfiguredForWebhook returns true if the Events API webhook can be served
func (c SlackConfig) IsConfiguredForWebhook() bool {
	return c.BotToken != "" && c.SigningSecret != ""
}

// IsConfiguredForSocketMode returns true if a Socket Mode connection can be opened
func (c SlackConfig) IsConfiguredForSocketMode() bool {
	return c.BotToken != "" && c.AppToken != ""
}

type TranslationConfig struct {
	Provider        string
	GoogleProjectID string
	GoogleKey       string
	AnthropicAPIKey string
	AnthropicModel  string
}

// IsConfigured returns true if the selected provider has its credentials
func (c TranslationConfig) IsConfigured() bool {
	switch c.Provider {
	case ProviderGoogle:
		return c.GoogleKey != ""
	case ProviderAnthropic:
		return c.AnthropicAPIKey != ""
	default:
		return false
	}
}

type RelayConfig struct {
	CallTimeout      time.Duration
	ThreadFetchLimit int
	WorkerPoolSize   int
	LanguagesFile    string
}

type AppConfig struct {
	Port               string // Optional with default "5000"
	CORSAllowedOrigins string // Optional with default "*"
	Environment        string
	ServerLogsURL      string
	SocketMode         bool

	SlackConfig       SlackConfig
	TranslationConfig TranslationConfig
	RelayConfig       RelayConfig
}

// LoadConfig reads the env file (if present) and the process environment.
// socketMode selects which Slack credentials are mandatory.
func LoadConfig(envFile string, socketMode bool) (*AppConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			fmt.Printf("⚠️ Could not load %s file, continuing with system env vars\n", envFile)
		}
	}

	botToken, err := getEnvRequired("SLACK_BOT_TOKEN")
	if err != nil {
		return nil, err
	}

	callTimeout, err := getEnvDuration("EXTERNAL_CALL_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	threadFetchLimit, err := getEnvInt("THREAD_FETCH_LIMIT", 100)
	if err != nil {
		return nil, err
	}
	workerPoolSize, err := getEnvInt("WORKER_POOL_SIZE", 8)
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		Port:               getEnvWithDefault("PORT", "5000"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "dev"),
		ServerLogsURL:      getEnvWithDefault("SERVER_LOGS_URL", ""),
		SocketMode:         socketMode,

		SlackConfig: SlackConfig{
			BotToken:          botToken,
			SigningSecret:     os.Getenv("SLACK_SIGNING_SECRET"),
			AppToken:          os.Getenv("SLACK_APP_TOKEN"),
			VerificationToken: os.Getenv("SLACK_VERIFICATION_TOKEN"),
			AlertWebhookURL:   os.Getenv("SLACK_ALERT_WEBHOOK_URL"),
			BotUsername:       getEnvWithDefault("BOT_USERNAME", "Reacjilator Bot"),
		},

		TranslationConfig: TranslationConfig{
			Provider:        getEnvWithDefault("TRANSLATION_PROVIDER", ProviderGoogle),
			GoogleProjectID: os.Getenv("GOOGLE_PROJECT_ID"),
			GoogleKey:       os.Getenv("GOOGLE_KEY"),
			AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
			AnthropicModel:  os.Getenv("ANTHROPIC_MODEL"),
		},

		RelayConfig: RelayConfig{
			CallTimeout:      callTimeout,
			ThreadFetchLimit: threadFetchLimit,
			WorkerPoolSize:   workerPoolSize,
			LanguagesFile:    os.Getenv("LANGUAGES_FILE"),
		},
	}

	if socketMode {
		if !config.SlackConfig.IsConfiguredForSocketMode() {
			return nil, fmt.Errorf("SLACK_APP_TOKEN is not set (required in socket mode)")
		}
		log.Printf("✅ Slack configured for Socket Mode")
	} else {
		if !config.SlackConfig.IsConfiguredForWebhook() {
			return nil, fmt.Errorf("SLACK_SIGNING_SECRET is not set (required in webhook mode)")
		}
		log.Printf("✅ Slack configured for Events API webhook")
	}

	if !config.TranslationConfig.IsConfigured() {
		return nil, fmt.Errorf("translation provider %q is unknown or missing credentials", config.TranslationConfig.Provider)
	}
	log.Printf("✅ Translation provider configured: %s", config.TranslationConfig.Provider)

	if config.SlackConfig.AlertWebhookURL == "" {
		log.Printf("⚠️ SLACK_ALERT_WEBHOOK_URL not set - error alerts will be disabled")
	}

	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, value)
	}
	return parsed, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration such as 10s, got %q: %w", key, value, err)
	}
	return parsed, nil
}
