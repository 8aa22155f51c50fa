// Package config loads process configuration from the environment, with an
// optional .env file read first.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const DefaultTaskMagicWebhookURL = "https://apps.taskmagic.com/api/v1/webhooks/wYHfzIM5VmcUMO2T5iWhn"

// MailConfig is what the notification senders need.
type MailConfig interface {
	GetSendGridAPIKey() string
	GetSMTP() (host string, port int, user, pass string)
	GetNotifyTo() string
	GetNotifyFrom() string
}

// OpenSolarConfig provides the solar-design platform credentials.
type OpenSolarConfig interface {
	GetOpenSolarCredentials() (username, password, orgID string)
	IsOpenSolarConfigured() bool
}

type Config struct {
	Env      string
	HTTPAddr string

	CORSOrigins []string

	DatabaseURL string
	RabbitMQURL string

	SendGridAPIKey string
	MailHost       string
	MailPort       int
	MailUser       string
	MailPass       string
	NotifyTo       string
	NotifyFrom     string

	SheetsWebhookURL    string
	TaskMagicWebhookURL string
	PushLapAPIKey       string
	GoogleSolarAPIKey   string

	OpenSolarUsername string
	OpenSolarPassword string
	OpenSolarOrgID    string

	SessionSecret string

	IntegrationTimeout  time.Duration
	LeadRateLimitPerMin int
}

func (c *Config) GetSendGridAPIKey() string { return c.SendGridAPIKey }
func (c *Config) GetSMTP() (string, int, string, string) {
	return c.MailHost, c.MailPort, c.MailUser, c.MailPass
}
func (c *Config) GetNotifyTo() string   { return c.NotifyTo }
func (c *Config) GetNotifyFrom() string { return c.NotifyFrom }

func (c *Config) GetOpenSolarCredentials() (string, string, string) {
	return c.OpenSolarUsername, c.OpenSolarPassword, c.OpenSolarOrgID
}
func (c *Config) IsOpenSolarConfigured() bool {
	return c.OpenSolarUsername != "" && c.OpenSolarPassword != "" && c.OpenSolarOrgID != ""
}

func (c *Config) IsDatabaseEnabled() bool { return c.DatabaseURL != "" }
func (c *Config) IsQueueEnabled() bool    { return c.RabbitMQURL != "" }
func (c *Config) IsDevelopment() bool     { return strings.EqualFold(c.Env, "development") }

func Load() (*Config, error) {
	_ = godotenv.Load()

	mailPort, err := strconv.Atoi(getEnv("MAIL_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("MAIL_PORT: %w", err)
	}

	timeout, err := time.ParseDuration(getEnv("INTEGRATION_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("INTEGRATION_TIMEOUT: invalid duration %q", os.Getenv("INTEGRATION_TIMEOUT"))
	}

	rateLimit, err := strconv.Atoi(getEnv("LEAD_RATE_LIMIT_PER_MINUTE", "10"))
	if err != nil {
		return nil, fmt.Errorf("LEAD_RATE_LIMIT_PER_MINUTE: %w", err)
	}

	solarKey := getEnv("GOOGLE_SOLAR_API_KEY", "")
	if solarKey == "" {
		solarKey = getEnv("GOOGLE_API_KEY", "")
	}

	return &Config{
		Env:                 getEnv("APP_ENV", "development"),
		HTTPAddr:            getEnv("HTTP_ADDR", ":8080"),
		CORSOrigins:         splitCSV(getEnv("CORS_ORIGINS", "*")),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		RabbitMQURL:         getEnv("RABBITMQ_URL", ""),
		SendGridAPIKey:      getEnv("SENDGRID_API_KEY", ""),
		MailHost:            getEnv("MAIL_HOST", ""),
		MailPort:            mailPort,
		MailUser:            getEnv("MAIL_USER", ""),
		MailPass:            getEnv("MAIL_PASS", ""),
		NotifyTo:            getEnv("NOTIFY_EMAIL_TO", "info@liv8solar.com"),
		NotifyFrom:          getEnv("NOTIFY_EMAIL_FROM", "noreply@liv8solar.com"),
		SheetsWebhookURL:    getEnv("GOOGLE_SHEETS_WEBHOOK_URL", ""),
		TaskMagicWebhookURL: getEnv("TASKMAGIC_WEBHOOK_URL", DefaultTaskMagicWebhookURL),
		PushLapAPIKey:       getEnv("PUSHLAP_API_KEY", ""),
		GoogleSolarAPIKey:   solarKey,
		OpenSolarUsername:   getEnv("OPENSOLAR_USERNAME", ""),
		OpenSolarPassword:   getEnv("OPENSOLAR_PASSWORD", ""),
		OpenSolarOrgID:      getEnv("OPENSOLAR_ORG_ID", ""),
		SessionSecret:       getEnv("SESSION_SECRET", ""),
		IntegrationTimeout:  timeout,
		LeadRateLimitPerMin: rateLimit,
	}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}
