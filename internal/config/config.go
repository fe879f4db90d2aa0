package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Names of the required environment variables. The reminder refuses to start
// if any of them is absent; there are no defaults and no partial operation.
const (
	EnvServiceAccount      = "GOOGLE_SERVICE_ACCOUNT"
	EnvSMTPServer          = "SMTP_SERVER"
	EnvSMTPPort            = "SMTP_PORT"
	EnvEmailUser           = "EMAIL_USER"
	EnvEmailPassword       = "EMAIL_PASSWORD"
	EnvEmailRecipient      = "EMAIL_RECIPIENT"
	EnvPrimaryCalendarID   = "PRIMARY_CALENDAR_ID"
	EnvSecondaryCalendarID = "SECONDARY_CALENDAR_ID"
)

// RequiredVars lists every environment variable the reminder needs, in the
// order they are validated.
var RequiredVars = []string{
	EnvServiceAccount,
	EnvSMTPServer,
	EnvSMTPPort,
	EnvEmailUser,
	EnvEmailPassword,
	EnvEmailRecipient,
	EnvPrimaryCalendarID,
	EnvSecondaryCalendarID,
}

// Config groups the runtime configuration for a reminder run. It is built
// once at startup and passed explicitly to the components that need it.
type Config struct {
	// ServiceAccountJSON is the Google service account credential payload.
	ServiceAccountJSON string

	SMTPServer    string
	SMTPPort      int
	EmailUser     string
	EmailPassword string
	// EmailRecipient is the single address the reminder is sent to.
	EmailRecipient string

	PrimaryCalendarID   string
	SecondaryCalendarID string
}

// CalendarIDs returns the calendars to poll, in query order.
func (c *Config) CalendarIDs() []string {
	return []string{c.PrimaryCalendarID, c.SecondaryCalendarID}
}

// Load reads the configuration from the process environment. A .env file in
// the working directory is merged in first when present; values already set
// in the environment win.
//
// Load fails with an error naming the first missing variable, before any
// network call is attempted.
func Load() (*Config, error) {
	// Optional for local runs; deployment uses real environment/secrets.
	_ = godotenv.Load()

	vals := make(map[string]string, len(RequiredVars))
	for _, name := range RequiredVars {
		v, ok := os.LookupEnv(name)
		if !ok || v == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", name)
		}
		vals[name] = v
	}

	port, err := strconv.Atoi(vals[EnvSMTPPort])
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer: %w", EnvSMTPPort, err)
	}

	return &Config{
		ServiceAccountJSON:  vals[EnvServiceAccount],
		SMTPServer:          vals[EnvSMTPServer],
		SMTPPort:            port,
		EmailUser:           vals[EnvEmailUser],
		EmailPassword:       vals[EnvEmailPassword],
		EmailRecipient:      vals[EnvEmailRecipient],
		PrimaryCalendarID:   vals[EnvPrimaryCalendarID],
		SecondaryCalendarID: vals[EnvSecondaryCalendarID],
	}, nil
}
