package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setAllVars(t *testing.T) {
	t.Helper()
	t.Setenv(EnvServiceAccount, `{"type":"service_account"}`)
	t.Setenv(EnvSMTPServer, "smtp.example.com")
	t.Setenv(EnvSMTPPort, "587")
	t.Setenv(EnvEmailUser, "sender@example.com")
	t.Setenv(EnvEmailPassword, "hunter2")
	t.Setenv(EnvEmailRecipient, "rider@example.com")
	t.Setenv(EnvPrimaryCalendarID, "primary@group.calendar.google.com")
	t.Setenv(EnvSecondaryCalendarID, "secondary@group.calendar.google.com")
}

func TestLoad(t *testing.T) {
	setAllVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, `{"type":"service_account"}`, cfg.ServiceAccountJSON)
	assert.Equal(t, "smtp.example.com", cfg.SMTPServer)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "sender@example.com", cfg.EmailUser)
	assert.Equal(t, "rider@example.com", cfg.EmailRecipient)
	assert.Equal(t, []string{
		"primary@group.calendar.google.com",
		"secondary@group.calendar.google.com",
	}, cfg.CalendarIDs())
}

func TestLoad_MissingVariable(t *testing.T) {
	// Every required variable, when absent on its own, must fail the load
	// with an error naming exactly that variable.
	for _, missing := range RequiredVars {
		t.Run(missing, func(t *testing.T) {
			setAllVars(t)
			t.Setenv(missing, "")

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), missing)
		})
	}
}

func TestLoad_MissingRecipientFailsBeforeAnythingElse(t *testing.T) {
	setAllVars(t)
	t.Setenv(EnvEmailRecipient, "")
	// Even a bogus port is not reached when a variable is missing; the
	// loader reports the absent name and nothing else.
	t.Setenv(EnvSMTPPort, "not-a-port")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), EnvEmailRecipient),
		"error should name the missing variable: %v", err)
	assert.NotContains(t, err.Error(), "integer")
}

func TestLoad_InvalidPort(t *testing.T) {
	setAllVars(t)
	t.Setenv(EnvSMTPPort, "five-eight-seven")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvSMTPPort)
}
