// Package notify delivers the reminder email.
//
// The message content is fixed; only the relay, credentials and recipient
// come from configuration. Delivery uses a STARTTLS-upgraded, authenticated
// SMTP session and happens at most once per run.
package notify
