// Package config loads the reminder's configuration from the process
// environment.
//
// All settings are required and validated up front: the credential payload
// for the Google service account, the two calendar identifiers to poll, and
// the SMTP settings used to deliver the reminder email. A missing variable
// is a fatal startup condition reported before any network call is made.
package config
