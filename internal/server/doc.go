// Package server provides the operational HTTP surface for the serve mode:
// Prometheus run metrics and liveness/readiness endpoints on a dedicated
// port. One-shot runs never start it.
package server
