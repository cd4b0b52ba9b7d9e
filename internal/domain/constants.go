package domain

import "time"

// Endpoint constants
const (
	// StatusPath is appended to the configured URI.
	StatusPath = "/v3/system/services/status"
	// RequestIDHeader carries a per-invocation id for log correlation.
	RequestIDHeader = "X-Request-Id"
	// MaxResponseBytes caps how much of the response body is read.
	MaxResponseBytes = 1 << 20
)

// Timeout constants
const (
	// DefaultTimeoutSeconds is used when neither flag, env nor config file set one.
	DefaultTimeoutSeconds = 30
	// DefaultTimeout is DefaultTimeoutSeconds as a duration.
	DefaultTimeout = DefaultTimeoutSeconds * time.Second
)

// Environment variables
const (
	EnvURI     = "CHECK_CDAP_URI"
	EnvTimeout = "CHECK_CDAP_TIMEOUT"
	EnvToken   = "CHECK_CDAP_TOKEN"
	EnvConfig  = "CHECK_CDAP_CONFIG"
)

// Messages
const (
	MsgAllServicesOK    = "All CDAP system services are OK"
	MsgAuthRejected     = "authentication failed, the supplied token was rejected"
	MsgAuthRequired     = "authentication required, supply a token with -T or " + EnvToken
	MsgServiceDown      = "CDAP service is down or unreachable (HTTP %03d)"
	MsgEndpointNotFound = "endpoint not found: %s"
	MsgUnexpectedStatus = "unexpected HTTP status %03d from %s"
	MsgServicesNotOK    = "CDAP system services NOTOK: %s"
	MsgMalformed        = "malformed status response: %v"
	RedactedToken       = "********"
)
