package server

import "time"

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopped    = "Server stopped"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
)

// HTTP header names
const (
	HeaderAPIKey             = "X-API-Key"
	HeaderAuthorization      = "Authorization"
	HeaderCookie             = "Cookie"
	HeaderAllow              = "Allow"
	HeaderContentTypeOptions = "X-Content-Type-Options"
	HeaderFrameOptions       = "X-Frame-Options"
	HeaderReferrerPolicy     = "Referrer-Policy"
	HeaderContentSecurity    = "Content-Security-Policy"
)

const (
	HeaderValueNoSniff    = "nosniff"
	HeaderValueDeny       = "DENY"
	HeaderValueNoReferrer = "no-referrer"
	HeaderValueCSPNone    = "default-src 'none'; frame-ancestors 'none'"
)

// AllowedMethods are the methods ReadOnlyMiddleware lets through
var AllowedMethods = []string{"GET", "HEAD", "OPTIONS"}

// Paths that are not logged per request
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// RedactedHeaders never reach the request log
var RedactedHeaders = []string{HeaderAPIKey, HeaderAuthorization, HeaderCookie}

const RedactedValue = "[REDACTED]"

const ReadHeaderTimeout = 5 * time.Second
