package handler

// User-facing error messages
const (
	ErrMsgUnknownError     = "Unknown error"
	ErrMsgServerError      = "Server error occurred"
	ErrMsgInvalidRequest   = "Invalid request"
	ErrMsgTemplateNotFound = "Template not found"
	ErrMsgRegionNotFound   = "Region not found"
	ErrMsgNotReady         = "catalog not loaded"
)

const (
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgRequestFailed   = "Request failed"
	LogMsgReadinessFailed = "Readiness check failed"
)

const (
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// URL parameters
const (
	ParamTemplateID = "id"
	ParamRegion     = "region"
)

const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)
