package model

import "net/http"

// ErrorKind discriminates upstream failure classes. The values double as the
// errorType field on HTTP error responses.
type ErrorKind string

const (
	ErrorKindQuotaIntent ErrorKind = "QUOTA_EXCEEDED"
	ErrorKindQuotaLookup ErrorKind = "GOOGLE_QUOTA_EXCEEDED"
	ErrorKindGeneric     ErrorKind = "GENERIC"
)

// APIError is the single error shape crossing the orchestrator boundary.
// At most one is active at a time; a successful search clears it.
type APIError struct {
	Kind    ErrorKind
	Title   string // short error line, serialized as "error"
	Message string // actionable remediation guidance
}

func (e *APIError) Error() string {
	return e.Title
}

// Status maps the error kind to an HTTP status code.
func (e *APIError) Status() int {
	switch e.Kind {
	case ErrorKindQuotaIntent, ErrorKindQuotaLookup:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// NewIntentQuotaError reports exhausted credits on the language-model provider.
func NewIntentQuotaError() *APIError {
	return &APIError{
		Kind:    ErrorKindQuotaIntent,
		Title:   "OpenAI API credits exhausted",
		Message: "Your OpenAI API free credits have been used up. Please add billing details or upgrade your plan at https://platform.openai.com/account/billing",
	}
}

// NewLookupQuotaError reports quota exhaustion or billing denial on the
// places provider. The message depends on which status Google returned.
func NewLookupQuotaError(providerStatus string) *APIError {
	msg := "Google Places API access denied. Please check your API key and enable required APIs with billing at https://console.cloud.google.com/billing"
	if providerStatus == "OVER_QUERY_LIMIT" {
		msg = "Google Places API daily quota exceeded. Please enable billing or wait until quota resets."
	}
	return &APIError{
		Kind:    ErrorKindQuotaLookup,
		Title:   "Google Places API limit reached",
		Message: msg,
	}
}

// NewGenericError wraps an unclassified upstream failure.
func NewGenericError(title string) *APIError {
	return &APIError{Kind: ErrorKindGeneric, Title: title}
}
