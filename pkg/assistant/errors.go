package assistant

import "errors"

// ErrNotConfigured is returned when no API key is set. Callers use it to
// distinguish a known-unavailable assistant from a provider failure.
var ErrNotConfigured = errors.New("assistant is not configured: GEMINI_API_KEY missing")
