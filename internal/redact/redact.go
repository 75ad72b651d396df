// Package redact removes credentials and other sensitive fragments from
// strings before they are logged. Provider errors can echo request headers,
// endpoint URLs with key parameters, or local file paths; none of that
// should reach the logs verbatim.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules are applied in order; earlier, more specific rules win.
var rules = []rule{
	// Authorization: Bearer <token>
	{regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9_\-.~+/=]{8,}`), "Bearer " + RedactedCredentialPlaceholder},
	// Hugging Face access tokens
	{regexp.MustCompile(`\bhf_[A-Za-z0-9]{8,}`), RedactedKeyPlaceholder},
	// Google API keys
	{regexp.MustCompile(`\bAIza[0-9A-Za-z_\-]{20,}`), RedactedKeyPlaceholder},
	// ?key=... and &api_key=... in URLs
	{regexp.MustCompile(`(?i)([?&](?:api_?key|key|token)=)[^&\s"']+`), "${1}" + RedactedKeyPlaceholder},
	// api_key: xxx, token=xxx, secret "xxx"
	{regexp.MustCompile(`(?i)\b(api[_-]?key|token|secret|password)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), "${1}${2}" + RedactedKeyPlaceholder},
	// user:pass@ in URLs
	{regexp.MustCompile(`(?i)(https?://)[^/@\s]+:[^/@\s]+@`), "${1}" + RedactedCredentialPlaceholder + "@"},
	// Email addresses
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), "[REDACTED_EMAIL]"},
	// Absolute file paths
	{regexp.MustCompile(`(?:^|\s)(/[\w.-]+){2,}`), " " + RedactedPathPlaceholder},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
