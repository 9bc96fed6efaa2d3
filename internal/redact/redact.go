// Package redact provides utilities for redacting sensitive information from
// strings before they are logged. This helps prevent the accidental leakage
// of credentials, connection strings, and tokens through error messages.
package redact

import "regexp"

// Redaction placeholders.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedTokenPlaceholder      = "[REDACTED_JWT]"
	RedactedCorreoPlaceholder     = "[REDACTED_CORREO]"
)

// Precompiled regex patterns.
var (
	// Database connection strings with inline credentials.
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`)

	// Password-bearing fragments.
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`)

	// JWT tokens: three base64url segments, the first two starting with the
	// standard {"..."} header/payload prefix.
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// Correo addresses.
	correoRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := dbConnRegex.ReplaceAllString(input, RedactedCredentialPlaceholder)
	result = passwordRegex.ReplaceAllString(result, "${1}${2}"+RedactedCredentialPlaceholder)
	result = jwtTokenRegex.ReplaceAllString(result, RedactedTokenPlaceholder)
	result = correoRegex.ReplaceAllString(result, RedactedCorreoPlaceholder)

	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
