package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateStatement validates a copyright statement before it is written
// into a file header.
//
// The validation rules are intentionally conservative:
//   - No empty statements
//   - No control characters (a statement must fit on one header line)
//   - Maximum length of 512 characters
func ValidateStatement(statement string) error {
	if statement == "" {
		return New(ErrCodeInvalidInput, "copyright statement cannot be empty")
	}

	if len(statement) > 512 {
		return New(ErrCodeInvalidInput, "copyright statement too long (max 512 characters)")
	}

	for _, r := range statement {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "copyright statement contains control characters")
		}
	}

	return nil
}

// spdxExpressionRegex matches SPDX license expressions: identifiers like
// "MIT" or "GPL-3.0-or-later", joined by AND/OR/WITH and parentheses.
var spdxExpressionRegex = regexp.MustCompile(`^[A-Za-z0-9 .+()-]+$`)

// ValidateLicenseID validates an SPDX license identifier or expression.
// It checks the character set only; it does not verify the identifier
// against the SPDX license list.
func ValidateLicenseID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidLicense, "license identifier cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidLicense, "license identifier too long (max 256 characters)")
	}

	if !spdxExpressionRegex.MatchString(id) {
		return New(ErrCodeInvalidLicense, "invalid SPDX license identifier: %q", id)
	}

	return nil
}

// ValidateTargetPath validates a file path passed to the annotate surface.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or other control characters
func ValidateTargetPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be blank")
	}

	return nil
}
