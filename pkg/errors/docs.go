// Package errors provides structured error types and sentinel errors for
// the palette engine.
//
// This package centralizes error handling across all components to prevent
// circular dependencies and provide consistent error classification for
// callers (CLI, dev server, emitters). Errors are organized by domain, each
// domain in its own file.
//
// # Error Categories
//
//   - Sentinel errors: ErrInvalidHex, ErrTooManyBrandColors, ErrInvalidParentColor, ErrNoReferenceCurves.
//   - Structured errors: HexParseError, ScaleSynthesisError.
//
// # Usage Patterns
//
// Check for specific error conditions using errors.Is:
//
//	if errors.Is(err, errors.ErrInvalidHex) {
//	    // drop the offending brand color
//	}
//
// Extract structured error details using errors.As:
//
//	var hexErr *errors.HexParseError
//	if errors.As(err, &hexErr) {
//	    fmt.Printf("could not parse %q", hexErr.Input)
//	}
//
// # Error Chain Compatibility
//
// All structured error types implement Unwrap() to maintain compatibility
// with errors.Is and errors.As.
//
// # Propagation policy
//
// Invalid color input and classification outcomes are returned as values,
// never thrown: toOklch-style parsing failures and analyzeColor failures
// are reported by absence (a zero value and false), not by error. Only
// precondition violations in ScaleSynthesizer (an invalid parent color)
// are unrecoverable. Recoverable conditions like truncating to 7 brand
// colors are surfaced as a non-fatal warning via the aggregation returned
// alongside a normal result, not by failing the call.
package errors
