package i18next

import "errors"

var (
	// Construction errors.
	ErrNilStore        = errors.New("i18next: resource store cannot be nil")
	ErrEmptyLocale     = errors.New("i18next: locale cannot be empty")
	ErrEmptyNamespace  = errors.New("i18next: namespace cannot be empty")
	ErrEmptySeparator  = errors.New("i18next: separator cannot be empty")
	ErrEmptyDelimiter  = errors.New("i18next: delimiter cannot be empty")
	ErrEmptyFormatName = errors.New("i18next: format name cannot be empty")
	ErrNilFormat       = errors.New("i18next: format function cannot be nil")
	ErrNilEscapeFunc   = errors.New("i18next: escape function cannot be nil")
	ErrNilPluralRule   = errors.New("i18next: plural rule cannot be nil")
	ErrNilResolver     = errors.New("i18next: plural resolver cannot be nil")
	ErrInvalidDepth    = errors.New("i18next: nesting depth must be positive")
	ErrInvalidFile     = errors.New("i18next: invalid translation file")

	// Render failures. These abort the candidate search for the current call
	// and are visible to TranslationFailedHandler via errors.Is.
	ErrEmptyToken            = errors.New("i18next: empty interpolation token")
	ErrMissingVariable       = errors.New("i18next: interpolation variable not found")
	ErrUnknownFormat         = errors.New("i18next: format not registered")
	ErrFormatFailed          = errors.New("i18next: format failed")
	ErrNestedKey             = errors.New("i18next: nested key did not resolve")
	ErrInvalidNestingOptions = errors.New("i18next: malformed nesting options")
	ErrNestingTooDeep        = errors.New("i18next: nesting depth limit exceeded")
)
