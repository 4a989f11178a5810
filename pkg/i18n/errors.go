package i18n

import "errors"

var (
	// ErrNoCatalogs is returned when a translator is constructed without
	// any language catalogs.
	ErrNoCatalogs = errors.New("i18n: no catalogs provided")

	// ErrEmptyLanguage is returned when a catalog is keyed by an empty
	// language code.
	ErrEmptyLanguage = errors.New("i18n: empty language code")

	// ErrParseCatalog is returned when a catalog file cannot be parsed.
	ErrParseCatalog = errors.New("i18n: failed to parse catalog")
)
