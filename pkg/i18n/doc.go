// Package i18n renders message keys from language catalogs, with placeholder
// interpolation and language fallback.
//
// Validation diagnostics carry a TranslationKey and TranslationValues; paired
// with a catalog this package turns them into localized text:
//
//	catalogs, _ := i18n.LoadFS(translationsFS)
//	tr, _ := i18n.NewTranslator(catalogs)
//	for _, d := range report {
//		msg := tr.Localize("de", d)
//		// ...
//	}
//
// Localize falls back to the diagnostic's own message when the catalog has
// no entry for its key; T offers the same lookup for arbitrary keys.
//
// Catalogs are nested maps keyed by language, loaded from YAML or JSON
// files; keys are dot-separated paths ("validation.mode_mismatch") and
// messages may contain {name} placeholders filled from the values map.
// MatchLanguage resolves a caller's preferred languages against the
// supported set using BCP 47 matching.
package i18n
