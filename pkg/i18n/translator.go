package i18n

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/argkit/argkit/pkg/argval"
)

// DefaultLanguage is used when a requested language has no catalog.
const DefaultLanguage = "en"

// Translator renders message keys in a chosen language, interpolating
// named placeholders. It is read-only after construction and safe for
// concurrent use.
type Translator struct {
	catalogs    Catalogs
	defaultLang string
	logger      *slog.Logger
}

// Option configures translator construction.
type Option func(*Translator)

// WithDefaultLanguage overrides the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithLogger sets the logger used to report missing keys. By default
// missing keys are silent.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewTranslator builds a translator over the given catalogs.
func NewTranslator(catalogs Catalogs, opts ...Option) (*Translator, error) {
	if len(catalogs) == 0 {
		return nil, ErrNoCatalogs
	}
	for lang, tree := range catalogs {
		if lang == "" {
			return nil, ErrEmptyLanguage
		}
		if tree == nil {
			return nil, fmt.Errorf("%w: nil message tree for %q", ErrNoCatalogs, lang)
		}
	}

	t := &Translator{
		catalogs:    catalogs,
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// SupportedLanguages returns the sorted language codes with a catalog.
func (t *Translator) SupportedLanguages() []string {
	langs := make([]string, 0, len(t.catalogs))
	for lang := range t.catalogs {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// T renders the dot-separated key in the given language, replacing each
// {name} placeholder from values. Lookup falls back to the default
// language, then to the key itself, so a missing translation still yields
// something displayable.
func (t *Translator) T(lang, key string, values map[string]any) string {
	if msg, ok := t.lookup(lang, key); ok {
		return interpolate(msg, values)
	}
	if lang != t.defaultLang {
		if msg, ok := t.lookup(t.defaultLang, key); ok {
			return interpolate(msg, values)
		}
	}
	t.logger.Warn("missing translation", "lang", lang, "key", key)
	return key
}

// Localize renders a validation diagnostic in the given language. When no
// catalog carries the diagnostic's translation key, the diagnostic's own
// message is returned: it is already self-describing, so a sparse catalog
// never degrades output below the untranslated text.
func (t *Translator) Localize(lang string, d argval.Diagnostic) string {
	msg := t.T(lang, d.TranslationKey, d.TranslationValues)
	if msg == d.TranslationKey {
		return d.Message
	}
	return msg
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	tree, ok := t.catalogs[lang]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		node, ok := tree[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := node.(string)
			return s, ok
		}
		switch next := node.(type) {
		case map[string]any:
			tree = next
		case map[any]any:
			// Some YAML decoders key nested maps by any.
			converted := make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					converted[ks] = v
				}
			}
			tree = converted
		default:
			return "", false
		}
	}
	return "", false
}

// interpolate substitutes {name} placeholders. Unknown placeholders are
// left intact so broken catalogs fail visibly rather than silently.
func interpolate(msg string, values map[string]any) string {
	if len(values) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	var b strings.Builder
	b.Grow(len(msg))
	for {
		open := strings.IndexByte(msg, '{')
		if open < 0 {
			b.WriteString(msg)
			return b.String()
		}
		closing := strings.IndexByte(msg[open:], '}')
		if closing < 0 {
			b.WriteString(msg)
			return b.String()
		}
		closing += open
		name := msg[open+1 : closing]
		b.WriteString(msg[:open])
		if v, ok := values[name]; ok {
			fmt.Fprintf(&b, "%v", v)
		} else {
			b.WriteString(msg[open : closing+1])
		}
		msg = msg[closing+1:]
	}
}
