package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalogs maps a language code to its nested message tree. Leaves are
// strings; interior nodes are maps addressed with dot-separated keys.
type Catalogs map[string]map[string]any

// Parser decodes one catalog file format.
type Parser interface {
	// Parse decodes raw file content into per-language message trees.
	Parse(content []byte) (Catalogs, error)

	// Supports reports whether the parser handles the file extension,
	// given without the leading dot.
	Supports(ext string) bool
}

// YAMLParser parses YAML catalog files.
type YAMLParser struct{}

func (YAMLParser) Parse(content []byte) (Catalogs, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, errors.Join(ErrParseCatalog, err)
	}
	return toCatalogs(raw)
}

func (YAMLParser) Supports(ext string) bool {
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// JSONParser parses JSON catalog files.
type JSONParser struct{}

func (JSONParser) Parse(content []byte) (Catalogs, error) {
	var raw map[string]any
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, errors.Join(ErrParseCatalog, err)
	}
	return toCatalogs(raw)
}

func (JSONParser) Supports(ext string) bool {
	return strings.EqualFold(ext, "json")
}

// toCatalogs checks that every top-level entry is a language keyed to a
// message tree.
func toCatalogs(raw map[string]any) (Catalogs, error) {
	out := make(Catalogs, len(raw))
	for lang, tree := range raw {
		if lang == "" {
			return nil, ErrEmptyLanguage
		}
		m, ok := tree.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected a message tree, got %T",
				ErrParseCatalog, lang, tree)
		}
		out[lang] = m
	}
	if len(out) == 0 {
		return nil, ErrNoCatalogs
	}
	return out, nil
}

// LoadFS walks fsys and merges every catalog file a parser claims; files no
// parser claims are skipped. Later files extend earlier ones per language;
// duplicate keys are overwritten in walk order.
func LoadFS(fsys fs.FS, parsers ...Parser) (Catalogs, error) {
	if len(parsers) == 0 {
		parsers = []Parser{YAMLParser{}, JSONParser{}}
	}

	merged := make(Catalogs)
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := strings.TrimPrefix(filepath.Ext(path), ".")
		var parser Parser
		for _, p := range parsers {
			if p.Supports(ext) {
				parser = p
				break
			}
		}
		if parser == nil {
			return nil
		}

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("i18n: read %q: %w", path, err)
		}
		catalogs, err := parser.Parse(content)
		if err != nil {
			return fmt.Errorf("i18n: %q: %w", path, err)
		}
		for lang, tree := range catalogs {
			if existing, ok := merged[lang]; ok {
				for k, v := range tree {
					existing[k] = v
				}
			} else {
				merged[lang] = tree
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(merged) == 0 {
		return nil, ErrNoCatalogs
	}
	return merged, nil
}
