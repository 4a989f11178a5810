package i18n

import (
	"golang.org/x/text/language"
)

// MatchLanguage picks the best supported language for the caller's
// preferences, using BCP 47 matching: "en-US" resolves to a supported "en",
// "pt-BR" prefers "pt-BR" over "pt" when both exist. When nothing matches,
// fallback is returned.
func MatchLanguage(supported []string, fallback string, preferred ...string) string {
	if len(supported) == 0 || len(preferred) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	codes := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, s)
	}
	if len(tags) == 0 {
		return fallback
	}

	matcher := language.NewMatcher(tags)
	index, conf := 0, language.No
	for _, p := range preferred {
		desired, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		if _, i, c := matcher.Match(desired...); c != language.No {
			index, conf = i, c
			break
		}
	}
	if conf == language.No {
		return fallback
	}
	return codes[index]
}
