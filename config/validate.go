package config

import (
	"fmt"
	"regexp"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the manifest. Problems that do not prevent generation are
// returned as warnings.
func (m *Manifest) Validate() (warnings []string, err error) {
	if m.PagesDirectory == "" {
		return nil, errors.Wrap(ErrInvalidConfig, "pages_directory is required")
	}

	for i, rule := range m.IgnoredPaths {
		if rule.Pattern == "" {
			continue
		}
		if _, err := regexp.Compile(rule.Pattern); err != nil {
			return nil, errors.Wrapf(ErrInvalidConfig, "ignored_paths[%d]: %v", i, err)
		}
	}

	for i, s := range m.SitemapStylesheet {
		if s.StyleFile == "" {
			return nil, errors.Wrapf(ErrInvalidConfig, "sitemap_stylesheet[%d]: style_file is required", i)
		}
	}

	for _, item := range m.AlternatesURLs {
		lang, ok := item.Key.(string)
		if !ok || lang == "" {
			return nil, errors.Wrapf(ErrInvalidConfig, "alternates_urls: invalid language %v", item.Key)
		}
		if _, ok := item.Value.(string); !ok {
			return nil, errors.Wrapf(ErrInvalidConfig, "alternates_urls.%s: base URL must be a string", lang)
		}
		if lang == "x-default" {
			continue
		}
		if _, err := language.Parse(lang); err != nil {
			warnings = append(warnings, fmt.Sprintf("alternates_urls.%s: not a BCP 47 language tag", lang))
		}
	}

	return warnings, nil
}
