package sitemap

import (
	"context"

	"github.com/pkg/errors"
)

// TransformOptions is passed to Site.ExportPathMap. It is currently empty.
type TransformOptions struct{}

// PathMapTransformer rewrites a path map before it is serialized.
type PathMapTransformer func(ctx context.Context, pm *PathMap, opts TransformOptions) (*PathMap, error)

// Site exposes the optional hooks of the site generator the sitemap is built
// for. Nil fields are treated as absent.
type Site struct {
	// TrailingSlash reports whether every output path gets a trailing "/".
	TrailingSlash func() bool
	// ExportPathMap may add, drop or rename pages. A failing transformer does
	// not abort generation.
	ExportPathMap PathMapTransformer
}

// StaticTrailingSlash adapts a constant flag to Site.TrailingSlash.
func StaticTrailingSlash(enabled bool) func() bool {
	return func() bool { return enabled }
}

var errNilPathMap = errors.New("path map transformer returned no map")

func (s *Site) trailingSlash() bool {
	return s != nil && s.TrailingSlash != nil && s.TrailingSlash()
}

// transformWithFallback applies the site's path map transformer. When the
// transformer fails, fallback is returned unchanged together with the
// transformer's error; the caller decides how to report it.
func (s *Site) transformWithFallback(ctx context.Context, fallback *PathMap) (*PathMap, error) {
	if s == nil || s.ExportPathMap == nil {
		return fallback, nil
	}

	transformed, err := s.ExportPathMap(ctx, fallback.Clone(), TransformOptions{})
	if err != nil {
		return fallback, errors.Wrap(err, "export path map")
	}
	if transformed == nil {
		return fallback, errNilPathMap
	}
	return transformed, nil
}
