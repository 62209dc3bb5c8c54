package sitemap

// IsReservedPage reports whether a directory entry is skipped during
// traversal. Names starting with "_" or "." are reserved.
func IsReservedPage(name string) bool {
	return len(name) > 0 && (name[0] == '_' || name[0] == '.')
}

// IsIgnoredExtension reports whether ext is one of the configured ignored
// extensions. The comparison is exact and case-sensitive.
func (m *Mapper) IsIgnoredExtension(ext string) bool {
	for _, ignored := range m.cfg.IgnoredExtensions {
		if ignored == ext {
			return true
		}
	}
	return false
}

// IsIgnoredPath reports whether any ignore rule matches path.
func (m *Mapper) IsIgnoredPath(path string) bool {
	for _, rule := range m.cfg.IgnoredPaths {
		if rule.Match(path) {
			return true
		}
	}
	return false
}

// MergePath joins a canonical base path and a leaf segment.
//
//	MergePath("", "")           == ""
//	MergePath("", "about")      == "/about"
//	MergePath("/blog", "")      == "/blog"
//	MergePath("/blog", "post")  == "/blog/post"
func MergePath(base, segment string) string {
	switch {
	case base == "" && segment == "":
		return ""
	case base == "":
		return "/" + segment
	case segment == "":
		return base
	default:
		return base + "/" + segment
	}
}
