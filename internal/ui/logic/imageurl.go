package logic

import "strings"

// ResolveImageURL normalizes a suggestion's thumbnail reference.
// Absolute http(s) URLs pass through unchanged. Relative paths get any
// leading "../" segments stripped and exactly one leading "/" enforced,
// then are prefixed with base, which is either the suggest endpoint's
// origin or a separately configured image origin. With an empty base the
// origin-relative path is returned as-is.
func ResolveImageURL(raw, base string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}

	p := raw
	for {
		switch {
		case strings.HasPrefix(p, "../"):
			p = p[3:]
		case strings.HasPrefix(p, "./"):
			p = p[2:]
		case strings.HasPrefix(p, "/"):
			p = p[1:]
		default:
			p = "/" + p
			if base == "" {
				return p
			}
			return strings.TrimSuffix(base, "/") + p
		}
	}
}
