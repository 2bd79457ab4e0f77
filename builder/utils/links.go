package utils

import (
	"regexp"
	"strings"
)

// linkAttrRe matches well-formed href="..." and src="..." attributes. It is
// not an HTML parser: single quoted, unquoted or unterminated values are left
// alone.
var linkAttrRe = regexp.MustCompile(`(\s)(href|src)="([^"\n]*)"`)

var schemeRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*:`)

// MakeLinksRelative prefixes every site relative link with the path from the
// current output file back to the output root (e.g. "../../").
func MakeLinksRelative(content, prefix string) string {
	if prefix == "" {
		return content
	}
	return rewriteLinks(content, prefix)
}

// MakeLinksAbsolute prefixes every site relative link with the base URL so
// the content works outside the site (feeds, sitemaps).
func MakeLinksAbsolute(content, baseURL string) string {
	return rewriteLinks(content, EnsureTrailingSlash(baseURL))
}

// EnsureTrailingSlash appends "/" when missing.
func EnsureTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}

// IsAbsoluteLink reports whether a link value must not be rewritten.
func IsAbsoluteLink(value string) bool {
	return value == "" ||
		strings.HasPrefix(value, "#") ||
		strings.HasPrefix(value, "//") ||
		schemeRe.MatchString(value)
}

func rewriteLinks(content, prefix string) string {
	return linkAttrRe.ReplaceAllStringFunc(content, func(match string) string {
		parts := linkAttrRe.FindStringSubmatch(match)
		value := parts[3]
		if IsAbsoluteLink(value) {
			return match
		}
		// Site absolute ("/x.html") links resolve from the output root as well
		value = strings.TrimPrefix(value, "/")
		return parts[1] + parts[2] + `="` + prefix + value + `"`
	})
}
