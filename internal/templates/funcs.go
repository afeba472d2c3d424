package templates

import (
	"html/template"
	"net/url"
	"strings"
	"unicode"

	"cv-builder/internal/domain"

	"golang.org/x/net/publicsuffix"
)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"opt":       domain.Str,
		"dateRange": dateRange,
		"linkLabel": linkLabel,
		"href":      href,
		"join":      strings.Join,
		"initials":  initials,
		"upper":     strings.ToUpper,
	}
}

// dateRange formats "start – end", using "Present" for current roles and
// dropping whichever side is blank.
func dateRange(start string, end *string, current bool) string {
	start = strings.TrimSpace(start)
	stop := strings.TrimSpace(domain.Str(end))
	if current {
		stop = "Present"
	}
	switch {
	case start != "" && stop != "":
		return start + " – " + stop
	case start != "":
		return start
	default:
		return stop
	}
}

// href makes a user-entered link absolute. Scheme filtering is left to
// html/template.
func href(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.Contains(raw, "://") || strings.HasPrefix(strings.ToLower(raw), "mailto:") {
		return raw
	}
	return "https://" + raw
}

// linkLabel shortens a URL to host plus path, e.g.
// "https://www.github.com/jane/" becomes "github.com/jane". A leading "www."
// is dropped only when what remains is the registrable domain; other
// subdomains are kept.
func linkLabel(raw string) string {
	raw = strings.TrimSpace(raw)
	parsed, err := url.Parse(href(raw))
	if err != nil || parsed.Hostname() == "" {
		return raw
	}
	host := strings.ToLower(parsed.Hostname())
	if rest := strings.TrimPrefix(host, "www."); rest != host {
		if etld, err := publicsuffix.EffectiveTLDPlusOne(rest); err == nil && etld == rest {
			host = rest
		}
	}
	return host + strings.TrimSuffix(parsed.EscapedPath(), "/")
}

func initials(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool { return unicode.IsSpace(r) || r == '-' })
	if len(words) == 0 {
		return ""
	}
	first := []rune(words[0])[:1]
	if len(words) == 1 {
		return strings.ToUpper(string(first))
	}
	last := []rune(words[len(words)-1])[:1]
	return strings.ToUpper(string(first) + string(last))
}
