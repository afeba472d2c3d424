package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateRange(t *testing.T) {
	end := "2021"
	blank := "  "
	assert.Equal(t, "2019 – 2021", dateRange("2019", &end, false))
	assert.Equal(t, "2019 – Present", dateRange("2019", &end, true))
	assert.Equal(t, "2019", dateRange("2019", nil, false))
	assert.Equal(t, "2019", dateRange("2019", &blank, false))
	assert.Equal(t, "2021", dateRange("", &end, false))
	assert.Equal(t, "", dateRange("", nil, false))
}

func TestLinkLabel(t *testing.T) {
	tests := map[string]string{
		"https://www.github.com/jane/":  "github.com/jane",
		"linkedin.com/in/jane":          "linkedin.com/in/jane",
		"https://blog.jane.co.uk":       "blog.jane.co.uk",
		"https://blog.jane.dev/x":       "blog.jane.dev/x",
		"https://www.jane.co.uk/":       "jane.co.uk",
		"https://www.blog.jane.dev/cv":  "www.blog.jane.dev/cv",
		"https://WWW.Example.com/about": "example.com/about",
		"http://example.com/a/b?x=1":    "example.com/a/b",
		"not a url at all":              "not a url at all",
	}
	for in, want := range tests {
		assert.Equal(t, want, linkLabel(in), in)
	}
}

func TestHref(t *testing.T) {
	assert.Equal(t, "https://jane.dev", href("jane.dev"))
	assert.Equal(t, "http://jane.dev", href("http://jane.dev"))
	assert.Equal(t, "mailto:jane@example.com", href("mailto:jane@example.com"))
	assert.Equal(t, "", href("  "))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "JD", initials("jane doe"))
	assert.Equal(t, "JS", initials("Jean-Luc Mary Smith"))
	assert.Equal(t, "Ö", initials("Ömer"))
	assert.Equal(t, "", initials("   "))
}
