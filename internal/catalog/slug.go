package catalog

import (
	"regexp"
	"strings"
)

var (
	nonAlnumRegex  = regexp.MustCompile(`[^a-z0-9]+`)
	multiDashRegex = regexp.MustCompile(`-+`)
)

// Slugify derives the SEO slug for a product from its name, prefixed
// with the first word of the brand.
func Slugify(name, brand string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = nonAlnumRegex.ReplaceAllString(slug, "-")
	slug = multiDashRegex.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if fields := strings.Fields(strings.ToLower(brand)); len(fields) > 0 {
		slug = fields[0] + "-" + slug
	}
	return slug
}
