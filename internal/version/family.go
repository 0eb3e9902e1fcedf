// /internal/version/family.go
package version

import (
	"fmt"
	"regexp"
	"strings"
)

// LatestToken is the user-facing alias for the newest build of a family. It
// is rewritten to a concrete number during resolution and must never survive
// past it.
const LatestToken = "latest"

// Family identifies one class of downloadable Mindustry builds. The set of
// families is closed and known at build time.
type Family struct {
	Name string
	// Prefix precedes the version number in user-facing identifiers. Empty
	// for the primary family. When several prefixes match an identifier,
	// the longest one wins.
	Prefix string
	// numberPattern validates the part of the identifier after the prefix.
	numberPattern *regexp.Regexp
	// latestURL redirects to a tag page whose URL encodes the newest
	// version number, extracted with latestPattern.
	latestURL     string
	latestPattern *regexp.Regexp
	urlTemplate   func(number string) string
}

// Families is the registry of known version families.
var Families = []Family{
	{
		Name:          "vanilla",
		Prefix:        "",
		numberPattern: regexp.MustCompile(`^\d+(\.\d+)?$`),
		latestURL:     "https://github.com/Anuken/Mindustry/releases/latest",
		latestPattern: regexp.MustCompile(`/tag/v([\d.]+)$`),
		urlTemplate: func(n string) string {
			return fmt.Sprintf("https://github.com/Anuken/Mindustry/releases/download/v%s/Mindustry.jar", n)
		},
	},
	{
		Name:          "be",
		Prefix:        "be-",
		numberPattern: regexp.MustCompile(`^\d+$`),
		latestURL:     "https://github.com/Anuken/MindustryBuilds/releases/latest",
		latestPattern: regexp.MustCompile(`/tag/(\d+)$`),
		urlTemplate: func(n string) string {
			return fmt.Sprintf("https://github.com/Anuken/MindustryBuilds/releases/download/%s/Mindustry-BE-Desktop-%s.jar", n, n)
		},
	},
	{
		Name:          "foo",
		Prefix:        "foo-",
		numberPattern: regexp.MustCompile(`^\d+$`),
		latestURL:     "https://github.com/mindustry-antigrief/mindustry-client/releases/latest",
		latestPattern: regexp.MustCompile(`/tag/(\d+)$`),
		urlTemplate: func(n string) string {
			return fmt.Sprintf("https://github.com/mindustry-antigrief/mindustry-client/releases/download/%s/desktop.jar", n)
		},
	},
	{
		Name:          "foo-v6",
		Prefix:        "foo-v6-",
		numberPattern: regexp.MustCompile(`^\d+$`),
		latestURL:     "https://github.com/mindustry-antigrief/mindustry-client-v6-builds/releases/latest",
		latestPattern: regexp.MustCompile(`/tag/(\d+)$`),
		urlTemplate: func(n string) string {
			return fmt.Sprintf("https://github.com/mindustry-antigrief/mindustry-client-v6-builds/releases/download/%s/desktop.jar", n)
		},
	},
}

// matchFamily finds the family whose prefix matches versionString and whose
// number pattern (or the latest token) accepts the remainder. Longest prefix
// wins, so "foo-v6-123" resolves against foo-v6 even though "foo-" also
// matches.
func matchFamily(versionString string) (*Family, string, bool) {
	var best *Family
	var bestNumber string
	for i := range Families {
		f := &Families[i]
		if !strings.HasPrefix(versionString, f.Prefix) {
			continue
		}
		number := strings.TrimPrefix(versionString, f.Prefix)
		if number != LatestToken && !f.numberPattern.MatchString(number) {
			continue
		}
		if best == nil || len(f.Prefix) > len(best.Prefix) {
			best = f
			bestNumber = number
		}
	}
	if best == nil {
		return nil, "", false
	}
	return best, bestNumber, true
}
