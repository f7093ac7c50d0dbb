package config

import (
	_ "embed"
	"slices"
	"strings"
	"sync"
)

//go:embed spdx_licenses.txt
var spdxLicenseList string

var licenseSet = sync.OnceValue(func() map[string]struct{} {
	set := make(map[string]struct{})
	for _, line := range strings.Split(spdxLicenseList, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[line] = struct{}{}
	}
	return set
})

// KnownLicense reports whether id is an accepted SPDX license identifier.
// Matching is case-sensitive.
func KnownLicense(id string) bool {
	_, ok := licenseSet()[id]
	return ok
}

// Licenses returns every accepted SPDX identifier in sorted order.
func Licenses() []string {
	set := licenseSet()
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
