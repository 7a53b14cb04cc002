package counter

import (
	"strings"

	"golang.org/x/mod/semver"

	"github.com/kolkov/racelab/internal/counter/strategy"
)

// Version information for the concurrent counter lab.
const (
	// Version is the current version of the lab library.
	Version = "0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info provides runtime information about the lab.
type Info struct {
	// Version is the library version string.
	Version string

	// Strategies lists the synchronization disciplines this build
	// supports, in declaration order.
	Strategies []string
}

// GetInfo returns information about the lab runtime.
//
// Example:
//
//	info := counter.GetInfo()
//	fmt.Printf("racelab %s (%d strategies)\n", info.Version, len(info.Strategies))
func GetInfo() Info {
	names := make([]string, 0, strategy.Count)
	for _, s := range strategy.All() {
		names = append(names, s.String())
	}
	return Info{
		Version:    Version,
		Strategies: names,
	}
}

// AtLeast reports whether the library version satisfies min.
//
// min may be spelled with or without the leading "v": "0.1.0" and
// "v0.1.0" are equivalent. An unparseable min reports false.
func AtLeast(min string) bool {
	m := canonical(min)
	if !semver.IsValid(m) {
		return false
	}
	return semver.Compare(canonical(Version), m) >= 0
}

// canonical normalizes a version to the "vMAJOR[.MINOR[.PATCH]]"
// spelling the semver package expects.
func canonical(v string) string {
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
