package analyzer

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/justinlietz93/Plutonium/domain"
)

// rangeChars are specifier characters that make a declared version a range
// rather than an exact, comparable version.
const rangeChars = "^~*><!| ,"

// Compare classifies a dependency by comparing its raw declared specifier
// against the latest registry version. A specifier that cannot be resolved
// to one exact version (a range, a property placeholder, an empty
// constraint) yields StatusUnknown, never a guess.
func Compare(raw, latest string) domain.Status {
	if latest == "" {
		return domain.StatusUnknown
	}

	declared, ok := exactVersion(raw)
	if !ok {
		return domain.StatusUnknown
	}

	latestVersion, err := semver.NewVersion(latest)
	if err != nil {
		// Registries occasionally publish versions outside strict semver
		// (e.g. Maven's 4-part or .RELEASE schemes); fall back to string
		// equality on the exact declared form.
		if declaredRawEquals(raw, latest) {
			return domain.StatusUpToDate
		}
		return domain.StatusUpdateAvailable
	}

	declaredVersion, err := semver.NewVersion(declared)
	if err != nil {
		if declared == latest {
			return domain.StatusUpToDate
		}
		return domain.StatusUpdateAvailable
	}

	if declaredVersion.Equal(latestVersion) {
		return domain.StatusUpToDate
	}
	return domain.StatusUpdateAvailable
}

// exactVersion resolves a raw specifier to an exact version string. Exact
// forms are a bare version ("4.17.15", "v1.9.4") or a pip-style pin
// ("==2.31.0"). Anything containing range syntax is not exact.
func exactVersion(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "==")
	s = strings.TrimSpace(s)

	if s == "" || strings.ContainsAny(s, rangeChars) {
		return "", false
	}
	// Placeholders like ${spring.version} and remaining operators are ranges
	// or unresolvable, not exact versions.
	if strings.ContainsAny(s, "${}=") {
		return "", false
	}
	if !strings.ContainsAny(s, "0123456789") {
		return "", false
	}
	return s, true
}

// declaredRawEquals compares the exact declared form against a non-semver
// latest version by plain string equality.
func declaredRawEquals(raw, latest string) bool {
	declared, ok := exactVersion(raw)
	return ok && declared == latest
}
