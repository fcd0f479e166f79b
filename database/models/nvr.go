package models

import "strings"

// SplitNVR splits a name-version-release string into its three parts. The
// package name may itself contain dashes, so the split is anchored on the
// last two dash-separated fields. Returns empty strings if the input does
// not have at least three fields.
func SplitNVR(nvr string) (name, version, release string) {
	parts := strings.Split(nvr, "-")
	if len(parts) < 3 {
		return "", "", ""
	}
	release = parts[len(parts)-1]
	version = parts[len(parts)-2]
	name = strings.Join(parts[:len(parts)-2], "-")
	return name, version, release
}
