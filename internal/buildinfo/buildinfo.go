// Package buildinfo exposes the module's own semantic version, parsed once
// at CLI startup and logged so generated DIMACS artifacts can be traced
// back to the generator that produced them.
package buildinfo

import "github.com/blang/semver/v4"

// Version is the module's semantic version. It is a var, not a const, so
// a release process can override it via linker flags (-ldflags
// "-X ...Version=...") without touching this source file.
var Version = "0.1.0"

// Parsed returns Version as a semver.Version. It panics if Version has been
// overridden with a non-semver string, since that can only happen from a
// broken release build, never from user input.
func Parsed() semver.Version {
	v, err := semver.Parse(Version)
	if err != nil {
		panic("buildinfo: invalid Version: " + err.Error())
	}

	return v
}
