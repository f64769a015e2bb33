// Package buildinfo carries version identifiers stamped at build time.
package buildinfo

// Set via -ldflags at release build time; the defaults mark a dev tree.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact identifier for window titles and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Full returns the identifier with commit and date when they are known.
func Full() string {
	s := Short()
	if Commit != "" && Commit != "unknown" {
		s += " (" + Commit
		if Date != "" && Date != "unknown" {
			s += ", " + Date
		}
		s += ")"
	}
	return s
}
