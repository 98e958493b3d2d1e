package platform

// DefaultKey is the table key used for platforms without their own entry.
const DefaultKey = "default"

// PathTable maps a GOOS value to candidate install locations.
type PathTable map[string][]string

// CompanionLocations lists where the companion browser is installed.
var CompanionLocations = PathTable{
	"darwin": {
		"/Applications/Bicycle.app",
	},
	"windows": {
		`C:\Program Files\Bicycle`,
		`C:\Program Files (x86)\Bicycle`,
	},
	DefaultKey: {
		"/usr/bin/Bicycle",
		"/usr/local/bin/Bicycle",
	},
}

// Candidates returns the paths for goos, falling back to the default entry.
func (t PathTable) Candidates(goos string) []string {
	if paths, ok := t[goos]; ok {
		return paths
	}
	return t[DefaultKey]
}
