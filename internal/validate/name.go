// Package validate holds the project-name legality rules. A project name
// becomes both a directory name and the "name" field of the generated
// package manifest, so it follows the package registry's naming constraints.
package validate

import (
	"regexp"
	"strings"
)

// MaxNameLength is the longest name the package registry accepts.
const MaxNameLength = 214

var urlSafePattern = regexp.MustCompile(`^[a-z0-9-._~]+$`)

var reservedNames = map[string]bool{
	"node_modules": true,
	"favicon.ico":  true,
}

// IsValidProjectName reports whether name can be used as a project directory
// and package name. Each rule rejects independently.
func IsValidProjectName(name string) bool {
	if name != strings.ToLower(name) {
		return false
	}
	if len(name) == 0 || len(name) > MaxNameLength {
		return false
	}
	if !urlSafePattern.MatchString(name) {
		return false
	}
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return false
	}
	if strings.Contains(name, "..") {
		return false
	}
	return !reservedNames[name]
}
