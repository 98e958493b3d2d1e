package pkgmanager

import "fmt"

// Supported manager identifiers.
const (
	Yarn = "yarn"
	NPM  = "npm"
)

// Default is the manager chosen on an empty answer.
const Default = Yarn

// Packages are the dependencies every generated project installs.
var Packages = []string{"internetdata", "zod"}

// Manager builds the command lines for one dependency manager.
type Manager interface {
	// Name is the executable name, looked up on the PATH.
	Name() string
	// InitArgs returns the arguments that create the manifest for project.
	InitArgs(project string) ([]string, error)
	// InstallArgs returns the arguments that add pkgs to the manifest.
	InstallArgs(pkgs ...string) ([]string, error)
	// MinVersion is the oldest release known to accept InitArgs.
	MinVersion() string
}

// Supported lists the manager names in prompt order.
func Supported() []string {
	return []string{NPM, Yarn}
}

// Dispatch returns the Manager for name. Unknown names yield a Manager whose
// argument builders fail.
func Dispatch(name string) Manager {
	switch name {
	case Yarn:
		return yarn{}
	case NPM:
		return npm{}
	default:
		return unknownManager{name: name}
	}
}

type yarn struct{}

func (yarn) Name() string { return Yarn }

func (yarn) InitArgs(project string) ([]string, error) {
	return []string{"init", "-y", "--name=" + project}, nil
}

func (yarn) InstallArgs(pkgs ...string) ([]string, error) {
	return append([]string{"add"}, pkgs...), nil
}

func (yarn) MinVersion() string { return "1.0.0" }

type npm struct{}

func (npm) Name() string { return NPM }

func (npm) InitArgs(project string) ([]string, error) {
	return []string{"init", "-y", "--name=" + project}, nil
}

func (npm) InstallArgs(pkgs ...string) ([]string, error) {
	return append([]string{"i"}, pkgs...), nil
}

func (npm) MinVersion() string { return "7.0.0" }

// unknownManager is returned when the manager name is not recognized.
type unknownManager struct {
	name string
}

func (u unknownManager) Name() string { return u.name }

func (u unknownManager) InitArgs(string) ([]string, error) {
	return nil, u.err()
}

func (u unknownManager) InstallArgs(...string) ([]string, error) {
	return nil, u.err()
}

func (u unknownManager) MinVersion() string { return "" }

func (u unknownManager) err() error {
	return fmt.Errorf("unknown package manager %q: supported managers are %q and %q", u.name, NPM, Yarn)
}
