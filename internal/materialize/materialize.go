package materialize

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.uber.org/zap"

	"github.com/internetdata/create-my-internet/internal/exec"
	"github.com/internetdata/create-my-internet/internal/pkgmanager"
	"github.com/internetdata/create-my-internet/internal/render"
	"github.com/internetdata/create-my-internet/internal/validate"
)

var (
	// ErrProjectExists is returned when the project directory is already present.
	ErrProjectExists = errors.New("project directory already exists")
	// ErrInvalidName is returned for names that fail validate.IsValidProjectName.
	ErrInvalidName = errors.New("invalid project name")
	// ErrCommandFailed is returned when a manager command exits non-zero.
	ErrCommandFailed = errors.New("command failed")
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Plan is the part of the configuration the Materializer needs up front.
type Plan struct {
	Name    string
	Manager pkgmanager.Manager
}

// EntryFunc supplies the entry file content. It is called only after the
// dependencies are installed, so any questions it asks come after the
// manager's output.
type EntryFunc func() (string, error)

// Result describes a materialized project.
type Result struct {
	Dir   string   // project directory, as seen by external commands
	Files []string // files written by this package, in order
}

// Materializer creates projects inside Root.
type Materializer struct {
	Root   billy.Filesystem
	Runner exec.CommandRunner
	Logger *zap.Logger
}

// Materialize runs every step for plan. The returned Result is non-nil
// whenever the directory was created, even if a later step failed.
func (m *Materializer) Materialize(ctx context.Context, plan Plan, entry EntryFunc) (*Result, error) {
	log := m.logger().With(zap.String("project", plan.Name), zap.String("manager", plan.Manager.Name()))

	project, res, err := m.createProject(plan.Name)
	if err != nil {
		return nil, err
	}
	log.Debug("created project directory", zap.String("dir", res.Dir))

	cfg, err := render.CompilerConfig()
	if err != nil {
		return res, err
	}
	if err := m.write(project, res, render.CompilerFileName, cfg); err != nil {
		return res, err
	}

	initArgs, err := plan.Manager.InitArgs(plan.Name)
	if err != nil {
		return res, err
	}
	if err := m.run(ctx, log, res.Dir, plan.Manager.Name(), initArgs); err != nil {
		return res, err
	}

	installArgs, err := plan.Manager.InstallArgs(pkgmanager.Packages...)
	if err != nil {
		return res, err
	}
	if err := m.run(ctx, log, res.Dir, plan.Manager.Name(), installArgs); err != nil {
		return res, err
	}

	content, err := entry()
	if err != nil {
		return res, fmt.Errorf("preparing %s: %w", render.EntryFileName, err)
	}
	if err := m.write(project, res, render.EntryFileName, []byte(content)); err != nil {
		return res, err
	}

	log.Info("project materialized", zap.Strings("files", res.Files))
	return res, nil
}

// createProject makes the project directory and returns a filesystem scoped
// to it. An existing directory is never reused.
func (m *Materializer) createProject(name string) (billy.Filesystem, *Result, error) {
	if !validate.IsValidProjectName(name) {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	dir := m.Root.Join(m.Root.Root(), name)
	if _, err := m.Root.Stat(name); err == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrProjectExists, dir)
	} else if !errors.Is(err, iofs.ErrNotExist) {
		return nil, nil, fmt.Errorf("checking %s: %w", dir, err)
	}

	if err := m.Root.MkdirAll(name, dirPerm); err != nil {
		return nil, nil, fmt.Errorf("creating project directory %s: %w", dir, err)
	}
	project, err := m.Root.Chroot(name)
	if err != nil {
		return nil, nil, fmt.Errorf("opening project directory %s: %w", dir, err)
	}
	return project, &Result{Dir: dir}, nil
}

func (m *Materializer) write(project billy.Filesystem, res *Result, name string, data []byte) error {
	if err := util.WriteFile(project, name, data, filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	res.Files = append(res.Files, name)
	return nil
}

func (m *Materializer) run(ctx context.Context, log *zap.Logger, dir, name string, args []string) error {
	line := exec.CommandLine(name, args)
	log.Debug("running command", zap.String("command", line), zap.String("dir", dir))

	status, err := m.Runner.Run(ctx, name, args, exec.RunOpts{Dir: dir})
	if err != nil {
		return fmt.Errorf("running %s: %w", line, err)
	}
	if !status.Success() {
		log.Warn("command exited non-zero", zap.String("command", line), zap.Int("status", int(status)))
		return fmt.Errorf("%w: %s exited with status %d", ErrCommandFailed, line, status)
	}
	return nil
}

func (m *Materializer) logger() *zap.Logger {
	if m.Logger == nil {
		return zap.NewNop()
	}
	return m.Logger
}

// Summary is the message printed after a successful run.
func Summary(name string) string {
	return fmt.Sprintf("Created a new internetdata project: %s\nGet started by running the index.ts file:\n\n$ cd %s && npx ts-node index.ts", name, name)
}
