package domain

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Dir     string
	Args    []string
}

// ExecResult holds what a finished command left behind.
type ExecResult struct {
	Output   []byte // Captured stdout; empty for interactive runs
	Stderr   []byte // Captured stderr; empty for interactive runs
	ExitCode int
}

// Success reports whether the command exited with status 0.
func (r *ExecResult) Success() bool {
	return r != nil && r.ExitCode == 0
}

// NewCommand creates an ExecCommand for program with args, run in dir.
func NewCommand(program string, args []string, dir string) *ExecCommand {
	return &ExecCommand{
		Program: program,
		Args:    args,
		Dir:     dir,
	}
}

// NewCreateCommand builds "<tool> create --prefix <name> <packages...>" run from the layout parent.
func NewCreateCommand(tool string, layout Layout, packages []string, assumeYes bool) *ExecCommand {
	args := []string{"create", "--prefix", layout.Name}
	if assumeYes {
		args = append(args, "--yes")
	}
	args = append(args, packages...)
	return NewCommand(tool, args, layout.Parent)
}

// NewExportCommand builds "<tool> env export --prefix <name>" run from the layout parent.
func NewExportCommand(tool string, layout Layout) *ExecCommand {
	return NewCommand(tool, []string{"env", "export", "--prefix", layout.Name}, layout.Parent)
}

// NewRestoreCommand builds "<tool> env create --prefix <name> -f <manifest>" run from the layout parent.
func NewRestoreCommand(tool string, layout Layout, manifestFile string, assumeYes bool) *ExecCommand {
	args := []string{"env", "create", "--prefix", layout.Name, "-f", manifestFile}
	if assumeYes {
		args = append(args, "--yes")
	}
	return NewCommand(tool, args, layout.Parent)
}
