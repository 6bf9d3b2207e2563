package usecase

import (
	"fmt"
	"strings"

	"github.com/runoshun/envboot/internal/domain"
)

// resolveEnv validates the tool and returns the layout resolved against baseDir.
func resolveEnv(target, tool, baseDir string) (domain.Layout, error) {
	if strings.TrimSpace(tool) == "" {
		return domain.Layout{}, domain.ErrEmptyTool
	}
	layout, err := domain.NewLayout(target)
	if err != nil {
		return domain.Layout{}, err
	}
	return layout.In(baseDir), nil
}

// runReport describes the outcome of an interactive tool run.
type runReport struct {
	StartErr error // Set when the tool could not be started
	ExitCode int   // -1 when the tool could not be started
}

// runInteractive runs cmd attached to the terminal and logs the outcome.
// With strict unset the outcome is only reported; with strict set a failed
// run is returned as ErrCommandFailed.
func runInteractive(executor domain.CommandExecutor, logger domain.Logger, cmd *domain.ExecCommand, strict bool) (runReport, error) {
	line := commandLine(cmd)
	logger.Info("exec", fmt.Sprintf("running %q in %s", line, cmd.Dir))

	res, err := executor.ExecuteInteractive(cmd)
	if err != nil {
		logger.Warn("exec", fmt.Sprintf("could not start %q: %v", line, err))
		report := runReport{ExitCode: -1, StartErr: err}
		if strict {
			return report, fmt.Errorf("%w: %s: %w", domain.ErrCommandFailed, line, err)
		}
		return report, nil
	}

	if !res.Success() {
		logger.Warn("exec", fmt.Sprintf("%q exited with status %d", line, res.ExitCode))
		if strict {
			return runReport{ExitCode: res.ExitCode}, fmt.Errorf("%w: %s exited with status %d", domain.ErrCommandFailed, line, res.ExitCode)
		}
		return runReport{ExitCode: res.ExitCode}, nil
	}

	logger.Info("exec", fmt.Sprintf("%q finished", line))
	return runReport{}, nil
}

// commandLine renders cmd the way an operator would type it.
func commandLine(cmd *domain.ExecCommand) string {
	return strings.Join(append([]string{cmd.Program}, cmd.Args...), " ")
}
