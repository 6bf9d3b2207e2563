package usecase

import (
	"context"

	"github.com/runoshun/envboot/internal/domain"
)

// ShowActivationInput contains the parameters for ShowActivation.
type ShowActivationInput struct {
	BaseDir string
	Target  string
	Tool    string
}

// ShowActivationOutput tells the operator how to activate the environment.
type ShowActivationOutput struct {
	Dir     string // Directory to run Command from
	Command string // Activation command, e.g. "conda activate ./env"
	Exists  bool   // Whether the environment directory exists
}

// ShowActivation reports the activation command for an environment.
// A child process cannot change the caller's shell, so activation is left to the operator.
type ShowActivation struct {
	fs domain.FileSystem
}

// NewShowActivation creates a new ShowActivation use case.
func NewShowActivation(fs domain.FileSystem) *ShowActivation {
	return &ShowActivation{fs: fs}
}

// Execute resolves the activation command.
func (uc *ShowActivation) Execute(_ context.Context, in ShowActivationInput) (*ShowActivationOutput, error) {
	layout, err := resolveEnv(in.Target, in.Tool, in.BaseDir)
	if err != nil {
		return nil, err
	}
	exists, err := uc.fs.Exists(layout.Target)
	if err != nil {
		return nil, err
	}
	return &ShowActivationOutput{
		Dir:     layout.Parent,
		Command: layout.ActivateHint(in.Tool),
		Exists:  exists,
	}, nil
}
