package wizard

import (
	"fmt"

	"github.com/internetdata/create-my-internet/internal/credentials"
	"github.com/internetdata/create-my-internet/internal/prompt"
)

// AuthState is the credential wizard's state.
type AuthState int

const (
	Unauthenticated AuthState = iota
	Satisfied
)

func (s AuthState) String() string {
	if s == Satisfied {
		return "satisfied"
	}
	return "unauthenticated"
}

// Prompt texts for the credential wizard.
const (
	AuthAssistPrompt = "Would you like to connect to your LSD account (Y)es/(N)o? [Y]: "
	UserPrompt       = "Enter your username (the email you used to sign in): "
	APIKeyPrompt     = "Enter your API key: "
)

// CredentialChecker reports whether credentials are already available.
type CredentialChecker interface {
	CredentialsPresent() bool
}

// CredentialSaver persists a captured credential.
type CredentialSaver interface {
	Save(credentials.Credential) error
}

// Credentials walks the user through connecting an account.
type Credentials struct {
	Probe     CredentialChecker
	Store     CredentialSaver
	Prompts   *prompt.Engine
	SigninURL string
}

// Run returns Satisfied without any I/O when credentials are already
// present. Otherwise it offers help and, on yes, captures the user and API
// key and saves them. Declining returns Unauthenticated with a nil error.
func (w *Credentials) Run() (AuthState, error) {
	if w.Probe.CredentialsPresent() {
		return Satisfied, nil
	}

	answer, err := prompt.YesNo(w.Prompts, AuthAssistPrompt)
	if err != nil {
		return Unauthenticated, fmt.Errorf("asking about account setup: %w", err)
	}
	if answer == prompt.No {
		return Unauthenticated, nil
	}

	fmt.Fprintf(w.Prompts.Out(), "Click on the following URL to create an account\nthen go to your profile and create an API key.\n\n%s\n", w.SigninURL)

	user, err := prompt.Line(w.Prompts, UserPrompt, "")
	if err != nil {
		return Unauthenticated, fmt.Errorf("reading username: %w", err)
	}
	key, err := prompt.Line(w.Prompts, APIKeyPrompt, "")
	if err != nil {
		return Unauthenticated, fmt.Errorf("reading API key: %w", err)
	}

	if err := w.Store.Save(credentials.Credential{User: user, Password: key}); err != nil {
		return Unauthenticated, err
	}
	return Satisfied, nil
}
