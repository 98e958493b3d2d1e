package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/internetdata/create-my-internet/internal/branding"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var entryTemplate = template.Must(template.ParseFS(templateFS, "templates/index.ts.tmpl"))

// File names written into the generated project.
const (
	EntryFileName    = "index.ts"
	CompilerFileName = "tsconfig.json"
)

// Automation targets named in the entry file's commented-out directive.
const (
	TargetBrowser   = "BROWSER"
	TargetTraverser = "TRAVERSER"
)

// EntryData holds the parameterization points of the entry file.
type EntryData struct {
	Schema        string // schema identifier, e.g. "docsSchema"
	Result        string // result identifier, e.g. "docsTitle"
	Target        string // URL passed to navigate
	Question      string // text logged before the result
	Directive     string // TargetBrowser or TargetTraverser
	CompanionName string
	CompanionURL  string
}

// Directive picks the automation target for the commented-out .on() call.
func Directive(companionInstalled bool) string {
	if companionInstalled {
		return TargetBrowser
	}
	return TargetTraverser
}

// DefaultEntry renders the entry file used when the user declines code help.
// It navigates to the documentation page.
func DefaultEntry(companionInstalled bool) (string, error) {
	return EntryFile(EntryData{
		Schema:        "docsSchema",
		Result:        "docsTitle",
		Target:        branding.DocsURL(),
		Question:      "What is the title of the database docs page?",
		Directive:     Directive(companionInstalled),
		CompanionName: branding.CompanionName(),
		CompanionURL:  branding.CompanionURL(),
	})
}

// AssistedEntry renders the entry file for a user-chosen target URL.
func AssistedEntry(target string, companionInstalled bool) (string, error) {
	return EntryFile(EntryData{
		Schema:        "pageSchema",
		Result:        "pageTitle",
		Target:        target,
		Question:      fmt.Sprintf("What is the title of the page at [%s]?", target),
		Directive:     Directive(companionInstalled),
		CompanionName: branding.CompanionName(),
		CompanionURL:  branding.CompanionURL(),
	})
}

// EntryFile executes the entry template with data.
func EntryFile(data EntryData) (string, error) {
	var buf bytes.Buffer
	if err := entryTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing entry template: %w", err)
	}
	return buf.String(), nil
}

type compilerOptions struct {
	Lib                          []string `json:"lib"`
	Target                       string   `json:"target"`
	ModuleResolution             string   `json:"moduleResolution"`
	AllowSyntheticDefaultImports bool     `json:"allowSyntheticDefaultImports"`
}

type compilerConfig struct {
	CompilerOptions compilerOptions `json:"compilerOptions"`
	Exclude         []string        `json:"exclude"`
}

// CompilerConfig returns the fixed tsconfig.json content.
func CompilerConfig() ([]byte, error) {
	cfg := compilerConfig{
		CompilerOptions: compilerOptions{
			Lib:                          []string{"es2015", "dom"},
			Target:                       "es2015",
			ModuleResolution:             "node",
			AllowSyntheticDefaultImports: true,
		},
		Exclude: []string{"dist", "node_modules"},
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", CompilerFileName, err)
	}
	return data, nil
}
