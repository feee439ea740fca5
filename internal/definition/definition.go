// Package definition loads wizard definitions from YAML files and builds
// them into engines.
package definition

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"github.com/mark3labs/stepwise/internal/logger"
	"github.com/mark3labs/stepwise/internal/wizard"
	"gopkg.in/yaml.v3"
)

// Definition is a wizard declared in YAML.
type Definition struct {
	Title         string         `yaml:"title"`
	Buttons       []Button       `yaml:"buttons,omitempty"`
	HeaderActions []HeaderAction `yaml:"header_actions,omitempty"`
	Pages         []Page         `yaml:"pages"`

	path string
}

// Page declares one wizard page.
type Page struct {
	ID               string         `yaml:"id,omitempty"`
	Title            string         `yaml:"title"`
	NavTitle         string         `yaml:"nav_title,omitempty"`
	Body             string         `yaml:"body,omitempty"`
	NextDisabled     bool           `yaml:"next_disabled,omitempty"`
	PreviousDisabled bool           `yaml:"previous_disabled,omitempty"`
	StopCancel       bool           `yaml:"stop_cancel,omitempty"`
	HeaderActions    []HeaderAction `yaml:"header_actions,omitempty"`
	Buttons          []Button       `yaml:"buttons,omitempty"`
}

// Button declares a wizard-level or page-level button.
type Button struct {
	Type     string `yaml:"type"`
	Label    string `yaml:"label"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// HeaderAction declares a header action.
type HeaderAction struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// Load reads and parses a definition file. It does not validate.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definition: %w", err)
	}

	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	def.path = path

	logger.Debug("Loaded definition %q from %s (%d pages)", def.Title, path, len(def.Pages))
	return def, nil
}

// Parse decodes a definition from YAML. Unknown keys are rejected.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("parsing definition: %w", err)
	}
	return &def, nil
}

// Path returns the file the definition was loaded from, if any.
func (d *Definition) Path() string {
	return d.path
}

// Name returns the slug used to identify the wizard in journal subjects,
// hook variables and the MCP server name. It falls back to the file name
// when the definition has no title.
func (d *Definition) Name() string {
	if d.Title != "" {
		if s := slug.Make(d.Title); s != "" {
			return s
		}
	}
	if d.path != "" {
		base := strings.TrimSuffix(filepath.Base(d.path), filepath.Ext(d.path))
		if s := slug.Make(base); s != "" {
			return s
		}
	}
	return "wizard"
}

// Validate reports every problem in the definition.
func (d *Definition) Validate() error {
	var errs []error

	if len(d.Pages) == 0 {
		errs = append(errs, errors.New("definition has no pages"))
	}

	for i, b := range d.Buttons {
		if strings.TrimSpace(b.Type) == "" {
			errs = append(errs, fmt.Errorf("button %d: type is required", i+1))
		}
	}

	seen := make(map[string]int, len(d.Pages))
	for i, p := range d.Pages {
		n := i + 1
		if strings.TrimSpace(p.Title) == "" {
			errs = append(errs, fmt.Errorf("page %d: title is required", n))
		}
		// pages without an id fall back to their ordinal, so "2" clashes with page 2
		suffix := p.ID
		if suffix == "" {
			suffix = strconv.Itoa(n)
		}
		if prev, dup := seen[suffix]; dup {
			errs = append(errs, fmt.Errorf("page %d: id %q already used by page %d", n, suffix, prev))
		} else {
			seen[suffix] = n
		}

		types := make(map[string]bool, len(p.Buttons))
		for j, b := range p.Buttons {
			if strings.TrimSpace(b.Type) == "" {
				errs = append(errs, fmt.Errorf("page %d button %d: type is required", n, j+1))
				continue
			}
			if types[b.Type] {
				errs = append(errs, fmt.Errorf("page %d: more than one %q button", n, b.Type))
			}
			types[b.Type] = true
		}
	}

	return errors.Join(errs...)
}

// Build validates the definition and builds a wizard from it. idPrefix may
// be empty for the default prefix.
func (d *Definition) Build(idPrefix string, opts ...wizard.Option) (*wizard.Wizard, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	all := []wizard.Option{
		wizard.WithTitle(d.Title),
		wizard.WithHeaderActions(headerActions(d.HeaderActions)...),
	}
	if idPrefix != "" {
		all = append(all, wizard.WithIDPrefix(idPrefix))
	}
	if len(d.Buttons) > 0 {
		all = append(all, wizard.WithButtons(buttons(d.Buttons)...))
	}
	all = append(all, opts...)

	w := wizard.New(all...)
	for _, p := range d.Pages {
		w.AddPage(wizard.PageOptions{
			ID:                   p.ID,
			Title:                p.Title,
			NavTitle:             p.NavTitle,
			Body:                 p.Body,
			HeaderActions:        headerActions(p.HeaderActions),
			Buttons:              buttons(p.Buttons),
			NextStepDisabled:     p.NextDisabled,
			PreviousStepDisabled: p.PreviousDisabled,
			StopCancel:           p.StopCancel,
		})
	}
	return w, nil
}

// Marshal encodes the definition back to YAML.
func (d *Definition) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

func buttons(in []Button) []wizard.Button {
	if len(in) == 0 {
		return nil
	}
	out := make([]wizard.Button, len(in))
	for i, b := range in {
		out[i] = wizard.Button{Type: b.Type, Label: b.Label, Disabled: b.Disabled}
	}
	return out
}

func headerActions(in []HeaderAction) []wizard.HeaderAction {
	if len(in) == 0 {
		return nil
	}
	out := make([]wizard.HeaderAction, len(in))
	for i, a := range in {
		out[i] = wizard.HeaderAction{ID: a.ID, Label: a.Label}
	}
	return out
}
