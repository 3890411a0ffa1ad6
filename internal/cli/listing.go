package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"prtl/internal/portal"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// Lister renders the portals of a config in one output format.
type Lister struct {
	format OutputFormat
	out    io.Writer
}

// NewLister creates a lister writing to out.
func NewLister(format OutputFormat, out io.Writer) *Lister {
	return &Lister{format: format, out: out}
}

// Render writes all portals of cfg.
func (l *Lister) Render(cfg *portal.PortalConfig) error {
	switch l.format {
	case OutputFormatJSON:
		return l.renderJSON(cfg)
	case OutputFormatYAML:
		return l.renderYAML(cfg)
	case OutputFormatTable:
		return l.renderTable(cfg, false)
	case OutputFormatPlain:
		return l.renderTable(cfg, true)
	case OutputFormatText, "":
		return l.renderText(cfg)
	default:
		return ValidateOutputFormat(string(l.format))
	}
}

// portalObject returns the tag-to-path mapping, never nil, so an empty
// config lists as {} rather than null.
func portalObject(cfg *portal.PortalConfig) map[string]string {
	if cfg.PortalMap == nil {
		return map[string]string{}
	}
	return cfg.PortalMap
}

func (l *Lister) renderJSON(cfg *portal.PortalConfig) error {
	data, err := json.MarshalIndent(portalObject(cfg), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(l.out, string(data))
	return err
}

func (l *Lister) renderYAML(cfg *portal.PortalConfig) error {
	data, err := yaml.Marshal(portalObject(cfg))
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	_, err = fmt.Fprint(l.out, string(data))
	return err
}

func (l *Lister) renderText(cfg *portal.PortalConfig) error {
	if cfg.Len() == 0 {
		fmt.Fprintln(l.out, color.YellowString("No portals set yet."))
		fmt.Fprintln(l.out, "")
		fmt.Fprintln(l.out, "Create your first one:")
		fmt.Fprintln(l.out, "  prtl set <path> -t <tag>")
		return nil
	}

	tagStyle := color.New(color.FgCyan, color.Bold).SprintFunc()
	arrow := color.New(color.Faint).Sprint("→")
	marker := color.GreenString("(default)")

	width := 0
	for _, tag := range cfg.Tags() {
		width = max(width, len(tag))
	}

	for _, tag := range cfg.Tags() {
		path, _ := cfg.Get(tag)
		padding := fmt.Sprintf("%*s", width-len(tag), "")
		line := fmt.Sprintf("%s%s %s %s", tagStyle(tag), padding, arrow, path)
		if tag == cfg.DefaultTag {
			line += " " + marker
		}
		if _, err := fmt.Fprintln(l.out, line); err != nil {
			return err
		}
	}
	return nil
}

func (l *Lister) renderTable(cfg *portal.PortalConfig, plain bool) error {
	t := table.NewWriter()
	t.SetOutputMirror(l.out)

	if plain {
		t.SetStyle(table.StyleLight)
		t.Style().Options = table.OptionsNoBordersAndSeparators
		t.AppendHeader(table.Row{"TAG", "PATH"})
	} else {
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{l.header("TAG"), l.header("PATH"), l.header("DEFAULT")})
	}

	for _, tag := range cfg.Tags() {
		path, _ := cfg.Get(tag)
		if plain {
			t.AppendRow(table.Row{tag, path})
			continue
		}
		isDefault := ""
		if tag == cfg.DefaultTag {
			isDefault = "*"
		}
		t.AppendRow(table.Row{tag, path, isDefault})
	}

	t.Render()
	return nil
}

func (l *Lister) header(name string) string {
	if color.NoColor {
		return name
	}
	return text.FgHiCyan.Sprint(name)
}
