// Package report renders verification results for the terminal or for
// piping into other tools.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/benzea/skein-altivec/internal/model"
)

// Renderer writes a set of file reports to an output stream.
type Renderer interface {
	Render(reports []model.FileReport) error
}

// New returns the Renderer for the given format: "text", "json" or
// "yaml".
func New(w io.Writer, format string, color bool) (Renderer, error) {
	switch format {
	case "text":
		return &TextRenderer{w: w, color: color}, nil
	case "json":
		return &JSONRenderer{enc: json.NewEncoder(w)}, nil
	case "yaml":
		return &YAMLRenderer{w: w}, nil
	default:
		return nil, fmt.Errorf("report: unknown format %q", format)
	}
}

var (
	stylePass = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)  // green
	styleFail = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // red
	styleErr  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))            // yellow
	styleDim  = lipgloss.NewStyle().Faint(true)
)

// TextRenderer prints one status line per file, with mismatch details
// indented below failing files.
type TextRenderer struct {
	w     io.Writer
	color bool
}

func (r *TextRenderer) Render(reports []model.FileReport) error {
	for _, rep := range reports {
		if err := r.renderFile(rep); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) renderFile(rep model.FileReport) error {
	var tag string
	switch {
	case rep.Err != "":
		tag = r.style(styleErr, "ERROR")
	case rep.Failed > 0:
		tag = r.style(styleFail, "FAIL")
	default:
		tag = r.style(stylePass, "PASS")
	}

	if rep.Err != "" {
		_, err := fmt.Fprintf(r.w, "%s %s: %s\n", tag, rep.Path, rep.Err)
		return err
	}

	counts := fmt.Sprintf("%d ok, %d failed, %d skipped", rep.Passed, rep.Failed, rep.Skipped)
	if _, err := fmt.Fprintf(r.w, "%s %s (%s): %s\n", tag, rep.Path, rep.Algorithm, counts); err != nil {
		return err
	}
	for _, m := range rep.Mismatches {
		line := fmt.Sprintf("\tvector %d (Len = %s):\n\t  expected %s\n\t  got      %s",
			m.Index, m.Length, m.Expected, m.Got)
		if _, err := fmt.Fprintln(r.w, r.style(styleDim, line)); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

// JSONRenderer writes one JSON object per file, one per line.
type JSONRenderer struct {
	enc *json.Encoder
}

func (r *JSONRenderer) Render(reports []model.FileReport) error {
	for _, rep := range reports {
		if err := r.enc.Encode(rep); err != nil {
			return err
		}
	}
	return nil
}

// YAMLRenderer writes the whole report set as one YAML document.
type YAMLRenderer struct {
	w io.Writer
}

func (r *YAMLRenderer) Render(reports []model.FileReport) error {
	enc := yaml.NewEncoder(r.w)
	defer enc.Close()
	return enc.Encode(reports)
}
