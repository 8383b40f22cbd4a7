package presentation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an output format the Formatter cannot render.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects how a Formatter renders values.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatTable:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q (expected json, yaml or table)", ErrUnknownFormat, s)
	}
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
	format Format
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer, format Format) *Formatter {
	return &Formatter{
		writer: writer,
		format: format,
	}
}

// FormatPerspectives renders a list of perspectives
func (f *Formatter) FormatPerspectives(perspectives []PerspectiveDTO) error {
	return f.render(perspectives, func() [][]string {
		rows := make([][]string, 0, len(perspectives)+1)
		rows = append(rows, []string{"ID", "MENU", "NAME", "PAGE OBJECT", "DISTRIBUTIONS"})
		for _, p := range perspectives {
			rows = append(rows, []string{p.ID, p.Menu, p.Name, p.PageObject, strings.Join(p.Distributions, ", ")})
		}
		return rows
	})
}

// FormatPerspective renders a single perspective
func (f *Formatter) FormatPerspective(p PerspectiveDTO) error {
	return f.render(p, func() [][]string {
		return [][]string{
			{"FIELD", "VALUE"},
			{"id", p.ID},
			{"name", p.Name},
			{"menu", p.Menu},
			{"page_object", p.PageObject},
			{"distributions", strings.Join(p.Distributions, ", ")},
		}
	})
}

// FormatMatrix renders the per-distribution test case IDs
func (f *Formatter) FormatMatrix(matrix []MatrixRowDTO) error {
	return f.render(matrix, func() [][]string {
		rows := make([][]string, 0, len(matrix)+1)
		rows = append(rows, []string{"DISTRIBUTION", "COUNT", "PERSPECTIVES"})
		for _, row := range matrix {
			rows = append(rows, []string{row.Distribution, strconv.Itoa(len(row.Perspectives)), strings.Join(row.Perspectives, " ")})
		}
		return rows
	})
}

// FormatDistributions renders the known distributions
func (f *Formatter) FormatDistributions(dists []DistributionDTO) error {
	return f.render(dists, func() [][]string {
		rows := make([][]string, 0, len(dists)+1)
		rows = append(rows, []string{"NAME", "PERSPECTIVES"})
		for _, d := range dists {
			rows = append(rows, []string{d.Name, strconv.Itoa(d.Perspectives)})
		}
		return rows
	})
}

// render encodes v in the configured format. tableRows supplies the header row
// followed by data rows for FormatTable.
func (f *Formatter) render(v any, tableRows func() [][]string) error {
	switch f.format {
	case FormatJSON, "":
		encoder := json.NewEncoder(f.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case FormatYAML:
		encoder := yaml.NewEncoder(f.writer)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	case FormatTable:
		rows := tableRows()
		t := table.New().
			Border(lipgloss.NormalBorder()).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			}).
			Headers(rows[0]...).
			Rows(rows[1:]...)
		_, err := fmt.Fprintln(f.writer, t.Render())
		return err
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, f.format)
	}
}
