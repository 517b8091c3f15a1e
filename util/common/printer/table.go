package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/modwarden/modwarden/internal/style"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
)

// ColumnMapping defines a mapping between original field names and display names
// Format: [["originalField", "Display Name"], ...]
type ColumnMapping [][]string

// parseTableData converts a JSON array + column mapping into headers and string rows.
func parseTableData(data []byte, mapping ColumnMapping) ([]string, [][]string, error) {
	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, nil, fmt.Errorf("parse json: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	fields := make([]string, 0, len(mapping))
	header := make([]string, 0, len(mapping))
	for _, m := range mapping {
		if len(m) >= 2 {
			fields = append(fields, m[0])
			header = append(header, m[1])
		}
	}
	if len(fields) == 0 {
		for k := range rows[0] {
			fields = append(fields, k)
		}
		sort.Strings(fields)
		header = fields
	}

	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		row := make([]string, len(fields))
		for i, f := range fields {
			val, ok := r[f]
			if !ok || val == nil {
				row[i] = "-"
				continue
			}
			row[i] = fmt.Sprint(val)
		}
		tableRows = append(tableRows, row)
	}

	return header, tableRows, nil
}

// renderStyledTable renders a table using lipgloss/table with the project's colour theme.
func renderStyledTable(headers []string, rows [][]string) string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(style.Emerald).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().
		Foreground(style.White).
		Padding(0, 1)

	dimCellStyle := lipgloss.NewStyle().
		Foreground(style.Dim).
		Padding(0, 1)

	t := lgtable.New().
		Headers(headers...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(style.Subtle)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			if row%2 == 0 {
				return cellStyle
			}
			return dimCellStyle
		}).
		Rows(rows...)

	return t.Render()
}

// renderPtermTable renders a boxed pterm table for non-TTY / no-color output.
func renderPtermTable(headers []string, rows [][]string) (string, error) {
	data := pterm.TableData{headers}
	data = append(data, rows...)
	return pterm.DefaultTable.
		WithHasHeader().
		WithBoxed(true).
		WithData(data).
		Srender()
}

// TableOptions provides configuration for table output
type TableOptions struct {
	Writer        io.Writer
	ColumnMapping ColumnMapping
	// Footer is printed below the table, e.g. a total.
	Footer string
}

// PrintTableWithOptions prints a slice of records as a table.
// When colour is enabled it renders using lipgloss/table with the project theme,
// otherwise it falls back to the pterm boxed table.
func PrintTableWithOptions(res any, options TableOptions) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to marshal data to JSON: %w", err)
	}

	headers, rows, err := parseTableData(data, options.ColumnMapping)
	if err != nil {
		log.Error().Msgf("failed to parse table data: %v", err)
		return err
	}

	w := writerOrStdout(options.Writer)
	if headers == nil {
		fmt.Fprintln(w, "No results.")
		return nil
	}

	var rendered string
	if style.Enabled {
		rendered = renderStyledTable(headers, rows)
	} else {
		rendered, err = renderPtermTable(headers, rows)
		if err != nil {
			log.Error().Msgf("failed to render table: %v", err)
			return err
		}
	}
	fmt.Fprintln(w, rendered)

	if options.Footer != "" {
		fmt.Fprintln(w, style.DimText.Render(options.Footer))
	}
	return nil
}
