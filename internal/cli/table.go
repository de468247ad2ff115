package cli

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/thinktide/statspan/internal/format"
)

// printTable writes the whole statistics record as a borderless
// two-column table instead of the rendered template line.
func printTable(w io.Writer, f format.Fields) {
	table := tablewriter.NewWriter(w)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	rows := [][]string{
		{"samples", f.Size},
		{"mean", f.Mean},
		{"stdev", f.Stdev},
		{"margin", f.Margin},
		{"lower", f.Lower},
		{"upper", f.Upper},
		{"confidence", f.Confidence},
		{"sum", f.Sum},
		{"min", f.Min},
		{"max", f.Max},
	}
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}
