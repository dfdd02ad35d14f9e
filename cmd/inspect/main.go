// Command inspect loads a time-indexed source and prints the first-month
// column statistics, useful for checking a dataset before serving it.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"gridview/internal/dataset"
	"gridview/internal/dataview"
)

func main() {
	file := flag.String("file", "data/open-meteo-subset.csv", "path to the CSV or XLSX source")
	sheet := flag.String("sheet", "", "sheet name for XLSX sources (defaults to the first sheet)")
	flag.Parse()

	table, err := load(*file, *sheet)
	if err != nil {
		slog.Error("failed to load source", "file", *file, "error", err)
		os.Exit(1)
	}

	if table.ParseWarning() {
		fmt.Fprintln(os.Stderr, "warning: some index timestamps could not be parsed")
	}

	summary, err := dataview.Summarize(table)
	if err != nil {
		slog.Error("failed to summarize source", "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s — %d rows, %d columns, y range [%g, %g]\n\n",
		summary.Period, table.Rows(), len(table.ColumnNames()), summary.YMin, summary.YMax)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COLUMN\tCOUNT\tMEAN\tMIN\tMAX\tSTD")
	for _, stats := range summary.Stats {
		fmt.Fprintf(w, "%s\t%d\t%g\t%g\t%g\t%g\n",
			stats.Column, stats.Count, stats.Mean, stats.Min, stats.Max, stats.Std)
	}
	w.Flush()
}

func load(path, sheet string) (*dataset.Table, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return dataset.LoadXLSX(path, sheet)
	}
	return dataset.LoadCSV(path)
}
