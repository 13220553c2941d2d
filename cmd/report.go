package cmd

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"wastecollection/internal/core/application/usecases/queries"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func reportCmd(opts *rootOptions) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the collection reports",
		Long: `Print the overview, the certified totals per waste type and the certified
totals per site.

Examples:
  wastecollection report
  wastecollection report --from 2024-01-01 --to 2024-01-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, closeDB, err := opts.bootstrap()
			if err != nil {
				return err
			}
			defer closeDB()

			return app.PrintReports(cmd.Context(), cmd.OutOrStdout(), from, to)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first issue day of the waste type report (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last issue day of the waste type report (YYYY-MM-DD)")

	return cmd
}

var (
	headingColor = color.New(color.Bold, color.FgHiCyan)
	figureColor  = color.New(color.FgHiGreen)
	dimColor     = color.New(color.FgHiBlack)
)

// PrintReports renders the three reports as aligned text. from and to bound
// the waste type report only.
func (c *CompositionRoot) PrintReports(ctx context.Context, out io.Writer, from, to string) error {
	wasteTypeQuery, err := queries.NewGetWasteTypeReportQuery(from, to)
	if err != nil {
		return err
	}

	overview, err := c.CreateOverviewReportQueryHandler().Handle(ctx, queries.NewGetOverviewReportQuery())
	if err != nil {
		return err
	}
	wasteTypes, err := c.CreateWasteTypeReportQueryHandler().Handle(ctx, wasteTypeQuery)
	if err != nil {
		return err
	}
	sites, err := c.CreateSiteReportQueryHandler().Handle(ctx, queries.NewGetSiteReportQuery())
	if err != nil {
		return err
	}

	headingColor.Fprintln(out, "Overview")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  sites\t%s\n", figureColor.Sprint(overview.TotalSites))
	fmt.Fprintf(w, "  collectors\t%s\n", figureColor.Sprint(overview.TotalCollectors))
	fmt.Fprintf(w, "  requests\t%s\n", figureColor.Sprint(overview.TotalRequests))
	fmt.Fprintf(w, "  certified collections\t%s\n", figureColor.Sprint(overview.TotalCompletedCollections))
	fmt.Fprintf(w, "  kg collected\t%s\n", figureColor.Sprintf("%.2f", overview.TotalKgCollected))
	_ = w.Flush()
	fmt.Fprintln(out)

	headingColor.Fprint(out, "By waste type")
	if days := wasteTypeQuery.Days(); days.From != nil || days.To != nil {
		dimColor.Fprintf(out, " (%s to %s)", dayOrOpen(from), dayOrOpen(to))
	}
	fmt.Fprintln(out)
	if len(wasteTypes) == 0 {
		dimColor.Fprintln(out, "  no certified collections")
	}
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, t := range wasteTypes {
		fmt.Fprintf(w, "  %s\t%d\t%s kg\n", t.WasteType, t.TotalCollections, figureColor.Sprintf("%.2f", t.TotalKg))
	}
	_ = w.Flush()
	fmt.Fprintln(out)

	headingColor.Fprintln(out, "By site")
	if len(sites) == 0 {
		dimColor.Fprintln(out, "  no certified collections")
	}
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, s := range sites {
		fmt.Fprintf(w, "  %s\t%d\t%s kg\n", s.SiteName, s.TotalCompletedCollections, figureColor.Sprintf("%.2f", s.TotalKg))
	}
	return w.Flush()
}

func dayOrOpen(s string) string {
	if s == "" {
		return "…"
	}
	return s
}
