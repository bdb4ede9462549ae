package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/zoneinfo/internal/usecase"
	"github.com/aalvaropc/zoneinfo/internal/usecase/extract"
)

func inspectCmd(a *app) *cobra.Command {
	var format string
	var extracts []string

	c := &cobra.Command{
		Use:   "inspect ZONE",
		Short: "Show the lines, countries and aliases of a zone",
		Example: "  zoneinfo inspect Europe/Paris --format yaml\n" +
			"  zoneinfo inspect Europe/Paris --extract 'rules=$.segments[*].rules'",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			rep, err := usecase.NewInspect(db).Execute(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(extracts) > 0 {
				return printExtracts(w, rep, extracts)
			}
			return emit(w, format, rep, func() { printPrettyReport(w, rep) })
		},
	}

	addFormatFlag(c, &format)
	c.Flags().StringArrayVarP(&extracts, "extract", "x", nil, "JSONPath over the JSON report, as NAME=PATH or PATH (repeatable)")
	return c
}

func printPrettyReport(w io.Writer, rep usecase.ZoneReport) {
	th := newTheme(w)
	fmt.Fprintln(w, th.Title.Render(rep.Name))
	if rep.Coordinates != "" {
		fmt.Fprintf(w, "%s %s\n", th.Label.Render("Coordinates:"), rep.Coordinates)
	}
	if rep.Comment != "" {
		fmt.Fprintf(w, "%s %s\n", th.Label.Render("Comment:    "), rep.Comment)
	}
	if len(rep.Countries) > 0 {
		fmt.Fprintf(w, "%s %s\n", th.Label.Render("Countries:  "), strings.Join(rep.Countries, ", "))
	}
	if len(rep.Aliases) > 0 {
		fmt.Fprintf(w, "%s %s\n", th.Label.Render("Aliases:    "), strings.Join(rep.Aliases, ", "))
	}

	rows := make([][]string, 0, len(rep.Segments))
	for _, s := range rep.Segments {
		until := s.EndLocal
		if until == "" {
			until = "-"
		}
		rows = append(rows, []string{s.StandardOffset, s.Rules, s.Format, until})
	}
	fmt.Fprintln(w, th.table([]string{"STDOFF", "RULES", "FORMAT", "UNTIL"}, rows))
}

func printExtracts(w io.Writer, rep usecase.ZoneReport, specs []string) error {
	doc, err := extract.NewDocument(rep)
	if err != nil {
		return err
	}

	values, results := doc.Apply(extract.ParseRules(specs))
	th := newTheme(w)
	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			fmt.Fprintf(w, "%s %s\n", th.Problem.Render("✗"), r.Message)
			continue
		}
		fmt.Fprintf(w, "%s=%s\n", r.Name, values[r.Name])
	}
	if failed > 0 {
		return fmt.Errorf("%d extract(s) failed", failed)
	}
	return nil
}
