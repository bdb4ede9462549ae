package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/zoneinfo/internal/usecase"
)

func transitionsCmd(a *app) *cobra.Command {
	var year int
	var format string

	c := &cobra.Command{
		Use:   "transitions ZONE",
		Short: "List the offset and abbreviation changes of a zone in a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			list, err := usecase.NewListTransitions(db).Execute(args[0], year)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			return emit(w, format, list, func() {
				th := newTheme(w)
				fmt.Fprintln(w, th.Title.Render(fmt.Sprintf("%s %d", args[0], year)))
				if len(list) == 0 {
					fmt.Fprintln(w, th.Subtitle.Render("(no transitions)"))
					return
				}
				rows := make([][]string, 0, len(list))
				for _, tr := range list {
					rows = append(rows, []string{
						tr.UTC,
						tr.LocalBefore + " → " + tr.LocalAfter,
						tr.OffsetBefore + " → " + tr.OffsetAfter,
						tr.AbbrevBefore + " → " + tr.AbbrevAfter,
					})
				}
				fmt.Fprintln(w, th.table([]string{"UTC", "Wall clock", "Offset", "Abbreviation"}, rows))
			})
		},
	}

	c.Flags().IntVarP(&year, "year", "y", time.Now().Year(), "Year to list")
	addFormatFlag(c, &format)
	return c
}
