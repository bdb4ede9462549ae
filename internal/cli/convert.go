package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/zoneinfo/internal/usecase"
)

func convertCmd(a *app) *cobra.Command {
	var from, to string
	var noOptimize bool
	var format string

	c := &cobra.Command{
		Use:   "convert TIME",
		Short: "Convert a time between zones (or UTC)",
		Long: "Convert an ISO 8601 time. A reading with Z or an offset is universal time;\n" +
			"otherwise it is the wall clock of --from.",
		Example: "  zoneinfo convert --from Europe/Paris --to America/New_York 2000-07-01T12:00",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			optimize := a.cfg.Convert.Optimize && !noOptimize
			res, err := usecase.NewConvert(db, optimize).Execute(from, to, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			return emit(w, format, res, func() {
				th := newTheme(w)
				body := fmt.Sprintf("%s %s\n%s %s %s\n%s %s  %s %d",
					th.Label.Render(res.To), th.Title.Render(res.Result),
					th.Label.Render("abbr"), res.Abbreviation, th.Subtitle.Render("("+res.Offset+")"),
					th.Label.Render("utc"), res.UTC,
					th.Label.Render("unix"), res.UnixSeconds,
				)
				fmt.Fprintln(w, th.Subtitle.Render(fmt.Sprintf("%s in %s", res.Input, res.From)))
				fmt.Fprintln(w, th.Card.Render(body))
			})
		},
	}

	c.Flags().StringVarP(&from, "from", "f", usecase.UTCName, "Source zone, or UTC")
	c.Flags().StringVarP(&to, "to", "t", usecase.UTCName, "Target zone, or UTC")
	c.Flags().BoolVar(&noOptimize, "no-optimize", false, "Search zone lines directly instead of the transition cache")
	addFormatFlag(c, &format)
	return c
}
