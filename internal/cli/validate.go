package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/zoneinfo/internal/usecase"
)

func validateCmd(a *app) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Parse and assemble every zone of the source, then cross-check the tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := usecase.NewValidate(a.source, a.cfg.Data.Workers).Execute(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if err := emit(w, format, rep, func() {
				th := newTheme(w)
				fmt.Fprintf(w, "%s %d zones, %d links, %d rulesets, %d countries\n",
					th.Label.Render("Source:"), rep.Zones, rep.Links, rep.Rulesets, rep.Countries)
				for _, p := range rep.Problems {
					fmt.Fprintf(w, "%s %s\n", th.Problem.Render("✗"), p)
				}
				if len(rep.Problems) == 0 {
					fmt.Fprintln(w, th.OK.Render("OK"))
				}
			}); err != nil {
				return err
			}
			if n := len(rep.Problems); n > 0 {
				return fmt.Errorf("validation found %d problem(s)", n)
			}
			return nil
		},
	}

	addFormatFlag(c, &format)
	return c
}
