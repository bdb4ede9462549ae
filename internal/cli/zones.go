package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/zoneinfo/internal/usecase"
)

func zonesCmd(a *app) *cobra.Command {
	var match string
	var links bool
	var format string

	c := &cobra.Command{
		Use:   "zones",
		Short: "List zones, optionally filtered by a glob such as Europe/*",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := a.open(cmd.Context())
			if err != nil {
				return err
			}
			entries, err := usecase.NewListZones(db).Execute(match, links)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			return emit(w, format, entries, func() {
				if len(entries) == 0 {
					fmt.Fprintln(w, "(no zones found)")
					return
				}
				rows := make([][]string, 0, len(entries))
				for _, e := range entries {
					detail := e.Comment
					if e.Target != "" {
						detail = "→ " + e.Target
					}
					rows = append(rows, []string{e.Name, e.Coordinates, detail})
				}
				fmt.Fprintln(w, newTheme(w).table([]string{"Zone", "Coordinates", "Comment"}, rows))
			})
		},
	}

	c.Flags().StringVarP(&match, "match", "m", "", "Glob over zone names, ** crosses slashes")
	c.Flags().BoolVar(&links, "links", false, "Include links (aliases)")
	addFormatFlag(c, &format)
	return c
}
