package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vehicle-recommender/internal/recommend/model"
)

func newOptionsCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the distinct catalog values of every categorical attribute",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, store, err := root.load(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, a := range model.CategoricalAttrs {
				opts := store.Options(a)
				if len(opts) == 0 {
					continue
				}
				fmt.Fprintf(out, "%s: %s\n", a, strings.Join(opts, ", "))
			}
			return nil
		},
	}
}
