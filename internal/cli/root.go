package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"vehicle-recommender/internal/catalog"
	"vehicle-recommender/internal/config"
)

type rootFlags struct {
	catalogFile string
	headerRow   int
	profileFile string
	verbose     bool
}

// NewRootCmd собирает дерево команд; вынесено в функцию, чтобы тесты могли
// запускать команды без глобального состояния.
func NewRootCmd() *cobra.Command {
	env := config.Load()
	f := &rootFlags{}

	root := &cobra.Command{
		Use:          "recommend",
		Short:        "Vehicle recommender: rank a vehicle catalog against desired attributes",
		SilenceUsage: true,
		Long: `Scores every vehicle of a catalog spreadsheet (.xlsx, .xls, .csv) against
the configured preferences and prints the closest matches.`,
	}
	root.PersistentFlags().StringVar(&f.catalogFile, "catalog", env.CatalogFile, "Catalog file (.xlsx, .xls, .csv)")
	root.PersistentFlags().IntVar(&f.headerRow, "header-row", env.HeaderRow, "1-based header row of the catalog sheet")
	root.PersistentFlags().StringVar(&f.profileFile, "profile", env.ProfileFile, "YAML profile with weights and column names")
	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "Log catalog loading details to stderr")

	root.AddCommand(newRankCmd(f), newOptionsCmd(f))
	return root
}

// Execute is called by cmd/recommend.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (f *rootFlags) logger(cmd *cobra.Command) zerolog.Logger {
	if !f.verbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()
}

func (f *rootFlags) load(cmd *cobra.Command) (*config.Profile, *catalog.Store, error) {
	profile, err := config.LoadProfile(f.profileFile)
	if err != nil {
		return nil, nil, err
	}
	columns, err := profile.ColumnOverrides()
	if err != nil {
		return nil, nil, err
	}
	store, err := catalog.LoadFile(f.catalogFile, f.headerRow, columns, f.logger(cmd))
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load catalog: %w", err)
	}
	return profile, store, nil
}
