package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"vehicle-recommender/internal/recommend/model"
	"vehicle-recommender/internal/recommend/service"
)

type rankFlags struct {
	brand, bodywork, color, transmission string
	modelID, trimLine, fuelType          string
	power, year, mileage                 float64
	top, workers                         int
	asJSON, explain                      bool
}

func newRankCmd(root *rootFlags) *cobra.Command {
	f := &rankFlags{}
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Print the catalog vehicles closest to the given preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRank(cmd, root, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.brand, "brand", "", "Brand (empty = no preference)")
	fl.StringVar(&f.bodywork, "bodywork", "", "Bodywork type")
	fl.StringVar(&f.color, "color", "", "Color")
	fl.StringVar(&f.transmission, "transmission", "", "Transmission")
	fl.StringVar(&f.modelID, "model", "", "Vehicle model id")
	fl.StringVar(&f.trimLine, "trim", "", "Trim line")
	fl.StringVar(&f.fuelType, "fuel", "", "Fuel type")
	fl.Float64Var(&f.power, "power", model.DefaultEnginePower, "Engine power")
	fl.Float64Var(&f.year, "year", model.DefaultProductionYear, "Production year")
	fl.Float64Var(&f.mileage, "mileage", model.DefaultMileage, "Mileage (km)")
	fl.IntVarP(&f.top, "top", "n", 0, "Number of results (default from profile or 10)")
	fl.IntVar(&f.workers, "workers", 1, "Score the catalog with this many goroutines")
	fl.BoolVar(&f.asJSON, "json", false, "Print JSON instead of a table")
	fl.BoolVar(&f.explain, "explain", false, "Include per-attribute contributions")
	return cmd
}

func runRank(cmd *cobra.Command, root *rootFlags, f *rankFlags) error {
	if f.year < 1900 || f.year > 2050 {
		return fmt.Errorf("--year must be within 1900..2050")
	}
	if f.power < 0 || f.mileage < 0 {
		return fmt.Errorf("--power and --mileage must be >= 0")
	}

	profile, store, err := root.load(cmd)
	if err != nil {
		return err
	}
	weights, err := profile.WeightTable()
	if err != nil {
		return err
	}
	top := f.top
	if top <= 0 {
		top = profile.TopN
	}

	cfg := model.Configuration{
		Brand:          model.Str(f.brand),
		BodyworkType:   model.Str(f.bodywork),
		Color:          model.Str(f.color),
		Transmission:   model.Str(f.transmission),
		ModelID:        model.Str(f.modelID),
		TrimLine:       model.Str(f.trimLine),
		FuelType:       model.Str(f.fuelType),
		EnginePower:    f.power,
		ProductionYear: f.year,
		Mileage:        f.mileage,
	}
	res := service.NewRanker(weights, f.workers).Recommend(store.Records(), cfg, top, f.explain)

	out := cmd.OutOrStdout()
	if f.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	return printTable(out, res, f.explain)
}

func printTable(out io.Writer, res model.Result, explain bool) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	header := "#\tSCORE\tROW\tBRAND\tMODEL\tBODY\tCOLOR\tTRANSMISSION\tTRIM\tFUEL\tPOWER\tYEAR\tMILEAGE"
	if explain {
		header += "\tMATCHED"
	}
	fmt.Fprintln(tw, header)
	for _, r := range res.Results {
		v := r.Vehicle
		line := strings.Join([]string{
			strconv.Itoa(r.Rank),
			strconv.FormatFloat(r.Score, 'f', 3, 64),
			strconv.Itoa(v.Row),
			str(v.Brand), str(v.ModelID), str(v.BodyworkType), str(v.Color),
			str(v.Transmission), str(v.TrimLine), str(v.FuelType),
			num(v.EnginePower), num(v.ProductionYear), num(v.Mileage),
		}, "\t")
		if explain {
			line += "\t" + matched(r.Breakdown)
		}
		fmt.Fprintln(tw, line)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%d of %d vehicles, max score %.2f\n", len(res.Results), res.CatalogSize, res.MaxScore)
	return err
}

func matched(b map[model.Attribute]float64) string {
	parts := make([]string, 0, len(b))
	for _, a := range append(append([]model.Attribute{}, model.CategoricalAttrs...), model.NumericAttrs...) {
		if v, ok := b[a]; ok {
			parts = append(parts, fmt.Sprintf("%s=%.3f", a, v))
		}
	}
	return strings.Join(parts, " ")
}

func str(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func num(f *float64) string {
	if f == nil {
		return "-"
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
