package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicle-recommender/internal/recommend/model"
)

const catalogCSV = `ey_brandname,ey_vehiclecolorname,ey_enginepower,ey_productionyear,ey_mileage
BMW,Black,150,2019,
Audi,,140,2020,50000
Audi,Red,,,
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "cars.csv")
	require.NoError(t, os.WriteFile(path, []byte(catalogCSV), 0o644))

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--catalog", path, "--profile", ""))
	err := cmd.Execute()
	return out.String(), err
}

func TestRank_JSON(t *testing.T) {
	out, err := run(t, "rank", "--brand", "Audi", "--json", "--top", "2")
	require.NoError(t, err)

	var res model.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Results, 2)
	assert.Equal(t, 3, res.Results[0].Vehicle.Row)
	assert.InDelta(t, 0.60, res.Results[0].Score, 1e-9)
	assert.Equal(t, 4, res.Results[1].Vehicle.Row)
	assert.Equal(t, 3, res.CatalogSize)
}

func TestRank_Table(t *testing.T) {
	out, err := run(t, "rank", "--brand", "BMW", "--color", "Black", "--explain")
	require.NoError(t, err)

	assert.Contains(t, out, "SCORE")
	assert.Contains(t, out, "brand=0.400")
	assert.Contains(t, out, "3 of 3 vehicles")
}

func TestRank_InvalidYear(t *testing.T) {
	_, err := run(t, "rank", "--year", "1800")
	assert.Error(t, err)
}

func TestOptionsCmd(t *testing.T) {
	out, err := run(t, "options")
	require.NoError(t, err)
	assert.Contains(t, out, "brand: Audi, BMW")
	assert.Contains(t, out, "color: Black, Red")
	assert.NotContains(t, out, "modelKey")
}

func TestMissingCatalog(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"rank", "--catalog", filepath.Join(t.TempDir(), "none.xlsx")})
	assert.Error(t, cmd.Execute())
}
