package catalog

import (
	"strings"
	"unicode"

	"vehicle-recommender/internal/recommend/model"
)

// DefaultColumns — заголовки выгрузки ey_vehicle; после "|" идут запасные варианты.
func DefaultColumns() map[model.Attribute]string {
	return map[model.Attribute]string{
		model.AttrBrand:          "ey_brandname|brand",
		model.AttrModelKey:       "ey_modelkeyidname|modelkey",
		model.AttrBodyworkType:   "ey_bodyworktypename|bodyworktype",
		model.AttrColor:          "ey_vehiclecolorname|color",
		model.AttrTransmission:   "ey_transmissionname|transmission",
		model.AttrModelID:        "ey_vehiclemodelidname|modelid",
		model.AttrTrimLine:       "ey_trimlinename|trimline",
		model.AttrFuelType:       "ey_fueltypename|fueltype",
		model.AttrEnginePower:    "ey_enginepower|enginepower",
		model.AttrProductionYear: "ey_productionyear|productionyear",
		model.AttrMileage:        "ey_mileage|mileage",
	}
}

// compactKey: нижний регистр, только буквы и цифры ("Engine Power" == "enginePower").
func compactKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// resolveHeader ищет реальный заголовок по желаемому имени.
// Поддерживает варианты через "|"; сначала точное совпадение, потом по compactKey.
func resolveHeader(headers []string, want string) string {
	want = strings.TrimSpace(want)
	if want == "" {
		return ""
	}
	alts := strings.Split(want, "|")
	for i := range alts {
		alts[i] = strings.TrimSpace(alts[i])
	}

	for _, a := range alts {
		for _, h := range headers {
			if h == a {
				return h
			}
		}
	}
	for _, a := range alts {
		ca := compactKey(a)
		if ca == "" {
			continue
		}
		for _, h := range headers {
			if compactKey(h) == ca {
				return h
			}
		}
	}
	return ""
}
