package model

import "strings"

// Attribute — имя сравниваемого признака автомобиля.
type Attribute string

const (
	AttrBrand          Attribute = "brand"
	AttrModelKey       Attribute = "modelKey" // не собирается из UI и не имеет веса по умолчанию
	AttrBodyworkType   Attribute = "bodyworkType"
	AttrColor          Attribute = "color"
	AttrTransmission   Attribute = "transmission"
	AttrModelID        Attribute = "modelId"
	AttrTrimLine       Attribute = "trimLine"
	AttrFuelType       Attribute = "fuelType"
	AttrEnginePower    Attribute = "enginePower"
	AttrProductionYear Attribute = "productionYear"
	AttrMileage        Attribute = "mileage"
)

// CategoricalAttrs сравниваются только на точное равенство.
var CategoricalAttrs = []Attribute{
	AttrBrand,
	AttrModelKey,
	AttrBodyworkType,
	AttrColor,
	AttrTransmission,
	AttrModelID,
	AttrTrimLine,
	AttrFuelType,
}

// NumericAttrs сравниваются по модулю разницы с порогом.
var NumericAttrs = []Attribute{
	AttrEnginePower,
	AttrProductionYear,
	AttrMileage,
}

// IsKnown: есть ли такой признак в схеме записи.
func IsKnown(a Attribute) bool {
	for _, c := range CategoricalAttrs {
		if c == a {
			return true
		}
	}
	for _, n := range NumericAttrs {
		if n == a {
			return true
		}
	}
	return false
}

// VehicleRecord — одна строка каталога. nil = значение отсутствует.
type VehicleRecord struct {
	Row            int      `json:"row,omitempty"` // номер строки в исходном файле (1-based)
	Brand          *string  `json:"brand"`
	ModelKey       *string  `json:"modelKey,omitempty"`
	BodyworkType   *string  `json:"bodyworkType"`
	Color          *string  `json:"color"`
	Transmission   *string  `json:"transmission"`
	ModelID        *string  `json:"modelId"`
	TrimLine       *string  `json:"trimLine"`
	FuelType       *string  `json:"fuelType"`
	EnginePower    *float64 `json:"enginePower"`
	ProductionYear *float64 `json:"productionYear"`
	Mileage        *float64 `json:"mileage"`
}

// Categorical возвращает значение категориального признака (nil, если его нет).
func (v VehicleRecord) Categorical(a Attribute) *string {
	switch a {
	case AttrBrand:
		return v.Brand
	case AttrModelKey:
		return v.ModelKey
	case AttrBodyworkType:
		return v.BodyworkType
	case AttrColor:
		return v.Color
	case AttrTransmission:
		return v.Transmission
	case AttrModelID:
		return v.ModelID
	case AttrTrimLine:
		return v.TrimLine
	case AttrFuelType:
		return v.FuelType
	}
	return nil
}

// Numeric возвращает значение числового признака (nil, если его нет).
func (v VehicleRecord) Numeric(a Attribute) *float64 {
	switch a {
	case AttrEnginePower:
		return v.EnginePower
	case AttrProductionYear:
		return v.ProductionYear
	case AttrMileage:
		return v.Mileage
	}
	return nil
}

// Значения по умолчанию для числовых полей конфигурации.
const (
	DefaultEnginePower    = 140
	DefaultProductionYear = 2020
	DefaultMileage        = 50000
)

// Configuration — желаемый автомобиль покупателя.
// Категориальное поле nil = «без предпочтения», такое поле ни с чем не совпадает.
type Configuration struct {
	Brand          *string `json:"brand"`
	ModelKey       *string `json:"modelKey,omitempty"`
	BodyworkType   *string `json:"bodyworkType"`
	Color          *string `json:"color"`
	Transmission   *string `json:"transmission"`
	ModelID        *string `json:"modelId"`
	TrimLine       *string `json:"trimLine"`
	FuelType       *string `json:"fuelType"`
	EnginePower    float64 `json:"enginePower"`
	ProductionYear float64 `json:"productionYear"`
	Mileage        float64 `json:"mileage"`
}

// DefaultConfiguration: без категориальных предпочтений, числа по умолчанию.
func DefaultConfiguration() Configuration {
	return Configuration{
		EnginePower:    DefaultEnginePower,
		ProductionYear: DefaultProductionYear,
		Mileage:        DefaultMileage,
	}
}

func (c Configuration) Categorical(a Attribute) *string {
	switch a {
	case AttrBrand:
		return c.Brand
	case AttrModelKey:
		return c.ModelKey
	case AttrBodyworkType:
		return c.BodyworkType
	case AttrColor:
		return c.Color
	case AttrTransmission:
		return c.Transmission
	case AttrModelID:
		return c.ModelID
	case AttrTrimLine:
		return c.TrimLine
	case AttrFuelType:
		return c.FuelType
	}
	return nil
}

func (c Configuration) Numeric(a Attribute) float64 {
	switch a {
	case AttrEnginePower:
		return c.EnginePower
	case AttrProductionYear:
		return c.ProductionYear
	case AttrMileage:
		return c.Mileage
	}
	return 0
}

// Normalize обрезает пробелы вокруг категориальных значений и превращает
// пустые строки в nil: пустой выбор в UI не должен совпадать с пустыми ячейками каталога.
func (c Configuration) Normalize() Configuration {
	c.Brand = trimmed(c.Brand)
	c.ModelKey = trimmed(c.ModelKey)
	c.BodyworkType = trimmed(c.BodyworkType)
	c.Color = trimmed(c.Color)
	c.Transmission = trimmed(c.Transmission)
	c.ModelID = trimmed(c.ModelID)
	c.TrimLine = trimmed(c.TrimLine)
	c.FuelType = trimmed(c.FuelType)
	return c
}

// ячейки каталога приходят уже обрезанными (fileio), так же поступаем с выбором
func trimmed(s *string) *string {
	if NonBlank(s) == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// NonBlank возвращает nil для nil и строк из одних пробелов.
func NonBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// Str возвращает указатель на строку (удобно в тестах и при сборке конфигурации).
func Str(s string) *string { return &s }

// Num возвращает указатель на число.
func Num(f float64) *float64 { return &f }

// WeightTable — вес каждого признака. Отсутствующий признак ничего не даёт.
type WeightTable map[Attribute]float64

// ScoredRecord: запись каталога с рассчитанной схожестью.
type ScoredRecord struct {
	VehicleRecord
	SimilarityScore float64 `json:"similarityScore"`
}

// Recommendation: одна строка ответа.
type Recommendation struct {
	Rank      int                   `json:"rank"`
	Score     float64               `json:"score"`
	Vehicle   VehicleRecord         `json:"vehicle"`
	Breakdown map[Attribute]float64 `json:"breakdown,omitempty"` // вклад признаков, если просили explain
}

// Result: ответ /recommend.
type Result struct {
	Results     []Recommendation `json:"results"`
	CatalogSize int              `json:"catalogSize"`
	TopN        int              `json:"topN"`
	MaxScore    float64          `json:"maxScore"` // сумма весов
	Config      Configuration    `json:"config"`
	Weights     WeightTable      `json:"weights"`
}
