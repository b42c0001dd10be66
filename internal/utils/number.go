package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var rxKeepNums = regexp.MustCompile(`[^\d\.\-eE+]`)

var spaces = strings.NewReplacer(" ", "", "\u00A0", "", "\u202F", "", "\u2009", "", "\t", "")

// ParseNumber парсит числовые ячейки каталога: "140", "50 000", "62,500",
// "1,234.5", "1.234,5", "2 345,6" (NBSP/NNBSP), "150 kW".
// Единственную запятую с ровно тремя цифрами после неё считаем разделителем тысяч, иначе десятичной.
// Возвращает false, если числа нет.
func ParseNumber(s string) (float64, bool) {
	s = spaces.Replace(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	dot, comma := strings.LastIndex(s, "."), strings.LastIndex(s, ",")
	switch {
	case dot >= 0 && comma >= 0 && comma > dot:
		// 1.234,5
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case dot >= 0 && comma >= 0:
		// 1,234.5
		s = strings.ReplaceAll(s, ",", "")
	case comma >= 0 && strings.Count(s, ",") > 1:
		// 1,234,567
		s = strings.ReplaceAll(s, ",", "")
	case comma >= 0 && len(s)-comma-1 == 3 && comma > 0:
		// 62,500: разделитель тысяч
		s = strings.Replace(s, ",", "", 1)
	case comma >= 0:
		s = strings.Replace(s, ",", ".", 1)
	}
	// оставить только цифры, точку, знак и экспоненту (на случай единиц измерения)
	s = rxKeepNums.ReplaceAllString(s, "")
	s = strings.TrimRight(s, "eE+-")
	if s == "" || s == "-" || s == "." {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
