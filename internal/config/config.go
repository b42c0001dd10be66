package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	LogFile      string
	MaxBodyMB    int

	CatalogFile string // .xlsx / .xls / .csv с каталогом
	HeaderRow   int    // строка заголовков каталога (1-based)
	ProfileFile string // YAML с весами и колонками, опционально
	TopN        int
	RankWorkers int // >1: параллельный подсчёт схожести
}

// Load читает окружение; .env в рабочем каталоге подхватывается, если есть.
func Load() Config {
	_ = godotenv.Load()

	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return Config{
		Host:         getenv("HOST", "127.0.0.1"),
		Port:         atoi(getenv("PORT", "8082"), 8082),
		AllowOrigins: origins,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFile:      getenv("LOG_FILE", "logs/vehicle-recommender.log"),
		MaxBodyMB:    atoi(getenv("MAX_UPLOAD_MB", "1"), 1),
		CatalogFile:  getenv("CATALOG_FILE", "data/ey_vehicle.xlsx"),
		HeaderRow:    atoi(getenv("CATALOG_HEADER_ROW", "1"), 1),
		ProfileFile:  getenv("PROFILE_FILE", ""),
		TopN:         atoi(getenv("TOP_N", "10"), 10),
		RankWorkers:  atoi(getenv("RANK_WORKERS", "1"), 1),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(s string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return i
}
