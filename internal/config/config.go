package config

import (
	"os"
	"strings"
)

type Config struct {
	Env                string
	HTTPAddr           string
	DataPath           string
	CorsAllowedOrigins []string
	ReceiptHeader      string
	ReceiptFooter      string
	CurrencySuffix     string
}

func Load() Config {
	return Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8086"),
		DataPath:           getEnv("DATA_PATH", "tablepos.db"),
		CorsAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "")),
		ReceiptHeader:      getEnv("RECEIPT_HEADER", "RESTAURACE"),
		ReceiptFooter:      getEnv("RECEIPT_FOOTER", "Harukoid s.r.o."),
		CurrencySuffix:     getEnv("CURRENCY_SUFFIX", "Kč"),
	}
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func splitCSV(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
