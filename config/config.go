package config

import (
	"os"
	"strconv"
)

type Config struct {
	Logger  LoggerConfig
	SQLite  SQLiteConfig
	Billing BillingConfig
	Invoice InvoiceConfig
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type SQLiteConfig struct {
	Path string
}

type BillingConfig struct {
	// Products with stock below this value are flagged in listings.
	LowStockThreshold int
	// How many bills the "View Bills" screen shows, newest first.
	RecentBillLimit int
}

type InvoiceConfig struct {
	OutputDir string
	// Item names longer than this are truncated on the invoice, not wrapped.
	NameWidth int
}

func Load() *Config {
	return &Config{
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", true),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		SQLite: SQLiteConfig{
			Path: getEnv("SHOPBILL_DB_PATH", "shop.db"),
		},
		Billing: BillingConfig{
			LowStockThreshold: getEnvInt("LOW_STOCK_THRESHOLD", 5),
			RecentBillLimit:   getEnvInt("RECENT_BILL_LIMIT", 10),
		},
		Invoice: InvoiceConfig{
			OutputDir: getEnv("INVOICE_OUTPUT_DIR", "."),
			NameWidth: getEnvInt("INVOICE_NAME_WIDTH", 30),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
