package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the configured database. MySQL when DB_HOST is set,
// otherwise a local sqlite file so the API runs without a database
// server in development.
func InitDB() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")
	if host == "" {
		return gorm.Open(sqlite.Open("restotrack.db"), &gorm.Config{})
	}

	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "3306"
	}
	name := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, name)
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}

// TaxRate returns the tax rate applied to order subtotals.
func TaxRate() decimal.Decimal {
	return rateFromEnv("TAX_RATE", "0.075")
}

// ServiceRate returns the service charge rate.
func ServiceRate() decimal.Decimal {
	return rateFromEnv("SERVICE_RATE", "0.10")
}

func rateFromEnv(key, fallback string) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	d, _ := decimal.NewFromString(fallback)
	return d
}
