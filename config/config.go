package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// DefaultSalesTaxRate is the 8.8% sales tax applied at checkout
var DefaultSalesTaxRate = decimal.RequireFromString("0.088")

type Config struct {
	App      AppConfig
	Business BusinessConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type BusinessConfig struct {
	SalesTaxRate  decimal.Decimal
	CheckoutLanes int
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("SERVICE_NAME", "pos"),
			Env:  getEnv("ENV", "development"),
		},
		Business: BusinessConfig{
			SalesTaxRate:  parseTaxRate(getEnv("SALES_TAX_RATE", DefaultSalesTaxRate.String())),
			CheckoutLanes: parseLanes(getEnv("CHECKOUT_LANES", "4")),
		},
	}

	log.Printf("Config loaded: env=%s, tax_rate=%s, lanes=%d",
		cfg.App.Env, cfg.Business.SalesTaxRate, cfg.Business.CheckoutLanes)
	return cfg
}

func parseTaxRate(raw string) decimal.Decimal {
	rate, err := decimal.NewFromString(raw)
	if err != nil || rate.IsNegative() {
		log.Printf("Invalid SALES_TAX_RATE %q, using %s", raw, DefaultSalesTaxRate)
		return DefaultSalesTaxRate
	}
	return rate
}

func parseLanes(raw string) int {
	lanes, err := strconv.Atoi(raw)
	if err != nil || lanes < 1 {
		log.Printf("Invalid CHECKOUT_LANES %q, using 1", raw)
		return 1
	}
	return lanes
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
