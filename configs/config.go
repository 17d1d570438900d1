package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// Checkout pricing constants
	TaxRate     decimal.Decimal
	ServiceFee  decimal.Decimal
	DeliveryFee decimal.Decimal

	// Status simulator timing
	ApproveAfter time.Duration
	DeliverAfter time.Duration
	WorkerPoll   time.Duration
}

func LoadConfig() *Config {
	// .env is optional outside dev
	_ = godotenv.Load()

	return &Config{
		DBSource:  getEnv("DB_SOURCE", "foodfeast.db"),
		Port:      getEnv("PORT", "5000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    time.Duration(24) * time.Hour,

		TaxRate:     mustDecimal(getEnv("TAX_RATE", "0.12")),
		ServiceFee:  mustDecimal(getEnv("SERVICE_FEE", "5.00")),
		DeliveryFee: mustDecimal(getEnv("DELIVERY_FEE", "5.99")),

		ApproveAfter: getDuration("ORDER_APPROVE_AFTER", 15*time.Second),
		DeliverAfter: getDuration("ORDER_DELIVER_AFTER", 30*time.Second),
		WorkerPoll:   getDuration("STATUS_WORKER_POLL", 5*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("bad duration for %s: %v", key, err)
	}
	return d
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		log.Fatalf("bad decimal value %q: %v", s, err)
	}
	return d
}
