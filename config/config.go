package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Port             string
	MongoURI         string
	MongoDBName      string
	StripeSecretKey  string
	StripeWebhookKey string
	StoreURL         string // storefront base URL for success/cancel redirects
	Currency         string
	ShippingRates    []string // provider shipping-rate ids offered at checkout
	RedisURL         string
	KafkaBrokers     string
	OrderEventsTopic string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8090"),
		MongoURI:         os.Getenv("MONGODB_URI"),
		MongoDBName:      getEnv("MONGODB_DB", "ecommerce_admin"),
		StripeSecretKey:  os.Getenv("STRIPE_API_KEY"),
		StripeWebhookKey: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		StoreURL:         getEnv("ECOMMERCE_STORE_URL", "http://localhost:3000"),
		Currency:         getEnv("CHECKOUT_CURRENCY", "php"),
		ShippingRates:    splitEnv("STRIPE_SHIPPING_RATES", "shr_standard,shr_express"),
		RedisURL:         getEnv("REDIS_URL", "redis://localhost:6379"),
		KafkaBrokers:     getEnv("KAFKA_BROKERS", "localhost:9092"),
		OrderEventsTopic: getEnv("ORDER_EVENTS_TOPIC", "order-events"),
	}

	if cfg.MongoURI == "" || cfg.StripeSecretKey == "" || cfg.StripeWebhookKey == "" {
		return nil, fmt.Errorf("missing required environment variables")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitEnv(key, fallback string) []string {
	raw := getEnv(key, fallback)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
