package config

import (
	"os"
	"strings"
	"time"
)

// Config is the API configuration, read from the environment. A .env file in
// the working directory is loaded first by cmd/api (godotenv/autoload).
type Config struct {
	Port            string
	ShutdownTimeout time.Duration

	AWSRegion        string
	AWSAccessKeyID   string
	AWSSecretKey     string
	DynamoDBEndpoint string
	ProductsTable    string
	QuotesTable      string
	PaymentsTable    string

	RabbitMQURL    string
	EventsProducer string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
	// SandboxPayerEmail is used as payer.email when a payment carries no payer identity.
	SandboxPayerEmail string

	// StrictTracking only accepts single-stage tracking moves.
	StrictTracking bool

	CORSAllowOrigins []string
}

func Load() Config {
	return Config{
		Port:            getenv("PORT", "8080"),
		ShutdownTimeout: parseDuration(getenv("SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),

		AWSRegion:        getenv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:   getenv("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretKey:     getenv("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		ProductsTable:    getenv("PRODUCTS_TABLE", "products"),
		QuotesTable:      getenv("QUOTES_TABLE", "quotes"),
		PaymentsTable:    getenv("PAYMENTS_TABLE", "payments"),

		RabbitMQURL:    os.Getenv("RABBITMQ_URL"),
		EventsProducer: getenv("EVENTS_PRODUCER", "quoteportal-api"),

		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     parseBool(os.Getenv("PAYMENT_GATEWAY_MOCK")) || parseBool(os.Getenv("MERCADOPAGO_MOCK")),
		SandboxPayerEmail:      os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"),

		StrictTracking: parseBool(os.Getenv("STRICT_TRACKING")),

		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
