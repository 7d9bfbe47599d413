package providers_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"odyssey/internal/infra"
	"odyssey/pkg/utils"
)

var Module = fx.Provide(
	ProvideLogger,
	ProvidePlacesClient,
	ProvideAmadeusClient,
	ProvideStructuredClient)

func ProvideLogger() (*zap.Logger, error) {
	if strings.EqualFold(os.Getenv("APP_ENV"), "production") {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func ProvidePlacesClient(logger *zap.Logger) infra.PlacesClientInterface {
	apiKey := os.Getenv("GOOGLE_PLACES_API_KEY")
	if apiKey == "" {
		log.Fatal("GOOGLE_PLACES_API_KEY is required")
	}
	baseURL := getEnvWithDefault("GOOGLE_PLACES_BASE_URL", "https://maps.googleapis.com/maps/api/place")

	return infra.NewPlacesClient(apiKey, baseURL, logger)
}

func ProvideAmadeusClient(logger *zap.Logger) infra.AmadeusClientInterface {
	apiKey := os.Getenv("AMADEUS_API_KEY")
	apiSecret := os.Getenv("AMADEUS_API_SECRET")
	if apiKey == "" || apiSecret == "" {
		log.Fatal("AMADEUS_API_KEY and AMADEUS_API_SECRET are required")
	}
	baseURL := getEnvWithDefault("AMADEUS_BASE_URL", "https://test.api.amadeus.com")

	return infra.NewAmadeusClient(apiKey, apiSecret, baseURL, logger)
}

// ProvideStructuredClient creates a structured generation client based on
// environment variables.
func ProvideStructuredClient(logger *zap.Logger) (utils.StructuredClientInterface, error) {
	provider := getEnvWithDefault("GENERATION_PROVIDER", "gemini")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return utils.NewStructuredClient(provider, apiKey, model, logger)
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
