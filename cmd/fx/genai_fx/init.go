package genai_fx

import (
	"log"
	"os"

	"funtrip/pkg/utils"

	"go.uber.org/fx"
)

var Module = fx.Provide(provideGenerativeClient)

func provideGenerativeClient() utils.GenerativeClientInterface {
	provider := os.Getenv("AI_PROVIDER")

	apiKey := os.Getenv("GEMINI_API_KEY")
	if provider == "openai" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	client, err := utils.NewGenerativeClient(provider, apiKey, os.Getenv("AI_MODEL"))
	if err != nil {
		log.Fatalf("Failed to initialize generative client: %v", err)
	}
	return client
}
