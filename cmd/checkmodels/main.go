// Command checkmodels lists the Gemini models available to the configured
// API key that support content generation. Handy for picking GEMINI_MODEL
// and GEMINI_MODEL_FALLBACK values.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"slices"

	"github.com/google/generative-ai-go/genai"
	"github.com/joho/godotenv"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

func main() {
	_ = godotenv.Load()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("❌ GEMINI_API_KEY missing; set it in the environment or .env")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		log.Fatalf("❌ Failed to create Gemini client: %v", err)
	}
	defer client.Close()

	fmt.Println("Listing available Gemini models...")

	iter := client.ListModels(ctx)
	for {
		m, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Fatalf("❌ Failed to list models: %v", err)
		}

		// Only show ones usable for predictions.
		if slices.Contains(m.SupportedGenerationMethods, "generateContent") {
			fmt.Println("-", m.Name)
		}
	}
}
