// Package prediction produces the astrology narrative for a report.
//
// The service tries an ordered list of generation models — primary, then one
// fallback — and if every attempt fails it returns a fixed canned message.
// The chain is total: Predict always produces usable text, never an error.
package prediction

import (
	"context"
	"log"
	"strings"
)

// FallbackMessage is the canned terminal default returned when every
// generation attempt fails. Same script as the generated reports.
const FallbackMessage = "⚠️ Gemini ସର୍ଭର ସମସ୍ୟା । ସାଧାରଣ ପରାମର୍ଶ:\n" +
	"• ସକାରାତ୍ମକ ରୁହନ୍ତୁ\n" +
	"• ପ୍ରତିଦିନ ଶିଖନ୍ତୁ\n" +
	"• ସ୍ବାସ୍ଥ୍ୟ ଓ ଅର୍ଥ କୁ ପ୍ରାଥମ୍ୟ ଦିଅନ୍ତୁ"

// Generator is the text-generation backend: one model, one prompt, one
// response. The Gemini implementation lives in gemini.go; tests substitute
// stubs to exercise each stage of the fallback chain.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// Service orchestrates prompt building and the model fallback chain.
type Service struct {
	gen    Generator
	models []string // tried in order; duplicates are fine
}

// New creates a prediction service with a primary and a fallback model id.
func New(gen Generator, primary, fallback string) *Service {
	return &Service{
		gen:    gen,
		models: []string{primary, fallback},
	}
}

// Predict builds the prompt and walks the model chain. The success predicate
// per attempt: no error, and the returned text is non-empty after trimming.
// A failed attempt is logged and the next model is tried; if the whole chain
// fails, the canned fallback message is returned.
func (s *Service) Predict(ctx context.Context, in Inputs) string {
	prompt := buildPrompt(in)

	for _, model := range s.models {
		text, err := s.gen.Generate(ctx, model, prompt)
		if err != nil {
			log.Printf("⚠️  Generation failed with model %s: %v", model, err)
			continue
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return trimmed
		}
		log.Printf("⚠️  Model %s returned empty text, trying next", model)
	}

	return FallbackMessage
}
