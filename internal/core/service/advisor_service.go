package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
)

// Advice sources reported to the client.
const (
	SourceLive     = "live"
	SourceFallback = "fallback"
)

// AdvisorService proxies the plant-id and advice providers. Provider calls
// are made exactly once per request; any failure degrades to local fallback
// content and is never surfaced to the caller as an error.
type AdvisorService struct {
	plants ports.PlantIdentifier
	advice ports.AdviceProvider
	logger zerolog.Logger
}

func NewAdvisorService(plants ports.PlantIdentifier, advice ports.AdviceProvider, logger zerolog.Logger) *AdvisorService {
	return &AdvisorService{plants: plants, advice: advice, logger: logger}
}

// DetectDisease forwards the image to the plant-id provider. On provider
// failure or an empty identification the result carries manual-identification
// guidance instead of a diagnosis.
func (s *AdvisorService) DetectDisease(ctx context.Context, imageBase64 string) (*ports.DiseaseResult, error) {
	if imageBase64 == "" {
		return nil, fmt.Errorf("%w: image data is required", domain.ErrValidation)
	}

	ident, err := s.plants.Identify(ctx, imageBase64)
	if err != nil || ident == nil || ident.PlantName == "" {
		if err != nil {
			s.logger.Warn().Err(err).Msg("plant identification failed, returning guidance")
		}
		return &ports.DiseaseResult{
			Recognized: false,
			Message:    unrecognizedPlantMessage,
		}, nil
	}

	return &ports.DiseaseResult{
		Recognized: true,
		PlantName:  ident.PlantName,
		Confidence: ident.Confidence,
		IsHealthy:  ident.IsHealthy,
		Treatment:  ident.Treatment,
	}, nil
}

// FarmingAdvice asks the external provider once and falls back to the local
// knowledge base on any failure. The fallback is a pure function of the
// question text.
func (s *AdvisorService) FarmingAdvice(ctx context.Context, question, questionContext string) (*ports.AdviceResult, error) {
	if question == "" {
		return nil, fmt.Errorf("%w: question is required", domain.ErrValidation)
	}

	answer, err := s.advice.Ask(ctx, question, questionContext)
	if err != nil || answer == "" {
		if err != nil {
			s.logger.Warn().Err(err).Msg("advice provider failed, using fallback")
		}
		return &ports.AdviceResult{
			Response: fallbackAdvice(question),
			Source:   SourceFallback,
		}, nil
	}

	return &ports.AdviceResult{Response: answer, Source: SourceLive}, nil
}
