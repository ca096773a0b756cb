package ports

import "context"

// PlantIdentification is the normalized result of a plant-id provider call.
type PlantIdentification struct {
	PlantName  string
	Confidence float64
	IsHealthy  bool
	Treatment  string
}

// PlantIdentifier is the outbound port to the plant-identification provider.
type PlantIdentifier interface {
	Identify(ctx context.Context, imageBase64 string) (*PlantIdentification, error)
}

// AdviceProvider is the outbound port to the farming-advice provider.
type AdviceProvider interface {
	Ask(ctx context.Context, question, context string) (string, error)
}

// DiseaseResult is returned by DetectDisease. When Recognized is false the
// Message field carries manual-identification guidance instead of a diagnosis.
type DiseaseResult struct {
	Recognized bool
	PlantName  string
	Confidence float64
	IsHealthy  bool
	Treatment  string
	Message    string
}

// AdviceResult is returned by FarmingAdvice. Source is "live" when the
// external provider answered and "fallback" otherwise.
type AdviceResult struct {
	Response string
	Source   string
}

// AdvisorService proxies plant-id and advice providers, degrading to local
// fallback content on any provider failure. It never returns provider errors.
type AdvisorService interface {
	DetectDisease(ctx context.Context, imageBase64 string) (*DiseaseResult, error)
	FarmingAdvice(ctx context.Context, question, questionContext string) (*AdviceResult, error)
}
