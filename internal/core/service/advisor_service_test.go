package service

import (
	"context"
	"errors"
	"testing"

	"github.com/agrilink/farm-market/internal/core/domain"
	"github.com/agrilink/farm-market/internal/core/ports"
)

var errProviderDown = errors.New("provider unreachable")

type stubPlantIdentifier struct {
	result *ports.PlantIdentification
	err    error
}

func (s *stubPlantIdentifier) Identify(context.Context, string) (*ports.PlantIdentification, error) {
	return s.result, s.err
}

type stubAdviceProvider struct {
	answer string
	err    error
}

func (s *stubAdviceProvider) Ask(context.Context, string, string) (string, error) {
	return s.answer, s.err
}

func newAdvisor(plants ports.PlantIdentifier, advice ports.AdviceProvider) *AdvisorService {
	return NewAdvisorService(plants, advice, discardLogger)
}

func TestAdvisor_FarmingAdvice_Live(t *testing.T) {
	svc := newAdvisor(&stubPlantIdentifier{}, &stubAdviceProvider{answer: "water twice a day"})

	result, err := svc.FarmingAdvice(context.Background(), "How often should I water?", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Source != SourceLive {
		t.Fatalf("expected live source, got %q", result.Source)
	}
	if result.Response != "water twice a day" {
		t.Fatalf("unexpected response: %q", result.Response)
	}
}

func TestAdvisor_FarmingAdvice_RiceFallback(t *testing.T) {
	svc := newAdvisor(&stubPlantIdentifier{}, &stubAdviceProvider{err: errProviderDown})

	result, err := svc.FarmingAdvice(context.Background(), "Tell me about my rice field", "")
	if err != nil {
		t.Fatalf("provider failure must not surface: %v", err)
	}
	if result.Source != SourceFallback {
		t.Fatalf("expected fallback source, got %q", result.Source)
	}
	if result.Response != adviceFallbacks[1].response {
		t.Fatalf("expected the rice fallback verbatim, got %q", result.Response)
	}
}

func TestAdvisor_FarmingAdvice_GenericFallback(t *testing.T) {
	svc := newAdvisor(&stubPlantIdentifier{}, &stubAdviceProvider{err: errProviderDown})

	result, err := svc.FarmingAdvice(context.Background(), "xyz", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Response != genericAdvice {
		t.Fatalf("expected generic advice, got %q", result.Response)
	}
}

// The fallback must be a deterministic function of the question text.
func TestAdvisor_FarmingAdvice_FallbackDeterministic(t *testing.T) {
	svc := newAdvisor(&stubPlantIdentifier{}, &stubAdviceProvider{err: errProviderDown})

	first, _ := svc.FarmingAdvice(context.Background(), "My TOMATO leaves look odd", "")
	second, _ := svc.FarmingAdvice(context.Background(), "My TOMATO leaves look odd", "")
	if first.Response != second.Response {
		t.Fatal("fallback responses differ between identical questions")
	}
	if first.Response != adviceFallbacks[0].response {
		t.Fatalf("expected the tomato fallback, got %q", first.Response)
	}
}

func TestAdvisor_FarmingAdvice_KeywordOrder(t *testing.T) {
	svc := newAdvisor(&stubPlantIdentifier{}, &stubAdviceProvider{err: errProviderDown})

	cases := map[string]string{
		"any pest problems here": adviceFallbacks[2].response,
		"how do I improve soil":  adviceFallbacks[3].response,
	}
	for question, want := range cases {
		got, err := svc.FarmingAdvice(context.Background(), question, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Response != want {
			t.Fatalf("question %q: unexpected fallback %q", question, got.Response)
		}
	}
}

func TestAdvisor_FarmingAdvice_EmptyQuestion(t *testing.T) {
	svc := newAdvisor(&stubPlantIdentifier{}, &stubAdviceProvider{})

	if _, err := svc.FarmingAdvice(context.Background(), "", ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAdvisor_FarmingAdvice_EmptyAnswerFallsBack(t *testing.T) {
	svc := newAdvisor(&stubPlantIdentifier{}, &stubAdviceProvider{answer: ""})

	result, err := svc.FarmingAdvice(context.Background(), "xyz", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Source != SourceFallback {
		t.Fatalf("empty provider answer must fall back, got source %q", result.Source)
	}
}

func TestAdvisor_DetectDisease_Success(t *testing.T) {
	svc := newAdvisor(&stubPlantIdentifier{
		result: &ports.PlantIdentification{
			PlantName:  "Solanum lycopersicum",
			Confidence: 0.93,
			IsHealthy:  false,
			Treatment:  "Remove affected leaves.",
		},
	}, &stubAdviceProvider{})

	result, err := svc.DetectDisease(context.Background(), "aW1hZ2U=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Recognized {
		t.Fatal("expected a recognized plant")
	}
	if result.PlantName != "Solanum lycopersicum" || result.Confidence != 0.93 {
		t.Fatalf("unexpected mapping: %+v", result)
	}
}

func TestAdvisor_DetectDisease_ProviderFailure(t *testing.T) {
	svc := newAdvisor(&stubPlantIdentifier{err: errProviderDown}, &stubAdviceProvider{})

	result, err := svc.DetectDisease(context.Background(), "aW1hZ2U=")
	if err != nil {
		t.Fatalf("provider failure must not surface: %v", err)
	}
	if result.Recognized {
		t.Fatal("expected unrecognized result")
	}
	if result.Message != unrecognizedPlantMessage {
		t.Fatalf("expected guidance message, got %q", result.Message)
	}
}

func TestAdvisor_DetectDisease_EmptyIdentification(t *testing.T) {
	svc := newAdvisor(&stubPlantIdentifier{result: &ports.PlantIdentification{}}, &stubAdviceProvider{})

	result, err := svc.DetectDisease(context.Background(), "aW1hZ2U=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Recognized {
		t.Fatal("an empty identification must count as unrecognized")
	}
}

func TestAdvisor_DetectDisease_EmptyImage(t *testing.T) {
	svc := newAdvisor(&stubPlantIdentifier{}, &stubAdviceProvider{})

	if _, err := svc.DetectDisease(context.Background(), ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
