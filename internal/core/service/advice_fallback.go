package service

import "strings"

// adviceEntry is a single record in the local advice knowledge base.
// Entries are matched in order; the first keyword hit wins.
type adviceEntry struct {
	keywords []string
	response string
}

// adviceFallbacks is the data-driven knowledge base used when the external
// advice provider is unavailable. Responses are deterministic for a given
// question so tests can assert them verbatim.
var adviceFallbacks = []adviceEntry{
	{
		keywords: []string{"tomato"},
		response: "For tomatoes: plant in well-drained soil with full sun, water deeply at the base to keep foliage dry, stake or cage plants early, and watch for early blight — remove affected lower leaves and rotate beds each season.",
	},
	{
		keywords: []string{"rice"},
		response: "For rice: keep paddies flooded at 2-5 cm during vegetative growth, apply nitrogen in split doses at transplanting and panicle initiation, and drain the field about two weeks before harvest for even ripening.",
	},
	{
		keywords: []string{"pest"},
		response: "For pest management: start with prevention — crop rotation, resistant varieties, and field sanitation. Scout weekly, encourage beneficial insects, and reach for targeted treatments like neem oil before broad-spectrum pesticides.",
	},
	{
		keywords: []string{"soil"},
		response: "For soil health: test pH and nutrients before each season, add compost or well-rotted manure to build organic matter, keep the ground covered with mulch or cover crops, and avoid working wet soil to prevent compaction.",
	},
}

// genericAdvice is returned when no keyword matches the question.
const genericAdvice = "General farming advice: know your soil, match crops to your climate and season, rotate plantings to break pest cycles, and keep records of what you grow. For specific problems, a photo and a local agricultural extension office go a long way."

// fallbackAdvice resolves a question against the local knowledge base.
// Matching is a case-insensitive substring check on the question text only.
func fallbackAdvice(question string) string {
	q := strings.ToLower(question)
	for _, entry := range adviceFallbacks {
		for _, kw := range entry.keywords {
			if strings.Contains(q, kw) {
				return entry.response
			}
		}
	}
	return genericAdvice
}

// unrecognizedPlantMessage guides the farmer when identification fails.
const unrecognizedPlantMessage = "We could not recognize the plant in your photo. Try a sharp, well-lit photo of a single leaf against a plain background. In the meantime, check leaves for spots, wilting or discoloration and compare against your local extension office's disease guides."
