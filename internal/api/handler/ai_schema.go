package handler

// The AI proxy routes keep the camelCase field names the browser client was
// built against, unlike the snake_case used elsewhere in the API.

type detectDiseaseRequest struct {
	ImageBase64 string `json:"imageBase64" validate:"required"`
}

type detectDiseaseResponse struct {
	Success    bool    `json:"success"`
	Recognized bool    `json:"recognized"`
	PlantName  string  `json:"plantName,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	IsHealthy  bool    `json:"isHealthy"`
	Treatment  string  `json:"treatment,omitempty"`
	Message    string  `json:"message,omitempty"`
}

type farmingAdviceRequest struct {
	Question string `json:"question" validate:"required"`
	Context  string `json:"context"`
}

type farmingAdviceResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
	Source   string `json:"source"`
}
