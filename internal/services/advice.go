package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const adviceModel = "gemini-3-pro-preview"

const adviceSystemInstruction = "Sei un esperto Ingegnere Civile e Capocantiere di EdilModern, " +
	"impresa specializzata in nuove costruzioni, fondamenta e strutture in cemento armato. " +
	"Rispondi con tono tecnico, autorevole e rassicurante. Focalizzati su sicurezza sismica, " +
	"durabilità dei materiali e normativa edilizia. Invita sempre a richiedere un sopralluogo " +
	"tecnico per valutare il terreno o il progetto."

const (
	adviceFallbackEmpty = "Spiacente, non ho potuto elaborare una consulenza tecnica al momento. " +
		"Ti invitiamo a contattare i nostri uffici tecnici."
	adviceFallbackError = "C'è stato un errore nel contattare l'assistente tecnico. " +
		"Per favore, prova più tardi."
)

// AdviceService è l'unico confine di rete in uscita. Advice non fallisce mai:
// ogni errore (trasporto, stato non-200, risposta vuota) si risolve in una
// frase di cortesia per l'utente.
type AdviceService struct {
	apiKey  string
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

func NewAdviceService(apiKey string, logger *slog.Logger) *AdviceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdviceService{
		apiKey:  apiKey,
		baseURL: "https://generativelanguage.googleapis.com",
		client:  &http.Client{Timeout: 20 * time.Second},
		log:     logger,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent   `json:"systemInstruction,omitempty"`
	Contents          []geminiContent  `json:"contents"`
	GenerationConfig  *geminiGenConfig `json:"generationConfig,omitempty"`
}

type geminiGenConfig struct {
	Temperature float64 `json:"temperature"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Advice chiede una consulenza tecnica al modello e restituisce sempre un
// testo presentabile all'utente.
func (s *AdviceService) Advice(ctx context.Context, prompt string) string {
	reqBody := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: adviceSystemInstruction}}},
		Contents:          []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig:  &geminiGenConfig{Temperature: 0.7},
	}
	raw, err := json.Marshal(reqBody)
	if err != nil {
		s.log.Error("advice: marshal richiesta", "err", err)
		return adviceFallbackError
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", s.baseURL, adviceModel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		s.log.Error("advice: costruzione richiesta", "err", err)
		return adviceFallbackError
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warn("advice: chiamata fallita", "err", err)
		return adviceFallbackError
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.log.Warn("advice: risposta non ok", "status", resp.StatusCode)
		return adviceFallbackError
	}

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		s.log.Warn("advice: decodifica risposta", "err", err)
		return adviceFallbackError
	}

	var text string
	if len(out.Candidates) > 0 {
		for _, p := range out.Candidates[0].Content.Parts {
			text += p.Text
		}
	}
	if text == "" {
		return adviceFallbackEmpty
	}
	return text
}
