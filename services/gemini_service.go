package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/chicodelphi/nutricaoBRL/models"
)

const systemInstruction = `
Você é o NutricaoBRL AI, um nutricionista brasileiro experiente, amigável e motivador.
Responda sempre em Português do Brasil.
Seja empático, use emojis e motive o usuário.
Use terminologia nutricional correta mas acessível.
Se o usuário for vegano, JAMAIS sugira carne, ovos, leite ou mel.
`

// GeminiService implements Inference against the Google Generative Language
// API. Vision calls can take a while, hence the generous client timeout.
type GeminiService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGeminiService() *GeminiService {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiService{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		baseURL: fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent", model),
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// AnalyzeMealImage sends the photo plus an analysis prompt and expects a
// structured JSON body back.
func (gs *GeminiService) AnalyzeMealImage(ctx context.Context, req MealImageRequest) (*MealAnalysis, error) {
	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	prompt := "Analise esta refeição. Identifique os alimentos, estime calorias totais e macronutrientes aproximados.\n" +
		"Dê uma nota de saúde de 0 a 10 (10 sendo extremamente saudável/equilibrado).\n" +
		"Forneça um feedback curto e amigável (máximo 2 frases).\n" +
		"Responda APENAS com JSON no formato {\"foodName\": string, \"calories\": number, \"protein\": number, \"carbs\": number, \"fats\": number, \"healthScore\": number, \"feedback\": string}."
	if req.Vegan {
		prompt += "\nAtenção: Verifique se a refeição parece vegana."
	}

	parts := []geminiPart{
		{InlineData: &geminiInlineData{MimeType: mimeType, Data: req.ImageBase64}},
		{Text: prompt},
	}

	raw, err := gs.generate(ctx, parts)
	if err != nil {
		return nil, fmt.Errorf("error calling Gemini API: %w", err)
	}

	var analysis MealAnalysis
	if err := json.Unmarshal([]byte(cleanLLMResponse(raw)), &analysis); err != nil {
		return nil, fmt.Errorf("error unmarshaling analysis: %w", err)
	}
	if analysis.FoodName == "" {
		return nil, fmt.Errorf("empty analysis result")
	}
	return &analysis, nil
}

// GenerateDietPlan asks for a full five-slot daily plan for the profile.
func (gs *GeminiService) GenerateDietPlan(ctx context.Context, profile models.UserProfile) (*models.DietPlan, error) {
	prompt := gs.buildPlanPrompt(profile)

	raw, err := gs.generate(ctx, []geminiPart{{Text: prompt}})
	if err != nil {
		return nil, fmt.Errorf("error calling Gemini API: %w", err)
	}

	var plan models.DietPlan
	if err := json.Unmarshal([]byte(cleanLLMResponse(raw)), &plan); err != nil {
		return nil, fmt.Errorf("error unmarshaling diet plan: %w", err)
	}
	if !plan.Complete() {
		return nil, fmt.Errorf("incomplete diet plan result")
	}
	return &plan, nil
}

func (gs *GeminiService) buildPlanPrompt(profile models.UserProfile) string {
	vegan := "Não"
	if profile.IsVegan {
		vegan = "Sim"
	}

	prompt := "Crie um plano alimentar diário personalizado para esta pessoa:\n"
	prompt += fmt.Sprintf("Idade: %d anos\n", profile.Age)
	prompt += fmt.Sprintf("Peso: %.1fkg\n", profile.Weight)
	prompt += fmt.Sprintf("Altura: %.0fcm\n", profile.Height)
	prompt += fmt.Sprintf("Sexo: %s\n", profile.Gender)
	prompt += fmt.Sprintf("Nível de Atividade: %s\n", profile.ActivityLevel)
	prompt += fmt.Sprintf("Objetivo: %s\n", profile.Goal)
	prompt += fmt.Sprintf("Vegano: %s\n", vegan)
	prompt += fmt.Sprintf("Calorias Alvo: %d kcal\n\n", profile.DailyCaloriesTarget)
	prompt += "O plano deve ter Café da Manhã, Lanche da Manhã, Almoço, Lanche da Tarde e Jantar.\n"
	prompt += "Inclua 3 dicas motivacionais e práticas no final.\n"
	prompt += "Responda APENAS com JSON no formato {\"breakfast\": {\"name\": string, \"description\": string, \"calories\": number}, " +
		"\"morningSnack\": {...}, \"lunch\": {...}, \"afternoonSnack\": {...}, \"dinner\": {...}, \"tips\": [string]}."
	return prompt
}

func (gs *GeminiService) generate(ctx context.Context, parts []geminiPart) (string, error) {
	requestBody := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: systemInstruction}}},
		Contents:          []geminiContent{{Parts: parts}},
		GenerationConfig:  &geminiGenerationConfig{ResponseMIMEType: "application/json"},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("error marshaling request: %v", err)
	}

	url := fmt.Sprintf("%s?key=%s", gs.baseURL, gs.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := gs.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error making request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %v", err)
	}

	var response geminiResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("error unmarshaling response: %v", err)
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	return response.Candidates[0].Content.Parts[0].Text, nil
}

// cleanLLMResponse strips markdown code fences the model sometimes wraps
// around JSON despite the response MIME type.
func cleanLLMResponse(response string) string {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	return strings.TrimSpace(response)
}
