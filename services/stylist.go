package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"google.golang.org/genai"

	"vestiapi/styling"
)

// LLMModelName selects the Gemini model used for a call.
type LLMModelName int32

const (
	Pro25 LLMModelName = iota
	Flash25
	FlashLite25
	Flash20
)

func (t LLMModelName) String() string {
	switch t {
	case Pro25:
		return "gemini-2.5-pro"
	case Flash25:
		return "gemini-2.5-flash"
	case FlashLite25:
		return "gemini-2.5-flash-lite-preview-06-17"
	case Flash20:
		return "gemini-2.0-flash"
	default:
		return "gemini-2.0-flash"
	}
}

func floatPointer(f float32) *float32 {
	return &f
}

// ClothingAnalysis is the structured tagger output for one uploaded image.
// Category and color are stored raw; the styling engine normalizes them on
// read.
type ClothingAnalysis struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Color       string   `json:"color"`
	StyleTags   []string `json:"style_tags"`
	Season      string   `json:"season"`
	Formality   string   `json:"formality"`
	Description string   `json:"description"`
}

type outfitRefinement struct {
	AITitle          string   `json:"ai_title"`
	AIDescription    string   `json:"ai_description"`
	StylingTips      []string `json:"styling_tips"`
	SuitabilityScore float64  `json:"suitability_score"`
}

// StylistServiceProvider covers both LLM touchpoints: tagging a single
// clothing image and polishing finished outfits with titles and tips.
type StylistServiceProvider interface {
	AnalyzeClothing(ctx context.Context, filePath string, modelName LLMModelName) (*ClothingAnalysis, error)
	RefineOutfits(ctx context.Context, outfits []styling.Outfit, occasion string, weather styling.WeatherProfile) error
}

type GoogleStylistService struct{}

var codeFenceRule = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// cleanAIResponseText strips markdown code fences the model sometimes wraps
// JSON answers in, despite the JSON response MIME type.
func cleanAIResponseText(text string) string {
	if m := codeFenceRule.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(text)
}

func newGenAIClient(ctx context.Context) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  os.Getenv("GOOGLE_API_KEY"),
		Backend: genai.BackendGeminiAPI,
	})
}

func tryUploadGoogleStorage(ctx context.Context, client *genai.Client, filePath string) (*genai.File, error) {
	var genFile *genai.File
	var err error
	maxUploadTimes := 3
	for i := range maxUploadTimes {
		genFile, err = client.Files.UploadFromPath(ctx, filePath, &genai.UploadFileConfig{})
		if err == nil {
			return genFile, nil
		}
		fmt.Printf("Error uploading file %s, attempt %d: %v\n", filePath, i+1, err)
	}
	return nil, fmt.Errorf("failed to upload file to google storage after %d attempts: %s", maxUploadTimes, filePath)
}

func (GoogleStylistService) AnalyzeClothing(ctx context.Context, filePath string, modelName LLMModelName) (*ClothingAnalysis, error) {
	client, err := newGenAIClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %v", err)
	}

	genFile, err := tryUploadGoogleStorage(ctx, client, filePath)
	if err != nil {
		return nil, err
	}

	parts := []*genai.Part{
		{
			FileData: &genai.FileData{
				FileURI:  genFile.URI,
				MIMEType: genFile.MIMEType,
			},
		},
		{
			Text: `Analyze the single clothing item in the image. Return JSON with:
'name': short display name, 'category': one of top/bottom/dress/outerwear/shoes/accessory or the closest garment word,
'color': the single dominant color as one lowercase word,
'style_tags': up to 4 lowercase tags (e.g. "casual", "streetwear", "elegant", "waterproof"),
'season': one of summer/winter/spring/fall/all-season,
'formality': one of casual/business-casual/business/formal,
'description': one sentence. If the image contains no clothing, set name to "unknown" and keep other fields empty.`,
		},
	}

	result, err := client.Models.GenerateContent(ctx, modelName.String(), []*genai.Content{{Parts: parts}}, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		CandidateCount:   1,
		MaxOutputTokens:  2000,
		Temperature:      floatPointer(0.2),
	})
	if err != nil {
		return nil, fmt.Errorf("clothing analysis call failed: %v", err)
	}
	if result.PromptFeedback != nil {
		return nil, fmt.Errorf("content violation: %s %s", filePath, result.PromptFeedback.BlockReasonMessage)
	}

	var analysis ClothingAnalysis
	raw := cleanAIResponseText(result.Text())
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse clothing analysis response: %v (%s)", err, raw)
	}
	return &analysis, nil
}

// RefineOutfits asks the model for a title, description, styling tips and a
// suitability score per outfit and writes them into the slice in place. It is
// strictly additive: the engine's own titles, scores and ordering stay.
func (s GoogleStylistService) RefineOutfits(ctx context.Context, outfits []styling.Outfit, occasion string, weather styling.WeatherProfile) error {
	if len(outfits) == 0 {
		return nil
	}
	client, err := newGenAIClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create genai client: %v", err)
	}

	type promptItem struct {
		Category  string   `json:"category"`
		Color     string   `json:"color"`
		StyleTags []string `json:"style_tags,omitempty"`
	}
	type promptOutfit struct {
		Title string       `json:"title"`
		Items []promptItem `json:"items"`
	}

	promptOutfits := make([]promptOutfit, 0, len(outfits))
	for _, outfit := range outfits {
		po := promptOutfit{Title: outfit.Title}
		for _, item := range outfit.Items {
			po.Items = append(po.Items, promptItem{Category: item.Category, Color: item.Color, StyleTags: item.StyleTags})
		}
		promptOutfits = append(promptOutfits, po)
	}
	payload, err := json.Marshal(promptOutfits)
	if err != nil {
		return fmt.Errorf("failed to marshal outfits for refinement: %v", err)
	}

	prompt := fmt.Sprintf(`You are a personal stylist. Occasion: %q. Weather: %q.
Here are %d outfits as JSON: %s
For each outfit, in the same order, return a JSON array of objects with:
'ai_title': catchy short title, 'ai_description': two sentences on why it works,
'styling_tips': 2-3 short tips, 'suitability_score': 0.0-1.0 for the occasion and weather.`,
		occasion, weather.Label, len(outfits), payload)

	result, err := client.Models.GenerateContent(ctx, Flash20.String(), []*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}}, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		CandidateCount:   1,
		MaxOutputTokens:  4000,
		Temperature:      floatPointer(0.8),
	})
	if err != nil {
		return fmt.Errorf("outfit refinement call failed: %v", err)
	}

	var refinements []outfitRefinement
	raw := cleanAIResponseText(result.Text())
	if err := json.Unmarshal([]byte(raw), &refinements); err != nil {
		return fmt.Errorf("failed to parse refinement response: %v (%s)", err, raw)
	}

	for i := range outfits {
		if i >= len(refinements) {
			break
		}
		outfits[i].AITitle = refinements[i].AITitle
		outfits[i].AIDescription = refinements[i].AIDescription
		outfits[i].StylingTips = refinements[i].StylingTips
		outfits[i].SuitabilityScore = refinements[i].SuitabilityScore
	}
	return nil
}
