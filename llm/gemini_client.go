package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"google.golang.org/genai"
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, model string) (LLMClient, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		// Providers are designed for dependency injection.
		// If the API key is not set, we log a fatal error.
		logger.Fatal("GEMINI_API_KEY environment variable is not set")
		return nil, nil // This will never be reached, but it's good practice to return nil here.
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) GetModel() string {
	return c.model
}

func (c *GeminiClient) GenerateInference(ctx context.Context, messages []Message, callback func(chunk string) error, opts ...LLMOption) error {
	settings := LLMSettings{
		model:       c.model,
		temperature: 0.7,
		maxTokens:   4096,
	}

	// Apply options
	for _, opt := range opts {
		opt(&settings)
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(settings.temperature)),
		MaxOutputTokens: int32(settings.maxTokens),
	}

	if settings.system != "" {
		config.SystemInstruction = genai.NewContentFromText(settings.system, genai.RoleUser)
	}

	if settings.jsonOutput {
		config.ResponseMIMEType = "application/json"
	}

	contents := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		var role genai.Role = genai.RoleUser
		if msg.Role == "assistant" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}

	response, err := c.client.Models.GenerateContent(ctx, settings.model, contents, config)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}

	text := response.Text()
	if text == "" {
		return fmt.Errorf("no content in response")
	}

	return callback(text)
}
