package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"
)

// TextGenerator answers a free-text prompt. The comparator and the
// matching flow both go through it.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type VertexGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewVertexGenerator(ctx context.Context, projectID, location, credentialsFile string) (*VertexGenerator, error) {
	opts := []option.ClientOption{}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := genai.NewClient(ctx, projectID, location, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &VertexGenerator{
		client: client,
		model:  client.GenerativeModel("gemini-pro"),
	}, nil
}

func (g *VertexGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to call ai: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no response generated")
	}
	candidate := resp.Candidates[0]
	if len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	return fmt.Sprintf("%v", candidate.Content.Parts[0]), nil
}

func (g *VertexGenerator) Close() error {
	return g.client.Close()
}
