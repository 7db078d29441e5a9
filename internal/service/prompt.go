package service

import (
	"context"
	"errors"
	"strings"

	"github.com/promptforge/promptforge-go/internal/model"
)

var (
	ErrIdeaRequired   = errors.New("idea is required")
	ErrPromptNotFound = errors.New("prompt not found")
)

// DefaultCategory is applied when a generation request omits the category.
const DefaultCategory = "General"

// Generator is the text-generation contract the prompt service depends on.
// *gemini.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, idea, category string) (string, error)
}

// PromptStore is the persistence contract the prompt service depends on.
// *repository.PromptRepository satisfies it.
type PromptStore interface {
	Insert(ctx context.Context, prompt *model.Prompt) error
	ListByUser(ctx context.Context, userID int64) ([]model.Prompt, error)
	DeleteByIDAndUser(ctx context.Context, promptID, userID int64) (bool, error)
}

// PromptService handles prompt generation and management.
type PromptService struct {
	generator Generator
	prompts   PromptStore
}

// NewPromptService creates a new PromptService.
func NewPromptService(generator Generator, prompts PromptStore) *PromptService {
	return &PromptService{generator: generator, prompts: prompts}
}

// Generate validates the idea, mediates the upstream generation call, and
// persists the result. An empty or whitespace-only idea is rejected before
// any upstream call is made.
func (s *PromptService) Generate(ctx context.Context, userID int64, req model.GeneratePromptRequest) (model.PromptResponse, error) {
	idea := strings.TrimSpace(req.Idea)
	if idea == "" {
		return model.PromptResponse{}, ErrIdeaRequired
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = DefaultCategory
	}

	text, err := s.generator.Generate(ctx, idea, category)
	if err != nil {
		return model.PromptResponse{}, err
	}

	prompt := &model.Prompt{
		UserID:          userID,
		Category:        category,
		Idea:            idea,
		GeneratedPrompt: text,
	}

	if err := s.prompts.Insert(ctx, prompt); err != nil {
		return model.PromptResponse{}, err
	}

	return promptToResponse(*prompt), nil
}

// List returns all prompts owned by the user, newest first.
func (s *PromptService) List(ctx context.Context, userID int64) ([]model.PromptResponse, error) {
	prompts, err := s.prompts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]model.PromptResponse, len(prompts))
	for i, p := range prompts {
		result[i] = promptToResponse(p)
	}

	return result, nil
}

// Delete removes a prompt owned by the user. A prompt that does not exist
// and a prompt owned by someone else both report ErrPromptNotFound.
func (s *PromptService) Delete(ctx context.Context, userID, promptID int64) error {
	deleted, err := s.prompts.DeleteByIDAndUser(ctx, promptID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPromptNotFound
	}

	return nil
}

func promptToResponse(p model.Prompt) model.PromptResponse {
	return model.PromptResponse{
		ID:        p.ID,
		Category:  p.Category,
		Idea:      p.Idea,
		Prompt:    p.GeneratedPrompt,
		CreatedAt: p.CreatedAt,
	}
}
