package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/promptforge/promptforge-go/internal/model"
)

// stubGenerator records calls and returns a canned result.
type stubGenerator struct {
	calls    int
	idea     string
	category string
	result   string
	err      error
}

func (g *stubGenerator) Generate(ctx context.Context, idea, category string) (string, error) {
	g.calls++
	g.idea = idea
	g.category = category
	if g.err != nil {
		return "", g.err
	}
	return g.result, nil
}

// memPromptStore is an in-memory PromptStore for tests.
type memPromptStore struct {
	mu      sync.Mutex
	prompts []model.Prompt
	nextID  int64
}

func newMemPromptStore() *memPromptStore {
	return &memPromptStore{nextID: 1}
}

func (s *memPromptStore) Insert(ctx context.Context, prompt *model.Prompt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prompt.ID = s.nextID
	prompt.CreatedAt = time.Now()
	s.nextID++
	s.prompts = append(s.prompts, *prompt)
	return nil
}

func (s *memPromptStore) ListByUser(ctx context.Context, userID int64) ([]model.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Newest first, mirroring the ORDER BY created_at DESC, id DESC query.
	var result []model.Prompt
	for i := len(s.prompts) - 1; i >= 0; i-- {
		if s.prompts[i].UserID == userID {
			result = append(result, s.prompts[i])
		}
	}
	return result, nil
}

func (s *memPromptStore) DeleteByIDAndUser(ctx context.Context, promptID, userID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.prompts {
		if p.ID == promptID && p.UserID == userID {
			s.prompts = append(s.prompts[:i], s.prompts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func TestGenerateEmptyIdeaRejectedBeforeUpstream(t *testing.T) {
	gen := &stubGenerator{result: "text"}
	svc := NewPromptService(gen, newMemPromptStore())

	for _, idea := range []string{"", "   ", "\n\t "} {
		_, err := svc.Generate(context.Background(), 1, model.GeneratePromptRequest{Idea: idea})
		if !errors.Is(err, ErrIdeaRequired) {
			t.Errorf("Generate(%q) error = %v, want ErrIdeaRequired", idea, err)
		}
	}

	if gen.calls != 0 {
		t.Errorf("upstream called %d times for invalid ideas, want 0", gen.calls)
	}
}

func TestGenerateDefaultsCategory(t *testing.T) {
	gen := &stubGenerator{result: "generated text"}
	svc := NewPromptService(gen, newMemPromptStore())

	resp, err := svc.Generate(context.Background(), 1, model.GeneratePromptRequest{Idea: "a travel blog"})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	if gen.category != DefaultCategory {
		t.Errorf("upstream category = %q, want %q", gen.category, DefaultCategory)
	}
	if resp.Category != DefaultCategory {
		t.Errorf("response category = %q, want %q", resp.Category, DefaultCategory)
	}
}

func TestGeneratePersistsResult(t *testing.T) {
	gen := &stubGenerator{result: "generated text"}
	store := newMemPromptStore()
	svc := NewPromptService(gen, store)

	resp, err := svc.Generate(context.Background(), 7, model.GeneratePromptRequest{
		Idea: "  a travel blog  ", Category: "Writing",
	})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	if resp.ID == 0 {
		t.Error("Generate() response has no id")
	}
	if resp.Prompt != "generated text" {
		t.Errorf("response prompt = %q, want %q", resp.Prompt, "generated text")
	}
	if resp.Idea != "a travel blog" {
		t.Errorf("response idea = %q, want trimmed input", resp.Idea)
	}

	if len(store.prompts) != 1 {
		t.Fatalf("stored %d prompts, want 1", len(store.prompts))
	}
	if store.prompts[0].UserID != 7 {
		t.Errorf("stored owner = %d, want 7", store.prompts[0].UserID)
	}
}

func TestGenerateUpstreamFailureNotPersisted(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream down")}
	store := newMemPromptStore()
	svc := NewPromptService(gen, store)

	_, err := svc.Generate(context.Background(), 1, model.GeneratePromptRequest{Idea: "idea"})
	if err == nil {
		t.Fatal("Generate() expected error when upstream fails")
	}
	if len(store.prompts) != 0 {
		t.Errorf("stored %d prompts after upstream failure, want 0", len(store.prompts))
	}
}

func TestListNewestFirst(t *testing.T) {
	gen := &stubGenerator{result: "text"}
	store := newMemPromptStore()
	svc := NewPromptService(gen, store)

	first, err := svc.Generate(context.Background(), 1, model.GeneratePromptRequest{Idea: "first"})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	second, err := svc.Generate(context.Background(), 1, model.GeneratePromptRequest{Idea: "second"})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	prompts, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(prompts) != 2 {
		t.Fatalf("List() returned %d prompts, want 2", len(prompts))
	}
	if prompts[0].ID != second.ID || prompts[1].ID != first.ID {
		t.Errorf("List() order = [%d %d], want newest first [%d %d]",
			prompts[0].ID, prompts[1].ID, second.ID, first.ID)
	}
}

func TestDeleteOtherUsersPromptNotFound(t *testing.T) {
	gen := &stubGenerator{result: "text"}
	store := newMemPromptStore()
	svc := NewPromptService(gen, store)

	resp, err := svc.Generate(context.Background(), 1, model.GeneratePromptRequest{Idea: "idea"})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	// User 2 cannot delete user 1's prompt.
	err = svc.Delete(context.Background(), 2, resp.ID)
	if !errors.Is(err, ErrPromptNotFound) {
		t.Errorf("Delete() error = %v, want ErrPromptNotFound", err)
	}

	// The prompt still appears in user 1's listing.
	prompts, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(prompts) != 1 || prompts[0].ID != resp.ID {
		t.Errorf("owner listing lost the prompt after foreign delete attempt: %+v", prompts)
	}
}

func TestDeleteOwnPrompt(t *testing.T) {
	gen := &stubGenerator{result: "text"}
	store := newMemPromptStore()
	svc := NewPromptService(gen, store)

	resp, err := svc.Generate(context.Background(), 1, model.GeneratePromptRequest{Idea: "idea"})
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	if err := svc.Delete(context.Background(), 1, resp.ID); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}

	prompts, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(prompts) != 0 {
		t.Errorf("List() returned %d prompts after delete, want 0", len(prompts))
	}
}
