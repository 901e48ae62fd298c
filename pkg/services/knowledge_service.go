package services

import (
	"context"
	"fmt"
	"time"

	"github.com/batonworks/baton/ent"
	"github.com/batonworks/baton/ent/knowledgeentry"
	"github.com/batonworks/baton/pkg/models"
)

// KnowledgeService manages the knowledge base entries tool handlers consult
type KnowledgeService struct {
	client *ent.Client
}

// NewKnowledgeService creates a new KnowledgeService
func NewKnowledgeService(client *ent.Client) *KnowledgeService {
	return &KnowledgeService{client: client}
}

// CreateEntry creates a knowledge base entry
func (s *KnowledgeService) CreateEntry(httpCtx context.Context, req models.CreateKnowledgeRequest) (*ent.KnowledgeEntry, error) {
	// Validate input
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	create := s.client.KnowledgeEntry.Create().
		SetTitle(req.Title).
		SetContent(req.Content)
	if req.Category != "" {
		create = create.SetCategory(req.Category)
	}
	if req.Tags != nil {
		create = create.SetTags(req.Tags)
	}

	created, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create knowledge entry: %w", err)
	}

	return created, nil
}

// GetEntry retrieves a knowledge entry by ID
func (s *KnowledgeService) GetEntry(ctx context.Context, entryID int) (*ent.KnowledgeEntry, error) {
	found, err := s.client.KnowledgeEntry.Get(ctx, entryID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get knowledge entry: %w", err)
	}

	return found, nil
}

// ListEntries lists knowledge entries, optionally restricted to a category
// and to active entries
func (s *KnowledgeService) ListEntries(ctx context.Context, category string, activeOnly bool) ([]*ent.KnowledgeEntry, error) {
	query := s.client.KnowledgeEntry.Query()
	if category != "" {
		query = query.Where(knowledgeentry.CategoryEQ(category))
	}
	if activeOnly {
		query = query.Where(knowledgeentry.ActiveEQ(true))
	}

	entries, err := query.
		Order(ent.Asc(knowledgeentry.FieldTitle)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list knowledge entries: %w", err)
	}

	return entries, nil
}

// UpdateEntry applies a partial update to a knowledge entry
func (s *KnowledgeService) UpdateEntry(httpCtx context.Context, entryID int, req models.UpdateKnowledgeRequest) (*ent.KnowledgeEntry, error) {
	// Validate input
	if req.Title != nil && *req.Title == "" {
		return nil, NewValidationError("title", "must not be empty")
	}
	if req.Content != nil && *req.Content == "" {
		return nil, NewValidationError("content", "must not be empty")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := s.client.KnowledgeEntry.UpdateOneID(entryID).
		SetNillableTitle(req.Title).
		SetNillableContent(req.Content).
		SetNillableCategory(req.Category).
		SetNillableActive(req.Active)
	if req.Tags != nil {
		update = update.SetTags(req.Tags)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update knowledge entry: %w", err)
	}

	return updated, nil
}

// DeleteEntry removes a knowledge entry
func (s *KnowledgeService) DeleteEntry(httpCtx context.Context, entryID int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.KnowledgeEntry.DeleteOneID(entryID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete knowledge entry: %w", err)
	}

	return nil
}
