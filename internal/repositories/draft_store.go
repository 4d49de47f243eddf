package repositories

import (
	"context"
	"sync"

	"tripbooking/internal/domain"
	"tripbooking/internal/domain/models"
)

// DraftStore persists booking drafts between requests.
type DraftStore interface {
	Create(ctx context.Context, draft models.BookingDraft) error
	Get(ctx context.Context, id string) (models.BookingDraft, error)
	// Update loads the draft, applies fn and saves the result atomically. When fn
	// returns an error nothing is written.
	Update(ctx context.Context, id string, fn func(*models.BookingDraft) error) (models.BookingDraft, error)
	Delete(ctx context.Context, id string) error
}

// MemoryDraftStore keeps drafts in process memory.
type MemoryDraftStore struct {
	mu     sync.Mutex
	drafts map[string]models.BookingDraft
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: make(map[string]models.BookingDraft)}
}

func (s *MemoryDraftStore) Create(_ context.Context, draft models.BookingDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.drafts[draft.ID]; exists {
		return domain.ConflictError{Resource: "draft", Msg: "id sudah dipakai"}
	}
	s.drafts[draft.ID] = cloneDraft(draft)
	return nil
}

func (s *MemoryDraftStore) Get(_ context.Context, id string) (models.BookingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return models.BookingDraft{}, domain.NotFoundError{Resource: "draft"}
	}
	return cloneDraft(d), nil
}

func (s *MemoryDraftStore) Update(_ context.Context, id string, fn func(*models.BookingDraft) error) (models.BookingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return models.BookingDraft{}, domain.NotFoundError{Resource: "draft"}
	}
	next := cloneDraft(d)
	if err := fn(&next); err != nil {
		return models.BookingDraft{}, err
	}
	s.drafts[id] = cloneDraft(next)
	return next, nil
}

func (s *MemoryDraftStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
	return nil
}

// cloneDraft copies the slices so callers never alias stored state.
func cloneDraft(d models.BookingDraft) models.BookingDraft {
	d.Cabins = append([]models.CabinAllocation(nil), d.Cabins...)
	d.Hotels = append([]models.HotelAllocation(nil), d.Hotels...)
	d.ChosenFeeIDs = append([]int64(nil), d.ChosenFeeIDs...)
	return d
}
