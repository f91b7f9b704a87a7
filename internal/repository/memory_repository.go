package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/spec-kit/ticket-bot/internal/domain"
)

// memoryRepository is a mutex-guarded map store. It backs the bot when no
// Postgres DSN is configured and serves as the store under test.
type memoryRepository struct {
	mu      sync.RWMutex
	tickets map[string]domain.Ticket
}

// NewMemoryRepository instantiates the in-memory repository.
func NewMemoryRepository() TicketRepository {
	return &memoryRepository{tickets: make(map[string]domain.Ticket)}
}

func (r *memoryRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tickets[ticket.ID]; exists {
		return ErrDuplicateID
	}
	if ticket.CreatedAt.IsZero() {
		ticket.CreatedAt = time.Now()
	}
	r.tickets[ticket.ID] = *ticket
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &ticket, nil
}

func (r *memoryRepository) Update(ctx context.Context, id string, patch domain.TicketPatch) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Status != nil {
		ticket.Status = *patch.Status
	}
	if patch.Importance != nil {
		ticket.Importance = *patch.Importance
	}
	if patch.AssigneeID != nil {
		assignee := *patch.AssigneeID
		ticket.AssigneeID = &assignee
	}
	r.tickets[id] = ticket
	return &ticket, nil
}

func (r *memoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[id]; !ok {
		return ErrNotFound
	}
	delete(r.tickets, id)
	return nil
}

func (r *memoryRepository) List(ctx context.Context, limit int) ([]domain.Ticket, error) {
	if limit <= 0 {
		limit = 20
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := r.sortedLocked()
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *memoryRepository) ListByCreator(ctx context.Context, creatorID string, limit int) ([]domain.Ticket, error) {
	if limit <= 0 {
		limit = 20
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Ticket
	for _, ticket := range r.sortedLocked() {
		if ticket.CreatorID != creatorID {
			continue
		}
		result = append(result, ticket)
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

func (r *memoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tickets), nil
}

// sortedLocked returns all tickets most-recently-created first. Callers must
// hold at least the read lock.
func (r *memoryRepository) sortedLocked() []domain.Ticket {
	all := make([]domain.Ticket, 0, len(r.tickets))
	for _, ticket := range r.tickets {
		all = append(all, ticket)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all
}
