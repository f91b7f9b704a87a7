package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-bot/internal/domain"
)

func newTicket(id string, createdAt time.Time) *domain.Ticket {
	return &domain.Ticket{
		ID:          id,
		Title:       "Ticket " + id,
		Description: "Description for " + id,
		Status:      domain.TicketStatusOpen,
		Importance:  domain.TicketImportanceMinor,
		CreatorID:   "creator-1",
		ThreadID:    "thread-" + id,
		MessageID:   "message-" + id,
		CreatedAt:   createdAt,
	}
}

func TestMemoryCreateAndGet(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created := newTicket("A1", time.Now())
	require.NoError(t, repo.Create(ctx, created))

	got, err := repo.GetByID(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Ticket A1", got.Title)
	assert.Equal(t, domain.TicketStatusOpen, got.Status)
	assert.Nil(t, got.AssigneeID)
}

func TestMemoryCreateRejectsDuplicateID(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTicket("A1", time.Now())))
	err := repo.Create(ctx, newTicket("A1", time.Now()))
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestMemoryGetMissing(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUpdateAppliesPartialPatch(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newTicket("A1", time.Now())))

	status := domain.TicketStatusResolved
	updated, err := repo.Update(ctx, "A1", domain.TicketPatch{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, domain.TicketStatusResolved, updated.Status)
	assert.Equal(t, domain.TicketImportanceMinor, updated.Importance, "untouched field survives")
	assert.Nil(t, updated.AssigneeID, "untouched field survives")

	assignee := "user-9"
	updated, err = repo.Update(ctx, "A1", domain.TicketPatch{AssigneeID: &assignee})
	require.NoError(t, err)
	require.NotNil(t, updated.AssigneeID)
	assert.Equal(t, "user-9", *updated.AssigneeID)
	assert.Equal(t, domain.TicketStatusResolved, updated.Status, "earlier patch persisted")
}

func TestMemoryUpdateMissing(t *testing.T) {
	repo := NewMemoryRepository()

	status := domain.TicketStatusClosed
	_, err := repo.Update(context.Background(), "nope", domain.TicketPatch{Status: &status})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryDelete(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newTicket("A1", time.Now())))

	require.NoError(t, repo.Delete(ctx, "A1"))

	_, err := repo.GetByID(ctx, "A1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "A1"), ErrNotFound)
}

func TestMemoryListNewestFirstWithLimit(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("T%d", i)
		require.NoError(t, repo.Create(ctx, newTicket(id, base.Add(time.Duration(i)*time.Minute))))
	}

	all, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "T4", all[0].ID)
	assert.Equal(t, "T0", all[4].ID)

	page, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "T4", page[0].ID)
	assert.Equal(t, "T3", page[1].ID)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
}

func TestMemoryListByCreator(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mine := newTicket("M1", base)
	require.NoError(t, repo.Create(ctx, mine))

	other := newTicket("O1", base.Add(time.Minute))
	other.CreatorID = "creator-2"
	require.NoError(t, repo.Create(ctx, other))

	got, err := repo.ListByCreator(ctx, "creator-1", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "M1", got[0].ID)
}
