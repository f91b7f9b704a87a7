package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bot/internal/domain"
	"github.com/spec-kit/ticket-bot/internal/events"
	"github.com/spec-kit/ticket-bot/internal/repository"
	apperrors "github.com/spec-kit/ticket-bot/pkg/util"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 1000
	threadNameTitleChars = 30
)

// ThreadPlatform is the boundary to the chat platform: thread lifecycle and
// the rendered ticket message. The service never talks to Discord directly.
type ThreadPlatform interface {
	CreateTicketThread(ctx context.Context, parentChannelID, name string) (threadID string, err error)
	PostTicketMessage(ctx context.Context, ticket *domain.Ticket) (messageID string, err error)
	EditTicketMessage(ctx context.Context, ticket *domain.Ticket) error
	DeleteThread(ctx context.Context, threadID, reason string) error
}

// TicketService coordinates the ticket lifecycle: it owns the store record
// and keeps the rendered thread message synchronized with it.
type TicketService struct {
	tickets    repository.TicketRepository
	platform   ThreadPlatform
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Platform   ThreadPlatform
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// CreateInput describes ticket creation payload.
type CreateInput struct {
	Title       string
	Description string
	Status      domain.TicketStatus
	Importance  domain.TicketImportance
	AssigneeID  *string
	CreatorID   string
	ChannelID   string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketService{
		tickets:    deps.TicketRepo,
		platform:   deps.Platform,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// CreateTicket validates input, creates the ticket thread, posts the rendered
// message and persists the record with both references filled in. The store
// write happens last: if it fails the posted message is orphaned best-effort
// debt, never a half-visible ticket.
func (s *TicketService) CreateTicket(ctx context.Context, input CreateInput) (*domain.Ticket, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || len(title) > maxTitleLength {
		return nil, apperrors.NewValidationError("title must be 1-100 characters", nil)
	}
	if description == "" || len(description) > maxDescriptionLength {
		return nil, apperrors.NewValidationError("description must be 1-1000 characters", nil)
	}

	status := input.Status
	if status == "" {
		status = domain.TicketStatusOpen
	}
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": status})
	}
	importance := input.Importance
	if importance == "" {
		importance = domain.TicketImportanceMinor
	}
	if !importance.IsValid() {
		return nil, apperrors.NewValidationError("invalid importance", map[string]any{"importance": importance})
	}

	ticket := &domain.Ticket{
		ID:          NewTicketID(),
		Title:       title,
		Description: description,
		Status:      status,
		Importance:  importance,
		AssigneeID:  input.AssigneeID,
		CreatorID:   input.CreatorID,
	}

	threadID, err := s.platform.CreateTicketThread(ctx, input.ChannelID, ThreadName(ticket.ID, title))
	if err != nil {
		return nil, apperrors.NewPlatformError("thread creation", err)
	}
	ticket.ThreadID = threadID

	messageID, err := s.platform.PostTicketMessage(ctx, ticket)
	if err != nil {
		return nil, apperrors.NewPlatformError("message post", err)
	}
	ticket.MessageID = messageID

	if err := s.tickets.Create(ctx, ticket); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return nil, apperrors.NewDuplicateID(ticket.ID)
		}
		return nil, apperrors.NewPlatformError("store write", err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		ActorID:  input.CreatorID,
		Payload: events.TicketCreatedPayload{
			Title:      ticket.Title,
			Status:     ticket.Status,
			Importance: ticket.Importance,
			ThreadID:   ticket.ThreadID,
		},
	})
	return ticket, nil
}

// GetTicket fetches a single ticket.
func (s *TicketService) GetTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return ticket, nil
}

// ListTickets returns up to limit tickets, most-recently-created first,
// along with the total store count.
func (s *TicketService) ListTickets(ctx context.Context, limit int) ([]domain.Ticket, int, error) {
	tickets, err := s.tickets.List(ctx, limit)
	if err != nil {
		return nil, 0, apperrors.NewPlatformError("store read", err)
	}
	total, err := s.tickets.Count(ctx)
	if err != nil {
		return nil, 0, apperrors.NewPlatformError("store read", err)
	}
	return tickets, total, nil
}

// RequestDelete authorizes a deletion request. Only the creator or an
// administrator may delete a ticket; the actual removal is deferred to
// ConfirmDelete.
func (s *TicketService) RequestDelete(ctx context.Context, id, requesterID string, requesterIsAdmin bool) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if ticket.CreatorID != requesterID && !requesterIsAdmin {
		return nil, apperrors.NewForbidden("you can only delete tickets you created")
	}
	return ticket, nil
}

// Assign sets the assignee and refreshes the rendered message.
func (s *TicketService) Assign(ctx context.Context, id, assigneeID, actorID string) (*domain.Ticket, error) {
	ticket, err := s.applyPatch(ctx, id, domain.TicketPatch{AssigneeID: &assigneeID})
	if err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketAssigned,
		TicketID: ticket.ID,
		ActorID:  actorID,
		Payload:  events.TicketAssignedPayload{AssigneeID: assigneeID},
	})
	return ticket, nil
}

// SetStatus changes the status and refreshes the rendered message.
func (s *TicketService) SetStatus(ctx context.Context, id string, status domain.TicketStatus, actorID string) (*domain.Ticket, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": status})
	}
	before, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	ticket, err := s.applyPatch(ctx, id, domain.TicketPatch{Status: &status})
	if err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticket.ID,
		ActorID:  actorID,
		Payload: events.TicketStatusChangedPayload{
			OldStatus: before.Status,
			NewStatus: ticket.Status,
		},
	})
	return ticket, nil
}

// SetImportance changes the importance and refreshes the rendered message.
func (s *TicketService) SetImportance(ctx context.Context, id string, importance domain.TicketImportance, actorID string) (*domain.Ticket, error) {
	if !importance.IsValid() {
		return nil, apperrors.NewValidationError("invalid importance", map[string]any{"importance": importance})
	}
	before, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	ticket, err := s.applyPatch(ctx, id, domain.TicketPatch{Importance: &importance})
	if err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketImportanceChanged,
		TicketID: ticket.ID,
		ActorID:  actorID,
		Payload: events.TicketImportanceChangedPayload{
			OldImportance: before.Importance,
			NewImportance: ticket.Importance,
		},
	})
	return ticket, nil
}

// ConfirmDelete removes the ticket record and best-effort deletes its thread.
// Thread deletion failure is logged as non-critical cleanup; the ticket is
// already gone from the system of record.
func (s *TicketService) ConfirmDelete(ctx context.Context, id, actorID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if err := s.tickets.Delete(ctx, id); err != nil {
		return nil, mapStoreError(err)
	}

	if err := s.platform.DeleteThread(ctx, ticket.ThreadID, "Ticket deleted by user"); err != nil {
		nonCritical := apperrors.NewNonCritical("thread deletion", err)
		s.logger.Warn("ticket thread could not be deleted",
			zap.String("ticket_id", ticket.ID),
			zap.String("thread_id", ticket.ThreadID),
			zap.Error(nonCritical))
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketDeleted,
		TicketID: ticket.ID,
		ActorID:  actorID,
		Payload: events.TicketDeletedPayload{
			Title:    ticket.Title,
			ThreadID: ticket.ThreadID,
		},
	})
	return ticket, nil
}

// applyPatch writes the partial update and re-renders the thread message in
// place. A failed edit leaves the store mutated; the message is a derived
// view and catches up on the next successful render.
func (s *TicketService) applyPatch(ctx context.Context, id string, patch domain.TicketPatch) (*domain.Ticket, error) {
	ticket, err := s.tickets.Update(ctx, id, patch)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if err := s.platform.EditTicketMessage(ctx, ticket); err != nil {
		return nil, apperrors.NewPlatformError("message edit", err)
	}
	return ticket, nil
}

func mapStoreError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound("ticket", nil)
	}
	return apperrors.NewPlatformError("store operation", err)
}

var (
	idMu   sync.Mutex
	lastID int64
)

// NewTicketID generates a time-derived base36 identifier. IDs are forced
// strictly increasing so back-to-back creations inside one millisecond
// cannot collide.
func NewTicketID() string {
	idMu.Lock()
	defer idMu.Unlock()
	now := time.Now().UnixMilli()
	if now <= lastID {
		now = lastID + 1
	}
	lastID = now
	return strings.ToUpper(strconv.FormatInt(now, 36))
}

// ThreadName builds the thread title for a ticket: the id plus a sanitized
// slice of the title.
func ThreadName(id, title string) string {
	truncated := title
	if len(truncated) > threadNameTitleChars {
		truncated = truncated[:threadNameTitleChars]
	}
	sanitized := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '-'
	}, truncated)
	return id + "-" + sanitized
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
