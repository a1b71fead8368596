package services

import (
	"context"

	"github.com/akuntansi-app/akuntansi-backend/internal/core/domain"
	"github.com/akuntansi-app/akuntansi-backend/internal/dto"
)

// JournalSvcFacade exposes balanced journal entry operations to handlers.
// One implementation serves both the general and the adjusting variant.
type JournalSvcFacade interface {
	// Kind reports which journal variant this facade operates on.
	Kind() domain.JournalKind

	CreateJournal(ctx context.Context, req dto.CreateJournalRequest) (*domain.JournalEntry, error)
	GetJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error)
	ListJournals(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error)
	UpdateJournal(ctx context.Context, journalID string, req dto.UpdateJournalRequest) (*domain.JournalEntry, error)
	DeleteJournal(ctx context.Context, journalID string) (*domain.JournalEntry, error)
}
