package usecases

import (
	"context"
	"sync"

	"github.com/phonefix-inc/phonefix/internal/domain/repair"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/markdown"
)

func testLogger() logger.Interface {
	return logger.NewNopLogger()
}

func testSanitizer() TextSanitizer {
	return markdown.NewService()
}

func strPtr(s string) *string {
	return &s
}

// memoryTickets backs a mockTicketRepository with a map so a use case chain
// can be exercised end to end.
type memoryTickets struct {
	mu      sync.Mutex
	tickets map[uint]*repair.RepairTicket
}

func newMemoryTickets() (*memoryTickets, *mockTicketRepository) {
	mem := &memoryTickets{tickets: make(map[uint]*repair.RepairTicket)}
	repo := &mockTicketRepository{}
	repo.CreateFunc = func(ctx context.Context, t *repair.RepairTicket) error {
		mem.mu.Lock()
		defer mem.mu.Unlock()
		if err := t.SetID(uint(len(mem.tickets) + 1)); err != nil {
			return err
		}
		mem.tickets[t.ID()] = t
		return nil
	}
	repo.GetByIDFunc = func(ctx context.Context, id uint) (*repair.RepairTicket, error) {
		mem.mu.Lock()
		defer mem.mu.Unlock()
		t, ok := mem.tickets[id]
		if !ok {
			return nil, repair.ErrTicketNotFound
		}
		return t, nil
	}
	repo.GetByNumberFunc = func(ctx context.Context, number string) (*repair.RepairTicket, error) {
		mem.mu.Lock()
		defer mem.mu.Unlock()
		for _, t := range mem.tickets {
			if t.TicketNumber() == number {
				return t, nil
			}
		}
		return nil, repair.ErrTicketNotFound
	}
	return mem, repo
}
