package readstore

import (
	"context"
	"errors"
	"time"

	"fastrider/internal/domain/ticket"
	"fastrider/internal/infra"
	dbpkg "fastrider/internal/infra/db"
	"fastrider/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TicketReadStore struct {
	db dbpkg.DBTX
}

func NewTicketReadStore(db dbpkg.DBTX) *TicketReadStore {
	return &TicketReadStore{db: db}
}

// FindActiveByUser returns the active ticket joined with its attraction name.
// Absence is reported as KindNotFound; the query layer maps it to "no ticket".
func (r *TicketReadStore) FindActiveByUser(ctx context.Context, userID uuid.UUID, now time.Time) (*queries.TicketView, error) {
	const query = `
SELECT t.id, t.user_id, t.attraction_id, a.name, t.slot_start, t.slot_end, t.created_at, t.cancelled_at
FROM fastrider_tickets t
JOIN attractions a ON a.id = t.attraction_id
WHERE t.user_id = $1
  AND t.cancelled_at IS NULL
  AND t.slot_end > $2
ORDER BY t.slot_start
LIMIT 1`

	var (
		view        queries.TicketView
		cancelledAt *time.Time
	)
	err := r.db.QueryRow(ctx, query, userID, now).Scan(
		&view.ID, &view.UserID, &view.AttractionID, &view.AttractionName,
		&view.SlotStart, &view.SlotEnd, &view.CreatedAt, &cancelledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("active ticket not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active ticket", err)
	}

	view.CancelledAt = cancelledAt
	view.Status = string(ticket.StatusActive) // the predicate above admits active rows only
	return &view, nil
}
