package repository

import (
	"context"
	"errors"
	"hash/fnv"
	"time"

	"fastrider/internal/domain/ticket"
	"fastrider/internal/infra"
	dbpkg "fastrider/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TicketRepository is the authoritative capacity ledger. Slots are derived
// and have no row of their own, so serialization uses transaction-scoped
// advisory locks on derived keys instead of a FOR UPDATE row lock.
type TicketRepository struct {
	db dbpkg.DBTX
}

func NewTicketRepository(db dbpkg.DBTX) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) LockUser(ctx context.Context, userID uuid.UUID) error {
	if err := r.acquireLock(ctx, advisoryKey("fastrider:user:"+userID.String())); err != nil {
		return infra.WrapRepoErr("failed to acquire user lock", err)
	}
	return nil
}

func (r *TicketRepository) LockSlot(ctx context.Context, attractionID uuid.UUID, slotStart time.Time) error {
	key := advisoryKey("fastrider:slot:" + attractionID.String() + ":" + slotStart.UTC().Format(time.RFC3339))
	if err := r.acquireLock(ctx, key); err != nil {
		return infra.WrapRepoErr("failed to acquire slot lock", err)
	}
	return nil
}

// acquireLock blocks until the key is free; the lock releases at commit or
// rollback of the enclosing transaction.
func (r *TicketRepository) acquireLock(ctx context.Context, key int64) error {
	_, err := r.db.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", key)
	return err
}

func (r *TicketRepository) CountActiveAt(ctx context.Context, attractionID uuid.UUID, at time.Time) (int, error) {
	const query = `
SELECT COUNT(*)
FROM fastrider_tickets
WHERE attraction_id = $1
  AND cancelled_at IS NULL
  AND slot_start <= $2
  AND slot_end > $2`

	var count int
	if err := r.db.QueryRow(ctx, query, attractionID, at).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count active tickets", err)
	}
	return count, nil
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) (uuid.UUID, error) {
	const stmt = `
INSERT INTO fastrider_tickets (id, user_id, attraction_id, slot_start, slot_end, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, stmt,
		t.ID(),
		t.UserID(),
		t.AttractionID(),
		t.SlotStart(),
		t.SlotEnd(),
		t.CreatedAt(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create ticket", err)
	}
	return t.ID(), nil
}

func (r *TicketRepository) FindActiveByUserForUpdate(ctx context.Context, userID uuid.UUID, now time.Time) (*ticket.Ticket, error) {
	const query = `
SELECT id, user_id, attraction_id, slot_start, slot_end, created_at, cancelled_at
FROM fastrider_tickets
WHERE user_id = $1
  AND cancelled_at IS NULL
  AND slot_end > $2
ORDER BY slot_start
LIMIT 1
FOR UPDATE`

	var (
		id, uid, aid       uuid.UUID
		slotStart, slotEnd time.Time
		createdAt          time.Time
		cancelledAt        *time.Time
	)
	err := r.db.QueryRow(ctx, query, userID, now).
		Scan(&id, &uid, &aid, &slotStart, &slotEnd, &createdAt, &cancelledAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find active ticket", err)
	}

	return ticket.ReconstructTicket(id, uid, aid, slotStart, slotEnd, createdAt, cancelledAt), nil
}

func (r *TicketRepository) MarkCancelled(ctx context.Context, id uuid.UUID, at time.Time) error {
	const stmt = `
UPDATE fastrider_tickets
SET cancelled_at = $2
WHERE id = $1
  AND cancelled_at IS NULL`

	tag, err := r.db.Exec(ctx, stmt, id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel ticket", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ticket already cancelled or missing", nil, infra.KindNotFound)
	}
	return nil
}

func advisoryKey(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	// #nosec G115 -- advisory lock keys only need determinism, not sign
	return int64(h.Sum64())
}
