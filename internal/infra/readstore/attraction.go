package readstore

import (
	"context"
	"errors"

	"fastrider/internal/infra"
	dbpkg "fastrider/internal/infra/db"
	"fastrider/internal/usecase/queries"
	"fastrider/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AttractionReadStore reads the catalog collaborator's attraction
// configuration. This service never writes these rows.
type AttractionReadStore struct {
	db dbpkg.DBTX
}

func NewAttractionReadStore(db dbpkg.DBTX) *AttractionReadStore {
	return &AttractionReadStore{db: db}
}

func (r *AttractionReadStore) ListFastRiderEligible(ctx context.Context) ([]*queries.AttractionView, error) {
	const query = `
SELECT id, name, area_id, kind, wait_time_min, rating, slot_minutes, tickets_per_day, supports_fastrider
FROM attractions
WHERE supports_fastrider = true
ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list attractions", err)
	}
	defer rows.Close()

	var result []*queries.AttractionView
	for rows.Next() {
		var v queries.AttractionView
		if err := rows.Scan(
			&v.ID, &v.Name, &v.AreaID, &v.Kind, &v.WaitTimeMin, &v.Rating,
			&v.SlotMinutes, &v.TicketsPerDay, &v.SupportsFastRider,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan attraction row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read attraction rows", err)
	}

	return result, nil
}

func (r *AttractionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.AttractionSnapshot, error) {
	const query = `
SELECT id, name, open_minute, close_minute, slot_minutes, tickets_per_day, supports_fastrider
FROM attractions
WHERE id = $1`

	var snap shared.AttractionSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.Name, &snap.OpenMinute, &snap.CloseMinute,
		&snap.SlotMinutes, &snap.TicketsPerDay, &snap.SupportsFastRider,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("attraction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find attraction by ID", err)
	}

	return &snap, nil
}
