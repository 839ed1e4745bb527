//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestArea(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	areaID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO areas (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING",
		areaID, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM areas WHERE name = $1", name).Scan(&areaID)
	}

	return areaID
}

// AttractionFixture describes one attraction row for booking tests.
type AttractionFixture struct {
	Name              string
	Kind              string
	OpenMinute        int
	CloseMinute       int
	SlotMinutes       int
	TicketsPerDay     int
	SupportsFastRider bool
}

func CreateTestAttraction(t *testing.T, db DBLike, areaID uuid.UUID, f AttractionFixture) uuid.UUID {
	t.Helper()

	if f.Kind == "" {
		f.Kind = "Ride"
	}

	attractionID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO attractions
			(id, name, area_id, kind, wait_time_min, rating, open_minute, close_minute, slot_minutes, tickets_per_day, supports_fastrider)
		VALUES ($1, $2, $3, $4, 15, 4.2, $5, $6, $7, $8, $9)
		ON CONFLICT (name) DO NOTHING`,
		attractionID, f.Name, areaID, f.Kind,
		f.OpenMinute, f.CloseMinute, f.SlotMinutes, f.TicketsPerDay, f.SupportsFastRider)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM attractions WHERE name = $1", f.Name).Scan(&attractionID)
	}

	return attractionID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables so each test starts from an empty park
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
