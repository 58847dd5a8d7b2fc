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

// CreateTestVehicle inserts an available car and returns its id.
func CreateTestVehicle(t *testing.T, db DBLike, name, registration string) uuid.UUID {
	t.Helper()

	vehicleID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO cars (id, name, make, model, year, category, transmission, fuel_type, seats, daily_rate_cents, registration)
		VALUES ($1, $2, 'Ford', 'Transit', 2023, 'van', 'manual', 'diesel', 3, 6500, $3)
		ON CONFLICT (registration) DO NOTHING`,
		vehicleID, name, registration)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM cars WHERE registration = $1", registration).Scan(&vehicleID)
	}

	return vehicleID
}

// CreateTestBooking inserts a live rent booking for a signed-in customer.
func CreateTestBooking(t *testing.T, db DBLike, vehicleID, userID uuid.UUID, pickup, dropoff time.Time, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO bookings (id, reference, car_id, user_id, pickup_location, dropoff_location,
			pickup_date, dropoff_date, pickup_time, dropoff_time, total_amount_cents, status, booking_type)
		VALUES ($1, $2, $3, $4, 'Depot', 'Depot', $5, $6, '09:00', '17:00', 10000, $7, 'rent')`,
		bookingID, "BK-"+strings.ToUpper(bookingID.String()[:8]), vehicleID, userID, pickup, dropoff, status)
	require.NoError(t, err)

	return bookingID
}

func CountBookings(t *testing.T, db DBLike, vehicleID uuid.UUID, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE car_id = $1 AND status = $2", vehicleID, status).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO cars (name, make, model, year, category, transmission, fuel_type, seats, daily_rate_cents, registration) VALUES
		    ('Ford Transit Custom', 'Ford', 'Transit Custom', 2023, 'van', 'manual', 'diesel', 3, 6500, 'SEED001'),
		    ('Toyota Prius', 'Toyota', 'Prius', 2022, 'pco', 'automatic', 'hybrid', 5, 4500, 'SEED002')
		ON CONFLICT (registration) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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

	return SeedReferenceData(pool)
}
