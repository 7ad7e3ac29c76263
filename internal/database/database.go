package database

import (
	"log"
	"strings"

	"mesareserva/internal/domain"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// registers the cgo-free "sqlite" database/sql driver
	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates the schema and the overbooking backstop index.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Restaurant{},
		&domain.Table{},
		&domain.Reservation{},
	); err != nil {
		return err
	}

	// Second line of defense behind the transactional conflict check: two
	// non-cancelled reservations can never share the exact same slot on a
	// table, even if concurrent requests slip past the window query.
	// Partial index syntax is shared by postgres and sqlite.
	return db.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_reservations_table_slot
ON reservations (table_id, reservation_date)
WHERE status <> 'cancelled' AND deleted_at IS NULL
`).Error
}
