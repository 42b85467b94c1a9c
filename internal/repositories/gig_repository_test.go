package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestFindWithFilterAppliesAllPredicates(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGigRepository()

	minPrice := 100.0
	maxPrice := 500.0

	mock.ExpectQuery(`SELECT gigs\.\*, host_profiles\.company_organization, host_profiles\.profile_picture_url, users\.username FROM "gigs" JOIN host_profiles ON gigs\.host_id = host_profiles\.id JOIN users ON host_profiles\.user_id = users\.id WHERE \(gigs\.title ILIKE \$1 OR gigs\.description ILIKE \$2 OR gigs\.requirements::text ILIKE \$3\) AND gigs\.event_location ILIKE \$4 AND gigs\.performance_type ILIKE \$5 AND gigs\.budget_max >= \$6 AND gigs\.budget_min <= \$7 ORDER BY gigs\.created_at DESC`).
		WithArgs("%beach%", "%beach%", "%beach%", "%colombo%", "%dj%", minPrice, maxPrice).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "host_id", "title", "company_organization", "username"}).
			AddRow("gig-1", time.Now(), "host-profile-1", "Beach Party", "VenueCorp", "venuecorp"))

	listings, err := repo.FindWithFilter(db, GigFilter{
		Search:    "beach",
		Location:  "colombo",
		EventType: "dj",
		MinPrice:  &minPrice,
		MaxPrice:  &maxPrice,
	})

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Beach Party", listings[0].Title)
	assert.Equal(t, "VenueCorp", listings[0].CompanyOrganization)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindWithFilterNoPredicates(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGigRepository()

	mock.ExpectQuery(`SELECT gigs\.\*, (.+) FROM "gigs" JOIN host_profiles (.+) ORDER BY gigs\.created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

	listings, err := repo.FindWithFilter(db, GigFilter{})

	require.NoError(t, err)
	assert.Empty(t, listings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindListingByIDNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGigRepository()

	// Take appends LIMIT, so the query carries the id and the limit value.
	mock.ExpectQuery(`SELECT gigs\.\*, (.+) WHERE gigs\.id = \$1`).
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindListingByID(db, "missing")

	assert.ErrorIs(t, err, ErrGigNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
