package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gigslk_backend/internal/auth"
	"gigslk_backend/internal/repositories"
	"gigslk_backend/internal/services/dto"
	"gigslk_backend/pkg/apperrors"
)

func newAuthService() AuthService {
	return NewAuthService(repositories.NewUserRepository(), repositories.NewProfileRepository())
}

func TestRegisterCreatesUserAndProfile(t *testing.T) {
	db, mock := newTestDB(t)
	svc := newAuthService()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WithArgs("new@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("user-1", time.Now()))
	mock.ExpectQuery(`INSERT INTO "performer_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("profile-1", time.Now()))
	mock.ExpectCommit()

	resp, err := svc.Register(db, &dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "secret1",
		Username: "newbie",
		Role:     "performer",
	})

	require.NoError(t, err)
	assert.Equal(t, "User registered successfully!", resp.Message)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "performer", resp.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db, mock := newTestDB(t)
	svc := newAuthService()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WithArgs("taken@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := svc.Register(db, &dto.RegisterRequest{
		Email:    "taken@example.com",
		Password: "secret1",
		Username: "taken",
		Role:     "host",
	})

	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterRejectsInvalidRole(t *testing.T) {
	db, _ := newTestDB(t)
	svc := newAuthService()

	_, err := svc.Register(db, &dto.RegisterRequest{
		Email:    "admin@example.com",
		Password: "secret1",
		Username: "sneaky",
		Role:     "admin",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestLoginUnknownEmailAndWrongPasswordLookTheSame(t *testing.T) {
	require.NoError(t, auth.Init("test-secret", 60))

	db, mock := newTestDB(t)
	svc := newAuthService()

	// Unknown email
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, errUnknown := svc.Login(db, &dto.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)

	// Known email, wrong password
	hash, err := auth.HashPassword("the-right-one")
	require.NoError(t, err)
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow("user-1", time.Now(), time.Now(), "real@example.com", "real", hash, "host"))

	_, errWrong := svc.Login(db, &dto.LoginRequest{Email: "real@example.com", Password: "the-wrong-one"})
	assert.ErrorIs(t, errWrong, apperrors.ErrInvalidCredentials)

	assert.Equal(t, errUnknown, errWrong)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// The unknown-email path verifies against loginDummyHash so both failure
// causes cost a bcrypt comparison. A malformed hash would make that
// comparison exit early, so it must stay parseable.
func TestLoginDummyHashIsWellFormed(t *testing.T) {
	t.Parallel()

	cost, err := bcrypt.Cost([]byte(loginDummyHash))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cost, bcrypt.DefaultCost)
	assert.False(t, auth.CheckPasswordHash("whatever", loginDummyHash))
}

func TestLoginSuccessIssuesToken(t *testing.T) {
	require.NoError(t, auth.Init("test-secret", 60))

	db, mock := newTestDB(t)
	svc := newAuthService()

	hash, err := auth.HashPassword("the-right-one")
	require.NoError(t, err)
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow("user-1", time.Now(), time.Now(), "real@example.com", "real", hash, "host"))

	resp, err := svc.Login(db, &dto.LoginRequest{Email: "real@example.com", Password: "the-right-one"})

	require.NoError(t, err)
	assert.Equal(t, "Login successful!", resp.Message)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "user-1", resp.User.ID)
	assert.Equal(t, "host", resp.User.Role)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
