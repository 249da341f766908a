package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/ff-to-go/internal/logger"
	"github.com/MKhiriev/ff-to-go/migrations"
	"github.com/MKhiriev/ff-to-go/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

func newTestUserRepo(t *testing.T, dialect string) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, dialect: dialect, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, migrations.DialectPostgres)
	defer db.Close()

	ctx := context.Background()
	user := models.User{FirstName: "Bret", LastName: "Taylor", Email: "bret@example.com", Password: "sha1|x|y"}

	now := time.Now()
	rows := sqlmock.NewRows([]string{"user_id", "created_at", "modified_at"}).AddRow(1, now, now)

	mock.ExpectQuery(`INSERT INTO users \(first_name,last_name,email,password\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING user_id`).
		WithArgs(user.FirstName, user.LastName, user.Email, user.Password).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
	if !created.CreatedAt.Equal(now) {
		t.Errorf("expected CreatedAt %v, got %v", now, created.CreatedAt)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_SQLitePlaceholders(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, migrations.DialectSQLite)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"user_id", "created_at", "modified_at"}).AddRow(7, time.Now(), time.Now())
	mock.ExpectQuery(`INSERT INTO users \(first_name,last_name,email,password\) VALUES \(\?,\?,\?,\?\)`).
		WillReturnRows(rows)

	created, err := repo.CreateUser(context.Background(), models.User{Email: "a@b.cd"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", created.UserID)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
		err     error
	}{
		{"postgres", migrations.DialectPostgres, pgError(pgerrcode.UniqueViolation)},
		{"sqlite", migrations.DialectSQLite, sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestUserRepo(t, tt.dialect)
			defer db.Close()

			mock.ExpectQuery("INSERT INTO users").WillReturnError(tt.err)

			_, err := repo.CreateUser(context.Background(), models.User{Email: "bret@example.com"})
			if !errors.Is(err, ErrEmailAlreadyExists) {
				t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
			}
		})
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, migrations.DialectPostgres)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "bret@example.com"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, migrations.DialectPostgres)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(userColumns).
		AddRow(1, "Bret", "Taylor", "bret@example.com", "sha1|x|y", now, now, now)

	mock.ExpectQuery(`SELECT user_id, first_name, last_name, email, password, last_login, created_at, modified_at FROM users WHERE email = \$1`).
		WithArgs("bret@example.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(context.Background(), "bret@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 1 || found.FirstName != "Bret" || found.Password != "sha1|x|y" {
		t.Errorf("unexpected user: %+v", found)
	}
	if found.LastLogin == nil || !found.LastLogin.Equal(now) {
		t.Errorf("expected LastLogin %v, got %v", now, found.LastLogin)
	}
}

func TestFindUserByID_NullLastLogin(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, migrations.DialectSQLite)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(userColumns).
		AddRow(3, "Paul", "B", "paul@example.com", "h", nil, now, now)

	mock.ExpectQuery(`FROM users WHERE user_id = \?`).
		WithArgs(int64(3)).
		WillReturnRows(rows)

	found, err := repo.FindUserByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.LastLogin != nil {
		t.Errorf("expected nil LastLogin, got %v", found.LastLogin)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, migrations.DialectPostgres)
	defer db.Close()

	mock.ExpectQuery("SELECT user_id").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByEmail_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, migrations.DialectPostgres)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"user_id"}).AddRow(1) // wrong shape
	mock.ExpectQuery("SELECT user_id").WillReturnRows(rows)

	_, err := repo.FindUserByEmail(context.Background(), "bret@example.com")
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestUpdateLastLogin(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, migrations.DialectPostgres)
	defer db.Close()

	at := time.Now()
	mock.ExpectExec(`UPDATE users SET last_login = \$1, modified_at = \$2 WHERE user_id = \$3`).
		WithArgs(at, sqlmock.AnyArg(), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateLastLogin(context.Background(), 1, at); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdatePassword_NoRows(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, migrations.DialectPostgres)
	defer db.Close()

	mock.ExpectExec(`UPDATE users SET password = \$1`).
		WithArgs("argon2id|h|s", sqlmock.AnyArg(), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePassword(context.Background(), 99, "argon2id|h|s")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestUpdatePassword_ExecError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, migrations.DialectPostgres)
	defer db.Close()

	mock.ExpectExec("UPDATE users").WillReturnError(errors.New("boom"))

	err := repo.UpdatePassword(context.Background(), 1, "x")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestIsPostgresDSN(t *testing.T) {
	for dsn, want := range map[string]bool{
		"postgres://u:p@localhost/db":   true,
		"postgresql://u:p@localhost/db": true,
		"fftogo.db":                     false,
		"file:test.db?cache=shared":     false,
	} {
		if got := isPostgresDSN(dsn); got != want {
			t.Errorf("isPostgresDSN(%q) = %v, want %v", dsn, got, want)
		}
	}
}
