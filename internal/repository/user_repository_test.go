package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"
	"twitterclone/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var userColumns = []string{
	"user_id", "email", "name", "password_hash", "date_of_birth", "bio", "location",
	"website", "avatar", "cover_photo", "email_verify_token", "forgot_password_token",
	"verify", "created_at", "updated_at",
}

func userRow(userID, email, passwordHash string, verify models.UserVerifyStatus) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).
		AddRow(userID, email, "Тест", passwordHash, time.Time{}, "", "",
			"", "", "", "", "", verify, time.Now(), time.Now())
}

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()

	email := "test@example.com"
	password := "password123"

	t.Run("Успешное создание пользователя", func(t *testing.T) {
		user := &models.User{
			Email: email,
			Name:  "Тест",
		}

		mock.ExpectExec(`
			INSERT INTO users (user_id, email, name, password_hash, date_of_birth, bio, location, website,
				avatar, cover_photo, email_verify_token, forgot_password_token, verify, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`).
			WithArgs(
				sqlmock.AnyArg(), // user_id генерируется в репозитории
				email,
				"Тест",
				sqlmock.AnyArg(), // password_hash
				sqlmock.AnyArg(),
				"", "", "", "", "", "", "",
				models.VerifyStatusUnverified,
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
			).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.CreateUser(ctx, user, password)

		assert.NoError(t, err)
		assert.NotEmpty(t, user.UserID)
		assert.NotEqual(t, password, user.PasswordHash)

		err = mock.ExpectationsWereMet()
		assert.NoError(t, err)
	})

	t.Run("Ошибка при дублировании email", func(t *testing.T) {
		user := &models.User{
			Email: email,
			Name:  "Тест",
		}

		mock.ExpectExec(`
			INSERT INTO users (user_id, email, name, password_hash, date_of_birth, bio, location, website,
				avatar, cover_photo, email_verify_token, forgot_password_token, verify, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`).
			WillReturnError(errors.New("duplicate key value violates unique constraint"))

		err := repo.CreateUser(ctx, user, password)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка при создании пользователя")
	})
}

func TestUserRepository_GetUserByID(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("Успешное получение пользователя по ID", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM users WHERE user_id = $1`).
			WithArgs(userID).
			WillReturnRows(userRow(userID, "test@example.com", "hash", models.VerifyStatusVerified))

		user, err := repo.GetUserByID(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, userID, user.UserID)
		assert.Equal(t, models.VerifyStatusVerified, user.Verify)

		err = mock.ExpectationsWereMet()
		assert.NoError(t, err)
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM users WHERE user_id = $1`).
			WithArgs(userID).
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByID(ctx, userID)

		assert.Error(t, err)
		assert.Nil(t, user)

		var statusErr *models.ErrorWithStatus
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 404, statusErr.Status)
	})
}

func TestUserRepository_VerifyPassword(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()
	email := "test@example.com"
	password := "correct_password"

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	t.Run("Успешная проверка пароля", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM users WHERE email = $1`).
			WithArgs(email).
			WillReturnRows(userRow(uuid.New().String(), email, string(hashedPassword), models.VerifyStatusVerified))

		user, err := repo.VerifyPassword(ctx, email, password)

		require.NoError(t, err)
		assert.Equal(t, email, user.Email)
	})

	t.Run("Неверный пароль", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM users WHERE email = $1`).
			WithArgs(email).
			WillReturnRows(userRow(uuid.New().String(), email, string(hashedPassword), models.VerifyStatusVerified))

		user, err := repo.VerifyPassword(ctx, email, "wrong_password")

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.Contains(t, err.Error(), "неверный пароль")
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM users WHERE email = $1`).
			WithArgs(email).
			WillReturnError(sql.ErrNoRows)

		user, err := repo.VerifyPassword(ctx, email, password)

		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()
	userID := uuid.New().String()

	t.Run("Обновляются только переданные поля", func(t *testing.T) {
		bio := "новое био"
		website := "https://example.com"

		mock.ExpectQuery(`
			UPDATE users SET updated_at = now(), bio = $2, website = $3
			WHERE user_id = $1
			RETURNING *
		`).
			WithArgs(userID, bio, website).
			WillReturnRows(userRow(userID, "test@example.com", "hash", models.VerifyStatusVerified))

		user, err := repo.UpdateProfile(ctx, userID, UpdateProfileRequest{Bio: &bio, Website: &website})

		require.NoError(t, err)
		assert.Equal(t, userID, user.UserID)

		err = mock.ExpectationsWereMet()
		assert.NoError(t, err)
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		name := "Новое имя"

		mock.ExpectQuery(`
			UPDATE users SET updated_at = now(), name = $2
			WHERE user_id = $1
			RETURNING *
		`).
			WithArgs(userID, name).
			WillReturnError(sql.ErrNoRows)

		user, err := repo.UpdateProfile(ctx, userID, UpdateProfileRequest{Name: &name})

		assert.Error(t, err)
		assert.Nil(t, user)

		var statusErr *models.ErrorWithStatus
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 404, statusErr.Status)
	})
}

func TestUserRepository_ExistAll(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()
	ids := []string{uuid.New().String(), uuid.New().String()}

	t.Run("Все пользователи существуют", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT(*) FROM users WHERE user_id = ANY($1::uuid[])`).
			WithArgs(pq.Array(ids)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		exist, err := repo.ExistAll(ctx, ids)

		require.NoError(t, err)
		assert.True(t, exist)
	})

	t.Run("Часть пользователей отсутствует", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT(*) FROM users WHERE user_id = ANY($1::uuid[])`).
			WithArgs(pq.Array(ids)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exist, err := repo.ExistAll(ctx, ids)

		require.NoError(t, err)
		assert.False(t, exist)
	})

	t.Run("Повторное упоминание пользователя не мешает проверке", func(t *testing.T) {
		withDuplicate := []string{ids[0], ids[0], ids[1]}

		mock.ExpectQuery(`SELECT COUNT(*) FROM users WHERE user_id = ANY($1::uuid[])`).
			WithArgs(pq.Array(ids)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		exist, err := repo.ExistAll(ctx, withDuplicate)

		require.NoError(t, err)
		assert.True(t, exist)
	})

	t.Run("Пустой список не ходит в БД", func(t *testing.T) {
		exist, err := repo.ExistAll(ctx, nil)

		require.NoError(t, err)
		assert.True(t, exist)
	})
}

func TestUserRepository_GetCircleMemberIDs(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()
	userID := uuid.New().String()
	memberID := uuid.New().String()

	t.Run("Участники круга", func(t *testing.T) {
		mock.ExpectQuery(`SELECT member_id FROM twitter_circle WHERE user_id = $1`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"member_id"}).AddRow(memberID))

		ids, err := repo.GetCircleMemberIDs(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, []string{memberID}, ids)
	})
}

//go test ./internal/repository/... -v
