package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"twitterclone/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

type userRepository struct {
	db *sqlx.DB
}

type CreateUserRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"`
}

type UpdateProfileRequest struct {
	Name        *string `json:"name"`
	DateOfBirth *string `json:"dateOfBirth"`
	Bio         *string `json:"bio"`
	Location    *string `json:"location"`
	Website     *string `json:"website"`
	Avatar      *string `json:"avatar"`
	CoverPhoto  *string `json:"coverPhoto"`
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	// create password hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	if user.UserID == "" {
		user.UserID = uuid.New().String()
	}
	user.PasswordHash = string(hashedPassword)

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (user_id, email, name, password_hash, date_of_birth, bio, location, website,
			avatar, cover_photo, email_verify_token, forgot_password_token, verify, created_at, updated_at)
		VALUES (:user_id, :email, :name, :password_hash, :date_of_birth, :bio, :location, :website,
			:avatar, :cover_photo, :email_verify_token, :forgot_password_token, :verify, :created_at, :updated_at)
	`

	_, err = r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NewNotFoundError("Пользователь не найден")
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NewNotFoundError("Пользователь не найден")
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по email: %w", err)
	}

	return &user, nil
}

func (r *userRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	user, err := r.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// checking that the password hash is the same
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, fmt.Errorf("неверный пароль")
	}

	return user, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*models.User, error) {
	setParts := []string{"updated_at = now()"}
	args := []interface{}{userID}

	addPart := func(column string, value interface{}) {
		args = append(args, value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Name != nil {
		addPart("name", *req.Name)
	}
	if req.DateOfBirth != nil {
		addPart("date_of_birth", *req.DateOfBirth)
	}
	if req.Bio != nil {
		addPart("bio", *req.Bio)
	}
	if req.Location != nil {
		addPart("location", *req.Location)
	}
	if req.Website != nil {
		addPart("website", *req.Website)
	}
	if req.Avatar != nil {
		addPart("avatar", *req.Avatar)
	}
	if req.CoverPhoto != nil {
		addPart("cover_photo", *req.CoverPhoto)
	}

	query := fmt.Sprintf(`
		UPDATE users SET %s
		WHERE user_id = $1
		RETURNING *
	`, strings.Join(setParts, ", "))

	var user models.User
	err := r.db.GetContext(ctx, &user, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NewNotFoundError("Пользователь не найден")
		}
		return nil, fmt.Errorf("ошибка при обновлении профиля: %w", err)
	}

	return &user, nil
}

func (r *userRepository) UpdateEmailVerifyToken(ctx context.Context, userID, token string) error {
	query := `
		UPDATE users
		SET email_verify_token = $1, updated_at = now()
		WHERE user_id = $2
	`

	_, err := r.db.ExecContext(ctx, query, token, userID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении email verify token: %w", err)
	}

	return nil
}

func (r *userRepository) ConfirmEmailVerify(ctx context.Context, userID string) error {
	query := `
		UPDATE users
		SET email_verify_token = '', verify = $1, updated_at = now()
		WHERE user_id = $2
	`

	_, err := r.db.ExecContext(ctx, query, models.VerifyStatusVerified, userID)
	if err != nil {
		return fmt.Errorf("ошибка при подтверждении email: %w", err)
	}

	return nil
}

func (r *userRepository) UpdateForgotPasswordToken(ctx context.Context, userID, token string) error {
	query := `
		UPDATE users
		SET forgot_password_token = $1, updated_at = now()
		WHERE user_id = $2
	`

	_, err := r.db.ExecContext(ctx, query, token, userID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении forgot password token: %w", err)
	}

	return nil
}

func (r *userRepository) ResetPassword(ctx context.Context, userID, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка при хешировании пароля: %w", err)
	}

	query := `
		UPDATE users
		SET password_hash = $1, forgot_password_token = '', updated_at = now()
		WHERE user_id = $2
	`

	_, err = r.db.ExecContext(ctx, query, string(hashedPassword), userID)
	if err != nil {
		return fmt.Errorf("ошибка при сбросе пароля: %w", err)
	}

	return nil
}

func (r *userRepository) GetCircleMemberIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string

	query := `SELECT member_id FROM twitter_circle WHERE user_id = $1`

	err := r.db.SelectContext(ctx, &ids, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении circle: %w", err)
	}

	return ids, nil
}

func (r *userRepository) ExistAll(ctx context.Context, userIDs []string) (bool, error) {
	// упоминания могут повторяться, COUNT(*) считает каждую строку один раз
	unique := make([]string, 0, len(userIDs))
	seen := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	if len(unique) == 0 {
		return true, nil
	}

	var count int
	query := `SELECT COUNT(*) FROM users WHERE user_id = ANY($1::uuid[])`

	err := r.db.GetContext(ctx, &count, query, pq.Array(unique))
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке пользователей: %w", err)
	}

	return count == len(unique), nil
}
