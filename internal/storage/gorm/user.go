package gorm

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"diagramadoria/internal/domain"
	"diagramadoria/internal/logger"
	"diagramadoria/internal/storage"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository создаёт новый репозиторий пользователей
func NewUserRepository(db *gorm.DB) storage.UserRepository {
	return &userRepository{db: db}
}

// GetByID возвращает пользователя по ID
func (r *userRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	requestID := logger.GetRequestID(ctx)

	var dbUser User
	result := r.db.WithContext(ctx).First(&dbUser, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Warn().
				Str("request_id", requestID).
				Str("layer", "storage").
				Int("user_id", id).
				Msg("user not found")
			return nil, storage.ErrNotFound
		}
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Int("user_id", id).
			Msg("error fetching user")
		return nil, result.Error
	}

	return toDomainUser(&dbUser), nil
}

// GetByEmail возвращает пользователя по email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	requestID := logger.GetRequestID(ctx)

	var dbUser User
	result := r.db.WithContext(ctx).First(&dbUser, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Warn().
				Str("request_id", requestID).
				Str("layer", "storage").
				Str("email", email).
				Msg("user not found by email")
			return nil, storage.ErrNotFound
		}
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Str("email", email).
			Msg("error fetching user by email")
		return nil, result.Error
	}

	return toDomainUser(&dbUser), nil
}

func toDomainUser(dbUser *User) *domain.User {
	return &domain.User{
		ID:    dbUser.ID,
		Name:  dbUser.Name,
		Email: dbUser.Email,
		Role:  domain.Role(dbUser.Role),
	}
}
