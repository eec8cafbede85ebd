package gorm

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"diagramadoria/internal/domain"
	"diagramadoria/internal/logger"
	"diagramadoria/internal/storage"
)

type projectAccessRepository struct {
	db *gorm.DB
}

// NewProjectAccessRepository создаёт новый репозиторий доступов к проектам
func NewProjectAccessRepository(db *gorm.DB) storage.ProjectAccessRepository {
	return &projectAccessRepository{db: db}
}

// GetAccess возвращает запись доступа пользователя к проекту с именем уровня
func (r *projectAccessRepository) GetAccess(ctx context.Context, userID, projectID int) (*domain.ProjectAccess, error) {
	requestID := logger.GetRequestID(ctx)

	var row struct {
		UserID         int
		ProjectID      int
		PermissionID   int
		PermissionName string
	}
	result := r.db.WithContext(ctx).
		Table("project_access").
		Select("project_access.user_id, project_access.project_id, project_access.permission_id, permissions.name as permission_name").
		Joins("JOIN permissions ON permissions.id = project_access.permission_id").
		Where("project_access.user_id = ? AND project_access.project_id = ?", userID, projectID).
		Take(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Warn().
				Str("request_id", requestID).
				Str("layer", "storage").
				Int("user_id", userID).
				Int("project_id", projectID).
				Msg("project access not found")
			return nil, storage.ErrNotFound
		}
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Int("user_id", userID).
			Int("project_id", projectID).
			Msg("error fetching project access")
		return nil, result.Error
	}

	return &domain.ProjectAccess{
		UserID:       row.UserID,
		ProjectID:    row.ProjectID,
		PermissionID: row.PermissionID,
		Permission:   row.PermissionName,
	}, nil
}

// CreateAccess создаёт запись доступа с указанным уровнем
func (r *projectAccessRepository) CreateAccess(ctx context.Context, userID, projectID, permissionID int) error {
	requestID := logger.GetRequestID(ctx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Int("user_id", userID).
		Int("project_id", projectID).
		Int("permission_id", permissionID).
		Msg("creating project access")

	access := &ProjectAccess{
		UserID:       userID,
		ProjectID:    projectID,
		PermissionID: permissionID,
	}

	result := r.db.WithContext(ctx).Create(access)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == storage.UniqueViolation {
			log.Warn().
				Str("request_id", requestID).
				Str("layer", "storage").
				Int("user_id", userID).
				Int("project_id", projectID).
				Msg("project access already exists")
			return storage.ErrAlreadyExists
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return storage.ErrAlreadyExists
		}
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Int("user_id", userID).
			Int("project_id", projectID).
			Msg("error creating project access")
		return result.Error
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Int("user_id", userID).
		Int("project_id", projectID).
		Msg("successfully created project access")

	return nil
}

type permissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository создаёт новый репозиторий каталога уровней доступа
func NewPermissionRepository(db *gorm.DB) storage.PermissionRepository {
	return &permissionRepository{db: db}
}

// FindByName возвращает уровень доступа по точному имени
func (r *permissionRepository) FindByName(ctx context.Context, name string) (*domain.Permission, error) {
	var dbPerm Permission
	result := r.db.WithContext(ctx).First(&dbPerm, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		log.Error().
			Err(result.Error).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Str("name", name).
			Msg("error fetching permission")
		return nil, result.Error
	}

	return &domain.Permission{ID: dbPerm.ID, Name: dbPerm.Name}, nil
}

// FindViewLevel ищет уровень "вид" по эвристике имён, когда точное имя
// в каталоге отсутствует. Наследие исходных данных: каталог исторически
// заполнялся руками и имя уровня могло отличаться.
func (r *permissionRepository) FindViewLevel(ctx context.Context) (*domain.Permission, error) {
	var dbPerm Permission
	result := r.db.WithContext(ctx).
		Where("name ILIKE ? OR name ILIKE ? OR name ILIKE ?", "%vista%", "%view%", "%solo lectura%").
		First(&dbPerm)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		log.Error().
			Err(result.Error).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Msg("error searching for view permission level")
		return nil, result.Error
	}

	return &domain.Permission{ID: dbPerm.ID, Name: dbPerm.Name}, nil
}
