package service_test

import (
	"context"
	"testing"

	"diagramadoria/internal/domain"
	"diagramadoria/internal/mocks"
	"diagramadoria/internal/service"
	"diagramadoria/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpsertGrade_CreatesNew(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockGradeRepo := mocks.NewGradeRepository(t)
	mockAccessRepo := mocks.NewProjectAccessRepository(t)

	svc := service.New(mockTxMgr)

	input := &domain.UpsertGradeInput{
		ProjectID: 42,
		Score:     18,
		MaxScore:  20,
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("AccessRepo").Return(mockAccessRepo)
			mockTx.On("GradeRepo").Return(mockGradeRepo)

			mockAccessRepo.On("GetAccess", mock.Anything, 2, 42).
				Return(&domain.ProjectAccess{UserID: 2, ProjectID: 42, Permission: domain.PermissionView}, nil)

			// Оценки для пары (проект, преподаватель) ещё нет
			mockGradeRepo.On("FindByProjectAndTeacher", mock.Anything, 42, 2).
				Return(nil, storage.ErrNotFound)

			mockGradeRepo.On("Create", mock.Anything, mock.MatchedBy(func(g *domain.Grade) bool {
				return g.ProjectID == 42 && g.TeacherID == 2 && g.Score == 18 && g.MaxScore == 20
			})).Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Grade).ID = 3
			}).Return(nil)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	result, err := svc.UpsertGrade(context.Background(), teacher, input)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, result.ID)
	assert.Equal(t, 18.0, result.Score)
}

func TestUpsertGrade_UpdatesExisting(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockGradeRepo := mocks.NewGradeRepository(t)
	mockAccessRepo := mocks.NewProjectAccessRepository(t)

	svc := service.New(mockTxMgr)

	existing := &domain.Grade{ID: 3, ProjectID: 42, TeacherID: 2, Score: 15, MaxScore: 20}

	// Setup expectations: повторная оценка той же пары обновляет запись
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("AccessRepo").Return(mockAccessRepo)
			mockTx.On("GradeRepo").Return(mockGradeRepo)

			mockAccessRepo.On("GetAccess", mock.Anything, 2, 42).
				Return(&domain.ProjectAccess{UserID: 2, ProjectID: 42, Permission: domain.PermissionView}, nil)

			mockGradeRepo.On("FindByProjectAndTeacher", mock.Anything, 42, 2).
				Return(existing, nil)

			mockGradeRepo.On("Update", mock.Anything, mock.MatchedBy(func(g *domain.Grade) bool {
				return g.ID == 3 && g.Score == 19 && g.MaxScore == 20
			})).Return(nil)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	result, err := svc.UpsertGrade(context.Background(), teacher, &domain.UpsertGradeInput{
		ProjectID: 42,
		Score:     19,
		MaxScore:  20,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, result.ID)
	assert.Equal(t, 19.0, result.Score)
	mockGradeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpsertGrade_DefaultMaxScore(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockGradeRepo := mocks.NewGradeRepository(t)
	mockAccessRepo := mocks.NewProjectAccessRepository(t)

	svc := service.New(mockTxMgr)

	// Setup expectations: без max_score шкала по умолчанию 100
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("AccessRepo").Return(mockAccessRepo)
			mockTx.On("GradeRepo").Return(mockGradeRepo)

			mockAccessRepo.On("GetAccess", mock.Anything, 2, 42).
				Return(&domain.ProjectAccess{UserID: 2, ProjectID: 42, Permission: domain.PermissionView}, nil)

			mockGradeRepo.On("FindByProjectAndTeacher", mock.Anything, 42, 2).
				Return(nil, storage.ErrNotFound)

			mockGradeRepo.On("Create", mock.Anything, mock.MatchedBy(func(g *domain.Grade) bool {
				return g.MaxScore == 100
			})).Return(nil)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	result, err := svc.UpsertGrade(context.Background(), teacher, &domain.UpsertGradeInput{
		ProjectID: 42,
		Score:     87,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.MaxScore)
}

func TestUpsertGrade_StudentForbidden(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	svc := service.New(mockTxMgr)

	// Act
	result, err := svc.UpsertGrade(context.Background(), student, &domain.UpsertGradeInput{
		ProjectID: 42,
		Score:     20,
	})

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrTeachersOnly)
}

func TestListProjectGrades_NormalizedAverage(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockGradeRepo := mocks.NewGradeRepository(t)
	mockAccessRepo := mocks.NewProjectAccessRepository(t)

	svc := service.New(mockTxMgr)

	// Оценки в разных шкалах: 18/20 = 90%, 70/100 = 70%
	grades := []domain.Grade{
		{ID: 3, ProjectID: 42, TeacherID: 2, Score: 18, MaxScore: 20},
		{ID: 4, ProjectID: 42, TeacherID: 5, Score: 70, MaxScore: 100},
	}

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("AccessRepo").Return(mockAccessRepo)
			mockTx.On("GradeRepo").Return(mockGradeRepo)

			mockAccessRepo.On("GetAccess", mock.Anything, 1, 42).
				Return(&domain.ProjectAccess{UserID: 1, ProjectID: 42, Permission: domain.PermissionCreator}, nil)
			mockGradeRepo.On("ListByProject", mock.Anything, 42).Return(grades, nil)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	result, err := svc.ListProjectGrades(context.Background(), student, 42)

	// Assert
	require.NoError(t, err)
	assert.Len(t, result.Grades, 2)
	require.NotNil(t, result.Average)
	assert.InDelta(t, 80.0, *result.Average, 0.001)
}

func TestListProjectGrades_EmptyHasNilAverage(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockGradeRepo := mocks.NewGradeRepository(t)
	mockAccessRepo := mocks.NewProjectAccessRepository(t)

	svc := service.New(mockTxMgr)

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("AccessRepo").Return(mockAccessRepo)
			mockTx.On("GradeRepo").Return(mockGradeRepo)

			mockAccessRepo.On("GetAccess", mock.Anything, 1, 42).
				Return(&domain.ProjectAccess{UserID: 1, ProjectID: 42, Permission: domain.PermissionCreator}, nil)
			mockGradeRepo.On("ListByProject", mock.Anything, 42).Return([]domain.Grade{}, nil)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	result, err := svc.ListProjectGrades(context.Background(), student, 42)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, result.Grades)
	assert.Nil(t, result.Average)
}

func TestDeleteGrade_Success(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockGradeRepo := mocks.NewGradeRepository(t)

	svc := service.New(mockTxMgr)

	existing := &domain.Grade{ID: 3, ProjectID: 42, TeacherID: 2}

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("GradeRepo").Return(mockGradeRepo)
			mockGradeRepo.On("GetByID", mock.Anything, 3).Return(existing, nil)
			mockGradeRepo.On("Delete", mock.Anything, 3).Return(nil)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	err := svc.DeleteGrade(context.Background(), teacher, 3)

	// Assert
	require.NoError(t, err)
}

func TestDeleteGrade_NotAuthor(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockGradeRepo := mocks.NewGradeRepository(t)

	svc := service.New(mockTxMgr)

	// Оценка выставлена другим преподавателем
	existing := &domain.Grade{ID: 3, ProjectID: 42, TeacherID: 5}

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("GradeRepo").Return(mockGradeRepo)
			mockGradeRepo.On("GetByID", mock.Anything, 3).Return(existing, nil)

			fn(context.Background(), mockTx)
		}).Return(domain.ErrNotGradeAuthor)

	// Act
	err := svc.DeleteGrade(context.Background(), teacher, 3)

	// Assert
	assert.ErrorIs(t, err, domain.ErrNotGradeAuthor)
}
