package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"diagramadoria/internal/domain"
	"diagramadoria/internal/mocks"
	"diagramadoria/internal/service"
	"diagramadoria/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	student = domain.Actor{ID: 1, Role: domain.RoleStudent}
	teacher = domain.Actor{ID: 2, Role: domain.RoleTeacher}
)

func TestCreateReviewRequest_Success(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockReviewRepo := mocks.NewReviewRequestRepository(t)
	mockUserRepo := mocks.NewUserRepository(t)
	mockAccessRepo := mocks.NewProjectAccessRepository(t)

	svc := service.New(mockTxMgr)

	input := &domain.CreateReviewRequestInput{
		ProjectID:    42,
		TeacherEmail: "docente@uni.edu",
	}

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("AccessRepo").Return(mockAccessRepo)
			mockTx.On("UserRepo").Return(mockUserRepo)
			mockTx.On("ReviewRequestRepo").Return(mockReviewRepo)

			// Студент - создатель проекта
			mockAccessRepo.On("GetAccess", mock.Anything, 1, 42).
				Return(&domain.ProjectAccess{UserID: 1, ProjectID: 42, Permission: domain.PermissionCreator}, nil)

			mockUserRepo.On("GetByEmail", mock.Anything, "docente@uni.edu").
				Return(&domain.User{ID: 2, Email: "docente@uni.edu", Role: domain.RoleTeacher}, nil)

			// Для пары (проект, преподаватель) заявки ещё нет
			mockReviewRepo.On("FindByProjectAndTeacher", mock.Anything, 42, 2).
				Return(nil, storage.ErrNotFound)

			mockReviewRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.ReviewRequest) bool {
				return r.ProjectID == 42 &&
					r.StudentID == 1 &&
					r.TeacherID == 2 &&
					r.Status == domain.ReviewStatusPending
			})).Run(func(args mock.Arguments) {
				args.Get(1).(*domain.ReviewRequest).ID = 7
			}).Return(nil)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	result, err := svc.CreateReviewRequest(context.Background(), student, input)

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 7, result.ID)
	assert.Equal(t, domain.ReviewStatusPending, result.Status)
}

func TestCreateReviewRequest_NotStudent(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	svc := service.New(mockTxMgr)

	// Act
	result, err := svc.CreateReviewRequest(context.Background(), teacher, &domain.CreateReviewRequestInput{
		ProjectID:    42,
		TeacherEmail: "docente@uni.edu",
	})

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrStudentsOnly)
}

func TestCreateReviewRequest_NotProjectOwner(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockAccessRepo := mocks.NewProjectAccessRepository(t)

	svc := service.New(mockTxMgr)

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("AccessRepo").Return(mockAccessRepo)

			// У студента только доступ на просмотр, не создатель
			mockAccessRepo.On("GetAccess", mock.Anything, 1, 42).
				Return(&domain.ProjectAccess{UserID: 1, ProjectID: 42, Permission: domain.PermissionView}, nil)

			fn(context.Background(), mockTx)
		}).Return(domain.ErrNotProjectOwner)

	// Act
	result, err := svc.CreateReviewRequest(context.Background(), student, &domain.CreateReviewRequestInput{
		ProjectID:    42,
		TeacherEmail: "docente@uni.edu",
	})

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrNotProjectOwner)
}

func TestCreateReviewRequest_TargetNotTeacher(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockUserRepo := mocks.NewUserRepository(t)
	mockAccessRepo := mocks.NewProjectAccessRepository(t)

	svc := service.New(mockTxMgr)

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("AccessRepo").Return(mockAccessRepo)
			mockTx.On("UserRepo").Return(mockUserRepo)

			mockAccessRepo.On("GetAccess", mock.Anything, 1, 42).
				Return(&domain.ProjectAccess{UserID: 1, ProjectID: 42, Permission: domain.PermissionCreator}, nil)

			// По email найден другой студент, а не преподаватель
			mockUserRepo.On("GetByEmail", mock.Anything, "amigo@uni.edu").
				Return(&domain.User{ID: 3, Email: "amigo@uni.edu", Role: domain.RoleStudent}, nil)

			fn(context.Background(), mockTx)
		}).Return(domain.ErrTargetNotTeacher)

	// Act
	result, err := svc.CreateReviewRequest(context.Background(), student, &domain.CreateReviewRequestInput{
		ProjectID:    42,
		TeacherEmail: "amigo@uni.edu",
	})

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrTargetNotTeacher)
}

func TestCreateReviewRequest_PendingExists(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockReviewRepo := mocks.NewReviewRequestRepository(t)
	mockUserRepo := mocks.NewUserRepository(t)
	mockAccessRepo := mocks.NewProjectAccessRepository(t)

	svc := service.New(mockTxMgr)

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("AccessRepo").Return(mockAccessRepo)
			mockTx.On("UserRepo").Return(mockUserRepo)
			mockTx.On("ReviewRequestRepo").Return(mockReviewRepo)

			mockAccessRepo.On("GetAccess", mock.Anything, 1, 42).
				Return(&domain.ProjectAccess{UserID: 1, ProjectID: 42, Permission: domain.PermissionCreator}, nil)

			mockUserRepo.On("GetByEmail", mock.Anything, "docente@uni.edu").
				Return(&domain.User{ID: 2, Role: domain.RoleTeacher}, nil)

			// Активная заявка для пары уже есть
			mockReviewRepo.On("FindByProjectAndTeacher", mock.Anything, 42, 2).
				Return(&domain.ReviewRequest{ID: 7, Status: domain.ReviewStatusPending}, nil)

			fn(context.Background(), mockTx)
		}).Return(domain.ErrPendingRequestExists)

	// Act
	result, err := svc.CreateReviewRequest(context.Background(), student, &domain.CreateReviewRequestInput{
		ProjectID:    42,
		TeacherEmail: "docente@uni.edu",
	})

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrPendingRequestExists)
}

func TestCreateReviewRequest_AcceptedStillConflicts(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockReviewRepo := mocks.NewReviewRequestRepository(t)
	mockUserRepo := mocks.NewUserRepository(t)
	mockAccessRepo := mocks.NewProjectAccessRepository(t)

	svc := service.New(mockTxMgr)

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("AccessRepo").Return(mockAccessRepo)
			mockTx.On("UserRepo").Return(mockUserRepo)
			mockTx.On("ReviewRequestRepo").Return(mockReviewRepo)

			mockAccessRepo.On("GetAccess", mock.Anything, 1, 42).
				Return(&domain.ProjectAccess{UserID: 1, ProjectID: 42, Permission: domain.PermissionCreator}, nil)

			mockUserRepo.On("GetByEmail", mock.Anything, "docente@uni.edu").
				Return(&domain.User{ID: 2, Role: domain.RoleTeacher}, nil)

			// accepted - ревью ещё идёт, заявка не заменяется
			mockReviewRepo.On("FindByProjectAndTeacher", mock.Anything, 42, 2).
				Return(&domain.ReviewRequest{ID: 7, Status: domain.ReviewStatusAccepted}, nil)

			fn(context.Background(), mockTx)
		}).Return(domain.ErrPendingRequestExists)

	// Act
	result, err := svc.CreateReviewRequest(context.Background(), student, &domain.CreateReviewRequestInput{
		ProjectID:    42,
		TeacherEmail: "docente@uni.edu",
	})

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrPendingRequestExists)
}

func TestCreateReviewRequest_ReplacesTerminalRequest(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockReviewRepo := mocks.NewReviewRequestRepository(t)
	mockUserRepo := mocks.NewUserRepository(t)
	mockAccessRepo := mocks.NewProjectAccessRepository(t)

	svc := service.New(mockTxMgr)

	// Setup expectations
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("AccessRepo").Return(mockAccessRepo)
			mockTx.On("UserRepo").Return(mockUserRepo)
			mockTx.On("ReviewRequestRepo").Return(mockReviewRepo)

			mockAccessRepo.On("GetAccess", mock.Anything, 1, 42).
				Return(&domain.ProjectAccess{UserID: 1, ProjectID: 42, Permission: domain.PermissionCreator}, nil)

			mockUserRepo.On("GetByEmail", mock.Anything, "docente@uni.edu").
				Return(&domain.User{ID: 2, Role: domain.RoleTeacher}, nil)

			// Прошлая заявка отклонена - она удаляется и создаётся новая
			mockReviewRepo.On("FindByProjectAndTeacher", mock.Anything, 42, 2).
				Return(&domain.ReviewRequest{ID: 7, Status: domain.ReviewStatusRejected}, nil)

			mockReviewRepo.On("Delete", mock.Anything, 7).Return(nil)

			mockReviewRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.ReviewRequest) bool {
				return r.Status == domain.ReviewStatusPending
			})).Run(func(args mock.Arguments) {
				args.Get(1).(*domain.ReviewRequest).ID = 8
			}).Return(nil)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	result, err := svc.CreateReviewRequest(context.Background(), student, &domain.CreateReviewRequestInput{
		ProjectID:    42,
		TeacherEmail: "docente@uni.edu",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 8, result.ID)
	mockReviewRepo.AssertCalled(t, "Delete", mock.Anything, 7)
}

func TestRespondToReviewRequest_AcceptGrantsViewAccess(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockReviewRepo := mocks.NewReviewRequestRepository(t)
	mockAccessRepo := mocks.NewProjectAccessRepository(t)
	mockPermRepo := mocks.NewPermissionRepository(t)

	svc := service.New(mockTxMgr)

	pending := &domain.ReviewRequest{
		ID:        7,
		ProjectID: 42,
		StudentID: 1,
		TeacherID: 2,
		Status:    domain.ReviewStatusPending,
	}
	now := time.Now()
	accepted := &domain.ReviewRequest{
		ID:          7,
		ProjectID:   42,
		StudentID:   1,
		TeacherID:   2,
		Status:      domain.ReviewStatusAccepted,
		RespondedAt: &now,
	}

	// Setup expectations: первый Do - переход статуса, второй - выдача доступа.
	// Ожидания регистрируются заранее, потому что Run выполняется дважды.
	mockTx.On("ReviewRequestRepo").Return(mockReviewRepo)
	mockTx.On("PermissionRepo").Return(mockPermRepo)
	mockTx.On("AccessRepo").Return(mockAccessRepo)

	mockReviewRepo.On("GetByID", mock.Anything, 7).Return(pending, nil)
	mockReviewRepo.On("Transition", mock.Anything, 7, domain.ReviewStatusPending, domain.ReviewStatusAccepted).
		Return(accepted, nil)

	mockPermRepo.On("FindByName", mock.Anything, domain.PermissionView).
		Return(&domain.Permission{ID: 2, Name: domain.PermissionView}, nil)
	mockAccessRepo.On("GetAccess", mock.Anything, 2, 42).
		Return(nil, storage.ErrNotFound)
	mockAccessRepo.On("CreateAccess", mock.Anything, 2, 42, 2).Return(nil)

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)
			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	result, err := svc.RespondToReviewRequest(context.Background(), teacher, &domain.RespondReviewRequestInput{
		RequestID: 7,
		Decision:  domain.ReviewStatusAccepted,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.ReviewStatusAccepted, result.Status)
	assert.NotNil(t, result.RespondedAt)
	mockAccessRepo.AssertCalled(t, "CreateAccess", mock.Anything, 2, 42, 2)
}

func TestRespondToReviewRequest_AcceptSurvivesGrantFailure(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockReviewRepo := mocks.NewReviewRequestRepository(t)
	mockPermRepo := mocks.NewPermissionRepository(t)

	svc := service.New(mockTxMgr)

	pending := &domain.ReviewRequest{ID: 7, ProjectID: 42, StudentID: 1, TeacherID: 2, Status: domain.ReviewStatusPending}
	accepted := &domain.ReviewRequest{ID: 7, ProjectID: 42, StudentID: 1, TeacherID: 2, Status: domain.ReviewStatusAccepted}

	// Переход статуса проходит
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("ReviewRequestRepo").Return(mockReviewRepo)

			mockReviewRepo.On("GetByID", mock.Anything, 7).Return(pending, nil)
			mockReviewRepo.On("Transition", mock.Anything, 7, domain.ReviewStatusPending, domain.ReviewStatusAccepted).
				Return(accepted, nil)

			fn(context.Background(), mockTx)
		}).Return(nil).Once()

	// Выдача доступа падает - accept всё равно успешен
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("PermissionRepo").Return(mockPermRepo)
			mockPermRepo.On("FindByName", mock.Anything, domain.PermissionView).
				Return(nil, errors.New("db connection lost"))

			fn(context.Background(), mockTx)
		}).Return(errors.New("db connection lost")).Once()

	// Act
	result, err := svc.RespondToReviewRequest(context.Background(), teacher, &domain.RespondReviewRequestInput{
		RequestID: 7,
		Decision:  domain.ReviewStatusAccepted,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.ReviewStatusAccepted, result.Status)
}

func TestRespondToReviewRequest_RejectDoesNotGrantAccess(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockReviewRepo := mocks.NewReviewRequestRepository(t)

	svc := service.New(mockTxMgr)

	pending := &domain.ReviewRequest{ID: 7, ProjectID: 42, StudentID: 1, TeacherID: 2, Status: domain.ReviewStatusPending}
	rejected := &domain.ReviewRequest{ID: 7, ProjectID: 42, StudentID: 1, TeacherID: 2, Status: domain.ReviewStatusRejected}

	// Setup expectations: ровно один Do, без выдачи доступа
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("ReviewRequestRepo").Return(mockReviewRepo)

			mockReviewRepo.On("GetByID", mock.Anything, 7).Return(pending, nil)
			mockReviewRepo.On("Transition", mock.Anything, 7, domain.ReviewStatusPending, domain.ReviewStatusRejected).
				Return(rejected, nil)

			fn(context.Background(), mockTx)
		}).Return(nil).Once()

	// Act
	result, err := svc.RespondToReviewRequest(context.Background(), teacher, &domain.RespondReviewRequestInput{
		RequestID: 7,
		Decision:  domain.ReviewStatusRejected,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.ReviewStatusRejected, result.Status)
	mockTxMgr.AssertNumberOfCalls(t, "Do", 1)
}

func TestRespondToReviewRequest_InvalidDecision(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	svc := service.New(mockTxMgr)

	// Act
	result, err := svc.RespondToReviewRequest(context.Background(), teacher, &domain.RespondReviewRequestInput{
		RequestID: 7,
		Decision:  domain.ReviewStatusCompleted,
	})

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRespondToReviewRequest_NotTeacherRole(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	svc := service.New(mockTxMgr)

	// Act
	result, err := svc.RespondToReviewRequest(context.Background(), student, &domain.RespondReviewRequestInput{
		RequestID: 7,
		Decision:  domain.ReviewStatusAccepted,
	})

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrTeachersOnly)
}

func TestRespondToReviewRequest_DifferentTeacher(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockReviewRepo := mocks.NewReviewRequestRepository(t)

	svc := service.New(mockTxMgr)

	// Заявка адресована преподавателю 5, отвечает преподаватель 2
	pending := &domain.ReviewRequest{ID: 7, ProjectID: 42, StudentID: 1, TeacherID: 5, Status: domain.ReviewStatusPending}

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("ReviewRequestRepo").Return(mockReviewRepo)
			mockReviewRepo.On("GetByID", mock.Anything, 7).Return(pending, nil)

			fn(context.Background(), mockTx)
		}).Return(domain.ErrNotRequestTeacher)

	// Act
	result, err := svc.RespondToReviewRequest(context.Background(), teacher, &domain.RespondReviewRequestInput{
		RequestID: 7,
		Decision:  domain.ReviewStatusAccepted,
	})

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrNotRequestTeacher)
}

func TestRespondToReviewRequest_AlreadyResolved(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockReviewRepo := mocks.NewReviewRequestRepository(t)

	svc := service.New(mockTxMgr)

	acceptedReq := &domain.ReviewRequest{ID: 7, ProjectID: 42, StudentID: 1, TeacherID: 2, Status: domain.ReviewStatusAccepted}

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("ReviewRequestRepo").Return(mockReviewRepo)
			mockReviewRepo.On("GetByID", mock.Anything, 7).Return(acceptedReq, nil)

			fn(context.Background(), mockTx)
		}).Return(domain.ErrAlreadyResolved)

	// Act
	result, err := svc.RespondToReviewRequest(context.Background(), teacher, &domain.RespondReviewRequestInput{
		RequestID: 7,
		Decision:  domain.ReviewStatusRejected,
	})

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrAlreadyResolved)
}

func TestRespondToReviewRequest_ConcurrentWriterWins(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockReviewRepo := mocks.NewReviewRequestRepository(t)

	svc := service.New(mockTxMgr)

	pending := &domain.ReviewRequest{ID: 7, ProjectID: 42, StudentID: 1, TeacherID: 2, Status: domain.ReviewStatusPending}

	// Между чтением и UPDATE статус успел измениться
	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("ReviewRequestRepo").Return(mockReviewRepo)
			mockReviewRepo.On("GetByID", mock.Anything, 7).Return(pending, nil)
			mockReviewRepo.On("Transition", mock.Anything, 7, domain.ReviewStatusPending, domain.ReviewStatusAccepted).
				Return(nil, storage.ErrConflict)

			fn(context.Background(), mockTx)
		}).Return(storage.ErrConflict)

	// Act
	result, err := svc.RespondToReviewRequest(context.Background(), teacher, &domain.RespondReviewRequestInput{
		RequestID: 7,
		Decision:  domain.ReviewStatusAccepted,
	})

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrAlreadyResolved)
}

func TestCompleteReviewRequest_Success(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockReviewRepo := mocks.NewReviewRequestRepository(t)

	svc := service.New(mockTxMgr)

	acceptedReq := &domain.ReviewRequest{ID: 7, ProjectID: 42, StudentID: 1, TeacherID: 2, Status: domain.ReviewStatusAccepted}
	now := time.Now()
	completed := &domain.ReviewRequest{ID: 7, ProjectID: 42, StudentID: 1, TeacherID: 2, Status: domain.ReviewStatusCompleted, CompletedAt: &now}

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("ReviewRequestRepo").Return(mockReviewRepo)
			mockReviewRepo.On("GetByID", mock.Anything, 7).Return(acceptedReq, nil)
			mockReviewRepo.On("Transition", mock.Anything, 7, domain.ReviewStatusAccepted, domain.ReviewStatusCompleted).
				Return(completed, nil)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	result, err := svc.CompleteReviewRequest(context.Background(), teacher, 7)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.ReviewStatusCompleted, result.Status)
	assert.NotNil(t, result.CompletedAt)
}

func TestCompleteReviewRequest_FromPending(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockReviewRepo := mocks.NewReviewRequestRepository(t)

	svc := service.New(mockTxMgr)

	// Завершить можно только принятую заявку
	pending := &domain.ReviewRequest{ID: 7, ProjectID: 42, StudentID: 1, TeacherID: 2, Status: domain.ReviewStatusPending}

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("ReviewRequestRepo").Return(mockReviewRepo)
			mockReviewRepo.On("GetByID", mock.Anything, 7).Return(pending, nil)

			fn(context.Background(), mockTx)
		}).Return(domain.ErrInvalidTransition)

	// Act
	result, err := svc.CompleteReviewRequest(context.Background(), teacher, 7)

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCancelReviewRequest_Success(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockReviewRepo := mocks.NewReviewRequestRepository(t)

	svc := service.New(mockTxMgr)

	pending := &domain.ReviewRequest{ID: 7, ProjectID: 42, StudentID: 1, TeacherID: 2, Status: domain.ReviewStatusPending}

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("ReviewRequestRepo").Return(mockReviewRepo)
			mockReviewRepo.On("GetByID", mock.Anything, 7).Return(pending, nil)
			mockReviewRepo.On("Delete", mock.Anything, 7).Return(nil)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	err := svc.CancelReviewRequest(context.Background(), student, 7)

	// Assert
	require.NoError(t, err)
	mockReviewRepo.AssertCalled(t, "Delete", mock.Anything, 7)
}

func TestCancelReviewRequest_AfterResponse(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockReviewRepo := mocks.NewReviewRequestRepository(t)

	svc := service.New(mockTxMgr)

	// Отвеченную заявку отменить нельзя
	acceptedReq := &domain.ReviewRequest{ID: 7, ProjectID: 42, StudentID: 1, TeacherID: 2, Status: domain.ReviewStatusAccepted}

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("ReviewRequestRepo").Return(mockReviewRepo)
			mockReviewRepo.On("GetByID", mock.Anything, 7).Return(acceptedReq, nil)

			fn(context.Background(), mockTx)
		}).Return(domain.ErrInvalidTransition)

	// Act
	err := svc.CancelReviewRequest(context.Background(), student, 7)

	// Assert
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCancelReviewRequest_DifferentStudent(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockReviewRepo := mocks.NewReviewRequestRepository(t)

	svc := service.New(mockTxMgr)

	pending := &domain.ReviewRequest{ID: 7, ProjectID: 42, StudentID: 9, TeacherID: 2, Status: domain.ReviewStatusPending}

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("ReviewRequestRepo").Return(mockReviewRepo)
			mockReviewRepo.On("GetByID", mock.Anything, 7).Return(pending, nil)

			fn(context.Background(), mockTx)
		}).Return(domain.ErrNotRequestStudent)

	// Act
	err := svc.CancelReviewRequest(context.Background(), student, 7)

	// Assert
	assert.ErrorIs(t, err, domain.ErrNotRequestStudent)
}

func TestListSentReviewRequests(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockReviewRepo := mocks.NewReviewRequestRepository(t)

	svc := service.New(mockTxMgr)

	expected := []domain.ReviewRequest{
		{ID: 8, StudentID: 1, Status: domain.ReviewStatusPending},
		{ID: 7, StudentID: 1, Status: domain.ReviewStatusCompleted},
	}

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("ReviewRequestRepo").Return(mockReviewRepo)
			mockReviewRepo.On("ListByStudent", mock.Anything, 1).Return(expected, nil)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	result, err := svc.ListSentReviewRequests(context.Background(), student)

	// Assert
	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, 8, result[0].ID)
}

func TestListReceivedReviewRequests(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockReviewRepo := mocks.NewReviewRequestRepository(t)

	svc := service.New(mockTxMgr)

	expected := []domain.ReviewRequest{
		{ID: 7, TeacherID: 2, Status: domain.ReviewStatusPending},
	}

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("ReviewRequestRepo").Return(mockReviewRepo)
			mockReviewRepo.On("ListByTeacher", mock.Anything, 2).Return(expected, nil)

			fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	result, err := svc.ListReceivedReviewRequests(context.Background(), teacher)

	// Assert
	require.NoError(t, err)
	assert.Len(t, result, 1)
}
