package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/domain/derrors"
	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/domain/entity"
	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/domain/event"
	repo "github.com/felipecouto0101/FastFeet-Deliveryman/internal/domain/repository"
)

// ===========================
// Mocks
// ===========================

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, d *entity.DeliveryMan) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockRepository) FindByID(ctx context.Context, id string) (*entity.DeliveryMan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DeliveryMan), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context, params repo.ListParams) (repo.Page, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(repo.Page), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, d *entity.DeliveryMan) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, e event.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockPublisher) PublishBatch(ctx context.Context, events []event.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func existingDeliveryMan(id string, active bool) *entity.DeliveryMan {
	d := entity.New(id, "John", "j@x.com", "123", "555")
	if !active {
		d.Deactivate()
		d.ClearEvents()
	}
	return d
}

// ===========================
// Create
// ===========================

func TestService_Create_PersistsThenPublishesThenClears(t *testing.T) {
	mockRepo := new(MockRepository)
	mockPub := new(MockPublisher)
	svc := NewService(mockRepo, mockPub, nil)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(d *entity.DeliveryMan) bool {
		return d.ID() == "u1" && d.IsActive()
	})).Return(nil)
	mockPub.On("PublishBatch", mock.Anything, mock.MatchedBy(func(events []event.Event) bool {
		if len(events) != 1 {
			return false
		}
		return events[0].Kind() == event.KindCreated && events[0].AggregateID() == "u1"
	})).Return(nil)

	d, err := svc.Create(context.Background(), CreateInput{
		ID: "u1", Name: "John", Email: "j@x.com", Cpf: "123", Phone: "555", Password: "secret1",
	})

	require.NoError(t, err)
	assert.True(t, d.IsActive())
	assert.Empty(t, d.PendingEvents(), "buffer must be cleared after confirmed publication")
	mockRepo.AssertNumberOfCalls(t, "Create", 1)
	mockPub.AssertNumberOfCalls(t, "PublishBatch", 1)
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestService_Create_ShortPassword_NoPersistenceNoPublish(t *testing.T) {
	mockRepo := new(MockRepository)
	mockPub := new(MockPublisher)
	svc := NewService(mockRepo, mockPub, nil)

	_, err := svc.Create(context.Background(), CreateInput{
		ID: "u1", Name: "John", Email: "j@x.com", Cpf: "123", Phone: "555", Password: "no",
	})

	require.Error(t, err)
	assert.True(t, derrors.IsKind(err, derrors.KindInvalidPassword))
	mockRepo.AssertNotCalled(t, "Create")
	mockPub.AssertNotCalled(t, "PublishBatch")
}

func TestService_Create_PersistFailure_PropagatesAndSkipsPublish(t *testing.T) {
	mockRepo := new(MockRepository)
	mockPub := new(MockPublisher)
	svc := NewService(mockRepo, mockPub, nil)

	dbErr := derrors.DatabaseQuery("create", errors.New("boom"))
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(dbErr)

	_, err := svc.Create(context.Background(), CreateInput{
		ID: "u1", Name: "John", Email: "j@x.com", Cpf: "123", Phone: "555", Password: "secret1",
	})

	require.ErrorIs(t, err, dbErr)
	mockPub.AssertNotCalled(t, "PublishBatch")
}

func TestService_Create_PublishFailure_Propagates(t *testing.T) {
	mockRepo := new(MockRepository)
	mockPub := new(MockPublisher)
	svc := NewService(mockRepo, mockPub, nil)

	pubErr := derrors.Publish("deliveryman.created", errors.New("broker down"))
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockPub.On("PublishBatch", mock.Anything, mock.Anything).Return(pubErr)

	_, err := svc.Create(context.Background(), CreateInput{
		ID: "u1", Name: "John", Email: "j@x.com", Cpf: "123", Phone: "555", Password: "secret1",
	})

	// The state change stands; the failure surfaces to the caller.
	require.ErrorIs(t, err, pubErr)
	mockRepo.AssertNumberOfCalls(t, "Create", 1)
}

// ===========================
// Find / List
// ===========================

func TestService_Find_Existing(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, new(MockPublisher), nil)

	d := existingDeliveryMan("u1", true)
	mockRepo.On("FindByID", mock.Anything, "u1").Return(d, nil)

	got, err := svc.Find(context.Background(), "u1")

	require.NoError(t, err)
	assert.Same(t, d, got)
}

func TestService_Find_Absent_ReturnsNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, new(MockPublisher), nil)

	mockRepo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

	_, err := svc.Find(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, derrors.IsKind(err, derrors.KindNotFound))
}

func TestService_List_DelegatesVerbatim(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, new(MockPublisher), nil)

	want := repo.Page{
		Items:      []*entity.DeliveryMan{existingDeliveryMan("u1", true)},
		NextCursor: "opaque",
		HasNext:    true,
	}
	params := repo.ListParams{Limit: 10, Cursor: "start"}
	mockRepo.On("FindAll", mock.Anything, params).Return(want, nil)

	got, err := svc.List(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ===========================
// Update
// ===========================

func TestService_Update_DeactivationPublishesExactlyOneEvent(t *testing.T) {
	mockRepo := new(MockRepository)
	mockPub := new(MockPublisher)
	svc := NewService(mockRepo, mockPub, nil)

	mockRepo.On("FindByID", mock.Anything, "u1").Return(existingDeliveryMan("u1", true), nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(d *entity.DeliveryMan) bool {
		return !d.IsActive()
	})).Return(nil)
	mockPub.On("PublishBatch", mock.Anything, mock.MatchedBy(func(events []event.Event) bool {
		return len(events) == 1 && events[0].Kind() == event.KindDeactivated
	})).Return(nil)

	inactive := false
	d, err := svc.Update(context.Background(), UpdateInput{ID: "u1", IsActive: &inactive})

	require.NoError(t, err)
	assert.False(t, d.IsActive())
	assert.Empty(t, d.PendingEvents())
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestService_Update_NameOnly_NeverTouchesPublisher(t *testing.T) {
	mockRepo := new(MockRepository)
	mockPub := new(MockPublisher)
	svc := NewService(mockRepo, mockPub, nil)

	mockRepo.On("FindByID", mock.Anything, "u1").Return(existingDeliveryMan("u1", true), nil)
	mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	name := "Jane"
	d, err := svc.Update(context.Background(), UpdateInput{ID: "u1", Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Jane", d.Name())
	mockRepo.AssertNumberOfCalls(t, "Update", 1)
	mockPub.AssertNotCalled(t, "PublishBatch")
	mockPub.AssertNotCalled(t, "Publish")
}

func TestService_Update_IsActiveNoOp_ProducesNoEvent(t *testing.T) {
	mockRepo := new(MockRepository)
	mockPub := new(MockPublisher)
	svc := NewService(mockRepo, mockPub, nil)

	mockRepo.On("FindByID", mock.Anything, "u1").Return(existingDeliveryMan("u1", true), nil)
	mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	active := true
	_, err := svc.Update(context.Background(), UpdateInput{ID: "u1", IsActive: &active})

	require.NoError(t, err)
	mockPub.AssertNotCalled(t, "PublishBatch")
}

func TestService_Update_Absent_ReturnsNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	mockPub := new(MockPublisher)
	svc := NewService(mockRepo, mockPub, nil)

	mockRepo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

	name := "Jane"
	_, err := svc.Update(context.Background(), UpdateInput{ID: "missing", Name: &name})

	require.Error(t, err)
	assert.True(t, derrors.IsKind(err, derrors.KindNotFound))
	mockRepo.AssertNotCalled(t, "Update")
}

// ===========================
// Delete
// ===========================

func TestService_Delete_Absent_TouchesNothing(t *testing.T) {
	mockRepo := new(MockRepository)
	mockPub := new(MockPublisher)
	svc := NewService(mockRepo, mockPub, nil)

	mockRepo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

	err := svc.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, derrors.IsKind(err, derrors.KindNotFound))
	mockRepo.AssertNotCalled(t, "Delete")
	mockPub.AssertNotCalled(t, "PublishBatch")
	mockPub.AssertNotCalled(t, "Publish")
}

func TestService_Delete_PublishesStrictlyBeforeDestructivePersist(t *testing.T) {
	mockRepo := new(MockRepository)
	mockPub := new(MockPublisher)
	svc := NewService(mockRepo, mockPub, nil)

	var calls []string
	mockRepo.On("FindByID", mock.Anything, "u1").Run(func(mock.Arguments) {
		calls = append(calls, "findById")
	}).Return(existingDeliveryMan("u1", true), nil)
	mockPub.On("PublishBatch", mock.Anything, mock.MatchedBy(func(events []event.Event) bool {
		return len(events) == 1 && events[0].Kind() == event.KindDeleted && events[0].AggregateID() == "u1"
	})).Run(func(mock.Arguments) {
		calls = append(calls, "publishBatch")
	}).Return(nil)
	mockRepo.On("Delete", mock.Anything, "u1").Run(func(mock.Arguments) {
		calls = append(calls, "delete")
	}).Return(nil)

	err := svc.Delete(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, []string{"findById", "publishBatch", "delete"}, calls)
	mockRepo.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestService_Delete_PublishFailure_SkipsDestructivePersist(t *testing.T) {
	mockRepo := new(MockRepository)
	mockPub := new(MockPublisher)
	svc := NewService(mockRepo, mockPub, nil)

	pubErr := derrors.Publish("deliveryman.deleted", errors.New("broker down"))
	mockRepo.On("FindByID", mock.Anything, "u1").Return(existingDeliveryMan("u1", true), nil)
	mockPub.On("PublishBatch", mock.Anything, mock.Anything).Return(pubErr)

	err := svc.Delete(context.Background(), "u1")

	require.ErrorIs(t, err, pubErr)
	mockRepo.AssertNotCalled(t, "Delete")
}
