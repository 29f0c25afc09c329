package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/clubfeed-server/internal/model"
	"github.com/dtroode/clubfeed-server/internal/testutil"
)

// MockUserStore mocks the UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) UpdateRole(ctx context.Context, email string, role model.Role) error {
	args := m.Called(ctx, email, role)
	return args.Error(0)
}

func (m *MockUserStore) SetTimeout(ctx context.Context, email string, until time.Time) error {
	args := m.Called(ctx, email, until)
	return args.Error(0)
}

func (m *MockUserStore) EnsureRoot(ctx context.Context, email, displayName string) error {
	args := m.Called(ctx, email, displayName)
	return args.Error(0)
}

const rootEmail = "root@clubfeed.local"

func newRoleService(store *MockUserStore) *Role {
	return NewRole(store, rootEmail, testutil.MakeNoopLogger())
}

func TestRole_PromoteToAdmin_ExistingUser(t *testing.T) {
	ctx := context.Background()
	store := &MockUserStore{}
	store.On("GetByEmail", ctx, "bob@example.com").Return(model.User{Email: "bob@example.com", Role: model.RoleUser}, nil)
	store.On("UpdateRole", ctx, "bob@example.com", model.RoleAdmin).Return(nil)

	err := newRoleService(store).PromoteToAdmin(ctx, "bob@example.com")

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestRole_PromoteToVIP_CreatesMissingUser(t *testing.T) {
	ctx := context.Background()
	store := &MockUserStore{}
	store.On("GetByEmail", ctx, "new@example.com").Return(model.User{}, model.ErrNotFound)
	store.On("Create", ctx, model.User{
		Email:       "new@example.com",
		DisplayName: "new@example.com",
		Role:        model.RoleVIP,
	}).Return(model.User{ID: 7, Email: "new@example.com", Role: model.RoleVIP}, nil)

	err := newRoleService(store).PromoteToVIP(ctx, "new@example.com")

	require.NoError(t, err)
	store.AssertExpectations(t)
	store.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestRole_PromoteToSuperVIP_CreatesMissingUser(t *testing.T) {
	ctx := context.Background()
	store := &MockUserStore{}
	store.On("GetByEmail", ctx, "new@example.com").Return(model.User{}, model.ErrNotFound)
	store.On("Create", ctx, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "new@example.com" && u.Role == model.RoleSuperVIP && u.AvatarURL == ""
	})).Return(model.User{}, nil)

	err := newRoleService(store).PromoteToSuperVIP(ctx, "new@example.com")

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestRole_DemoteAdmin_TargetMissing(t *testing.T) {
	ctx := context.Background()
	store := &MockUserStore{}
	store.On("GetByEmail", ctx, "ghost@example.com").Return(model.User{}, model.ErrNotFound)

	err := newRoleService(store).DemoteAdmin(ctx, "ghost@example.com")

	assert.ErrorIs(t, err, model.ErrInvalidTarget)
	store.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRole_DemoteAdmin_WrongCurrentRole(t *testing.T) {
	ctx := context.Background()
	store := &MockUserStore{}
	store.On("GetByEmail", ctx, "vip@example.com").Return(model.User{Email: "vip@example.com", Role: model.RoleVIP}, nil)

	err := newRoleService(store).DemoteAdmin(ctx, "vip@example.com")

	assert.ErrorIs(t, err, model.ErrInvalidTarget)
	store.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestRole_DemoteVIP_Success(t *testing.T) {
	ctx := context.Background()
	store := &MockUserStore{}
	store.On("GetByEmail", ctx, "vip@example.com").Return(model.User{Email: "vip@example.com", Role: model.RoleVIP}, nil)
	store.On("UpdateRole", ctx, "vip@example.com", model.RoleUser).Return(nil)

	err := newRoleService(store).DemoteVIP(ctx, "vip@example.com")

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestRole_DemoteSuperVIP_RootProtected(t *testing.T) {
	ctx := context.Background()
	store := &MockUserStore{}

	err := newRoleService(store).DemoteSuperVIP(ctx, rootEmail)

	assert.ErrorIs(t, err, model.ErrProtectedRoot)
	store.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestRole_DemoteSuperVIP_NonRoot(t *testing.T) {
	ctx := context.Background()
	store := &MockUserStore{}
	store.On("GetByEmail", ctx, "other@example.com").Return(model.User{Email: "other@example.com", Role: model.RoleSuperVIP}, nil)
	store.On("UpdateRole", ctx, "other@example.com", model.RoleUser).Return(nil)

	err := newRoleService(store).DemoteSuperVIP(ctx, "other@example.com")

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestRole_PromoteThenDemoteTwice(t *testing.T) {
	ctx := context.Background()
	store := &MockUserStore{}
	svc := newRoleService(store)

	// Promote a fresh user to admin.
	store.On("GetByEmail", ctx, "u@example.com").Return(model.User{}, model.ErrNotFound).Once()
	store.On("Create", ctx, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "u@example.com" && u.Role == model.RoleAdmin
	})).Return(model.User{Email: "u@example.com", Role: model.RoleAdmin}, nil).Once()
	require.NoError(t, svc.PromoteToAdmin(ctx, "u@example.com"))

	// First demote succeeds.
	store.On("GetByEmail", ctx, "u@example.com").Return(model.User{Email: "u@example.com", Role: model.RoleAdmin}, nil).Once()
	store.On("UpdateRole", ctx, "u@example.com", model.RoleUser).Return(nil).Once()
	require.NoError(t, svc.DemoteAdmin(ctx, "u@example.com"))

	// Second demote sees role user and fails.
	store.On("GetByEmail", ctx, "u@example.com").Return(model.User{Email: "u@example.com", Role: model.RoleUser}, nil).Once()
	err := svc.DemoteAdmin(ctx, "u@example.com")

	assert.ErrorIs(t, err, model.ErrInvalidTarget)
	store.AssertExpectations(t)
}

func TestRole_Timeout_TargetMissing(t *testing.T) {
	ctx := context.Background()
	store := &MockUserStore{}
	store.On("GetByEmail", ctx, "ghost@example.com").Return(model.User{}, model.ErrNotFound)

	_, err := newRoleService(store).Timeout(ctx, "ghost@example.com", 10)

	assert.ErrorIs(t, err, model.ErrNotFound)
	store.AssertNotCalled(t, "SetTimeout", mock.Anything, mock.Anything, mock.Anything)
}

func TestRole_Timeout_SuperVIPTarget(t *testing.T) {
	ctx := context.Background()
	store := &MockUserStore{}
	store.On("GetByEmail", ctx, "boss@example.com").Return(model.User{Email: "boss@example.com", Role: model.RoleSuperVIP}, nil)

	_, err := newRoleService(store).Timeout(ctx, "boss@example.com", 10)

	assert.ErrorIs(t, err, model.ErrInvalidTarget)
	store.AssertNotCalled(t, "SetTimeout", mock.Anything, mock.Anything, mock.Anything)
}

func TestRole_Timeout_Success(t *testing.T) {
	ctx := context.Background()
	store := &MockUserStore{}
	store.On("GetByEmail", ctx, "loud@example.com").Return(model.User{Email: "loud@example.com", Role: model.RoleUser}, nil)
	store.On("SetTimeout", ctx, "loud@example.com", mock.AnythingOfType("time.Time")).Return(nil)

	before := time.Now()
	until, err := newRoleService(store).Timeout(ctx, "loud@example.com", 10)

	require.NoError(t, err)
	assert.WithinDuration(t, before.Add(10*time.Minute), until, 5*time.Second)
	store.AssertExpectations(t)
}

func TestRole_Timeout_NegativeMinutesAccepted(t *testing.T) {
	ctx := context.Background()
	store := &MockUserStore{}
	store.On("GetByEmail", ctx, "loud@example.com").Return(model.User{Email: "loud@example.com", Role: model.RoleUser}, nil)
	store.On("SetTimeout", ctx, "loud@example.com", mock.AnythingOfType("time.Time")).Return(nil)

	until, err := newRoleService(store).Timeout(ctx, "loud@example.com", -5)

	require.NoError(t, err)
	assert.True(t, until.Before(time.Now()))
}

func TestRole_SetRole_StoreError(t *testing.T) {
	ctx := context.Background()
	store := &MockUserStore{}
	storeErr := errors.New("connection reset")
	store.On("GetByEmail", ctx, "bob@example.com").Return(model.User{}, storeErr)

	err := newRoleService(store).PromoteToAdmin(ctx, "bob@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}
