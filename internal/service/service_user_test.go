package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/mock"
	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (UserService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	return NewUserService(repo, hasher, logger.Nop()), repo, hasher
}

func ptr(s string) *string { return &s }

func TestUserService_GetAndList(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().FindUserByID(ctx, int64(1)).Return(models.User{UserID: 1}, nil)
	repo.EXPECT().ListUsers(ctx).Return([]models.User{{UserID: 1}, {UserID: 2}}, nil)

	user, err := svc.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserService_CreateUser_HashesSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	hasher.EXPECT().Hash("secret1").Return("bcrypt-hash", nil)
	repo.EXPECT().CreateUser(ctx, models.User{Email: "a@x.com", PasswordHash: "bcrypt-hash"}).
		Return(models.User{UserID: 5, Email: "a@x.com", PasswordHash: "bcrypt-hash"}, nil)

	user, err := svc.CreateUser(ctx, models.CreateUserRequest{Email: "a@x.com", PasswordHash: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.UserID)
}

func TestUserService_CreateUser_HashingFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, hasher := newTestUserSvc(t, ctrl)

	hasher.EXPECT().Hash(gomock.Any()).Return("", utils.ErrHashingFailed)

	_, err := svc.CreateUser(context.Background(), models.CreateUserRequest{Email: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, utils.ErrHashingFailed)
}

func TestUserService_UpdateUser(t *testing.T) {
	tests := []struct {
		name       string
		request    models.UpdateUserRequest
		expectHash bool
		wantUpdate models.UserUpdate
	}{
		{
			name:       "email only does not hash",
			request:    models.UpdateUserRequest{Email: ptr("b@x.com")},
			wantUpdate: models.UserUpdate{UserID: 3, Email: ptr("b@x.com")},
		},
		{
			name:       "password is hashed",
			request:    models.UpdateUserRequest{Password: ptr("secret2")},
			expectHash: true,
			wantUpdate: models.UserUpdate{UserID: 3, PasswordHash: ptr("bcrypt-hash")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo, hasher := newTestUserSvc(t, ctrl)
			ctx := context.Background()

			if tt.expectHash {
				hasher.EXPECT().Hash("secret2").Return("bcrypt-hash", nil)
			}
			repo.EXPECT().UpdateUser(ctx, tt.wantUpdate).Return(models.User{UserID: 3}, nil)

			_, err := svc.UpdateUser(ctx, 3, tt.request)
			require.NoError(t, err)
		})
	}
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().DeleteUser(ctx, int64(9)).Return(store.ErrUserNotFound)

	assert.ErrorIs(t, svc.DeleteUser(ctx, 9), store.ErrUserNotFound)
}
