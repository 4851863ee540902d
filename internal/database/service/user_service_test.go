package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/coursedesk/coursedesk/internal/database/models"
	"github.com/coursedesk/coursedesk/internal/database/repository"
	"github.com/coursedesk/coursedesk/internal/database/service"
	"github.com/coursedesk/coursedesk/internal/testutil"
)

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		setupMocks func(*testutil.MockUserRepository)
		wantErr    error
	}{
		{
			name:  "success",
			email: "joe@smith.com",
			setupMocks: func(userRepo *testutil.MockUserRepository) {
				userRepo.On("FindByEmail", mock.Anything, "joe@smith.com").Return(nil, repository.ErrUserNotFound)
				userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
					user := args.Get(1).(*models.User)
					user.ID = 1
				}).Return(nil)
			},
		},
		{
			name:  "email already exists",
			email: "existing@smith.com",
			setupMocks: func(userRepo *testutil.MockUserRepository) {
				userRepo.On("FindByEmail", mock.Anything, "existing@smith.com").
					Return(&models.User{ID: 1, EmailAddress: "existing@smith.com"}, nil)
			},
			wantErr: service.ErrEmailAlreadyExists,
		},
		{
			name:  "insert loses race to a concurrent registration",
			email: "raced@smith.com",
			setupMocks: func(userRepo *testutil.MockUserRepository) {
				userRepo.On("FindByEmail", mock.Anything, "raced@smith.com").Return(nil, repository.ErrUserNotFound)
				userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(repository.ErrDuplicateEmail)
			},
			wantErr: service.ErrEmailAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(testutil.MockUserRepository)
			tt.setupMocks(userRepo)

			userService := service.NewUserService(userRepo, testutil.Logger())
			user, err := userService.Register(context.Background(), "Joe", "Smith", tt.email, "joepassword")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint(1), user.ID)
				assert.Equal(t, "Joe", user.FirstName)
				// Stored password is a verifiable hash, never the plaintext
				assert.NotEqual(t, "joepassword", user.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("joepassword")))
			}

			userRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Authenticate(t *testing.T) {
	// Password hash for "password" (bcrypt)
	validPasswordHash := "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

	tests := []struct {
		name       string
		email      string
		password   string
		setupMocks func(*testutil.MockUserRepository)
		wantErr    error
	}{
		{
			name:     "success",
			email:    "joe@smith.com",
			password: "password",
			setupMocks: func(userRepo *testutil.MockUserRepository) {
				userRepo.On("FindByEmail", mock.Anything, "joe@smith.com").Return(&models.User{
					ID:           1,
					EmailAddress: "joe@smith.com",
					Password:     validPasswordHash,
				}, nil)
			},
		},
		{
			name:     "user not found",
			email:    "nobody@smith.com",
			password: "password",
			setupMocks: func(userRepo *testutil.MockUserRepository) {
				userRepo.On("FindByEmail", mock.Anything, "nobody@smith.com").Return(nil, repository.ErrUserNotFound)
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "joe@smith.com",
			password: "wrong",
			setupMocks: func(userRepo *testutil.MockUserRepository) {
				userRepo.On("FindByEmail", mock.Anything, "joe@smith.com").Return(&models.User{
					ID:           1,
					EmailAddress: "joe@smith.com",
					Password:     validPasswordHash,
				}, nil)
			},
			wantErr: service.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(testutil.MockUserRepository)
			tt.setupMocks(userRepo)

			userService := service.NewUserService(userRepo, testutil.Logger())
			user, err := userService.Authenticate(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint(1), user.ID)
			}

			userRepo.AssertExpectations(t)
		})
	}
}
