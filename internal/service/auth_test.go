package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"socialnet/internal/config"
	"socialnet/internal/model"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret",
		AccessTokenMaxAge: 3600,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	mockRepo := &mockUserRepo{
		createFn: func(ctx context.Context, user *model.User) error {
			user.ID = 1
			return nil
		},
	}
	svc := NewAuthService(mockRepo, testConfig())

	req := &model.RegisterRequest{
		Name:     "alice",
		Password: "securepassword123",
	}

	user, err := svc.Register(context.Background(), req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if user.Name != "alice" {
		t.Errorf("name = %q, want %q", user.Name, "alice")
	}

	// An omitted role defaults to user.
	if user.Role != model.RoleUser {
		t.Errorf("role = %q, want %q", user.Role, model.RoleUser)
	}

	// Password must be stored hashed, never in plain text.
	if user.PasswordHashed == req.Password {
		t.Error("password should be hashed, not stored in plain text")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHashed), []byte(req.Password)) != nil {
		t.Error("password hash should be valid bcrypt hash")
	}

	if mockRepo.createCalls != 1 {
		t.Errorf("Create called %d times, want 1", mockRepo.createCalls)
	}
}

func TestAuthService_Register_FirstAdmin(t *testing.T) {
	mockRepo := &mockUserRepo{
		adminExistsFn: func(ctx context.Context) (bool, error) {
			return false, nil
		},
	}
	svc := NewAuthService(mockRepo, testConfig())

	user, err := svc.Register(context.Background(), &model.RegisterRequest{
		Name:     "root",
		Password: "password123",
		Role:     model.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != model.RoleAdmin {
		t.Errorf("role = %q, want %q", user.Role, model.RoleAdmin)
	}
}

func TestAuthService_Register_SecondAdminRejected(t *testing.T) {
	mockRepo := &mockUserRepo{
		adminExistsFn: func(ctx context.Context) (bool, error) {
			return true, nil
		},
	}
	svc := NewAuthService(mockRepo, testConfig())

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Name:     "wannabe",
		Password: "password123",
		Role:     model.RoleAdmin,
	})
	if !errors.Is(err, model.ErrAdminExists) {
		t.Errorf("error = %v, want %v", err, model.ErrAdminExists)
	}
	if mockRepo.createCalls != 0 {
		t.Error("Create should not be called when an admin already exists")
	}
}

func TestAuthService_Register_NameTaken(t *testing.T) {
	mockRepo := &mockUserRepo{
		existsByNameFn: func(ctx context.Context, name string) (bool, error) {
			return true, nil
		},
	}
	svc := NewAuthService(mockRepo, testConfig())

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Name:     "alice",
		Password: "password123",
	})
	if !errors.Is(err, model.ErrNameTaken) {
		t.Errorf("error = %v, want %v", err, model.ErrNameTaken)
	}
	if mockRepo.createCalls != 0 {
		t.Error("Create should not be called when the name is taken")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     model.RegisterRequest
		wantErr error
	}{
		{
			name:    "empty name",
			req:     model.RegisterRequest{Name: "   ", Password: "password123"},
			wantErr: model.ErrInvalidCredentials,
		},
		{
			name:    "empty password",
			req:     model.RegisterRequest{Name: "alice", Password: ""},
			wantErr: model.ErrInvalidCredentials,
		},
		{
			name:    "unknown role",
			req:     model.RegisterRequest{Name: "alice", Password: "password123", Role: "guest"},
			wantErr: model.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(&mockUserRepo{}, testConfig())
			_, err := svc.Register(context.Background(), &tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	validPassword := "correctpassword"
	validHash, _ := bcrypt.GenerateFromPassword([]byte(validPassword), bcrypt.MinCost)

	testUser := &model.User{
		ID:             1,
		Name:           "alice",
		PasswordHashed: string(validHash),
		Role:           model.RoleUser,
	}

	tests := []struct {
		name      string
		password  string
		getByName func(ctx context.Context, name string) (*model.User, error)
		wantErr   error
		wantToken bool
	}{
		{
			name:     "successful login",
			password: validPassword,
			getByName: func(ctx context.Context, name string) (*model.User, error) {
				return testUser, nil
			},
			wantToken: true,
		},
		{
			name:     "user not found",
			password: "anypassword",
			getByName: func(ctx context.Context, name string) (*model.User, error) {
				return nil, model.ErrUserNotFound
			},
			// Don't reveal whether the account exists.
			wantErr: model.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			password: "wrongpassword",
			getByName: func(ctx context.Context, name string) (*model.User, error) {
				return testUser, nil
			},
			wantErr: model.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(&mockUserRepo{getByNameFn: tt.getByName}, testConfig())

			token, user, err := svc.Login(context.Background(), &model.LoginRequest{
				Name:     "alice",
				Password: tt.password,
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantToken && token == "" {
				t.Error("expected a signed token")
			}
			if user == nil || user.ID != testUser.ID {
				t.Errorf("user = %v, want id %d", user, testUser.ID)
			}
		})
	}
}
