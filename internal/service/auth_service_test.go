package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/velora-store/admin-backend/internal/models"
	"github.com/velora-store/admin-backend/internal/repository"
)

// mockAuthRepository реализует AuthRepository для тестов.
type mockAuthRepository struct {
	usersByEmail map[string]*models.User
}

func newMockAuthRepository() *mockAuthRepository {
	return &mockAuthRepository{usersByEmail: make(map[string]*models.User)}
}

func (m *mockAuthRepository) Create(ctx context.Context, user *models.User) error {
	if _, ok := m.usersByEmail[user.Email]; ok {
		return repository.ErrEmailTaken
	}
	user.ID = primitive.NewObjectID()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	m.usersByEmail[user.Email] = user
	return nil
}

func (m *mockAuthRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if user, ok := m.usersByEmail[email]; ok {
		return user, nil
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockAuthRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, user := range m.usersByEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Email:            "Test@Example.com",
		Password:         "password123",
		FirstName:        "Test",
		LastName:         "User",
		Country:          "India",
		City:             "Mumbai",
		DateOfBirth:      time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Gender:           models.GenderFemale,
		PhoneCountryCode: "+91",
		PhoneNo:          "9876543210",
	}
}

func TestAuthService_Register(t *testing.T) {
	repo := newMockAuthRepository()
	tokenManager := NewTokenManager("secret", time.Hour)
	service := NewAuthService(repo, tokenManager)

	ctx := context.Background()
	res, err := service.Register(ctx, validRegisterInput())
	if err != nil {
		t.Fatalf("register вернул ошибку: %v", err)
	}

	if res.User.ID.IsZero() {
		t.Fatalf("user ID должен быть установлен")
	}
	if res.Token == "" {
		t.Fatalf("ожидался токен")
	}
	if res.User.Email != "test@example.com" {
		t.Fatalf("email должен нормализоваться, получили %q", res.User.Email)
	}
	if res.User.Role != models.RoleAdmin {
		t.Fatalf("роль по умолчанию admin, получили %q", res.User.Role)
	}
	if res.User.PasswordHash == "password123" {
		t.Fatalf("пароль не должен храниться в открытом виде")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newMockAuthRepository()
	service := NewAuthService(repo, NewTokenManager("secret", time.Hour))

	ctx := context.Background()
	if _, err := service.Register(ctx, validRegisterInput()); err != nil {
		t.Fatalf("первая регистрация вернула ошибку: %v", err)
	}
	if _, err := service.Register(ctx, validRegisterInput()); err == nil {
		t.Fatalf("повторная регистрация того же email должна быть отклонена")
	}
}

func TestAuthService_Profile(t *testing.T) {
	repo := newMockAuthRepository()
	service := NewAuthService(repo, NewTokenManager("secret", time.Hour))
	ctx := context.Background()

	res, err := service.Register(ctx, validRegisterInput())
	if err != nil {
		t.Fatalf("register вернул ошибку: %v", err)
	}

	user, err := service.Profile(ctx, res.User.ID.Hex())
	if err != nil {
		t.Fatalf("profile вернул ошибку: %v", err)
	}
	if user.Email != res.User.Email {
		t.Fatalf("ожидался профиль %q, получили %q", res.User.Email, user.Email)
	}

	if _, err := service.Profile(ctx, "not-a-hex-id"); !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("некорректный id должен давать ErrUserNotFound, получили %v", err)
	}
	if _, err := service.Profile(ctx, primitive.NewObjectID().Hex()); !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("чужой id должен давать ErrUserNotFound, получили %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := newMockAuthRepository()
	service := NewAuthService(repo, NewTokenManager("secret", time.Hour))
	ctx := context.Background()

	cases := map[string]func(*RegisterInput){
		"bad email":    func(in *RegisterInput) { in.Email = "not-an-email" },
		"short pass":   func(in *RegisterInput) { in.Password = "12345" },
		"no firstName": func(in *RegisterInput) { in.FirstName = " " },
		"bad gender":   func(in *RegisterInput) { in.Gender = "unknown" },
		"bad phone":    func(in *RegisterInput) { in.PhoneNo = "12ab34" },
		"bad role":     func(in *RegisterInput) { in.Role = "superuser" },
	}

	for name, mutate := range cases {
		in := validRegisterInput()
		mutate(&in)
		if _, err := service.Register(ctx, in); err == nil {
			t.Fatalf("%s: регистрация должна быть отклонена", name)
		}
	}

	if len(repo.usersByEmail) != 0 {
		t.Fatalf("невалидные регистрации не должны создавать пользователей")
	}
}
