package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/velora-store/admin-backend/internal/models"
	"github.com/velora-store/admin-backend/internal/repository"
	"github.com/velora-store/admin-backend/internal/validation"
)

// AuthRepository описывает зависимости AuthService от слоя хранилища.
type AuthRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// RegisterInput содержит данные пользователя при регистрации.
type RegisterInput struct {
	Email             string
	Password          string
	FirstName         string
	LastName          string
	Country           string
	City              string
	DateOfBirth       time.Time
	Gender            string
	PhoneCountryCode  string
	PhoneNo           string
	WhatsappSubscribe bool
	Role              string
}

// AuthResult возвращает итог регистрации.
type AuthResult struct {
	User  *models.User
	Token string
}

// AuthService инкапсулирует бизнес-логику регистрации.
type AuthService struct {
	repo   AuthRepository
	tokens *TokenManager
}

// NewAuthService создаёт сервис аутентификации.
func NewAuthService(repo AuthRepository, tokens *TokenManager) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
	}
}

// Register создаёт нового пользователя и сразу выпускает для него токен.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}
	if err := validation.ValidateNonEmpty("имя", in.FirstName); err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}
	if err := validation.ValidateNonEmpty("фамилия", in.LastName); err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}
	if err := validation.ValidateGender(in.Gender); err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}
	if err := validation.ValidatePhone(in.PhoneCountryCode, in.PhoneNo); err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}

	role := in.Role
	if role == "" {
		role = models.RoleAdmin
	}
	if err := validation.ValidateRole(role); err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}

	email := validation.NormalizeEmail(in.Email)
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("auth service: email уже зарегистрирован")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth service: не удалось захешировать пароль: %w", err)
	}

	user := &models.User{
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		Email:             email,
		PasswordHash:      string(passHash),
		Country:           in.Country,
		City:              in.City,
		DateOfBirth:       in.DateOfBirth,
		Gender:            in.Gender,
		PhoneCountryCode:  in.PhoneCountryCode,
		PhoneNo:           in.PhoneNo,
		WhatsappSubscribe: in.WhatsappSubscribe,
		Role:              role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			// Гонка двух регистраций: уникальный индекс решает её за нас.
			return nil, fmt.Errorf("auth service: email уже зарегистрирован")
		}
		return nil, err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

// Profile возвращает профиль пользователя по идентификатору из токена.
// Некорректный hex означает, что такого пользователя не существует.
func (s *AuthService) Profile(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	return s.repo.GetByID(ctx, oid)
}
