package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/velora-store/admin-backend/internal/logger"
	"github.com/velora-store/admin-backend/internal/models"
	"github.com/velora-store/admin-backend/internal/repository"
	"github.com/velora-store/admin-backend/internal/validation"
)

// OTPLedger описывает зависимости OTPService от хранилища кодов.
// Инкремент счётчика попыток обязан быть атомарным read-modify-write
// на стороне хранилища, иначе конкурентные проверки теряют обновления.
type OTPLedger interface {
	Upsert(ctx context.Context, challenge *models.OTPChallenge) error
	GetLive(ctx context.Context, email string) (*models.OTPChallenge, error)
	IncrementAttempts(ctx context.Context, email string) (int, error)
	Delete(ctx context.Context, email string) error
}

// IdentityStore описывает доступ OTPService к записям пользователей.
type IdentityStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// ChallengeStatus — исход запроса кода.
type ChallengeStatus string

const (
	// ChallengeSent — код сохранён и письмо ушло.
	ChallengeSent ChallengeStatus = "sent"
	// ChallengeUnregistered — email не зарегистрирован, код не создавался.
	// Это не ошибка: клиенту следует перейти к регистрации.
	ChallengeUnregistered ChallengeStatus = "unregistered"
	// ChallengeDispatchFailed — код сохранён, но письмо отправить не удалось.
	// Повторный запрос перезапишет код, поэтому исход безопасно ретраить.
	ChallengeDispatchFailed ChallengeStatus = "dispatch_failed"
)

// VerifyStatus — исход проверки кода. Исходы взаимоисключающие.
type VerifyStatus string

const (
	VerifyExpiredOrNotFound VerifyStatus = "expired_or_not_found"
	VerifyMaxAttempts       VerifyStatus = "max_attempts"
	VerifyMismatch          VerifyStatus = "mismatch"
	VerifyUserNotFound      VerifyStatus = "user_not_found"
	VerifySuccess           VerifyStatus = "success"
)

// VerifyResult возвращает итог проверки кода.
// Remaining заполняется только при VerifyMismatch, Token — при VerifySuccess.
type VerifyResult struct {
	Status    VerifyStatus
	Remaining int
	Token     string
}

// OTPService владеет жизненным циклом одноразовых кодов входа:
// создание, доставка, проверка и выпуск токена при успехе.
// Никто кроме него записи кодов не трогает.
type OTPService struct {
	users       IdentityStore
	ledger      OTPLedger
	mailer      Mailer
	tokens      *TokenManager
	ttl         time.Duration
	maxAttempts int
}

// NewOTPService создаёт сервис одноразовых кодов.
func NewOTPService(users IdentityStore, ledger OTPLedger, mailer Mailer, tokens *TokenManager, ttl time.Duration, maxAttempts int) *OTPService {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &OTPService{
		users:       users,
		ledger:      ledger,
		mailer:      mailer,
		tokens:      tokens,
		ttl:         ttl,
		maxAttempts: maxAttempts,
	}
}

// RequestChallenge создаёт одноразовый код для email и отправляет его письмом.
// Для незарегистрированного email код не создаётся и письмо не уходит.
// Повторный запрос заменяет прежний код: живым остаётся ровно один.
func (s *OTPService) RequestChallenge(ctx context.Context, email string) (ChallengeStatus, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return "", fmt.Errorf("otp service: %w", err)
	}
	email = validation.NormalizeEmail(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ChallengeUnregistered, nil
		}
		return "", err
	}

	code, err := generateOTP()
	if err != nil {
		return "", fmt.Errorf("otp service: не удалось сгенерировать код: %w", err)
	}

	codeHash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("otp service: не удалось захешировать код: %w", err)
	}

	challenge := &models.OTPChallenge{
		Email:     email,
		CodeHash:  string(codeHash),
		ExpiresAt: time.Now().Add(s.ttl),
		Attempts:  0,
	}

	if err := s.ledger.Upsert(ctx, challenge); err != nil {
		return "", err
	}

	// Код уже сохранён. Провал доставки не откатывает запись: исход её
	// побочного эффекта неизвестен, а повторный запрос просто перезапишет код.
	if err := s.mailer.SendOTPEmail(ctx, user.Email, code); err != nil {
		if logger.Log != nil {
			logger.Log.WithFields(map[string]interface{}{
				"email": user.Email,
				"error": err.Error(),
			}).Error("otp service: не удалось отправить код")
		}
		return ChallengeDispatchFailed, nil
	}

	return ChallengeSent, nil
}

// VerifyChallenge проверяет предъявленный код и при успехе выпускает токен.
// Возвращается ровно один из пяти исходов VerifyStatus.
func (s *OTPService) VerifyChallenge(ctx context.Context, email, code string) (*VerifyResult, error) {
	if email == "" || code == "" {
		return nil, fmt.Errorf("otp service: email и код обязательны")
	}
	email = validation.NormalizeEmail(email)

	challenge, err := s.ledger.GetLive(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return &VerifyResult{Status: VerifyExpiredOrNotFound}, nil
		}
		return nil, err
	}

	// Порог проверяется до сравнения: заблокированный код не тратит
	// bcrypt-сравнение и даёт стабильный исход независимо от введённого кода.
	if challenge.Attempts >= s.maxAttempts {
		return &VerifyResult{Status: VerifyMaxAttempts}, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(challenge.CodeHash), []byte(code)); err != nil {
		attempts, incErr := s.ledger.IncrementAttempts(ctx, email)
		if incErr != nil {
			if errors.Is(incErr, repository.ErrChallengeNotFound) {
				// Код истёк или был удалён между чтением и инкрементом.
				return &VerifyResult{Status: VerifyExpiredOrNotFound}, nil
			}
			return nil, incErr
		}

		return &VerifyResult{
			Status:    VerifyMismatch,
			Remaining: s.maxAttempts - attempts,
		}, nil
	}

	// Код одноразовый: удаляем запись до выпуска токена, чтобы повтор
	// того же кода гарантированно не прошёл.
	if err := s.ledger.Delete(ctx, email); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return &VerifyResult{Status: VerifyUserNotFound}, nil
		}
		return nil, err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	return &VerifyResult{Status: VerifySuccess, Token: token}, nil
}

// generateOTP возвращает равномерно распределённый 6-значный код
// с сохранением ведущих нулей.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
