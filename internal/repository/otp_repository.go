package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/velora-store/admin-backend/internal/db"
	"github.com/velora-store/admin-backend/internal/models"
)

// ErrChallengeNotFound возвращается, когда живого кода для email нет:
// код не запрашивали, он истёк или уже был использован.
var ErrChallengeNotFound = errors.New("otp challenge not found")

// OTPRepository отвечает за работу с коллекцией otps.
// Инвариант «не больше одного живого кода на email» держится на двух вещах:
// уникальном индексе по email и upsert-замене всей записи при новом запросе.
type OTPRepository struct {
	collection *mongo.Collection
}

// NewOTPRepository создаёт экземпляр репозитория.
func NewOTPRepository(database *mongo.Database) *OTPRepository {
	return &OTPRepository{collection: database.Collection(db.CollectionOTPs)}
}

// Upsert заменяет запись кода для email целиком: свежий хэш, свежий срок,
// счётчик попыток обнуляется. Конкурентные запросы для одного email
// сериализуются Mongo на уровне документа, побеждает последний писатель.
func (r *OTPRepository) Upsert(ctx context.Context, challenge *models.OTPChallenge) error {
	challenge.Email = strings.ToLower(strings.TrimSpace(challenge.Email))
	challenge.CreatedAt = time.Now()

	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"email": challenge.Email},
		challenge,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("otp repository: upsert: %w", err)
	}

	return nil
}

// GetLive возвращает неистёкший код для email.
func (r *OTPRepository) GetLive(ctx context.Context, email string) (*models.OTPChallenge, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var challenge models.OTPChallenge
	err := r.collection.FindOne(ctx, bson.M{
		"email":      email,
		"expires_at": bson.M{"$gt": time.Now()},
	}).Decode(&challenge)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("otp repository: get live: %w", err)
	}

	return &challenge, nil
}

// IncrementAttempts атомарно увеличивает счётчик попыток живого кода и
// возвращает новое значение. Атомарность $inc на стороне Mongo исключает
// потерянные обновления при конкурентных проверках: 0→1→2, не 0→1, 0→1.
func (r *OTPRepository) IncrementAttempts(ctx context.Context, email string) (int, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var updated models.OTPChallenge
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{
			"email":      email,
			"expires_at": bson.M{"$gt": time.Now()},
		},
		bson.M{"$inc": bson.M{"attempts": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, ErrChallengeNotFound
		}
		return 0, fmt.Errorf("otp repository: increment attempts: %w", err)
	}

	return updated.Attempts, nil
}

// Delete удаляет код для email. Вызывается после успешной проверки,
// чтобы тот же код нельзя было предъявить повторно.
func (r *OTPRepository) Delete(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := r.collection.DeleteOne(ctx, bson.M{"email": email}); err != nil {
		return fmt.Errorf("otp repository: delete: %w", err)
	}

	return nil
}
