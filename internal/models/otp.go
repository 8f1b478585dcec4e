package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OTPChallenge — одноразовый код входа, привязанный к email.
// На один email существует не больше одной записи (уникальный индекс),
// повторный запрос кода заменяет её целиком. Хранится только bcrypt-хэш
// кода, открытый текст уходит пользователю письмом и нигде не сохраняется.
type OTPChallenge struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	CodeHash  string             `bson:"code_hash" json:"-"`
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"`
	Attempts  int                `bson:"attempts" json:"attempts"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Live сообщает, не истёк ли срок действия кода на момент now.
func (c *OTPChallenge) Live(now time.Time) bool {
	return now.Before(c.ExpiresAt)
}
