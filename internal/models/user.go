package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Роли пользователей. Закрытое множество: ничего кроме этих значений
// в поле role не записывается.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Пол пользователя.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// User описывает зарегистрированного пользователя админки.
type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName         string             `bson:"first_name" json:"firstName"`
	LastName          string             `bson:"last_name" json:"lastName"`
	Email             string             `bson:"email" json:"email"`
	PasswordHash      string             `bson:"password_hash" json:"-"`
	Country           string             `bson:"country" json:"country"`
	City              string             `bson:"city" json:"city"`
	DateOfBirth       time.Time          `bson:"date_of_birth" json:"dateOfBirth"`
	Gender            string             `bson:"gender" json:"gender"`
	PhoneCountryCode  string             `bson:"phone_country_code" json:"phoneCountryCode"`
	PhoneNo           string             `bson:"phone_no" json:"phoneNo"`
	WhatsappSubscribe bool               `bson:"whatsapp_subscribe" json:"whatsappSubscribe"`
	Role              string             `bson:"role" json:"role"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}
