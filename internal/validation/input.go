package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/velora-store/admin-backend/internal/models"
)

// Константы валидации
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72 // предел bcrypt
)

var (
	localPartRegex = regexp.MustCompile(`^[a-z0-9._+-]+$`)
	domainRegex    = regexp.MustCompile(`^[a-z0-9.-]+\.[a-z]{2,}$`)
	phoneRegex     = regexp.MustCompile(`^\d{7,15}$`)
	phoneCodeRegex = regexp.MustCompile(`^\+?\d{1,4}$`)
)

// NormalizeEmail приводит email к каноническому виду для поиска и хранения.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail проверяет формат email.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email обязателен")
	}

	email = NormalizeEmail(email)

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return fmt.Errorf("некорректный формат email")
	}

	localPart := parts[0]
	domainPart := parts[1]

	if len(localPart) == 0 || len(localPart) > 64 {
		return fmt.Errorf("локальная часть email должна быть от 1 до 64 символов")
	}

	if len(domainPart) == 0 || len(domainPart) > 255 {
		return fmt.Errorf("доменная часть email должна быть от 1 до 255 символов")
	}

	if !strings.Contains(domainPart, ".") {
		return fmt.Errorf("доменная часть email должна содержать точку")
	}

	if !localPartRegex.MatchString(localPart) {
		return fmt.Errorf("локальная часть email содержит недопустимые символы")
	}

	if !domainRegex.MatchString(domainPart) {
		return fmt.Errorf("доменная часть email имеет некорректный формат")
	}

	return nil
}

// ValidatePassword проверяет пароль при регистрации.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("пароль обязателен")
	}
	if len(password) < MinPasswordLength {
		return fmt.Errorf("пароль должен быть не менее %d символов", MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return fmt.Errorf("пароль должен быть не более %d символов", MaxPasswordLength)
	}
	return nil
}

// ValidateRole проверяет, что роль входит в закрытое множество ролей.
func ValidateRole(role string) error {
	if role != models.RoleUser && role != models.RoleAdmin {
		return fmt.Errorf("роль должна быть %s или %s", models.RoleUser, models.RoleAdmin)
	}
	return nil
}

// ValidateGender проверяет значение пола.
func ValidateGender(gender string) error {
	switch gender {
	case models.GenderMale, models.GenderFemale, models.GenderOther:
		return nil
	}
	return fmt.Errorf("пол должен быть %s, %s или %s", models.GenderMale, models.GenderFemale, models.GenderOther)
}

// ValidatePhone проверяет номер телефона и код страны.
func ValidatePhone(countryCode, phoneNo string) error {
	if !phoneCodeRegex.MatchString(countryCode) {
		return fmt.Errorf("некорректный телефонный код страны")
	}
	if !phoneRegex.MatchString(phoneNo) {
		return fmt.Errorf("номер телефона должен содержать от 7 до 15 цифр")
	}
	return nil
}

// ValidateNonEmpty проверяет, что строка не пустая.
func ValidateNonEmpty(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s не может быть пустым", fieldName)
	}
	return nil
}
