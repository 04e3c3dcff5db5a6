package service

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"secret-santa-service/internal/domain"
)

const (
	maxNameLength   = 100
	maxTextLength   = 2000
	maxWishesLength = 2000
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// NormalizeText обрезает пробелы и приводит строку к NFC,
// чтобы одинаково выглядящие имена совпадали побайтно.
func NormalizeText(value string) string {
	return norm.NFC.String(strings.TrimSpace(value))
}

// ValidateID проверяет, что идентификатор является UUID.
func ValidateID(kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalid("%s cannot be empty", kind)
	}
	if _, err := uuid.Parse(id); err != nil {
		return invalid("%s must be a UUID", kind)
	}
	return nil
}

// ValidateGameName проверяет название игры.
func ValidateGameName(name string) error {
	if name == "" {
		return invalid("game name cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return invalid("game name too long (max %d characters)", maxNameLength)
	}
	return nil
}

// ValidateImageURL допускает пустое значение либо абсолютный http(s) адрес.
func ValidateImageURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return invalid("image url must be an absolute http(s) URL")
	}
	return nil
}

// ValidateGameText проверяет описание игры.
func ValidateGameText(text string) error {
	if utf8.RuneCountInString(text) > maxTextLength {
		return invalid("game text too long (max %d characters)", maxTextLength)
	}
	return nil
}

// ValidateParticipantName проверяет имя участника.
func ValidateParticipantName(name string) error {
	if name == "" {
		return invalid("participant name cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return invalid("participant name too long (max %d characters)", maxNameLength)
	}
	return nil
}

// NormalizeEmail разбирает адрес и возвращает его в нижнем регистре без отображаемого имени.
func NormalizeEmail(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", invalid("email cannot be empty")
	}
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw {
		return "", invalid("email %q is not a valid address", raw)
	}
	return strings.ToLower(addr.Address), nil
}

// ValidateWishes проверяет список пожеланий.
func ValidateWishes(wishes string) error {
	if utf8.RuneCountInString(wishes) > maxWishesLength {
		return invalid("wishes too long (max %d characters)", maxWishesLength)
	}
	return nil
}
