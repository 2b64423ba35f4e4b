package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

//
// ===========================================================
//  ENV UTILITIES
// ===========================================================
//

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

//
// ===========================================================
//  CONFIRMATION CODE GENERATOR
// ===========================================================
//

const confirmationCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateConfirmationCode returns n chars from A-Z0-9, e.g. "AB4D93KF".
// Uses crypto/rand + rand.Int (math/big) to avoid modulo bias.
func GenerateConfirmationCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(confirmationCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(confirmationCharset[num.Int64()])
	}
	return sb.String(), nil
}

// NormalizeConfirmationCode -> uppercase, remove non-alnum
func NormalizeConfirmationCode(code string) string {
	s := strings.ToUpper(strings.TrimSpace(code))
	re := regexp.MustCompile(`[^A-Z0-9]`)
	return re.ReplaceAllString(s, "")
}

// Validate format: "AB4D93KF"
func IsValidConfirmationCodeFormat(code string) bool {
	if code == "" {
		return false
	}
	match, _ := regexp.MatchString(`^[A-Za-z0-9]{8}$`, strings.TrimSpace(code))
	return match
}

//
// ===========================================================
//  DATE & PRICING HELPERS
// ===========================================================
//

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// Nights returns the number of nights between two dates.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// PriceFor computes pricePerNight * nights rounded to 2 decimal places.
func PriceFor(pricePerNight decimal.Decimal, nights int) decimal.Decimal {
	return pricePerNight.Mul(decimal.NewFromInt(int64(nights))).Round(2)
}

// DefaultStayDates suggests tomorrow for check-in and the day after for
// check-out, formatted for the booking form.
func DefaultStayDates(now time.Time) (checkIn string, checkOut string) {
	tomorrow := now.UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
	return tomorrow.Format(DateLayout), tomorrow.AddDate(0, 0, 1).Format(DateLayout)
}

// PtrTime returns pointer to time.Time
func PtrTime(t time.Time) *time.Time { return &t }
