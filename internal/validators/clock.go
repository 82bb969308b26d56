package validators

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// IsClock reports whether s is a valid HH:MM wall-clock string.
func IsClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}

	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')

	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return h >= 0 && h <= 23 && m >= 0 && m <= 59
}

// ClockBefore reports a < b for two HH:MM strings. Lexicographic order is
// correct for zero-padded clock strings.
func ClockBefore(a, b string) bool {
	return a < b
}

// Register installs the hhmm tag on gin's binding validator.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			return IsClock(fl.Field().String())
		})
	}
}
