package strcase

import (
	"strings"
	"unicode"
)

// ToLowerSnake converts a string to snake_case (initialism-safe).
func ToLowerSnake(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)

	for i := range runes {
		r := runes[i]

		// Word boundaries:
		// 1) lower/digit -> upper  (userID -> user_id)
		// 2) acronym -> word       (HTTPServer -> http_server)
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			var next rune
			if i+1 < len(runes) {
				next = runes[i+1]
			}

			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				b.WriteRune('_')
			} else if unicode.IsUpper(prev) && next != 0 && unicode.IsLower(next) {
				b.WriteRune('_')
			}
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
