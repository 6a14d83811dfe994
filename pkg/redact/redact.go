// redact маскирует чувствительные значения перед логированием.
package redact

import "strings"

// Email оставляет первые две руны локальной части и домен целиком.
func Email(s string) string {
	parts := strings.Split(s, "@")
	if len(parts) != 2 {
		return "***"
	}

	local, domain := []rune(parts[0]), parts[1]
	if len(local) > 2 {
		return string(local[:2]) + "***@" + domain
	}

	return "***@" + domain
}

// Token оставляет последние 6 символов подписи JWT: этого хватает, чтобы
// сопоставить записи лога одной сессии.
func Token(tok string) string {
	i := strings.LastIndexByte(tok, '.')
	sig := tok[i+1:]

	if len(sig) < 12 {
		return "[REDACTED_TOKEN]"
	}

	return "..." + sig[len(sig)-6:]
}
