// session реализует клиентскую работу с сессией: поиск токена в cookie,
// декодирование JWT без проверки подписи и определение его срока жизни.
//
// Подпись токена здесь не проверяется: её проверяет бэкенд на каждом вызове.
// Фронту нужны только sub (id пользователя) и exp.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken — токен не разбирается (не три сегмента, битый base64,
// не JSON, нет exp). Такой токен считается недействительным.
var ErrMalformedToken = errors.New("malformed token")

// Claims — интересующая нас часть payload.
type Claims struct {
	jwt.RegisteredClaims
}

var parser = jwt.NewParser()

// Decode разбирает payload (средний сегмент) токена без проверки подписи.
// Заголовок не читается: alg и typ фронту не нужны.
func Decode(token string) (*Claims, error) {
	const op = "session.Decode"

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%s: %w: %d segments", op, ErrMalformedToken, len(parts))
	}

	payload, err := parser.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrMalformedToken, err)
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrMalformedToken, err)
	}

	if claims.ExpiresAt == nil {
		return nil, fmt.Errorf("%s: %w: exp is missing", op, ErrMalformedToken)
	}

	return &claims, nil
}

// Lookup ищет в "сыром" заголовке Cookie значение с именем name.
// Пары разделены ';', ключ и значение — первым '='.
func Lookup(raw, name string) (string, bool) {
	if name == "" {
		return "", false
	}

	for _, part := range strings.Split(raw, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}

		if key == name {
			return value, true
		}
	}

	return "", false
}
