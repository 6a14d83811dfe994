package session

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// Jar — хранилище cookie. Позволяет тестировать логику сессии без HTTP.
type Jar interface {
	Get(name string) (string, bool)
	Set(name, value string, maxAge time.Duration)
	Expire(name string)
}

// HTTPJar читает cookie из запроса и пишет Set-Cookie в ответ.
type HTTPJar struct {
	r *http.Request
	w http.ResponseWriter
}

func NewHTTPJar(w http.ResponseWriter, r *http.Request) *HTTPJar {
	return &HTTPJar{r: r, w: w}
}

func (j *HTTPJar) Get(name string) (string, bool) {
	return Lookup(strings.Join(j.r.Header.Values("Cookie"), "; "), name)
}

func (j *HTTPJar) Set(name, value string, maxAge time.Duration) {
	http.SetCookie(j.w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Expire удаляет cookie (Max-Age=0).
func (j *HTTPJar) Expire(name string) {
	http.SetCookie(j.w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// MemoryJar — Jar в памяти процесса.
type MemoryJar struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryJar создаёт Jar, заполненный из строки формата заголовка Cookie.
func NewMemoryJar(raw string) *MemoryJar {
	j := &MemoryJar{values: make(map[string]string)}

	for _, part := range strings.Split(raw, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if ok && key != "" {
			j.values[key] = value
		}
	}

	return j
}

func (j *MemoryJar) Get(name string) (string, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	v, ok := j.values[name]
	return v, ok
}

// Set сохраняет значение; срок жизни в памяти не отслеживается.
func (j *MemoryJar) Set(name, value string, _ time.Duration) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.values[name] = value
}

func (j *MemoryJar) Expire(name string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	delete(j.values, name)
}
