package http

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"activities-signup/internal/service"
)

// pathParam возвращает раскодированный параметр пути.
// chi матчит по RawPath, если он есть, и тогда значение ещё экранировано.
func pathParam(r *http.Request, key string) (string, error) {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v, nil
	}
	decoded, err := url.PathUnescape(v)
	if err != nil {
		return "", service.ErrBadRequest("invalid " + key + " in path")
	}
	return decoded, nil
}

// ValidateActivityName Валидация имени кружка из пути
func ValidateActivityName(name string) error {
	if strings.TrimSpace(name) == "" {
		return service.ErrBadRequest("activity name is required")
	}
	return nil
}

// ValidateEmail Валидация email из query-параметра или пути
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return service.ErrValidation("email is required")
	}
	return nil
}
