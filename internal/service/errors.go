package service

import (
	"fmt"
	"net/http"
)

// AppError описывает прикладную ошибку сервиса:
// код для логов, человекочитаемое сообщение для клиента, HTTP-статус и вложенная ошибка.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

// Error реализует интерфейс error для AppError.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrBadRequest конструирует AppError для некорректных запросов клиента.
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrValidation конструирует AppError для отсутствующих или пустых параметров запроса.
func ErrValidation(msg string) *AppError {
	return &AppError{
		Code:    "VALIDATION",
		Message: msg,
		Status:  http.StatusUnprocessableEntity,
	}
}

// ErrNotFound конструирует AppError для ситуации, когда ресурс не найден.
func ErrNotFound(msg string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: msg,
		Status:  http.StatusNotFound,
	}
}

// ErrDomain конструирует AppError для доменных отказов (ALREADY_SIGNED_UP, ACTIVITY_FULL).
// Отказы записи отдаются клиенту как 400, прочие конфликты — как 409.
func ErrDomain(code, msg string) *AppError {
	status := http.StatusConflict
	switch code {
	case "ALREADY_SIGNED_UP", "ACTIVITY_FULL":
		status = http.StatusBadRequest
	}
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  status,
	}
}

// ErrInternal оборачивает неожиданную ошибку хранилища.
func ErrInternal(msg string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL",
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

