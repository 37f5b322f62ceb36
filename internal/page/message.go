package page

import "activities-signup/internal/model"

// Style — оформление области сообщения (CSS-класс).
type Style string

const (
	StyleSuccess Style = "success"
	StyleError   Style = "error"
)

// Тексты запасных сообщений.
const (
	FallbackErrorText  = "An error occurred"
	TransportErrorText = "Failed to sign up. Please try again."
)

// Message — инструкция показа сообщения о результате записи.
type Message struct {
	Text  string
	Style Style
}

// IsSuccess сообщает, что сообщение об успешной записи.
func (m Message) IsSuccess() bool {
	return m.Style == StyleSuccess
}

// SignupMessage строит сообщение по ответу сервера: ok — статус 2xx.
// При отказе без detail используется FallbackErrorText.
func SignupMessage(ok bool, result model.SignupResult) Message {
	if ok {
		return Message{Text: result.Message, Style: StyleSuccess}
	}
	if result.Detail != "" {
		return Message{Text: result.Detail, Style: StyleError}
	}
	return Message{Text: FallbackErrorText, Style: StyleError}
}

// TransportFailureMessage — сообщение, когда запрос не дошёл или ответ не разобрался.
func TransportFailureMessage() Message {
	return Message{Text: TransportErrorText, Style: StyleError}
}
