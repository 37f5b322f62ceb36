package model

// SignupRequest — данные формы записи: кружок и email ученика.
type SignupRequest struct {
	Activity string `json:"activity"`
	Email    string `json:"email"`
}

// SignupResult — тело ответа на запись. При успехе заполнено Message,
// при отказе сервер может прислать Detail.
type SignupResult struct {
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
}
