package submissions

import "errors"

var (
	// ErrSubmissionNotFound возвращается, когда обращение не найдено
	ErrSubmissionNotFound = errors.New("submission not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
