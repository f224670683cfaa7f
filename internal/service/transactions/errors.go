package transactions

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnknownAppointment возвращается, когда платёж ссылается на несуществующую запись
	ErrUnknownAppointment = errors.New("appointment does not exist")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
