package mailer

import "errors"

var (
	// ErrSend возвращается при ошибке отправки письма
	ErrSend = errors.New("mailer: failed to send email")

	// ErrInvalidRecipient возвращается для пустого адреса или адреса с переводом строки
	ErrInvalidRecipient = errors.New("mailer: invalid recipient")
)
