package upload_reference

import "errors"

var (
	// ErrEmptyFile возвращается для пустого файла
	ErrEmptyFile = errors.New("upload_reference: file is empty")

	// ErrTooLarge возвращается, когда файл больше допустимого размера
	ErrTooLarge = errors.New("upload_reference: file is too large")

	// ErrUnsupportedType возвращается для файлов, которые не являются jpeg/png/webp/gif
	ErrUnsupportedType = errors.New("upload_reference: unsupported file type")

	// ErrUnavailable возвращается, когда хранилище изображений не настроено
	ErrUnavailable = errors.New("upload_reference: uploads are unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("upload_reference: internal error")
)
