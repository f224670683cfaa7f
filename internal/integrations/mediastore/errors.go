package mediastore

import "errors"

var (
	// ErrDisabled возвращается, когда Cloudinary не настроен
	ErrDisabled = errors.New("mediastore: uploads are not configured")

	// ErrUpload возвращается при ошибке загрузки файла
	ErrUpload = errors.New("mediastore: failed to upload file")

	// ErrDelete возвращается при ошибке удаления файла
	ErrDelete = errors.New("mediastore: failed to delete file")

	// ErrInvalidConfig возвращается для некорректного CLOUDINARY_URL
	ErrInvalidConfig = errors.New("mediastore: invalid cloudinary url")
)
