package mailer

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Recorder учитывает отправленные письма в метриках
type Recorder interface {
	RecordNotification(kind string, err error)
}
