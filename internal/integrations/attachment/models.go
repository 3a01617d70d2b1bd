package attachment

// Document загруженный документ
type Document struct {
	Name        string
	ContentType string
	Data        []byte
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
