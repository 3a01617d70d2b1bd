package mailer

// Message письмо для отправки
type Message struct {
	To         string
	CC         []string
	Subject    string
	Body       string // text/plain
	Attachment *Attachment
}

// Attachment вложение письма
type Attachment struct {
	Name string
	Data []byte
}

// Config параметры SMTP
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}
