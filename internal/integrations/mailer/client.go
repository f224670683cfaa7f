package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Config настройки SMTP
type Config struct {
	Enabled     bool
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	StudioEmail string
	Timeout     time.Duration // на одно письмо, 0 - 10s
}

type sendFunc func(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Client отправляет уведомления студии и клиентам через SMTP.
// Выключенный клиент только логирует письма
type Client struct {
	cfg      Config
	addr     string
	timeout  time.Duration
	auth     smtp.Auth
	send     sendFunc
	recorder Recorder
	log      Logger
}

// NewClient создает новый экземпляр SMTP клиента
func NewClient(cfg Config, log Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		cfg:     cfg,
		addr:    net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		timeout: timeout,
		log:     log,
	}
	c.send = c.deliver
	if cfg.Username != "" {
		c.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return c
}

// WithRecorder подключает метрики уведомлений
func (c *Client) WithRecorder(r Recorder) *Client {
	c.recorder = r
	return c
}

// Send отправляет одно письмо
func (c *Client) Send(ctx context.Context, kind string, msg Message) error {
	if err := validateRecipient(msg.To); err != nil {
		return err
	}

	if !c.cfg.Enabled {
		c.log.Info("mailer disabled, skipping %s email to=%s subject=%q", kind, msg.To, msg.Subject)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.send(ctx, c.addr, c.auth, c.cfg.From, []string{msg.To}, buildMessage(c.cfg.From, msg))
	if c.recorder != nil {
		c.recorder.RecordNotification(kind, err)
	}
	if err != nil {
		return fmt.Errorf("%w: %s to %s: %v", ErrSend, kind, msg.To, err)
	}

	c.log.Info("sent %s email to=%s", kind, msg.To)
	return nil
}

// NotifyBooking отправляет уведомление студии и подтверждение клиенту.
// Ошибка одного письма не отменяет второе
func (c *Client) NotifyBooking(ctx context.Context, b BookingNotice) error {
	studioErr := c.Send(ctx, "booking_studio", bookingStudioMessage(c.cfg.StudioEmail, b))
	customerErr := c.Send(ctx, "booking_customer", bookingCustomerMessage(b))

	if studioErr != nil {
		return studioErr
	}
	return customerErr
}

// NotifyContact отправляет студии новое обращение
func (c *Client) NotifyContact(ctx context.Context, n ContactNotice) error {
	return c.Send(ctx, "contact_studio", contactStudioMessage(c.cfg.StudioEmail, n))
}

// deliver проводит SMTP сессию в пределах дедлайна ctx.
// Отмена ctx закрывает соединение, поэтому зависший сервер не держит запрос
func (c *Client) deliver(ctx context.Context, addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	dialer := net.Dialer{Timeout: c.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(c.timeout)
	}
	if err := conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return err
	}
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	host, _, _ := net.SplitHostPort(addr)
	client, err := smtp.NewClient(conn, host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
			return err
		}
	}
	if auth != nil {
		if ok, _ := client.Extension("AUTH"); !ok {
			return errors.New("smtp: server doesn't support AUTH")
		}
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func validateRecipient(to string) error {
	to = strings.TrimSpace(to)
	if to == "" || strings.ContainsAny(to, "\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidRecipient, to)
	}
	return nil
}

// buildMessage собирает минимальное RFC 5322 письмо.
// Subject кодируется RFC 2047, если в нём есть не-ASCII символы
func buildMessage(from string, msg Message) []byte {
	return []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		msg.To,
		mime.QEncoding.Encode("utf-8", sanitizeHeader(msg.Subject)),
		msg.Body,
	))
}

func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
