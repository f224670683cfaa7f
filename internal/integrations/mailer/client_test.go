package mailer

import (
	"bufio"
	"context"
	"errors"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	addr string
	from string
	to   []string
	msg  string
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type countingRecorder struct {
	results map[string]int
}

func (r *countingRecorder) RecordNotification(kind string, err error) {
	key := kind + ":ok"
	if err != nil {
		key = kind + ":err"
	}
	r.results[key]++
}

func newTestClient(enabled bool, sendErr error) (*Client, *[]sentMail) {
	var sent []sentMail
	c := NewClient(Config{
		Enabled:     enabled,
		Host:        "smtp.example.com",
		Port:        587,
		From:        "bookings@studio.test",
		StudioEmail: "studio@studio.test",
	}, nopLogger{})
	c.send = func(_ context.Context, addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		sent = append(sent, sentMail{addr: addr, from: from, to: to, msg: string(msg)})
		return sendErr
	}
	return c, &sent
}

var notice = BookingNotice{
	ID:              12,
	CustomerName:    "Ada",
	CustomerEmail:   "ada@example.com",
	CustomerPhone:   "+15550100",
	ServiceType:     "flash",
	Date:            time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
	StartTime:       "14:30",
	DurationMinutes: 60,
}

func TestNotifyBooking_SendsStudioAndCustomerMail(t *testing.T) {
	c, sent := newTestClient(true, nil)

	require.NoError(t, c.NotifyBooking(context.Background(), notice))

	require.Len(t, *sent, 2)
	assert.Equal(t, "smtp.example.com:587", (*sent)[0].addr)
	assert.Equal(t, []string{"studio@studio.test"}, (*sent)[0].to)
	assert.Contains(t, (*sent)[0].msg, "Subject: New booking: Ada on 2026-10-20 at 14:30")
	assert.Equal(t, []string{"ada@example.com"}, (*sent)[1].to)
	assert.Contains(t, (*sent)[1].msg, "pending until the studio confirms")
}

func TestNotifyBooking_ReportsFailure(t *testing.T) {
	c, sent := newTestClient(true, errors.New("421 try later"))
	rec := &countingRecorder{results: map[string]int{}}
	c.WithRecorder(rec)

	err := c.NotifyBooking(context.Background(), notice)

	assert.ErrorIs(t, err, ErrSend)
	assert.Len(t, *sent, 2, "customer mail is attempted even if the studio mail failed")
	assert.Equal(t, 1, rec.results["booking_studio:err"])
	assert.Equal(t, 1, rec.results["booking_customer:err"])
}

func TestSend_DisabledDoesNotDial(t *testing.T) {
	c, sent := newTestClient(false, nil)

	require.NoError(t, c.NotifyContact(context.Background(), ContactNotice{Name: "Ada", Email: "ada@example.com", Message: "hello"}))

	assert.Empty(t, *sent)
}

func TestSend_RejectsHeaderInjection(t *testing.T) {
	c, sent := newTestClient(true, nil)

	err := c.Send(context.Background(), "test", Message{To: "a@example.com\r\nBcc: evil@example.com", Subject: "x"})

	assert.ErrorIs(t, err, ErrInvalidRecipient)
	assert.Empty(t, *sent)
}

func TestBuildMessage_SanitizesSubject(t *testing.T) {
	raw := string(buildMessage("from@studio.test", Message{To: "a@example.com", Subject: "hi\r\nBcc: x@example.com", Body: "body"}))

	headers := raw[:strings.Index(raw, "\r\n\r\n")]
	assert.NotContains(t, headers, "\r\nBcc:")
	assert.Contains(t, headers, "Subject: hi  Bcc: x@example.com")
}

func TestContactMessage_DefaultSubject(t *testing.T) {
	msg := contactStudioMessage("studio@studio.test", ContactNotice{Name: "Ada", Email: "ada@example.com", Message: "Do you do color?"})

	assert.Equal(t, "Contact form: New message from Ada", msg.Subject)
	assert.Contains(t, msg.Body, "Ada <ada@example.com>")
	assert.NotContains(t, msg.Body, "Phone:")
}

func TestBuildMessage_EncodesNonASCIISubject(t *testing.T) {
	subject := "New booking: Zoë Ångström on 2026-10-20 at 14:30"

	raw := string(buildMessage("from@studio.test", Message{To: "a@example.com", Subject: subject, Body: "body"}))

	headers := raw[:strings.Index(raw, "\r\n\r\n")]
	var encoded string
	for _, line := range strings.Split(headers, "\r\n") {
		if strings.HasPrefix(line, "Subject: ") {
			encoded = strings.TrimPrefix(line, "Subject: ")
		}
	}
	assert.True(t, strings.HasPrefix(encoded, "=?utf-8?q?"), encoded)

	decoded, err := new(mime.WordDecoder).DecodeHeader(encoded)
	require.NoError(t, err)
	assert.Equal(t, subject, decoded)
}

// listenStalled принимает соединения и никогда не отвечает приветствием 220
func listenStalled(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan struct{})
	t.Cleanup(func() {
		close(done)
		_ = ln.Close()
	})

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func() {
				<-done
				_ = conn.Close()
			}()
		}
	}()
	return ln
}

// listenSMTP отвечает минимальным SMTP диалогом и отдаёт тело письма в канал
func listenSMTP(t *testing.T) (net.Listener, <-chan string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	data := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		r := bufio.NewReader(conn)
		reply := func(line string) { _, _ = conn.Write([]byte(line + "\r\n")) }

		reply("220 studio.test ESMTP")
		for {
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}
			cmd := strings.ToUpper(strings.TrimSpace(line))
			switch {
			case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
				reply("250 studio.test")
			case strings.HasPrefix(cmd, "MAIL"), strings.HasPrefix(cmd, "RCPT"):
				reply("250 OK")
			case cmd == "DATA":
				reply("354 end with .")
				var body strings.Builder
				for {
					l, err := r.ReadString('\n')
					if err != nil {
						return
					}
					if l == ".\r\n" {
						break
					}
					body.WriteString(l)
				}
				data <- body.String()
				reply("250 queued")
			case cmd == "QUIT":
				reply("221 bye")
				return
			default:
				reply("502 not implemented")
			}
		}
	}()
	return ln, data
}

func liveClient(t *testing.T, ln net.Listener, timeout time.Duration) *Client {
	t.Helper()
	addr := ln.Addr().(*net.TCPAddr)
	return NewClient(Config{
		Enabled:     true,
		Host:        "127.0.0.1",
		Port:        addr.Port,
		From:        "bookings@studio.test",
		StudioEmail: "studio@studio.test",
		Timeout:     timeout,
	}, nopLogger{})
}

func TestSend_DeliversOverSMTP(t *testing.T) {
	ln, data := listenSMTP(t)
	c := liveClient(t, ln, 5*time.Second)

	err := c.Send(context.Background(), "test", Message{To: "ada@example.com", Subject: "Hello", Body: "See you soon"})

	require.NoError(t, err)
	select {
	case body := <-data:
		assert.Contains(t, body, "Subject: Hello")
		assert.Contains(t, body, "See you soon")
	case <-time.After(2 * time.Second):
		t.Fatal("message was not received")
	}
}

func TestSend_StalledServerHonorsContextDeadline(t *testing.T) {
	c := liveClient(t, listenStalled(t), time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := c.Send(ctx, "test", Message{To: "ada@example.com", Subject: "Hello", Body: "body"})

	assert.ErrorIs(t, err, ErrSend)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestSend_StalledServerHonorsClientTimeout(t *testing.T) {
	c := liveClient(t, listenStalled(t), 200*time.Millisecond)

	start := time.Now()
	err := c.Send(context.Background(), "test", Message{To: "ada@example.com", Subject: "Hello", Body: "body"})

	assert.ErrorIs(t, err, ErrSend)
	assert.Less(t, time.Since(start), 2*time.Second)
}
