package notification

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

// SMTPNotifier は注文確認メールをローカルリレー経由で送る。
// 配送保証はない。呼び出し側はエラーを致命扱いしないこと。
type SMTPNotifier struct {
	addr    string
	from    string
	subject string
}

func NewSMTPNotifier(host string, port int, from string) *SMTPNotifier {
	return &SMTPNotifier{
		addr:    net.JoinHostPort(host, fmt.Sprintf("%d", port)),
		from:    from,
		subject: "Confirmación de pedido",
	}
}

func (n *SMTPNotifier) Send(ctx context.Context, recipient string, message string) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", n.addr)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}

	host, _, _ := net.SplitHostPort(n.addr)
	c, err := smtp.NewClient(conn, host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp client: %w", err)
	}
	defer c.Close()

	if err := c.Mail(n.from); err != nil {
		return fmt.Errorf("smtp mail: %w", err)
	}
	if err := c.Rcpt(recipient); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(BuildMessage(n.from, recipient, n.subject, message)); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close: %w", err)
	}

	return c.Quit()
}

// BuildMessage はヘッダー＋本文のRFC822形式を組み立てる。
func BuildMessage(from string, to string, subject string, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}
