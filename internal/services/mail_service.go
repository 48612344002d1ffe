package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"os"
	"strconv"
	"time"

	"offcampus/internal/models/db_models"
)

type MailServiceInterface interface {
	SendBookingConfirmation(booking *db_models.ServiceBooking) error
	SendBookingAlert(booking *db_models.ServiceBooking) error
	SendPasswordResetOTP(email, name, otp string) error
}

// SMTPConfig carries transport and branding settings for outgoing mail.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	FromName   string
	UseSSL     bool // implicit TLS on 465; otherwise STARTTLS
	AdminEmail string
	AppName    string
}

func SMTPConfigFromEnv() SMTPConfig {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	return SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   os.Getenv("SMTP_FROM_NAME"),
		UseSSL:     port == 465,
		AdminEmail: os.Getenv("ADMIN_ALERT_EMAIL"),
		AppName:    "OffCampus Careers",
	}
}

func (c SMTPConfig) configured() bool {
	return c.Host != "" && c.From != ""
}

type smtpMailService struct {
	cfg SMTPConfig
	tpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) MailServiceInterface {
	return &smtpMailService{
		cfg: cfg,
		tpl: template.Must(template.New("bookingHTML").Parse(bookingHTMLTemplate)),
	}
}

type bookingMailData struct {
	Title   string
	Lines   []string
	AppName string
	Year    int
}

const bookingHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; background: #f4f6f8; color: #1f2933; font-family: Helvetica, Arial, sans-serif; }
    .card { max-width: 560px; margin: 32px auto; background: #ffffff; border-radius: 8px; padding: 32px; }
    h1 { font-size: 22px; margin: 0 0 16px; }
    p { margin: 0 0 12px; line-height: 1.6; color: #3e4c59; }
    .footer { margin-top: 24px; font-size: 12px; color: #7b8794; }
  </style>
</head>
<body>
  <div class="card">
    <h1>{{.Title}}</h1>
    {{range .Lines}}<p>{{.}}</p>{{end}}
    <div class="footer">© {{.Year}} {{.AppName}}</div>
  </div>
</body>
</html>`

// SendBookingConfirmation mails the customer after their slot is paid for.
func (s *smtpMailService) SendBookingConfirmation(booking *db_models.ServiceBooking) error {
	if booking.Email == "" {
		return nil
	}
	subject := "Your session is booked"
	lines := []string{
		fmt.Sprintf("Hi %s,", booking.Name),
		fmt.Sprintf("Your %s session is confirmed for %s at %s.", booking.ServiceNeeded, booking.SlotDate, booking.SlotTime),
		"We will reach out on the number you provided before the session.",
	}
	return s.send(booking.Email, subject, bookingMailData{
		Title:   subject,
		Lines:   lines,
		AppName: s.cfg.AppName,
		Year:    time.Now().Year(),
	})
}

// SendBookingAlert mails the operations inbox about a new paid booking.
func (s *smtpMailService) SendBookingAlert(booking *db_models.ServiceBooking) error {
	if s.cfg.AdminEmail == "" {
		return nil
	}
	subject := fmt.Sprintf("New booking: %s", booking.ServiceNeeded)
	lines := []string{
		fmt.Sprintf("%s (%s, %s) booked %s.", booking.Name, booking.Email, booking.PhoneNumber, booking.ServiceNeeded),
		fmt.Sprintf("Slot: %s %s. State: %s. Language: %s.", booking.SlotDate, booking.SlotTime, booking.State, booking.Language),
	}
	if booking.ResumeURL != "" {
		lines = append(lines, fmt.Sprintf("Resume: %s", booking.ResumeURL))
	}
	return s.send(s.cfg.AdminEmail, subject, bookingMailData{
		Title:   subject,
		Lines:   lines,
		AppName: s.cfg.AppName,
		Year:    time.Now().Year(),
	})
}

// SendPasswordResetOTP mails the one-time code that starts a password reset.
func (s *smtpMailService) SendPasswordResetOTP(email, name, otp string) error {
	subject := "Your password reset code"
	greeting := "Hi,"
	if name != "" {
		greeting = fmt.Sprintf("Hi %s,", name)
	}
	lines := []string{
		greeting,
		fmt.Sprintf("Your one-time code is %s. It expires in 5 minutes.", otp),
		"If you did not request a password reset, you can ignore this mail.",
	}
	return s.send(email, subject, bookingMailData{
		Title:   subject,
		Lines:   lines,
		AppName: s.cfg.AppName,
		Year:    time.Now().Year(),
	})
}

func (s *smtpMailService) send(to, subject string, data bookingMailData) error {
	if !s.cfg.configured() {
		return fmt.Errorf("smtp not configured")
	}

	var body bytes.Buffer
	if err := s.tpl.Execute(&body, data); err != nil {
		return err
	}

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }
	write("From: %s\r\n", s.fromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject))
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("\r\n")
	msg.Write(body.Bytes())
	write("\r\n")

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}

	var client *smtp.Client
	if s.cfg.UseSSL {
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		client, err = smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			conn.Close()
			return err
		}
	} else {
		dialer := &net.Dialer{Timeout: 10 * time.Second}
		conn, err := dialer.Dial("tcp", addr)
		if err != nil {
			return err
		}
		client, err = smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			conn.Close()
			return err
		}
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err = client.StartTLS(tlsCfg); err != nil {
				client.Close()
				return err
			}
		}
	}
	defer client.Quit()

	if s.cfg.Username != "" {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}
	if err := client.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg.Bytes()); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) fromHeader() string {
	if s.cfg.FromName == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("UTF-8", s.cfg.FromName), s.cfg.From)
}
