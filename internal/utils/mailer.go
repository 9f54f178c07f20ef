package utils

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"os"

	"github.com/sirupsen/logrus"

	"petkey/internal/models"
)

type MailConfig struct {
	SMTPHost   string
	SMTPPort   string
	Username   string
	Password   string
	Sender     string
	AdminEmail string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		SMTPHost:   os.Getenv("SMTP_HOST"),
		SMTPPort:   os.Getenv("SMTP_PORT"),
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		Sender:     os.Getenv("SMTP_SENDER"),
		AdminEmail: os.Getenv("ADMIN_EMAIL"),
	}
}

func SendEmail(config MailConfig, recipient, subject, message string) error {
	if config.SMTPHost == "" {
		logrus.Debug("SMTP not configured, skipping email send")
		return nil
	}
	smtpAddr := config.SMTPHost + ":" + config.SMTPPort

	client, err := smtp.Dial(smtpAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{
		ServerName: config.SMTPHost,
		MinVersion: tls.VersionTLS12,
	}
	if err = client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	auth := smtp.PlainAuth("", config.Username, config.Password, config.SMTPHost)
	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	if err = client.Mail(config.Sender); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(recipient); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to create mail writer: %w", err)
	}

	emailBody := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		config.Sender, recipient, subject, message)

	if _, err = writer.Write([]byte(emailBody)); err != nil {
		return fmt.Errorf("failed to write email body: %w", err)
	}
	if err = writer.Close(); err != nil {
		return fmt.Errorf("failed to close mail writer: %w", err)
	}

	if err = client.Quit(); err != nil {
		logrus.WithError(err).Warn("Failed to close SMTP connection properly")
	}

	return nil
}

// SendAppointmentConfirmation mails the customer after an appointment is
// created. Failures are logged and swallowed; the appointment stands either way.
func SendAppointmentConfirmation(config MailConfig, appointment *models.Appointment) {
	subject := fmt.Sprintf("Randevu Onayı - %s - PetKey Veteriner", appointment.PetName)

	vetName := appointment.VeterinarianName
	if vetName == "" && appointment.Veterinarian != nil {
		vetName = appointment.Veterinarian.Name
	}

	message := fmt.Sprintf(
		"Merhaba %s,\n\n"+
			"Randevu talebiniz alınmıştır.\n\n"+
			"Evcil Hayvan: %s (%s)\n"+
			"Veteriner: %s\n"+
			"Tarih: %s\n"+
			"Saat: %s\n"+
			"Hizmet: %s\n\n"+
			"Randevunuz onaylandığında sizinle iletişime geçeceğiz.\n\n"+
			"PetKey Veteriner Kliniği",
		appointment.OwnerName, appointment.PetName, appointment.PetType,
		vetName, appointment.Date, appointment.Time, appointment.Service,
	)

	if err := SendEmail(config, appointment.OwnerEmail, subject, message); err != nil {
		logrus.WithError(err).WithField("appointment_id", appointment.ID).
			Error("Failed to send appointment confirmation email")
		return
	}
	logrus.WithField("appointment_id", appointment.ID).
		Info("Appointment confirmation email sent")

	notice := fmt.Sprintf("Yeni randevu talebi: %s - %s %s (%s)",
		appointment.PetName, appointment.Date, appointment.Time, vetName)
	if err := SendAdminNotification(config, "Yeni Randevu Talebi", notice); err != nil {
		logrus.WithError(err).Debug("Admin notification not sent")
	}
}

// SendContactConfirmation mails the auto-reply after a contact message is
// created. Failures are logged and swallowed.
func SendContactConfirmation(config MailConfig, message *models.ContactMessage) {
	subject := "Mesajınız Alındı - PetKey Veteriner"

	body := fmt.Sprintf(
		"Merhaba %s,\n\n"+
			"Mesajınız bize ulaştı. En kısa sürede size dönüş yapacağız.\n\n"+
			"Konu: %s\n"+
			"Mesajınız: %s\n\n"+
			"PetKey Veteriner Kliniği",
		message.Name, message.Subject, message.Message,
	)

	if err := SendEmail(config, message.Email, subject, body); err != nil {
		logrus.WithError(err).WithField("message_id", message.ID).
			Error("Failed to send contact confirmation email")
		return
	}
	logrus.WithField("message_id", message.ID).
		Info("Contact confirmation email sent")

	notice := fmt.Sprintf("Yeni iletişim mesajı: %s - %s", message.Name, message.Subject)
	if err := SendAdminNotification(config, "Yeni İletişim Mesajı", notice); err != nil {
		logrus.WithError(err).Debug("Admin notification not sent")
	}
}

// SendAdminNotification mails an arbitrary subject/body to the configured
// admin recipient.
func SendAdminNotification(config MailConfig, subject, message string) error {
	recipient := config.AdminEmail
	if recipient == "" {
		return fmt.Errorf("no admin email configured")
	}
	return SendEmail(config, recipient, "[PetKey Admin] "+subject, message)
}
