package utils

import (
	"fmt"
	"log"
	"strconv"

	"gopkg.in/gomail.v2"

	"salon_manager/config"
)

// RecordConfirmationData feeds the booking confirmation mail.
type RecordConfirmationData struct {
	Code      string
	SalonName string
	Master    string
	StartAt   string
	Price     float64
}

// SendRecordConfirmationEmail sends the booking confirmation asynchronously
// so the create response is not delayed by SMTP.
func SendRecordConfirmationEmail(to string, data RecordConfirmationData) {
	go func() {
		host := config.Config("SMTP_HOST")
		username := config.Config("SMTP_USERNAME")
		password := config.Config("SMTP_PASSWORD")
		from := config.Config("SMTP_FROM")
		port, _ := strconv.Atoi(config.Config("SMTP_PORT"))

		body := fmt.Sprintf(
			"Your booking %s at %s is confirmed.\nMaster: %s\nTime: %s\nPrice: %.2f",
			data.Code, data.SalonName, data.Master, data.StartAt, data.Price,
		)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Booking confirmation "+data.Code)
		m.SetBody("text/plain", body)

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("confirmation email failed: %v", err)
		}
	}()
}
