package helper

import (
	"fmt"
	"log"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"
	"github.com/robfig/cron/v3"

	"salon_manager/config"
	"salon_manager/database"
	"salon_manager/model"
	"salon_manager/utils"
)

var digestScheduler *cron.Cron

// StartSubscriberDigest mails active subscribers about offers created since
// they were last notified. Runs hourly; overlapping runs are skipped.
func StartSubscriberDigest() {
	digestScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := digestScheduler.AddFunc("@hourly", sendOfferDigest)
	if err != nil {
		log.Printf("digest scheduler init failed: %v", err)
		return
	}

	digestScheduler.Start()
	log.Println("Subscriber digest scheduler started (hourly)")
}

func StopSubscriberDigest() {
	if digestScheduler != nil {
		digestScheduler.Stop()
	}
}

func sendOfferDigest() {
	db := database.DB
	now := time.Now()

	var subscribers []model.Subscriber
	if err := db.Where("active = ?", true).Find(&subscribers).Error; err != nil {
		log.Printf("digest subscriber scan failed: %v", err)
		return
	}

	addr := config.Config("SMTP_HOST") + ":" + config.ConfigOr("SMTP_PORT", "587")
	auth := smtp.PlainAuth("", config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"), config.Config("SMTP_HOST"))
	from := config.Config("SMTP_FROM")

	for _, sub := range subscribers {
		since := sub.CreatedAt
		if sub.LastNotifiedAt != nil {
			since = *sub.LastNotifiedAt
		}

		var offers []model.Offer
		if err := db.Preload("Salon").
			Where("created_at > ? AND active = ?", since, true).
			Order("created_at").
			Limit(20).
			Find(&offers).Error; err != nil {
			log.Printf("digest offer scan failed: %v", err)
			return
		}
		if len(offers) == 0 {
			continue
		}

		body := "New offers since your last digest:\n"
		for _, o := range offers {
			salonName := ""
			if o.Salon != nil {
				salonName = o.Salon.Name
			}
			body += fmt.Sprintf("- %s at %s (%.2f - %.2f)\n", o.Name, salonName, o.PriceLow, o.PriceHigh)
		}

		e := email.NewEmail()
		e.From = from
		e.To = []string{sub.Email}
		e.Subject = "New salon offers"
		e.Text = []byte(body)
		if err := e.Send(addr, auth); err != nil {
			log.Printf("digest email to %s failed: %v", sub.Email, err)
			continue
		}

		if err := db.Model(&model.Subscriber{DTO: model.DTO{ID: sub.ID}}).
			Update("last_notified_at", utils.Ptr(now)).Error; err != nil {
			log.Printf("digest timestamp update failed: %v", err)
		}
	}
}
