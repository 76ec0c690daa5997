package helper

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"salon_manager/database"
	"salon_manager/model"
)

var recordScheduler gocron.Scheduler

// AutoCompleteRecords marks confirmed bookings whose end time has passed
// as DONE. Pending bookings left in the past are cancelled.
func AutoCompleteRecords() {
	log.Println("[CRON] AutoCompleteRecords triggered")

	db := database.DB
	now := time.Now()

	done := db.Model(&model.Record{}).
		Where("status = ? AND end_at < ?", model.RecordConfirmed, now).
		Update("status", model.RecordDone)
	if done.Error != nil {
		log.Printf("record completion failed: %v", done.Error)
		return
	}
	if done.RowsAffected > 0 {
		log.Printf("completed %d past records", done.RowsAffected)
	}

	cancelled := db.Model(&model.Record{}).
		Where("status = ? AND end_at < ?", model.RecordPending, now).
		Update("status", model.RecordCancelled)
	if cancelled.Error != nil {
		log.Printf("record cancellation failed: %v", cancelled.Error)
		return
	}
	if cancelled.RowsAffected > 0 {
		log.Printf("cancelled %d unconfirmed past records", cancelled.RowsAffected)
	}
}

func StartRecordStatusScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	recordScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 15, 0),
			),
		),
		gocron.NewTask(AutoCompleteRecords),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Record status scheduler started (00:15)")
}

func StopRecordStatusScheduler() {
	if recordScheduler != nil {
		if err := recordScheduler.Shutdown(); err != nil {
			log.Printf("record scheduler shutdown: %v", err)
		}
	}
}
