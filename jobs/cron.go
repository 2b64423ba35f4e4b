package jobs

import (
	"log"
	"time"

	"hotel-booking/services"

	"github.com/robfig/cron/v3"
)

// InitCronJobs registers the background schedules and starts the runner.
// The only job is the daily sweep that marks confirmed reservations past
// their checkout date as completed.
func InitCronJobs(c *cron.Cron, reservationSvc *services.ReservationService) error {
	_, err := c.AddFunc("0 0 * * *", func() {
		n, err := reservationSvc.CompleteFinishedStays(time.Now())
		if err != nil {
			log.Printf("[ERROR] completing finished stays: %v", err)
			return
		}
		if n > 0 {
			log.Printf("marked %d reservation(s) completed", n)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
