package cronjobs

import (
	"log"

	"github.com/robfig/cron/v3"

	"go-soultalk/predictors"
)

// InitCronJobs starts the background schedule. The warmup jobs keep the
// model services hot so the first user of the day does not pay the
// cold-start latency mid-conversation.
func InitCronJobs() {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Text model warmup: every 15 minutes
	_, err := c.AddFunc("*/15 * * * *", func() {
		log.Println("CronJob: text model warmup")
		if err := predictors.WarmUpTextModel(); err != nil {
			log.Printf("Text model warmup failed: %v", err)
		}
	})
	if err != nil {
		log.Println("Error scheduling text model warmup:", err)
	}

	// Face model warmup: every 15 minutes at the 5 minute mark
	_, err = c.AddFunc("5-59/15 * * * *", func() {
		log.Println("CronJob: face model warmup")
		if err := predictors.WarmUpFaceModel(); err != nil {
			log.Printf("Face model warmup failed: %v", err)
		}
	})
	if err != nil {
		log.Println("Error scheduling face model warmup:", err)
	}

	c.Start()
}
