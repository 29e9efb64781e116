package services

import (
	"database/sql"
	"log"
	"time"

	"alandalus-portal/app/database"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger shortly after midnight local time
			if now.Hour() == 0 && now.Minute() == 10 {
				log.Println("Triggering scheduled tasks [00:10]...")

				n, err := database.MarkOverduePayments(db)
				if err != nil {
					log.Printf("Error marking overdue payments: %v", err)
					continue
				}
				if n > 0 {
					log.Printf("Marked %d payments as overdue", n)
					InvalidateCache("payments")
					InvalidateCache("dashboard")
				}
			}
		}
	}()
}
