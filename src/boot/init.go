package boot

import (
	"log"
	"time"
	"tpw/src/db"
	"tpw/src/lib"
	"tpw/src/models"
	"tpw/src/types"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.Plan{},
		&models.Tenant{},
		&models.User{},
		&models.Lead{},
		&models.LeadFollowUp{},
		&models.Hotel{},
		&models.AccommodationRate{},
		&models.TransportCompany{},
		&models.Vehicle{},
		&models.ItineraryTemplate{},
		&models.TourPackage{},
		&models.DayItinerary{},
		&models.Payment{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	// Browser warm-up shortly after start so the first render does not pay
	// launch latency.
	_, err = sched.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(time.Now().Add(10*time.Second))),
		gocron.NewTask(func() {
			lib.GetBrowserManager().WarmUp()
		}),
	)
	if err != nil {
		log.Printf("Error scheduling browser warm-up: %s\n", err.Error())
	}
	_, err = sched.NewJob(
		gocron.DurationJob(24*time.Hour),
		gocron.NewTask(ExpireTenantSubscriptions),
	)
	if err != nil {
		log.Printf("Error scheduling subscription sweep: %s\n", err.Error())
	}
	log.Println("Jobs in queue:", len(sched.Jobs()))
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	if err := sched.Shutdown(); err != nil {
		log.Println("An error has occurred while stopping Scheduler. Check logs for info")
	}
}

// ExpireTenantSubscriptions marks tenants whose subscription window has
// passed. Runs daily.
func ExpireTenantSubscriptions() {
	conn := db.GetDb()
	result := conn.Model(&models.Tenant{}).
		Where("subscription_status = ?", types.SUBSCRIPTION_ACTIVE).
		Where("subscription_end_utc IS NOT NULL AND subscription_end_utc < ?", time.Now().UTC()).
		Update("subscription_status", types.SUBSCRIPTION_EXPIRED)
	if result.Error != nil {
		log.Printf("[subscriptions] expiry sweep failed: %s\n", result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("[subscriptions] expired %d tenants\n", result.RowsAffected)
	}
}
