package database

import (
	"fmt"
	"strconv"

	"driving_school_manager/config"
	"driving_school_manager/logger"
	"driving_school_manager/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.ConfigOr("DB_PORT", "5432")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"),
		config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic("failed to connect database")
	}

	logger.L.Info("connection opened to database")
	Migrate(DB)
	logger.L.Info("database migrated")

	SeedData(DB)
}

// Migrate keeps the schema in sync; also used by tests against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Customer{},
		&model.Instructor{},
		&model.Location{},
		&model.Product{},
		&model.DrivingClass{},
		&model.Slot{},
		&model.TicketClass{},
		&model.TicketClassStudent{},
		&model.StudentRequest{},
	)
}
