package database

import (
	"log"

	"driving_school_manager/model"

	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	classes := []model.DrivingClass{
		{Title: "Traffic School", Overview: "State-approved traffic school course", Length: 8, Price: 65},
		{Title: "Defensive Driving", Overview: "Insurance discount defensive driving course", Length: 6, Price: 55},
		{Title: "Drug & Alcohol (D.A.T.E.)", Overview: "First-time driver drug and alcohol course", Length: 4, Price: 35},
	}
	for _, class := range classes {
		if err := db.Where(model.DrivingClass{Title: class.Title}).FirstOrCreate(&class).Error; err != nil {
			log.Println("failed to seed driving class:", class.Title, "error:", err)
		}
	}

	locations := []model.Location{
		{Title: "Main Office", Slug: "main-office", Zone: "Downtown", Active: true},
		{Title: "Westside Classroom", Slug: "westside-classroom", Zone: "West", Active: true},
	}
	for _, location := range locations {
		if err := db.Where(model.Location{Slug: location.Slug}).FirstOrCreate(&location).Error; err != nil {
			log.Println("failed to seed location:", location.Title, "error:", err)
		}
	}

	products := []model.Product{
		{Title: "Road Test", Category: "driving_test", Price: 90, Duration: 60, Active: true},
		{Title: "2h Driving Lesson", Category: "driving_lesson", Price: 120, Duration: 120, Active: true},
		{Title: "6h Lesson Package", Category: "driving_lesson", Price: 330, Duration: 360, Active: true},
	}
	for _, product := range products {
		if err := db.Where(model.Product{Title: product.Title}).FirstOrCreate(&product).Error; err != nil {
			log.Println("failed to seed product:", product.Title, "error:", err)
		}
	}
}
