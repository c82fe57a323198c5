package main

import (
	"github.com/bella507/help-me-sub000/internal/app/ds"
	"github.com/bella507/help-me-sub000/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()
	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	err = db.AutoMigrate(
		&ds.User{},
		&ds.HelpRequest{},
		&ds.Volunteer{},
		&ds.Notification{},
		&ds.Shelter{},
		&ds.NewsItem{},
		&ds.Faq{},
		&ds.DonationNeed{},
		&ds.RiskArea{},
	)
	if err != nil {
		panic("cant migrate db")
	}
}
