package main

import (
	"fmt"
	"log"
	"time"

	"github.com/bella507/help-me-sub000/internal/app/ds"
	"github.com/bella507/help-me-sub000/internal/app/dsn"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database")
	}

	// Admin account.
	hashed, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := ds.User{Login: "admin", Password: string(hashed), IsAdmin: true}
	db.Where(ds.User{Login: "admin"}).FirstOrCreate(&admin)
	fmt.Println("admin user ready (admin/admin123)")

	volunteers := []ds.Volunteer{
		{ID: uuid.NewString(), Name: "Somchai P.", Phone: "081-234-5678", Skills: `["first-aid","driving"]`, Availability: "weekdays", Verified: true},
		{ID: uuid.NewString(), Name: "Malee K.", Phone: "089-876-5432", Skills: "cooking, logistics", Availability: "weekends", Verified: true},
		{ID: uuid.NewString(), Name: "Anan T.", Phone: "062-111-2233", Skills: `["boat","rescue"]`, Availability: "on-call", Verified: false},
	}
	for _, v := range volunteers {
		db.Create(&v)
		fmt.Printf("volunteer: %s\n", v.Name)
	}

	shelters := []ds.Shelter{
		{Name: "City Hall Evacuation Center", Address: "99 Mueang Rd.", Capacity: 450, Occupancy: 120, Phone: "02-111-2222", Status: ds.ShelterOpen, Lat: 16.4322, Lng: 102.8236},
		{Name: "Wat Nong Waeng Hall", Address: "593 Klang Mueang Rd.", Capacity: 200, Occupancy: 200, Phone: "02-333-4444", Status: ds.ShelterFull, Lat: 16.4103, Lng: 102.8371},
		{Name: "Provincial Stadium", Address: "Stadium Rd.", Capacity: 800, Occupancy: 0, Phone: "02-555-6666", Status: ds.ShelterOpen, Lat: 16.4450, Lng: 102.8150},
	}
	for _, s := range shelters {
		db.Create(&s)
		fmt.Printf("shelter: %s\n", s.Name)
	}

	faqs := []ds.Faq{
		{Question: "How do I request help?", Answer: "Submit the request form with your name, phone and location. Track progress with your phone number.", Position: 1},
		{Question: "How long until someone responds?", Answer: "High-urgency requests are triaged first. A volunteer is assigned as soon as one is available in your area.", Position: 2},
		{Question: "Where can I shelter tonight?", Answer: "Check the shelters page; centers marked open still have capacity.", Position: 3},
	}
	for _, f := range faqs {
		db.Create(&f)
	}
	fmt.Println("faqs seeded")

	needs := []ds.DonationNeed{
		{Item: "Drinking water", Quantity: 500, Unit: "bottles", Urgent: true},
		{Item: "Blankets", Quantity: 200, Unit: "pcs", Urgent: false},
		{Item: "Instant rice", Quantity: 300, Unit: "packs", Urgent: true},
	}
	for _, n := range needs {
		db.Create(&n)
	}
	fmt.Println("donation needs seeded")

	areas := []ds.RiskArea{
		{Name: "Riverside Zone A", Level: ds.RiskSevere, Description: "River above critical level, evacuation advised", Lat: 16.4280, Lng: 102.8400, RadiusKm: 2.5},
		{Name: "Old Market District", Level: ds.RiskWarning, Description: "Street flooding, passable by high vehicles only", Lat: 16.4190, Lng: 102.8330, RadiusKm: 1.0},
	}
	for _, a := range areas {
		db.Create(&a)
	}
	fmt.Println("risk areas seeded")

	news := []ds.NewsItem{
		{Title: "Flood level rising along the river", Body: "Residents of Zone A should move to higher ground. The City Hall center is open.", PublishedAt: time.Now()},
		{Title: "Water distribution at Provincial Stadium", Body: "Bottled water is handed out daily 9:00-17:00.", PublishedAt: time.Now()},
	}
	for _, n := range news {
		db.Create(&n)
	}
	fmt.Println("news seeded")

	fmt.Println("\nseed finished")
}
