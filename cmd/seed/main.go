package main

import (
	"fmt"
	"log"
	"os"

	"mesareserva/internal/database"
	"mesareserva/internal/domain"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "mesareserva.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM tables")
	db.Exec("DELETE FROM restaurants")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	superHash, _ := bcrypt.GenerateFromPassword([]byte("super123"), bcrypt.DefaultCost)
	super := domain.User{
		Name:         "Platform Admin",
		Email:        "superadmin@mesareserva.com",
		PasswordHash: string(superHash),
		Role:         domain.RoleSuperAdmin,
	}
	db.Create(&super)
	log.Println("Superadmin created: superadmin@mesareserva.com / super123")

	owners := make([]domain.User, 0, 3)
	ownerEmails := []string{"kenji@sakura.com", "mei@goldenpalace.com", "soo@seoulkitchen.com"}
	ownerNames := []string{"Kenji Tanaka", "Mei Chen", "Soo-jin Park"}
	for i, email := range ownerEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
		owner := domain.User{
			Name:         ownerNames[i],
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleAdmin,
			Phone:        fmt.Sprintf("+34 600 100 %03d", i+1),
		}
		db.Create(&owner)
		owners = append(owners, owner)
	}

	clientEmails := []string{"ana@example.com", "carlos@example.com", "lucia@example.com"}
	clientNames := []string{"Ana Torres", "Carlos Ruiz", "Lucia Gomez"}
	for i, email := range clientEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
		client := domain.User{
			Name:         clientNames[i],
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleClient,
			Phone:        fmt.Sprintf("+34 600 200 %03d", i+1),
		}
		db.Create(&client)
	}
	log.Println("Clients created: ana/carlos/lucia@example.com / client123")

	// ================== RESTAURANTS ==================
	log.Println("Creating restaurants...")

	allWeek := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

	restaurants := []domain.Restaurant{
		{
			OwnerID:     &owners[0].ID,
			Name:        "Sakura Sushi House",
			Description: "Traditional Japanese sushi bar with an omakase counter.",
			Address:     "Calle de la Flor 12, Madrid",
			Phone:       "+34 910 000 001",
			Email:       "hello@sakura.com",
			CuisineType: "japanese",
			OpeningTime: "11:00",
			ClosingTime: "23:00",
			OpeningDays: allWeek,
			MaxCapacity: 60,
			IsActive:    true,
		},
		{
			OwnerID:     &owners[1].ID,
			Name:        "Dragon Golden Palace",
			Description: "Cantonese classics and dim sum in a grand dining room.",
			Address:     "Avenida del Puerto 88, Valencia",
			Phone:       "+34 910 000 002",
			Email:       "hello@goldenpalace.com",
			CuisineType: "chinese",
			OpeningTime: "12:00",
			ClosingTime: "22:00",
			OpeningDays: []string{"tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
			MaxCapacity: 120,
			IsActive:    true,
		},
		{
			OwnerID:     &owners[2].ID,
			Name:        "Seoul Kitchen BBQ",
			Description: "Korean barbecue grilled at the table, late into the night.",
			Address:     "Carrer de Girona 45, Barcelona",
			Phone:       "+34 910 000 003",
			Email:       "hello@seoulkitchen.com",
			CuisineType: "korean",
			OpeningTime: "17:00",
			ClosingTime: "23:30",
			OpeningDays: []string{"wednesday", "thursday", "friday", "saturday", "sunday"},
			MaxCapacity: 80,
			IsActive:    true,
		},
	}

	tableCapacities := []int{2, 4, 4, 6, 8}
	locations := []domain.TableLocation{
		domain.TableInterior,
		domain.TableInterior,
		domain.TableExterior,
		domain.TableInterior,
		domain.TablePrivate,
	}

	for i := range restaurants {
		if err := db.Create(&restaurants[i]).Error; err != nil {
			log.Fatal("restaurant insert failed:", err)
		}
		for j, capacity := range tableCapacities {
			tbl := domain.Table{
				RestaurantID: restaurants[i].ID,
				TableNumber:  fmt.Sprintf("T%d", j+1),
				Capacity:     capacity,
				Location:     locations[j],
				IsAvailable:  true,
			}
			if err := db.Create(&tbl).Error; err != nil {
				log.Fatal("table insert failed:", err)
			}
		}
		log.Printf("Seeded %s with %d tables", restaurants[i].Name, len(tableCapacities))
	}

	log.Println("Seed complete.")
}
