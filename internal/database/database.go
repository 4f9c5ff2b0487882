package database

import (
	"log"
	"os"

	"career-path-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB initializes the database connection and runs migrations
func InitDB() {
	var err error

	// Open SQLite database file (will be created if it doesn't exist initially)
	// Using glebarez/sqlite which is a pure Go implementation (no CGO required)
	path := os.Getenv("CAREERPATH_DB")
	if path == "" {
		path = "career-path.db"
	}

	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Auto-migrate the schema (it will create tables if they don't exist)
	err = DB.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Member{},
		&models.Competency{},
		&models.Task{},
		&models.Rating{},
	)

	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := SeedRoleDefaults(DB); err != nil {
		log.Fatal("Failed to seed role defaults:", err)
	}

	log.Println("Database connected, migrated and seeded")
}

// GetDB returns the database connection
func GetDB() *gorm.DB {
	return DB
}
