package config

import (
	"fmt"
	"log"

	"github.com/D0n4ld07/healthtracker/models"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port       string `env:"PORT" env-default:"8080"`
	DBHost     string `env:"DB_HOST" env-default:"localhost"`
	DBUser     string `env:"DB_USER" env-default:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" env-default:"healthtracker"`
	DBPort     string `env:"DB_PORT" env-default:"5432"`
	JWTSecret  string `env:"JWT_SECRET"`
}

var (
	DB  *gorm.DB
	App Config
)

func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}
	if err := cleanenv.ReadEnv(&App); err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}
	if App.JWTSecret == "" {
		log.Fatalf("JWT_SECRET must be set")
	}
	return &App
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		App.DBHost,
		App.DBUser,
		App.DBPassword,
		App.DBName,
		App.DBPort,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// Migrate is split out so tests can run the same schema against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.MealLog{},
		&models.FitnessLog{},
		&models.SleepLog{},
		&models.WeightLog{},
		&models.Goal{},
	)
}
