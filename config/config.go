package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	SMTPHost    string
	SMTPPort    int
	EmailUser   string
	EmailPass   string
	SweepHour   int
	SweepMinute int
}

func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // default port
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, errors.New("DATABASE_URL environment variable is required")
	}

	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		return nil, errors.New("SMTP_HOST environment variable is required")
	}

	smtpPort := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		smtpPort, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
	}

	emailUser := os.Getenv("EMAIL_USER")
	if emailUser == "" {
		return nil, errors.New("EMAIL_USER environment variable is required")
	}

	emailPass := os.Getenv("EMAIL_PASS")
	if emailPass == "" {
		return nil, errors.New("EMAIL_PASS environment variable is required")
	}

	// Sweep time is fixed at startup, 07:00 local unless overridden
	sweepHour := 7
	if v := os.Getenv("SWEEP_HOUR"); v != "" {
		sweepHour, err = strconv.Atoi(v)
		if err != nil || sweepHour < 0 || sweepHour > 23 {
			return nil, errors.New("SWEEP_HOUR must be a number between 0 and 23")
		}
	}

	sweepMinute := 0
	if v := os.Getenv("SWEEP_MINUTE"); v != "" {
		sweepMinute, err = strconv.Atoi(v)
		if err != nil || sweepMinute < 0 || sweepMinute > 59 {
			return nil, errors.New("SWEEP_MINUTE must be a number between 0 and 59")
		}
	}

	return &Config{
		Port:        port,
		DatabaseURL: dbURL,
		SMTPHost:    smtpHost,
		SMTPPort:    smtpPort,
		EmailUser:   emailUser,
		EmailPass:   emailPass,
		SweepHour:   sweepHour,
		SweepMinute: sweepMinute,
	}, nil
}
