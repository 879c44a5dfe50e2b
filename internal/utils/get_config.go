package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Application
	AppPort        string `yaml:"APP_PORT"`
	AllowedOrigins string `yaml:"ALLOWED_ORIGINS"`

	// USDA FoodData Central
	USDAAPIKey string `yaml:"USDA_API_KEY"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

// GetConfig resolves a key from config.yaml, falling back to the process
// environment so .env or container settings can fill gaps in the file.
func GetConfig(key string) string {
	value := ""
	switch key {
	case "DB_USER":
		value = config.DBUser
	case "DB_NAME":
		value = config.DBName
	case "DB_PASSWORD":
		value = config.DBPassword
	case "DB_PORT":
		value = config.DBPort
	case "DB_HOST":
		value = config.DBHost
	case "APP_PORT":
		value = config.AppPort
	case "ALLOWED_ORIGINS":
		value = config.AllowedOrigins
	case "USDA_API_KEY":
		value = config.USDAAPIKey
	}
	if value == "" {
		value = os.Getenv(key)
	}
	return value
}
