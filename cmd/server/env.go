package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

// defaultJoinWebhookURL is the production intake endpoint; override with
// JOIN_WEBHOOK_URL.
const defaultJoinWebhookURL = "https://n8n.srv1004168.hstgr.cloud/webhook/edfb6266-b3aa-4dc2-85f2-65d945e07f9f"

type Environment struct {
	Environment    string
	ServerAddress  string
	DatabaseURL    string
	MigrationsPath string

	JoinWebhookURL string

	TableStoreURL     string
	TableStoreAnonKey string

	RedisAddress  string
	RedisUsername string
	RedisPassword string
}

// LoadEnvironment reads and validates env vars
func LoadEnvironment() Environment {
	env := Environment{
		Environment:    os.Getenv("APP_ENV"),
		ServerAddress:  os.Getenv("SERVER_ADDRESS"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),

		JoinWebhookURL: os.Getenv("JOIN_WEBHOOK_URL"),

		TableStoreURL:     os.Getenv("TABLE_STORE_URL"),
		TableStoreAnonKey: os.Getenv("TABLE_STORE_ANON_KEY"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	if env.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}
	if env.ServerAddress == "" {
		env.ServerAddress = ":8080"
	}
	if env.MigrationsPath == "" {
		env.MigrationsPath = "./migrations"
	}
	if env.JoinWebhookURL == "" {
		env.JoinWebhookURL = defaultJoinWebhookURL
	}

	return env
}
