package config

import (
	"log"
	"os"
)

type Config struct {
	TelegramToken    string
	WebhookPublicURL string
	Port             string
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "9095"
	}
	return Config{
		TelegramToken:    mustEnv("TELEGRAM_BOT_TOKEN"),
		WebhookPublicURL: mustEnv("WEBHOOK_PUBLIC_URL"),
		Port:             port,
	}
}
