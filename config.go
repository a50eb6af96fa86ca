package main

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	StaticDir string
}

func LoadConfig() *Config {
	godotenv.Load()
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./public"
	}
	return &Config{port, staticDir}
}
