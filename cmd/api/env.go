package main

import "github.com/joho/godotenv"

// loadEnv reads a local .env file when present. Production deployments
// set real environment variables and have no such file, so the error is
// ignored. This runs before the logger exists.
func loadEnv() {
	_ = godotenv.Load()
}
