package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/courtside/trainings-api/cmd/app"
)

// @contact.name   Courtside Trainings
// @contact.email  coach@courtside-trainings.example
//
// @securityDefinitions.apikey AdminCookie
// @in cookie
// @name admin_token
// @description JWT issued by POST /admin/login
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
