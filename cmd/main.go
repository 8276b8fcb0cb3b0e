package main

import (
	"os"

	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/config"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/routes"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitSES()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	r.Run(":" + port)
}
