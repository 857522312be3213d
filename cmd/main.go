package main

import (
	"github.com/D0n4ld07/healthtracker/config"
	"github.com/D0n4ld07/healthtracker/routes"
)

func main() {
	cfg := config.MustLoad()
	config.InitDB()
	r := routes.SetupRouter()
	r.Run(":" + cfg.Port)
}
