package main

import (
	"github.com/campuskit/onboarding_service/config"
	"github.com/campuskit/onboarding_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
