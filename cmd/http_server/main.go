package main

import (
	"os"

	"github.com/labstack/gommon/log"

	"github.com/radhian/price-upload-system/config"
	"github.com/radhian/price-upload-system/controllers"
)

func main() {
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}

	app := controllers.App{}
	if err := app.Initialize(cfg); err != nil {
		log.Fatal(err)
	}
	defer app.Close()

	log.Fatal(app.RunServer())
}
