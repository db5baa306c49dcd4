package main

import (
	"os"

	"github.com/jaguilar/cobranza-sync/controllers"
)

func main() {
	app := controllers.App{}
	app.Initialize(
		os.Getenv("DB_PATH"),
		os.Getenv("API_BASE_URL"),
		os.Getenv("API_TOKEN"))

	app.RunServer()
}
