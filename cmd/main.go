package main

import (
	"backend/config"
	"backend/routes"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})

	config.LoadEnv()
	config.InitDB()

	r := routes.SetupRouter()
	if err := r.Run(":3000"); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
