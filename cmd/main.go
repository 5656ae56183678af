package main

import (
	"go-product-catalog/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize application with all dependencies
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Close()

	logrus.Info("Product catalog store is ready")
}
