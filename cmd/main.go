package main

import (
	"exchweb/internal/app"

	"github.com/sirupsen/logrus"
)

//	@title			exchweb API
//	@version		1.0
//	@description	Web client service for the KRW currency exchange backend: session, live rate board, wallet, quote form and order history.

func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Fatal("Application run failed")
	}
}
