package main

import (
	"collegereminders/internal/app/consumers"
	"collegereminders/internal/app/deps"
	"collegereminders/internal/app/services"
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	defer shutdownDeps()

	services := services.InitServices(deps)
	shutdownConsumers := consumers.InitConsumers(deps, services)
	defer shutdownConsumers()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer close(stopCh)

	<-stopCh
	deps.Logger.Info(context.Background(), "Notifier is stopping.")
}
