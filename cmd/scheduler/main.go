package main

import (
	"collegereminders/internal/app/deps"
	"collegereminders/internal/app/services"
	"collegereminders/internal/core/domain/logging"
	scheduledigests "collegereminders/internal/core/services/schedule_digests"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	services := services.InitServices(deps)

	scheduler := cron.New(cron.WithLocation(time.UTC))
	_, err := scheduler.AddFunc(deps.Config.DigestCronSpec, func() {
		ctx := context.Background()
		log.Info(ctx, "Launching digest scheduling service.")
		if _, err := services.ScheduleDigests.Run(ctx, scheduledigests.Input{}); err != nil {
			log.Error(ctx, "Digest scheduling service returned an error.", logging.Entry("err", err))
		}
	})
	if err != nil {
		log.Error(
			context.Background(),
			"Invalid digest cron spec.",
			logging.Entry("err", err),
			logging.Entry("spec", deps.Config.DigestCronSpec),
		)
		return
	}

	stopCh, closeCh := createChannel()
	defer closeCh()

	log.Info(
		context.Background(),
		"Starting digest scheduler.",
		logging.Entry("spec", deps.Config.DigestCronSpec),
	)
	scheduler.Start()

	<-stopCh
	log.Info(context.Background(), "Stopping digest scheduler.")
	// Wait for a running job to finish before the deps are closed.
	<-scheduler.Stop().Done()
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
