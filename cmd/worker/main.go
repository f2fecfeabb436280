package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/fitbooking/config"
	"github.com/Domenick1991/fitbooking/internal/kafka"
	"github.com/Domenick1991/fitbooking/internal/notify"
	"github.com/Domenick1991/fitbooking/internal/repository"
	"github.com/Domenick1991/fitbooking/internal/scheduler"
	"github.com/Domenick1991/fitbooking/internal/service/roster"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	sessionRepo := repository.NewSessionRepository(pool)
	regRepo := repository.NewRegistrationRepository(pool)
	reminderRepo := repository.NewReminderRepository(pool)
	rosterService := roster.NewRosterService(regRepo)
	dispatcher := scheduler.NewDispatcher(sessionRepo, rosterService, producer, cfg.Kafka.NotificationsTopic, cfg.OperatorIDs())

	consumer := kafka.NewReminderConsumer(cfg.Kafka)
	defer consumer.Close()

	sender := notify.NewSender()

	go func() {
		if err := consumer.Consume(ctx, sender.Send); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	// Safety net for reminders whose fire time elapsed while the app process
	// was down: claim them here and dispatch.
	sweepTicker := time.NewTicker(time.Duration(cfg.Worker.ReminderSweepMinutes) * time.Minute)
	defer sweepTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-sweepTicker.C:
			ids, err := reminderRepo.ClaimOverdue(ctx, time.Now())
			if err != nil {
				log.Printf("claim overdue reminders: %v", err)
				continue
			}
			for _, id := range ids {
				if err := dispatcher.Dispatch(ctx, id); err != nil {
					log.Printf("dispatch reminder for session %d: %v", id, err)
				}
			}
			if len(ids) > 0 {
				log.Printf("dispatched %d overdue reminders", len(ids))
			}
		case s := <-sig:
			log.Printf("received signal %v, shutting down", s)
			return
		}
	}
}
