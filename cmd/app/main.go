package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/fitbooking/api"
	"github.com/Domenick1991/fitbooking/config"
	"github.com/Domenick1991/fitbooking/internal/bootstrap"
	"github.com/Domenick1991/fitbooking/internal/cache"
	"github.com/Domenick1991/fitbooking/internal/domain"
	"github.com/Domenick1991/fitbooking/internal/kafka"
	"github.com/Domenick1991/fitbooking/internal/repository"
	"github.com/Domenick1991/fitbooking/internal/scheduler"
	"github.com/Domenick1991/fitbooking/internal/service/registration"
	"github.com/Domenick1991/fitbooking/internal/service/roster"
	"github.com/Domenick1991/fitbooking/internal/service/session"
	"github.com/Domenick1991/fitbooking/internal/service/user"
	"github.com/Domenick1991/fitbooking/migrations"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if err := migrations.Apply(ctx, pool); err != nil {
		log.Fatalf("apply schema: %v", err)
	}

	userRepo := repository.NewUserRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)
	regRepo := repository.NewRegistrationRepository(pool)
	reminderRepo := repository.NewReminderRepository(pool)

	operators := make([]domain.Operator, 0, len(cfg.Operators))
	for _, op := range cfg.Operators {
		operators = append(operators, domain.Operator{ID: op.ID, Name: op.Name})
	}
	if err := userRepo.SeedOperators(ctx, operators); err != nil {
		log.Fatalf("seed operators: %v", err)
	}

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.SessionsCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	rosterService := roster.NewRosterService(regRepo)
	dispatcher := scheduler.NewDispatcher(sessionRepo, rosterService, producer, cfg.Kafka.NotificationsTopic, cfg.OperatorIDs())
	reminderScheduler := scheduler.New(reminderRepo, dispatcher, time.Duration(cfg.Reminder.LeadMinutes)*time.Minute)
	defer reminderScheduler.Shutdown()

	if err := reminderScheduler.Restore(ctx); err != nil {
		log.Printf("restore reminders: %v", err)
	}

	userService := user.NewUserService(userRepo)
	registrationService := registration.NewRegistrationService(
		regRepo,
		sessionRepo,
		registration.WithEvents(producer, cfg.Kafka.RegistrationsTopic),
	)
	sessionService := session.NewSessionService(
		sessionRepo,
		session.WithCache(redisCache),
		session.WithScheduler(reminderScheduler),
	)

	gate := api.NewOperatorGate(cfg.OperatorIDs())
	router := api.NewRouter(
		api.NewUserHandler(userService, registrationService),
		api.NewSessionHandler(sessionService, rosterService, registrationService, cfg.Booking.AttendanceWindowDays),
		api.NewRegistrationHandler(registrationService),
		gate,
	)

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
