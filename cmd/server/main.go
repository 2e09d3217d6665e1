package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"campusconnect/internal/audit"
	authhandler "campusconnect/internal/auth/handler"
	authservice "campusconnect/internal/auth/service"
	"campusconnect/internal/auth/session"
	authstore "campusconnect/internal/auth/store"
	chathandler "campusconnect/internal/chat/handler"
	chatservice "campusconnect/internal/chat/service"
	chatstore "campusconnect/internal/chat/store"
	directoryhandler "campusconnect/internal/directory/handler"
	directoryservice "campusconnect/internal/directory/service"
	directorystore "campusconnect/internal/directory/store"
	eventshandler "campusconnect/internal/events/handler"
	eventsservice "campusconnect/internal/events/service"
	eventsstore "campusconnect/internal/events/store"
	feedhandler "campusconnect/internal/feed/handler"
	feedservice "campusconnect/internal/feed/service"
	feedstore "campusconnect/internal/feed/store"
	jwttoken "campusconnect/internal/jwt_token"
	"campusconnect/internal/platform/config"
	"campusconnect/internal/platform/httpserver"
	"campusconnect/internal/platform/logger"
	"campusconnect/internal/platform/metrics"
	"campusconnect/internal/platform/redis"
	"campusconnect/internal/search"
	transport "campusconnect/internal/transport/http"
	"campusconnect/pkg/platform/sentinel"
)

const shutdownGrace = 10 * time.Second

func main() {
	log := logger.New()
	if err := run(log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.FromEnv()
	m := metrics.New()

	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		log.Info("session snapshots persisted to redis")
	}

	var db *sql.DB
	if cfg.DatabaseURL != "" {
		db, err = sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			return err
		}
		log.Info("credential directory backed by postgres")
	}

	// Stores: postgres and redis when configured, seeded memory otherwise.
	var users authservice.UserStore
	if db != nil {
		users = authstore.NewPostgresUserStore(db)
	} else {
		users = authstore.NewInMemoryUserStore()
	}

	var sessions authservice.SessionStore
	if redisClient != nil {
		sessions = session.NewRedis(redisClient.Client, cfg.TokenTTL)
	} else {
		sessions = session.NewInMemoryStore()
	}

	posts := feedstore.NewInMemoryPostStore()
	events := eventsstore.NewInMemoryEventStore()
	var messages chatservice.MessageStore = chatstore.NewInMemoryMessageStore()
	directory := directorystore.NewInMemoryDirectoryStore()

	if cfg.Seed {
		if err := authstore.Seed(ctx, users); err != nil && !errors.Is(err, sentinel.ErrConflict) {
			return err
		}
		if err := feedstore.Seed(ctx, posts); err != nil {
			return err
		}
		if err := eventsstore.Seed(ctx, events); err != nil {
			return err
		}
		messages = chatstore.NewSeededMessageStore()
		directory = directorystore.NewSeededDirectoryStore()
	}

	// Audit pipeline: synchronous store append, optional Kafka fan-out.
	auditor := audit.NewPublisher(audit.NewInMemoryStore())
	var worker *audit.Worker
	if cfg.KafkaBrokers != "" {
		sink, err := audit.NewKafkaSink(splitBrokers(cfg.KafkaBrokers))
		if err != nil {
			return err
		}
		defer sink.Close()

		outbox := make(chan audit.Event, 256)
		auditor = auditor.WithOutbox(outbox)
		worker = audit.NewWorker(sink, outbox, log)
		log.Info("audit events published to kafka")
	}

	tokens := jwttoken.NewJWTService(cfg.JWTSigningKey, "campusconnect", "campusconnect-api")
	validator := jwttoken.NewMiddlewareAdapter(tokens)

	authSvc := authservice.New(users, sessions, tokens, m, auditor, cfg.TokenTTL)
	feedSvc := feedservice.New(posts, sessions, m, auditor)
	eventsSvc := eventsservice.New(events, sessions, m, auditor)
	chatSvc := chatservice.New(messages, sessions, m, auditor)
	directorySvc := directoryservice.New(directory)
	searchSvc := search.New(directorySvc, events, posts)

	router := transport.NewRouter(transport.Deps{
		Logger:  log,
		Metrics: m,
		Redis:   redisClient,
		DB:      db,
		Handlers: []transport.Registrar{
			authhandler.New(authSvc, log, validator),
			feedhandler.New(feedSvc, log, validator),
			eventshandler.New(eventsSvc, log, validator),
			chathandler.New(chatSvc, log, validator),
			directoryhandler.New(directorySvc),
			search.NewHandler(searchSvc),
		},
	})

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	if worker != nil {
		g.Go(func() error {
			if err := worker.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func splitBrokers(brokers string) []string {
	var out []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
