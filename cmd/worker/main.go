package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"

	"vestiapi/dbhelper"
	"vestiapi/services"
	"vestiapi/tasks"
)

func main() {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              os.Getenv("SENTRY_DSN"),
		Environment:      services.GetEnv("ENV", "local"),
		Release:          "vestiapi@1.0.0",
		TracesSampleRate: 1.0,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	defer sentry.Recover()
	defer sentry.Flush(2 * time.Second)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: os.Getenv("ASYNC_BROKER_ADDRESS")},
		asynq.Config{Concurrency: 10, Queues: map[string]int{
			"analyze": 7,
		}},
	)
	awsService := &services.AWSService{}
	stylist := services.GoogleStylistService{}
	if err := awsService.InitPresignClient(context.Background()); err != nil {
		log.Fatal("[Queue] Failed to initialize AWS provider: S3")
	}

	mux := asynq.NewServeMux()
	db := dbhelper.SetupDB()
	mux.HandleFunc("analyze:clothing", func(ctx context.Context, t *asynq.Task) error {
		return tasks.HandleClothingAnalysisTask(ctx, t, db, stylist, awsService)
	})

	if err := srv.Run(mux); err != nil {
		log.Fatal(err)
	}
}
