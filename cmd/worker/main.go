package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"matchmaker/internal/config"
	"matchmaker/internal/db"
	"matchmaker/internal/tasks"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := db.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Worker connected to database.")

	redisOpt, err := asynq.ParseRedisURI(cfg.RedisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	asynqClient := asynq.NewClient(redisOpt)
	defer asynqClient.Close()

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{})
	matchAllTask, err := tasks.NewMatchAllTask()
	if err != nil {
		log.Fatalf("Failed to create match all task: %v", err)
	}

	// nightly, declarations change rarely
	entryID, err := scheduler.Register("0 3 * * *", matchAllTask, asynq.Queue("default"))
	if err != nil {
		log.Fatalf("Failed to register periodic task: %v", err)
	}
	log.Printf("Registered periodic task: %s (EntryID: %s)", matchAllTask.Type(), entryID)

	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				"default": 3,
			},
			Concurrency: 10, // Max 10 concurrent jobs
		},
	)

	taskProcessor := tasks.NewTaskProcessor(db, cfg, asynqClient)

	mux := asynq.NewServeMux()
	mux.HandleFunc(
		tasks.TypeTaskMatchYear,
		taskProcessor.HandleMatchYearTask,
	)

	mux.HandleFunc(
		tasks.TypeTaskMatchAll,
		taskProcessor.HandleMatchAllTask,
	)

	go func() {
		log.Println("Starting Asynq scheduler...")
		if err := scheduler.Run(); err != nil {
			log.Fatalf("Could not run Asynq scheduler: %v", err)
		}
	}()

	go func() {
		log.Println("Starting Asynq worker server...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("Could not run Asynq worker server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("Shutdown signal received, shutting down gracefully...")
	scheduler.Shutdown()
	srv.Shutdown()
}
