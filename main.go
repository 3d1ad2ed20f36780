package main

import (
	"fmt"
	"io"
	"os"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/workloads"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.GetSchedulerConfig()
	if err := cfg.ConfigureLogger(); err != nil {
		log.Fatalln(err)
	}

	if len(os.Args) > 1 && os.Args[1] == "report" {
		if err := runReport(os.Stdout, cfg); err != nil {
			log.Fatalln(err)
		}
		return
	}

	handler, err := api.NewSchedulerHandlerImpl(cfg)
	if err != nil {
		log.Fatalln(err)
	}
	app := fiber.New()
	api.RegisterRoutes(app, handler)

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}

// runReport schedules the built-in workloads with both algorithms and prints
// the result tables.
func runReport(w io.Writer, cfg *config.SchedulerConfig) error {
	mlfq, err := schedulers.NewMultilevelFeedbackQueue(cfg.MultilevelFeedbackQueueLevelsTimeQuantum)
	if err != nil {
		return err
	}
	sjf := schedulers.NewShortestJobFirst()
	if cfg.Trace {
		sjf.Trace = schedulers.LogSnapshots(log.WithField("algorithm", sjf.Name()))
		mlfq.Trace = schedulers.LogSnapshots(log.WithField("algorithm", mlfq.Name()))
	}
	titles := map[string]string{
		"sjf":  "Shortest-job-first",
		"mlfq": "Multilevel feedback queue",
	}
	for _, scheduler := range []schedulers.Scheduler{sjf, mlfq} {
		result := scheduler.Run(workloads.Default())
		report.WriteSchedule(w, titles[scheduler.Name()], schedulers.GenerateResponse(result, false))
	}
	return nil
}
