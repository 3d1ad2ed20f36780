package api

import (
	"strconv"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/workloads"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const maxRandomWorkloads = 100

type SchedulerHandler interface {
	ShortestJobFirst(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	DefaultWorkloads(ctx *fiber.Ctx) error
	RandomWorkloads(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	sjf    *schedulers.ShortestJobFirst
	mlfq   *schedulers.MultilevelFeedbackQueue
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) (*SchedulerHandlerImpl, error) {
	mlfq, err := schedulers.NewMultilevelFeedbackQueue(config.MultilevelFeedbackQueueLevelsTimeQuantum)
	if err != nil {
		return nil, err
	}
	return &SchedulerHandlerImpl{
		config: config,
		sjf:    schedulers.NewShortestJobFirst(),
		mlfq:   mlfq,
	}, nil
}

func RegisterRoutes(app *fiber.App, h SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/sjf", h.ShortestJobFirst)
		v1.Post("/mlfq", h.MultilevelFeedbackQueue)
		v1.Post("/all", h.AllAlgorithms)
		v1.Get("/workloads", h.DefaultWorkloads)
		v1.Get("/workloads/random", h.RandomWorkloads)
	}
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, s.sjf)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, s.mlfq)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, jobs, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	all := make(map[string]responses.ScheduleResponse, 2)
	for _, scheduler := range []schedulers.Scheduler{s.sjf, s.mlfq} {
		all[scheduler.Name()] = s.run(scheduler, jobs, request.Trace)
	}
	return ctx.JSON(all)
}

func (s *SchedulerHandlerImpl) DefaultWorkloads(ctx *fiber.Ctx) error {
	return ctx.JSON(requests.FromWorkloads(workloads.Default()))
}

func (s *SchedulerHandlerImpl) RandomWorkloads(ctx *fiber.Ctx) error {
	seed, err := strconv.ParseUint(ctx.Query("seed", "1"), 10, 64)
	if err != nil {
		return badRequest(ctx, err)
	}
	count, err := strconv.Atoi(ctx.Query("count", "5"))
	if err != nil {
		return badRequest(ctx, err)
	}
	if count <= 0 || count > maxRandomWorkloads {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "count must be between 1 and " + strconv.Itoa(maxRandomWorkloads),
		})
	}
	return ctx.JSON(requests.FromWorkloads(workloads.Random(seed, count)))
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, scheduler schedulers.Scheduler) error {
	request, jobs, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	return ctx.JSON(s.run(scheduler, jobs, request.Trace))
}

func (s *SchedulerHandlerImpl) run(scheduler schedulers.Scheduler, jobs []core.Workload, trace bool) responses.ScheduleResponse {
	result := scheduler.Run(jobs)
	return schedulers.GenerateResponse(result, trace || s.config.Trace)
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, []core.Workload, error) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		return nil, nil, err
	}
	jobs, err := request.Workloads()
	if err != nil {
		return nil, nil, err
	}
	return request, jobs, nil
}

func badRequest(ctx *fiber.Ctx, err error) error {
	log.WithError(err).WithField("path", ctx.Path()).Warn("rejected request")
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}
