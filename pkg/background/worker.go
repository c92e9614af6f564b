package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"backoffice/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Task - периодическая фоновая задача.
type Task interface {
	// TTL возвращает период между запусками.
	TTL() time.Duration

	// Do выполняет один прогон задачи.
	Do(context.Context) error

	// Info возвращает имя задачи для логов.
	Info() string
}

type workerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker крутит набор периодических задач до отмены контекста.
type Worker struct {
	log   workerLogger
	tasks []Task
}

// New прогревает задачи и запускает их периодическое выполнение.
//
// Прогрев синхронный: каждая задача выполняется один раз до возврата из New,
// чтобы ошибки инициализации всплыли на старте приложения, а не в фоне.
// Ошибка или паника любой задачи на прогреве отменяет создание Worker.
func New(ctx context.Context, log workerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}
	if len(tasks) == 0 {
		return worker, nil
	}

	warmup, warmupCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		warmup.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := debug.Stack()
					err = fmt.Errorf("warmup panic: %v\n%s", r, stack)
					log.Error("Task panicked during warmup",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", stack),
					)
				}
			}()
			log.Info("Warming up task",
				logger.NewField("task", task.Info()),
			)
			return task.Do(warmupCtx)
		})
	}
	if err := warmup.Wait(); err != nil {
		return nil, fmt.Errorf("task warmup failed: %w", err)
	}

	for _, task := range tasks {
		go worker.run(ctx, task)
	}

	return worker, nil
}

func (w *Worker) run(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("Task has no positive TTL, periodic runs disabled",
			logger.NewField("task", task.Info()),
			logger.NewField("TTL", ttl),
		)
		return
	}
	w.log.Info("Task scheduled",
		logger.NewField("task", task.Info()),
		logger.NewField("TTL", ttl),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Warn("Task stopped, context cancelled",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			w.runOnce(ctx, task)
		}
	}
}

// runOnce изолирует паники: упавшая задача не должна ронять процесс.
func (w *Worker) runOnce(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("Task panicked",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", debug.Stack()),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		w.log.Error("Task run failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}
