package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"

	"matchmaker/internal/config"
	"matchmaker/internal/models"
	"matchmaker/internal/pkg/declarations"
	"matchmaker/internal/pkg/match"
)

// TaskProcessor holds dependencies for our task handlers
type TaskProcessor struct {
	DB     *gorm.DB
	config *config.Config
	store  *declarations.Store
	client *asynq.Client
}

// NewTaskProcessor creates a new TaskProcessor. The asynq client may be nil
// when the processor never fans out (tests exercising single-year runs).
func NewTaskProcessor(db *gorm.DB, config *config.Config, client *asynq.Client) *TaskProcessor {
	return &TaskProcessor{
		DB:     db,
		config: config,
		store:  declarations.NewStore(db),
		client: client,
	}
}

// HandleMatchYearTask runs the matching sweep for one reporting year and
// replaces that year's persisted results. A failure here fails this year
// only, other years run as separate tasks.
func (p *TaskProcessor) HandleMatchYearTask(ctx context.Context, t *asynq.Task) error {
	var payload MatchYearPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	log.Printf("Matching year %d", payload.Year)

	records, err := p.store.Records(ctx, payload.Year)
	if err != nil {
		return err
	}

	results := match.Resolve(records)
	log.Printf("Year %d: %d records, %d matches", payload.Year, len(records), len(results))

	rows := make([]models.MatchResult, 0, len(results))
	for _, r := range results {
		rows = append(rows, models.MatchResult{
			IncomeYear: payload.Year,
			SectionID:  r.SectionID,
			PersonID:   r.PersonID,
			Name:       r.Name,
			Candidates: r.Candidates,
		})
	}

	return p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("income_year = ?", payload.Year).Delete(&models.MatchResult{}).Error; err != nil {
			return fmt.Errorf("failed to clear year %d: %w", payload.Year, err)
		}

		if len(rows) == 0 {
			return nil
		}

		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to store year %d: %w", payload.Year, err)
		}
		return nil
	})
}

// HandleMatchAllTask enumerates the distinct reporting years and enqueues
// one MatchYear task per year
func (p *TaskProcessor) HandleMatchAllTask(ctx context.Context, t *asynq.Task) error {
	years, err := p.store.Years(ctx)
	if err != nil {
		return err
	}

	log.Printf("Enqueueing match tasks for %d years", len(years))

	for _, year := range years {
		task, err := NewMatchYearTask(year)
		if err != nil {
			return err
		}

		info, err := p.client.EnqueueContext(ctx, task)
		if err != nil {
			return fmt.Errorf("failed to enqueue year %d: %w", year, err)
		}
		log.Printf("Enqueued %s for year %d (ID: %s)", task.Type(), year, info.ID)
	}

	return nil
}
