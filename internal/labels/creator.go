package labels

import (
	"context"
	"sync/atomic"

	"github.com/douhashi/gh-labels/internal/github"
	"github.com/douhashi/gh-labels/internal/logger"
)

// CreateReport counts the outcome of the create phase.
type CreateReport struct {
	Created       int
	AlreadyExists int
	Failed        int
}

// Creator creates labels on a repository.
type Creator struct {
	service LabelService
	batcher *Batcher
	logger  logger.Logger
}

// NewCreator creates a Creator.
func NewCreator(service LabelService, batcher *Batcher, log logger.Logger) *Creator {
	return &Creator{service: service, batcher: batcher, logger: log}
}

// CreateAll creates every given label. A 422 (label exists) is not an
// error; any other failure is returned once its batch has settled and no
// further batches are started.
func (c *Creator) CreateAll(ctx context.Context, repo github.Repo, labels []github.Label) (CreateReport, error) {
	var created, exists, failed atomic.Int64

	err := Dispatch(ctx, c.batcher, labels, func(ctx context.Context, label github.Label) error {
		err := c.service.CreateLabel(ctx, repo, label)
		switch {
		case err == nil:
			created.Add(1)
			c.logger.Info("Created label", "label", label.Name)
		case github.IsUnprocessable(err):
			exists.Add(1)
			c.logger.Warn("Label already exists", "label", label.Name)
		default:
			failed.Add(1)
			c.logger.Error("Failed to create label", "label", label.Name, "error", err)
			return err
		}
		return nil
	})

	return CreateReport{
		Created:       int(created.Load()),
		AlreadyExists: int(exists.Load()),
		Failed:        int(failed.Load()),
	}, err
}
