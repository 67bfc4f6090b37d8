package labels

import (
	"context"
	"sync/atomic"

	"github.com/douhashi/gh-labels/internal/github"
	"github.com/douhashi/gh-labels/internal/logger"
)

// DeleteReport counts the outcome of the delete phase.
type DeleteReport struct {
	Deleted  int
	NotFound int
	Failed   int
}

// Deleter removes labels from a repository.
type Deleter struct {
	service LabelService
	batcher *Batcher
	logger  logger.Logger
}

// NewDeleter creates a Deleter.
func NewDeleter(service LabelService, batcher *Batcher, log logger.Logger) *Deleter {
	return &Deleter{service: service, batcher: batcher, logger: log}
}

// DeleteAll deletes every given label. A 404 counts as deleted, any other
// API error is logged and skipped. Only transport failures abort the phase.
func (d *Deleter) DeleteAll(ctx context.Context, repo github.Repo, labels []github.Label) (DeleteReport, error) {
	if len(labels) == 0 {
		d.logger.Info("No labels to clean")
		return DeleteReport{}, nil
	}

	var deleted, notFound, failed atomic.Int64

	err := Dispatch(ctx, d.batcher, labels, func(ctx context.Context, label github.Label) error {
		err := d.service.DeleteLabel(ctx, repo, label.Name)
		switch {
		case err == nil:
			deleted.Add(1)
			d.logger.Info("Deleted label", "label", label.Name)
		case github.IsNotFound(err):
			notFound.Add(1)
			d.logger.Warn("Label not found", "label", label.Name)
		case github.IsNetworkError(err):
			failed.Add(1)
			d.logger.Error("Error deleting label", "label", label.Name, "error", err)
			return err
		default:
			failed.Add(1)
			d.logger.Error("Failed to delete label", "label", label.Name, "error", err)
		}
		return nil
	})

	return DeleteReport{
		Deleted:  int(deleted.Load()),
		NotFound: int(notFound.Load()),
		Failed:   int(failed.Load()),
	}, err
}
