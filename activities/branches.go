package activities

import (
	"context"

	"github.com/hekimalabs/smas_backend/config"
	"github.com/hekimalabs/smas_backend/models"
)

// listBranches wraps the directory query for the jobs. On failure it
// returns an empty slice together with the error, so a caller can both
// treat the result as nothing-to-do and mark the job failed; an outage
// must not be confused with an empty tenant list.
func (s *Scheduler) listBranches(ctx context.Context) ([]models.Branch, error) {
	branches, err := models.ListVisibleBranches(ctx)
	if err != nil {
		config.LogError(s.Logger, "branches.go", "listBranches", "ListVisibleBranches", nil, err)
		return []models.Branch{}, err
	}
	return branches, nil
}

// listActiveBranches is the directory view for every job except the
// expiry reminder and the sweeper: an expired subscription stops all
// alerts and reports, only the expiry countdown keeps messaging.
func (s *Scheduler) listActiveBranches(ctx context.Context) ([]models.Branch, error) {
	branches, err := s.listBranches(ctx)
	if err != nil {
		return branches, err
	}
	return activeBranches(branches), nil
}

func activeBranches(branches []models.Branch) []models.Branch {
	active := make([]models.Branch, 0, len(branches))
	for _, b := range branches {
		if b.Days > 0 {
			active = append(active, b)
		}
	}
	return active
}
