package usecase

import (
	"time"

	"taskkeep/internal/task/repository"
	"taskkeep/pkg/datemath"
	pkgLog "taskkeep/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	legacy repository.LegacyReader
	dates  *datemath.Parser
	now    func() time.Time
}

// New creates a new task UseCase instance. now may be nil, in which case
// time.Now is used; tests inject a fixed clock.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	legacy repository.LegacyReader,
	dates *datemath.Parser,
	now func() time.Time,
) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:      l,
		repo:   repo,
		legacy: legacy,
		dates:  dates,
		now:    now,
	}
}
