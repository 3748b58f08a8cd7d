package mock

import (
	"context"

	"github.com/sailhq/windfind"
)

var _ windfind.RunService = (*RunService)(nil)

// RunService is a mock implementation of windfind.RunService.
type RunService struct {
	CreateRunFn func(ctx context.Context, run *windfind.Run) error
	FindRunsFn  func(ctx context.Context, filter windfind.RunFilter) ([]*windfind.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *windfind.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRuns(ctx context.Context, filter windfind.RunFilter) ([]*windfind.Run, error) {
	return s.FindRunsFn(ctx, filter)
}
