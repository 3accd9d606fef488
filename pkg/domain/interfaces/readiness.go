package interfaces

import (
	"context"

	"github.com/m-mizutani/simplecounter/pkg/domain/model"
)

// ReadinessUseCase checks that external collaborators are reachable
type ReadinessUseCase interface {
	Check(ctx context.Context) *model.ReadinessReport
}
