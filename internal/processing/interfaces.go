package processing

import (
	"context"

	"clashberry/internal/app"
	"clashberry/internal/domain/war"
)

// WarClientInterface defines the War Data API client methods used by RefreshCoordinator
type WarClientInterface interface {
	GetWarData(ctx context.Context, clanTag string) (*app.WarResponse, error)
}

// WarSourceInterface defines what ActivityPresenter needs from a coordinator
type WarSourceInterface interface {
	Refresh(ctx context.Context, clanTag string) RefreshResult
	Current() *war.Data
}
