package clash

import (
	"context"

	"clashberry/internal/app"
)

// WarDataAPI defines the interface for interacting with the War Data API
// This separates infrastructure concerns from business logic
type WarDataAPI interface {
	// Core API endpoints
	GetWarData(ctx context.Context, clanTag string) (*app.WarResponse, error)
	GetClanInfo(ctx context.Context, clanTag string) (*app.ClanBasicInfo, error)

	// API call tracking
	GetAPICallCount() int64
	IncrementAPICall()
	ResetAPICallCount()
}
