package processing

import (
	"clashberry/internal/clash"
)

// Compile-time interface compliance checks
var (
	_ clash.WarDataAPI   = (*clash.Client)(nil)
	_ WarClientInterface = (*clash.Client)(nil)
	_ WarSourceInterface = (*RefreshCoordinator)(nil)
)
