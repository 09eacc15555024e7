package trackables

import (
	"fmt"
	"time"

	"tracklit/internal/cli"
	"tracklit/internal/utils"
)

// viewerLocation resolves the configured timezone into a *time.Location.
// Calendar-day comparisons depend on it, so an unloadable zone is an error
// rather than a silent fall-back.
func viewerLocation(ctx *cli.Context) (*time.Location, error) {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone setting %q: %w", settings.Timezone, err)
	}
	return loc, nil
}
