package trackables

import (
	"fmt"
	"time"

	"tracklit/internal/cli"
	"tracklit/internal/models"
	"tracklit/internal/tracker"
)

type DoneCmd struct {
	ID string `arg:"" help:"Trackable ID."`
}

func (c *DoneCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	loc, err := viewerLocation(ctx)
	if err != nil {
		return err
	}

	t, err := ctx.Store.GetTrackable(c.ID)
	if err != nil {
		return err
	}

	now := time.Now()
	t.MarkCompleted(now)
	t.UpdatedAt = now

	if err := ctx.Store.UpdateTrackable(t); err != nil {
		return err
	}

	switch t.Type {
	case models.TypeProgress:
		fmt.Printf("Progressed %s: %d/%d\n", t.Name, t.CurrentCount, t.TargetCount)
	default:
		if tracker.IsCompletedToday(t, now, loc) {
			fmt.Printf("Completed %s\n", t.Name)
		} else {
			fmt.Printf("Updated %s\n", t.Name)
		}
	}
	return nil
}
