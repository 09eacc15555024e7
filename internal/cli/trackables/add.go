package trackables

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"tracklit/internal/cli"
	"tracklit/internal/models"
	"tracklit/internal/utils"
	"tracklit/internal/validation"
)

type AddCmd struct {
	Name      string `arg:"" help:"Trackable name."`
	Type      string `short:"t" help:"Trackable type (daily_habit|one_time|progress)." default:"one_time"`
	Notes     string `short:"n" help:"Free-form notes."`
	Priority  int    `short:"p" help:"Priority (1-9, higher sorts first). 0 leaves it unset."`
	Target    int    `help:"Target count for progress trackables."`
	Recurring bool   `short:"r" help:"Mark as recurring (matches every date range)."`
	Scheduled string `short:"s" help:"Scheduled date (YYYY-MM-DD)."`
	Start     string `help:"Start date (YYYY-MM-DD)."`
}

func (c *AddCmd) Validate() error {
	if !models.TrackableType(c.Type).Valid() {
		return fmt.Errorf("invalid trackable type: %s", c.Type)
	}
	if c.Scheduled != "" && !utils.ValidateDateFormat(c.Scheduled) {
		return fmt.Errorf("invalid scheduled date (expected YYYY-MM-DD): %s", c.Scheduled)
	}
	if c.Start != "" && !utils.ValidateDateFormat(c.Start) {
		return fmt.Errorf("invalid start date (expected YYYY-MM-DD): %s", c.Start)
	}
	return nil
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	loc, err := viewerLocation(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	t := models.Trackable{
		ID:        uuid.New().String(),
		Name:      c.Name,
		Type:      models.TrackableType(c.Type),
		Status:    models.StatusActive,
		Notes:     c.Notes,
		Recurring: c.Recurring,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if c.Priority != 0 {
		p := c.Priority
		t.Priority = &p
	}
	if c.Target != 0 {
		t.TargetCount = c.Target
	}
	if c.Scheduled != "" {
		d, err := utils.ParseDateInLocation(c.Scheduled, loc)
		if err != nil {
			return err
		}
		t.ScheduledDate = &d
	}
	if c.Start != "" {
		d, err := utils.ParseDateInLocation(c.Start, loc)
		if err != nil {
			return err
		}
		t.StartDate = &d
	}

	if err := validation.Trackable(t); err != nil {
		return fmt.Errorf("invalid trackable: %w", err)
	}

	if err := ctx.Store.AddTrackable(t); err != nil {
		return err
	}

	fmt.Printf("Added trackable: %s (ID: %s)\n", c.Name, t.ID)
	return nil
}
