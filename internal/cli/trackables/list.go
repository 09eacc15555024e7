package trackables

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tracklit/internal/cli"
	"tracklit/internal/constants"
	"tracklit/internal/models"
	"tracklit/internal/tracker"
	"tracklit/internal/utils"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type ListCmd struct {
	Type    string `short:"t" help:"Filter by type (daily_habit|one_time|progress)."`
	Start   string `short:"s" help:"Range start date (YYYY-MM-DD). Requires --end."`
	End     string `short:"e" help:"Range end date (YYYY-MM-DD). Requires --start."`
	Deleted bool   `help:"Include soft-deleted trackables."`
	ShowIDs bool   `help:"Show trackable IDs." name:"show-ids"`
}

func (c *ListCmd) Validate() error {
	if c.Type != "" && !models.TrackableType(c.Type).Valid() {
		return fmt.Errorf("invalid trackable type: %s", c.Type)
	}
	if (c.Start == "") != (c.End == "") {
		return fmt.Errorf("--start and --end must be given together")
	}
	if c.Start != "" && !utils.ValidateDateFormat(c.Start) {
		return fmt.Errorf("invalid start date (expected YYYY-MM-DD): %s", c.Start)
	}
	if c.End != "" && !utils.ValidateDateFormat(c.End) {
		return fmt.Errorf("invalid end date (expected YYYY-MM-DD): %s", c.End)
	}
	return nil
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	loc, err := viewerLocation(ctx)
	if err != nil {
		return err
	}

	trackables, err := ctx.Store.GetAllTrackables(models.TrackableType(c.Type), c.Deleted)
	if err != nil {
		return fmt.Errorf("failed to get trackables: %w", err)
	}

	if c.Start != "" {
		start, err := utils.ParseDateInLocation(c.Start, loc)
		if err != nil {
			return err
		}
		end, err := utils.ParseDateInLocation(c.End, loc)
		if err != nil {
			return err
		}
		start, end = tracker.NormalizeRange(start, end, loc)
		trackables = tracker.FilterRange(trackables, start, end)
	}

	tracker.SortForDisplay(trackables)
	trackables = tracker.Annotate(trackables, time.Now(), loc)

	if len(trackables) == 0 {
		fmt.Println("No trackables found")
		return nil
	}

	fmt.Println(headerStyle.Render("Trackables:"))
	for _, t := range trackables {
		mark := "[ ]"
		if t.IsCompletedToday {
			mark = doneStyle.Render("[✓]")
		}

		idStr := ""
		if c.ShowIDs {
			idStr = mutedStyle.Render(fmt.Sprintf(" (ID: %s)", t.ID))
		}

		line := fmt.Sprintf("  %s %s%s (%s", mark, t.Name, idStr, t.Type)
		if t.Priority != nil {
			line += fmt.Sprintf(", priority %d", *t.Priority)
		}
		if t.Recurring {
			line += ", recurring"
		}
		line += ")"
		if t.DeletedAt != nil {
			line += mutedStyle.Render(" [deleted]")
		}
		fmt.Println(line)

		if t.ScheduledDate != nil {
			fmt.Printf("      Scheduled: %s\n", t.ScheduledDate.In(loc).Format(constants.DateFormat))
		}
		if t.Type == models.TypeProgress {
			fmt.Printf("      Progress: %d/%d\n", t.CurrentCount, t.TargetCount)
		}
	}

	return nil
}
