package settings

import (
	"fmt"

	"tracklit/internal/cli"
	"tracklit/internal/validation"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone  *string `help:"IANA timezone used for calendar-day evaluation (e.g. 'Europe/Berlin', 'Local')."`
	WeekStart *string `help:"First day of the week (monday|sunday)."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Timezone:   %s\n", settings.Timezone)
		fmt.Printf("  Week Start: %s\n", settings.WeekStart)
		return nil
	}

	updated := false
	if c.Timezone != nil {
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.WeekStart != nil {
		settings.WeekStart = *c.WeekStart
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := validation.Settings(settings); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")
	return nil
}
