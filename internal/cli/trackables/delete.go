package trackables

import (
	"fmt"

	"tracklit/internal/cli"
)

type DeleteCmd struct {
	ID string `arg:"" help:"Trackable ID."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	t, err := ctx.Store.GetTrackable(c.ID)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteTrackable(c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted trackable: %s\n", t.Name)
	fmt.Println("Use 'tracklit restore' to undo.")
	return nil
}

type RestoreCmd struct {
	ID string `arg:"" help:"Trackable ID."`
}

func (c *RestoreCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	if err := ctx.Store.RestoreTrackable(c.ID); err != nil {
		return err
	}

	t, err := ctx.Store.GetTrackable(c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Restored trackable: %s\n", t.Name)
	return nil
}
