package cli

import "fmt"

type ClearCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (c *ClearCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if !c.Force {
		fmt.Println("⚠️  WARNING: This deletes every prayer record. Preferences are kept.")
		ok, err := confirm("Continue? [y/N]: ")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Clear cancelled.")
			return nil
		}
	}

	if err := ctx.Store.ClearAll(); err != nil {
		return err
	}
	fmt.Println("✓ All prayer records deleted.")
	return nil
}
