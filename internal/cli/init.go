package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized salahtrack storage at: %s\n", ctx.Store.GetConfigPath())
	fmt.Println("Run 'salahtrack onboard' to set up your profile.")
	return nil
}
