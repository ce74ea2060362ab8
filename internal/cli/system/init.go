// Package system holds the maintenance commands: init, doctor, notify and
// the interactive calendar.
package system

import (
	"fmt"
	"os"

	"github.com/hamcare-app/hamcare/internal/cli"
	"github.com/hamcare-app/hamcare/internal/constants"
	"github.com/hamcare-app/hamcare/internal/profile"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting existing storage before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if _, err := os.Stat(ctx.Config.Path); err == nil {
			// Close first to prevent file locking issues with the sqlite backend.
			if err := ctx.KV.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.RemoveAll(ctx.Config.Path); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			fmt.Printf("Deleted existing storage at: %s\n", ctx.Config.Path)

			if err := ctx.Reopen(); err != nil {
				return err
			}
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	// Seed the defaults the UI reads before the user has touched anything.
	if !ctx.KV.Has(constants.SoundEnabledKey) {
		if err := profile.SetSoundEnabled(ctx.KV, true); err != nil {
			return err
		}
	}
	if !ctx.KV.Has(constants.OnboardingDoneKey) {
		if err := ctx.KV.SetBool(constants.OnboardingDoneKey, false); err != nil {
			return err
		}
	}

	fmt.Printf("Initialized hamcare storage at: %s (backend: %s)\n", ctx.Config.Path, ctx.Config.Backend)
	return nil
}
