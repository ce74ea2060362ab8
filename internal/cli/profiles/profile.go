// Package profiles implements the pet-profile and sound commands.
package profiles

import (
	"fmt"

	"github.com/hamcare-app/hamcare/internal/cli"
	"github.com/hamcare-app/hamcare/internal/printers"
	"github.com/hamcare-app/hamcare/internal/profile"
)

type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	pp := &printers.PrettyPrint{}
	pp.Profile(profile.Load(ctx.KV), profile.MoodTrend(ctx.KV))
	return nil
}

type SetCmd struct {
	Name   string `help:"Pet name."`
	Breed  string `help:"Pet breed."`
	Age    string `help:"Pet age."`
	Gender string `help:"Pet gender."`
}

func (c *SetCmd) Run(ctx *cli.Context) error {
	p := profile.Load(ctx.KV)
	if c.Name != "" {
		p.Name = c.Name
	}
	if c.Breed != "" {
		p.Breed = c.Breed
	}
	if c.Age != "" {
		p.Age = c.Age
	}
	if c.Gender != "" {
		p.Gender = c.Gender
	}

	if err := profile.Save(ctx.KV, p); err != nil {
		return err
	}
	fmt.Println("Profile updated.")
	return nil
}

type SoundCmd struct {
	State string `arg:"" enum:"on,off" help:"Turn app sound on or off."`
}

func (c *SoundCmd) Run(ctx *cli.Context) error {
	if err := profile.SetSoundEnabled(ctx.KV, c.State == "on"); err != nil {
		return err
	}
	fmt.Printf("Sound %s.\n", c.State)
	return nil
}
