package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/cli/config"
	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/domain/types"
)

func cmdValidate() *cli.Command {
	var policyCfg config.Policy

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the permission policy file and print the resulting matrix",
		Flags:   policyCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			oracle, err := policyCfg.Configure()
			if err != nil {
				fmt.Printf("%s %s\n", color.New(color.FgRed).Sprint("FAIL"), err.Error())
				return goerr.Wrap(err, "policy validation failed")
			}

			if policyCfg.Path() == "" {
				fmt.Printf("%s no policy file given, showing the built-in matrix\n",
					color.New(color.FgYellow).Sprint("NOTE"))
			} else {
				fmt.Printf("%s %s\n", color.New(color.FgHiGreen).Sprint("OK"), policyCfg.Path())
			}

			// Print the grant matrix per action
			roles := types.AllRoles()
			for _, action := range types.AllActions() {
				var granted []string
				for _, role := range roles {
					if oracle.Allowed([]types.Role{role}, action) {
						granted = append(granted, role.String())
					}
				}
				sort.Strings(granted)

				label := color.New(color.FgHiBlue).Sprintf("%-22s", action)
				if len(granted) == 0 {
					fmt.Printf("  %s %s\n", label, color.New(color.FgRed).Sprint("(no roles)"))
					continue
				}
				fmt.Printf("  %s %v\n", label, granted)
			}

			return nil
		},
	}
}
