package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"resmap/internal/app"
)

func newLibrariesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "libraries",
		Short: "List the library tables the project would register, in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLibraries(cmd.Context(), cmd)
		},
	}
	return cmd
}

func runLibraries(ctx context.Context, cmd *cobra.Command) error {
	service := newAppService()
	result, err := service.Libraries(ctx, app.LibrariesRequest{ProjectPath: projectPath(cmd)})
	if err != nil {
		return err
	}
	for _, library := range result.Libraries {
		root := library.Root
		if root == "" {
			root = "(explicit)"
		}
		fmt.Printf("%s %s %s\n", library.Identity, root, library.Table)
	}
	return nil
}
