package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"resmap/internal/app"
	"resmap/internal/shared"
	"resmap/internal/types"
)

type resolveIDOptions struct {
	Namespace string
}

func newResolveIDCommand() *cobra.Command {
	opts := resolveIDOptions{}
	cmd := &cobra.Command{
		Use:   "resolve-id <reference>",
		Short: "Print the id of a resource reference such as @string/app_name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolveID(cmd.Context(), cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.Namespace, "namespace", "", "Pin the namespace (application, system, library)")
	return cmd
}

func runResolveID(ctx context.Context, cmd *cobra.Command, reference string, opts resolveIDOptions) error {
	service := newAppService()
	result, err := service.ResolveID(ctx, app.ResolveIDRequest{
		ProjectPath: projectPath(cmd),
		Reference:   reference,
		Namespace:   types.Namespace(opts.Namespace),
	})
	if err != nil {
		return err
	}
	fmt.Printf("0x%08x\n", uint32(result.ID))
	return nil
}

type resolveNameOptions struct {
	Library string
	Group   string
}

func newResolveNameCommand() *cobra.Command {
	opts := resolveNameOptions{}
	cmd := &cobra.Command{
		Use:   "resolve-name <id>",
		Short: "Print the qualified name of a resource id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolveName(cmd.Context(), cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.Library, "library", "", "Treat the id as local to this library")
	cmd.Flags().StringVar(&opts.Group, "group", "", "Only accept ids of this resource group")
	return cmd
}

func runResolveName(ctx context.Context, cmd *cobra.Command, rawID string, opts resolveNameOptions) error {
	id, err := shared.ParseResourceID(rawID)
	if err != nil {
		return err
	}
	service := newAppService()
	result, err := service.ResolveName(ctx, app.ResolveNameRequest{
		ProjectPath: projectPath(cmd),
		ID:          id,
		Library:     opts.Library,
		Group:       opts.Group,
	})
	if err != nil {
		return err
	}
	fmt.Println(result.Name)
	return nil
}
