package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"resmap/internal/app"
	"resmap/internal/shared"
)

func newStringCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "string <reference|id>",
		Short: "Print the default value of a string resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runString(cmd.Context(), cmd, args[0])
		},
	}
	return cmd
}

func runString(ctx context.Context, cmd *cobra.Command, target string) error {
	req, err := stringRequest(projectPath(cmd), target)
	if err != nil {
		return err
	}
	service := newAppService()
	result, err := service.StringValue(ctx, req)
	if err != nil {
		return err
	}
	fmt.Println(result.Value)
	return nil
}

// stringRequest treats targets with a '@' or '/' as references and
// anything else as a numeric id.
func stringRequest(project string, target string) (app.StringRequest, error) {
	target = strings.TrimSpace(target)
	if strings.HasPrefix(target, "@") || strings.Contains(target, "/") {
		return app.StringRequest{ProjectPath: project, Reference: target}, nil
	}
	id, err := shared.ParseResourceID(target)
	if err != nil {
		return app.StringRequest{}, err
	}
	return app.StringRequest{ProjectPath: project, ID: id}, nil
}
