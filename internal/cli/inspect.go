package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resmap/internal/app"
)

type inspectOptions struct {
	OutputDir string
	ReportDir string
	Entries   bool
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize the merged identifier index and optionally write reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.OutputDir, "output", "", "Write index.report and libraries.report to this directory")
	cmd.Flags().StringVar(&opts.ReportDir, "from", "", "Read reports from this directory instead of building")
	cmd.Flags().BoolVar(&opts.Entries, "entries", false, "Print every index entry")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		ProjectPath: projectPath(cmd),
		OutputDir:   resolveString(cmd, opts.OutputDir, "output", "output"),
		ReportDir:   opts.ReportDir,
	})
	if err != nil {
		return err
	}

	fmt.Printf("application=%d system=%d libraries=%d rebased=%d pending=%d\n",
		result.Stats.Application, result.Stats.System, result.Stats.Libraries, result.Stats.Rebased, result.Stats.Pending)
	fmt.Println("groups:")
	for _, group := range result.Groups {
		fmt.Printf("- %s (%s): %d\n", group.Name, group.Namespace, group.Count)
	}
	fmt.Println("libraries:")
	for _, library := range result.Report.Libraries {
		fmt.Printf("- %s: %d rebased, %d skipped (%s)\n", library.Identity, library.Rebased, library.Skipped, library.Status())
	}
	if opts.Entries {
		for _, entry := range result.Report.Entries {
			fmt.Printf("0x%08x %s\n", uint32(entry.ID), entry.Name)
		}
	}
	return nil
}
