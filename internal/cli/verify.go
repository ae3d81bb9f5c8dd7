package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PalletLoad/internal/engine"
	"github.com/piwi3910/PalletLoad/internal/model"
	"github.com/piwi3910/PalletLoad/internal/project"
)

// newVerifyCommand creates "verify" that audits the saved result of a
// project file.
func newVerifyCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify PROJECT",
		Short: "Check a saved placement for overlaps, boundary and support violations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())

			proj, err := project.LoadProject(args[0])
			if err != nil {
				return err
			}
			if proj.Result == nil {
				return fmt.Errorf("project %s has no placement result", args[0])
			}

			violations := engine.CheckLoad(*proj.Result, proj.Pallet, model.Epsilon)
			if violations == nil {
				violations = []engine.Violation{}
			}
			logger.Debug("load checked", "project", args[0], "boxes", len(proj.Result.Placed), "violations", len(violations))

			w := cmd.OutOrStdout()
			if opts.Format == formatJSON {
				if err := writeJSON(w, violations); err != nil {
					return err
				}
			} else if len(violations) == 0 {
				fmt.Fprintf(w, "Load OK: %d boxes verified\n", len(proj.Result.Placed))
			} else {
				for _, line := range engine.FormatViolations(violations) {
					fmt.Fprintln(w, line)
				}
			}

			if len(violations) > 0 {
				return fmt.Errorf("%d load violations in %s", len(violations), args[0])
			}
			return nil
		},
	}
}
