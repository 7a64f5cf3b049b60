package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/kate-sync/internal/bootstrap"
	"github.com/shinji-kodama/kate-sync/internal/logging"
	"github.com/shinji-kodama/kate-sync/internal/model"
)

// planOutput is the document printed by `kate-sync plan`.
type planOutput struct {
	Steps []model.Step `json:"steps" yaml:"steps"`
}

// NewPlanCommand creates the "plan" cobra command.
func NewPlanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the bootstrap steps without running them",
		Long: `Print the steps a bootstrap run performs, in order, as YAML.

Nothing is executed and no directory is checked.

Examples:
  kate-sync plan
  kate-sync plan --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd.OutOrStdout(), logging.New(cmd.ErrOrStderr(), verbose))
		},
	}
}

// runPlan renders the plan of a default bootstrap to w.
func runPlan(w io.Writer, logger zerolog.Logger) error {
	b := bootstrap.New(io.Discard, nil, logger)
	doc := planOutput{Steps: b.Plan()}

	if jsonOutput {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to encode plan", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to encode plan", err)
	}
	_, err = w.Write(data)
	return err
}
