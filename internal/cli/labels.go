package cli

import (
	"fmt"
	"strings"

	"github.com/existflow/ironproject/internal/logger"
	"github.com/existflow/ironproject/internal/model"
	"github.com/spf13/cobra"
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Manage the label catalog",
	Long:  `List and add the labels every new project can choose from.`,
	Args:  cobra.NoArgs,
	RunE:  runLabelsList,
}

var labelsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List labels",
	Args:    cobra.NoArgs,
	RunE:    runLabelsList,
}

var labelsAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a label",
	Long: `Add a label to the catalog.

Examples:
  ironproject labels add "QA"
  ironproject labels add "Docs" --color pink`,
	Args: cobra.ExactArgs(1),
	RunE: runLabelsAdd,
}

var labelColor string

func init() {
	labelsAddCmd.Flags().StringVarP(&labelColor, "color", "c", "", "Label color (red, blue, green, yellow, purple, pink, gray)")

	labelsCmd.AddCommand(labelsListCmd)
	labelsCmd.AddCommand(labelsAddCmd)
}

func runLabelsList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(appConfig.Labels) == 0 {
		fmt.Fprintln(out, "No labels. Add one with: ironproject labels add NAME")
		return nil
	}

	for _, l := range appConfig.Labels {
		fmt.Fprintf(out, "%3d  %-20s %s\n", l.ID, l.Name, model.ColorName(l.ColorTag))
	}
	return nil
}

func runLabelsAdd(cmd *cobra.Command, args []string) error {
	color := ""
	if labelColor != "" {
		tag, ok := model.ColorTag(labelColor)
		if !ok {
			names := make([]string, len(model.LabelPalette))
			for i, c := range model.LabelPalette {
				names[i] = strings.ToLower(c.Name)
			}
			return fmt.Errorf("unknown color %q (want one of %s)", labelColor, strings.Join(names, ", "))
		}
		color = tag
	}

	label, err := appConfig.AddLabel(args[0], color)
	if err != nil {
		return err
	}
	if err := appConfig.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	logger.Info("Label added", logger.F("id", label.ID), logger.F("name", label.Name))
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Added label [%d] %s (%s)\n", label.ID, label.Name, model.ColorName(label.ColorTag))
	return nil
}
