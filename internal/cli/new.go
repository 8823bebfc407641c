package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/existflow/ironproject/internal/draft"
	"github.com/existflow/ironproject/internal/logger"
	"github.com/existflow/ironproject/internal/model"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a project without the form",
	Long: `Create a project from flags and print it.

Examples:
  ironproject new --title "Roadmap"
  ironproject new -t "Website" --status planned --priority high --label Design --label QA
  ironproject new -t "Launch" --start 2024-03-01 --milestone "Beta@2024-04-01" --milestone "GA"`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

// newOptions are the values of the new command's flags
type newOptions struct {
	title       string
	description string
	status      string
	priority    string
	start       string
	target      string
	favorite    bool
	labels      []string
	milestones  []string
}

var newOpts newOptions

func init() {
	newCmd.Flags().StringVarP(&newOpts.title, "title", "t", "", "Project title (required)")
	newCmd.Flags().StringVarP(&newOpts.description, "description", "d", "", "Project description")
	newCmd.Flags().StringVarP(&newOpts.status, "status", "s", "", "Status (backlog, planned, in-progress, completed, canceled)")
	newCmd.Flags().StringVarP(&newOpts.priority, "priority", "p", "", "Priority (none, urgent, low, medium, high)")
	newCmd.Flags().StringVar(&newOpts.start, "start", "", "Start date (YYYY-MM-DD)")
	newCmd.Flags().StringVar(&newOpts.target, "target", "", "Target date (YYYY-MM-DD)")
	newCmd.Flags().BoolVar(&newOpts.favorite, "favorite", false, "Mark as favorite")
	newCmd.Flags().StringArrayVarP(&newOpts.labels, "label", "l", nil, "Label name or id to attach; unknown names are created (repeatable)")
	newCmd.Flags().StringArrayVarP(&newOpts.milestones, "milestone", "m", nil, `Milestone as "TITLE" or "TITLE@YYYY-MM-DD" (repeatable)`)
}

func runNew(cmd *cobra.Command, args []string) error {
	emitter, closeOut, err := newEmitter(cmd)
	if err != nil {
		return err
	}
	defer closeOut()

	store := newStore(appConfig)
	if err := fillDraft(store, newOpts); err != nil {
		return err
	}

	project, err := store.Submit()
	if err != nil {
		return fmt.Errorf("cannot create project: %w", err)
	}

	logger.Info("Project created from flags", logger.F("title", project.Title))
	return emitter.Emit(project)
}

// fillDraft applies the flag values to the draft the way the form would
func fillDraft(store *draft.Store, opts newOptions) error {
	store.SetTitle(opts.title)
	store.SetDescription(opts.description)

	if opts.status != "" {
		status, ok := model.ParseStatus(opts.status)
		if !ok {
			return fmt.Errorf("unknown status %q", opts.status)
		}
		store.SetStatus(status)
	}
	if opts.priority != "" {
		priority, ok := model.ParsePriority(opts.priority)
		if !ok {
			return fmt.Errorf("unknown priority %q", opts.priority)
		}
		store.SetPriority(priority)
	}

	start, err := model.ParseDate(opts.start)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", opts.start, err)
	}
	store.SetStartDate(start)

	target, err := model.ParseDate(opts.target)
	if err != nil {
		return fmt.Errorf("invalid target date %q: %w", opts.target, err)
	}
	store.SetTargetDate(target)

	if opts.favorite {
		store.ToggleFavorite()
	}

	for _, name := range opts.labels {
		label, ok := findLabel(store, name)
		if !ok {
			if label, ok = store.AddLabel(name, ""); !ok {
				return fmt.Errorf("label name is required")
			}
		}
		if !store.IsLabelSelected(label.ID) {
			store.ToggleLabelSelection(label.ID)
		}
	}

	for i, value := range opts.milestones {
		title, date, err := parseMilestone(value)
		if err != nil {
			return err
		}

		// The draft always starts with one milestone
		id := store.Milestones()[0].ID
		if i > 0 {
			id = store.AddMilestone().ID
		}
		store.SetMilestoneTitle(id, title)
		store.SetMilestoneDate(id, date)
	}

	return nil
}

// findLabel looks a label up by catalog id ("3") or by name
func findLabel(store *draft.Store, ref string) (model.Label, bool) {
	if id, err := strconv.Atoi(strings.TrimSpace(ref)); err == nil {
		return store.Label(id)
	}
	return store.LabelByName(ref)
}

// parseMilestone splits "TITLE@YYYY-MM-DD" at its last '@'
func parseMilestone(value string) (string, *time.Time, error) {
	i := strings.LastIndex(value, "@")
	if i < 0 {
		return value, nil, nil
	}
	date, err := model.ParseDate(value[i+1:])
	if err != nil {
		return "", nil, fmt.Errorf("invalid milestone date in %q: %w", value, err)
	}
	return value[:i], date, nil
}
