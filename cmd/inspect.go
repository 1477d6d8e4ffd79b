package cmd

import (
	"github.com/pinpoint-cli/pinpoint/internal/clipboard"
	"github.com/pinpoint-cli/pinpoint/internal/inspector"
	"github.com/pinpoint-cli/pinpoint/internal/session"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Interactively inspect a tree: hover, select, annotate",
	Long: `Render a tree document in the terminal and drive the annotate loop with
the mouse: moving hovers, clicking selects, typing drafts feedback, Enter
submits it to the clipboard and the session history. Esc unwinds; with
nothing active it exits.`,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	addTreeFlag(inspectCmd)
	inspectCmd.Flags().String("app", "", "Application name for rendered output")
	inspectCmd.Flags().Bool("no-clipboard", false, "Keep rendered output in memory instead of the system clipboard")
}

func runInspect(cmd *cobra.Command, args []string) error {
	tree, err := loadTree(cmd)
	if err != nil {
		return err
	}
	app, _ := cmd.Flags().GetString("app")
	noClipboard, _ := cmd.Flags().GetBool("no-clipboard")

	var sink session.Sink
	if cb, err := clipboard.New(); err == nil && !noClipboard {
		sink = cb
	} else {
		sink = &clipboard.Memory{}
	}

	return inspector.Run(tree, inspector.Options{
		App:    app,
		Policy: policyFromFlags(cmd),
		Sink:   sink,
	})
}
