// This software is a derivative work based on Zeit (https://github.com/mrusme/zeit)
// Original work copyright (c) マリウス (mrusme)
// Modifications copyright (c) Manav Panchal
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/lifedash/internal/model"
	"github.com/manav03panchal/lifedash/internal/tui"
)

var flagGuest bool

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "d", "tui"},
	Short:   "Open the interactive TUI dashboard",
	Long: `Open the interactive terminal dashboard.

The dashboard shows life metrics, music, finances, goals, notes, todos and
checklists. It needs a session from 'lifedash login' unless --guest is set.

Keyboard Controls:
  w/b/s   - Water, sleep and steps editors (+/- adjust, space holds)
  m       - Playlist
  i/e/x   - Add income, expense or investment
  g/v     - Goals and new savings goal
  n/t/c   - New note, todo or checklist
  tab     - Move focus between lists
  enter   - Open the selected entry
  d       - Delete the selected entry
  q       - Quit dashboard

Editors save with alt+enter or ctrl+s and cancel with esc.

Examples:
  lifedash dashboard
  lifedash dash --guest`,
	RunE: runDashboard,
}

func init() {
	dashboardCmd.Flags().BoolVar(&flagGuest, "guest", false, "Open the dashboard without signing in")
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	var sess *model.Session
	if !flagGuest {
		store, err := ctx.Session()
		if err != nil {
			return err
		}
		if sess, err = store.Load(); err != nil {
			return err
		}
		ctx.Debugf("dashboard for %s", sess.User.Email)
	}

	agg, err := ctx.NewAggregator()
	if err != nil {
		return err
	}

	// Run closes the aggregator on exit
	return tui.Run(tui.DashboardConfig{
		Aggregator:      agg,
		Session:         sess,
		RefreshInterval: ctx.Config.Dashboard.RefreshInterval,
	})
}
