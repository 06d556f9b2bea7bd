// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the full command tree bound to a.
//
// The tree is cheap to build, so the shell builds a fresh one per input line
// and only a (with its loaded map) survives between lines.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "campusnav",
		Short: "Explore a campus map: routes, spanning trees, tours and connectivity",
		Long: `campusnav loads campus locations and the paths between them from two CSV
files and answers questions about the resulting map.

Edits made with the add-/modify-/delete- commands are kept in memory only;
run "campusnav shell" to make several edits and queries in one session.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.ready() || !needsMap(cmd) {
				return nil
			}

			return a.init()
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.SetIn(a.in)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.configPath, "config", "c", "campusnav.yaml", "path to the YAML config file (missing file means defaults)")
	pf.StringVar(&a.flags.locations, "locations", "", "locations CSV (overrides data.locations)")
	pf.StringVar(&a.flags.paths, "paths", "", "paths CSV (overrides data.paths)")
	pf.BoolVar(&a.flags.strict, "strict", false, "abort loading on the first bad row")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "debug, info, warn or error (overrides log.level)")

	root.AddGroup(
		&cobra.Group{ID: groupQuery, Title: "Queries:"},
		&cobra.Group{ID: groupAnalysis, Title: "Analyses:"},
		&cobra.Group{ID: groupEdit, Title: "Edits (in memory only):"},
	)
	root.AddCommand(
		newLocationsCmd(a), newFindCmd(a), newNeighborsCmd(a), newPathsCmd(a),
		newConnectivityCmd(a), newHasPathCmd(a), newRouteCmd(a), newNearbyCmd(a), newMSTCmd(a), newEulerCmd(a), newTourCmd(a),
		newAddLocationCmd(a), newDeleteLocationCmd(a), newModifyLocationCmd(a),
		newAddPathCmd(a), newDeletePathCmd(a), newModifyPathCmd(a),
		newConfigCmd(a), newShellCmd(a),
	)

	return root
}

const (
	groupQuery    = "query"
	groupAnalysis = "analysis"
	groupEdit     = "edit"

	// annotationNoMap marks commands that run without loading the map.
	annotationNoMap = "campusnav/no-map"
)

// needsMap is false for annotated commands and for cobra's own help and
// completion commands.
func needsMap(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationNoMap] == "true" {
			return false
		}
		if c.Name() == "help" || c.Name() == "completion" {
			return false
		}
	}

	return true
}
