// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/campus"
)

func newLocationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "locations",
		Short:   "List every location",
		GroupID: groupQuery,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), locationsTable(a.m.Locations()))
			return nil
		},
	}
}

func newFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "find <name-or-type>",
		Short:   "Find locations by type (any case) or by name",
		GroupID: groupQuery,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hits := a.m.FindLocations(args[0])
			if len(hits) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no locations match %q\n", args[0])
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), locationsTable(hits))
			return nil
		},
	}
}

func newNeighborsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "neighbors <location>",
		Short:   "List locations one path away",
		GroupID: groupQuery,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.m.Neighbors(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), namesTable("Neighbor", names))
			return nil
		},
	}
}

func newPathsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "paths",
		Short:   "List every path, lightest first",
		GroupID: groupQuery,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), edgesTable(a.m.Paths()))
			return nil
		},
	}
}

func newConnectivityCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "connectivity",
		Short:   "Report connected components and propose bridging paths",
		GroupID: groupAnalysis,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), connectivityView(a.m.Connectivity()))
			return nil
		},
	}
}

func newHasPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "has-path <from> <to>",
		Short:   "Tell whether two locations are connected",
		GroupID: groupAnalysis,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := a.m.HasPath(args[0], args[1])
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s and %s are connected\n", args[0], args[1])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s and %s are not connected\n", args[0], args[1])
			}
			return nil
		},
	}
}

func newRouteCmd(a *app) *cobra.Command {
	var hops bool
	cmd := &cobra.Command{
		Use:     "route <from> <to>",
		Aliases: []string{"shortest-path"},
		Short:   "Find the shortest route between two locations",
		GroupID: groupAnalysis,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if hops {
				stops, err := a.m.HopRoute(args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), hopRouteView(stops))
				return nil
			}
			r, err := a.m.ShortestPath(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), routeView(r))
			return nil
		},
	}
	cmd.Flags().BoolVar(&hops, "hops", false, "minimise the number of paths instead of total weight")

	return cmd
}

func newNearbyCmd(a *app) *cobra.Command {
	var hops int
	cmd := &cobra.Command{
		Use:     "nearby <location>",
		Short:   "List locations within a few paths of a location",
		GroupID: groupAnalysis,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			near, err := a.m.Nearby(args[0], hops)
			if err != nil {
				return err
			}
			if len(near) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "nothing within %d of %s\n", hops, args[0])
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), nearbyTable(near))
			return nil
		},
	}
	cmd.Flags().IntVar(&hops, "hops", 1, "how many paths away to look")

	return cmd
}

func newMSTCmd(a *app) *cobra.Command {
	var root string
	cmd := &cobra.Command{
		Use:     "mst",
		Short:   "Compute a minimum spanning tree over all locations",
		GroupID: groupAnalysis,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				tree *campus.SpanningTree
				err  error
			)
			if root != "" {
				tree, err = a.m.MinimumSpanningTreeFrom(root)
			} else {
				tree, err = a.m.MinimumSpanningTree()
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), edgesTable(tree.Edges))
			fmt.Fprintf(cmd.OutOrStdout(), "total weight: %d\n", tree.TotalWeight)
			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", "", "grow the tree from this location with Prim's algorithm")

	return cmd
}

func newEulerCmd(a *app) *cobra.Command {
	var trail bool
	cmd := &cobra.Command{
		Use:     "euler",
		Short:   "Tell whether every path can be walked exactly once",
		GroupID: groupAnalysis,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.m.Eulerian()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), eulerView(res))
			if !trail || !res.Exists {
				return nil
			}
			walk, err := a.m.EulerianTrail()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "trail:", joinStops(walk))
			return nil
		},
	}
	cmd.Flags().BoolVar(&trail, "trail", false, "also print one such walk")

	return cmd
}

func newTourCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "tour <type>",
		Short:   "Walk every location of one type (exact, case-sensitive)",
		GroupID: groupAnalysis,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tour, err := a.m.TypeTour(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tourView(tour))
			return nil
		},
	}
}

func newAddLocationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "add-location <name> <type> <visit-minutes>",
		Short:   "Add a location",
		GroupID: groupEdit,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := campus.ParseVisitTime(args[2])
			if err != nil {
				return err
			}
			if err = a.m.AddLocation(args[0], args[1], v); err != nil {
				return err
			}
			done(cmd, "added location %s", args[0])
			return nil
		},
	}
}

func newDeleteLocationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete-location <name>",
		Short:   "Delete a location and its paths",
		GroupID: groupEdit,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.m.DeleteLocation(args[0]); err != nil {
				return err
			}
			done(cmd, "deleted location %s", args[0])
			return nil
		},
	}
}

func newModifyLocationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "modify-location <name> <type> <visit-minutes>",
		Short:   "Replace a location's type and visit time",
		GroupID: groupEdit,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := campus.ParseVisitTime(args[2])
			if err != nil {
				return err
			}
			if err = a.m.ModifyLocation(args[0], args[1], v); err != nil {
				return err
			}
			done(cmd, "modified location %s", args[0])
			return nil
		},
	}
}

func newAddPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "add-path <a> <b> <weight>",
		Short:   "Add a path or overwrite its weight",
		GroupID: groupEdit,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := campus.ParseWeight(args[2])
			if err != nil {
				return err
			}
			if err = a.m.AddPath(args[0], args[1], w); err != nil {
				return err
			}
			done(cmd, "added path %s - %s (%d)", args[0], args[1], w)
			return nil
		},
	}
}

func newDeletePathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete-path <a> <b>",
		Short:   "Delete a path",
		GroupID: groupEdit,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.m.DeletePath(args[0], args[1]); err != nil {
				return err
			}
			done(cmd, "deleted path %s - %s", args[0], args[1])
			return nil
		},
	}
}

func newModifyPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "modify-path <a> <b> <weight>",
		Short:   "Change the weight of an existing path",
		GroupID: groupEdit,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := campus.ParseWeight(args[2])
			if err != nil {
				return err
			}
			if err = a.m.ModifyPath(args[0], args[1], w); err != nil {
				return err
			}
			done(cmd, "modified path %s - %s (%d)", args[0], args[1], w)
			return nil
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "config",
		Short:       "Print the effective configuration as YAML",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoMap: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if !a.ready() {
				var err error
				if cfg, err = a.resolveConfig(); err != nil {
					return err
				}
			}
			out, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func done(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("ok:")+" "+fmt.Sprintf(format, args...))
}
