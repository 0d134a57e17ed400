// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtopo/alpha"
	"github.com/katalvlaran/lvtopo/collapse"
	"github.com/katalvlaran/lvtopo/contraction"
	"github.com/katalvlaran/lvtopo/geometry"
	"github.com/katalvlaran/lvtopo/lattice"
	"github.com/katalvlaran/lvtopo/sample"
	"github.com/katalvlaran/lvtopo/simplex"
	"github.com/katalvlaran/lvtopo/witness"
)

func (a *app) newAlphaCmd() *cobra.Command {
	var (
		off, grid string
		maxAlpha2 float64
	)
	cmd := &cobra.Command{
		Use:   "alpha",
		Short: "Build the Alpha filtration of a triangulation",
		Example: `  lvtopo alpha --off mesh.off
  lvtopo alpha --grid 4x4 --max-alpha2 0.3`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("max-alpha2") {
				a.cfg.Alpha.MaxAlphaSquare = maxAlpha2
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			if err := oneOf(map[string]string{"off": off, "grid": grid}); err != nil {
				return err
			}

			var tri alpha.Triangulation
			if off != "" {
				m, err := readOFF(off)
				if err != nil {
					return err
				}
				if tri, err = m.Triangulation(); err != nil {
					return err
				}
			} else {
				shape, err := parseShape(grid)
				if err != nil {
					return err
				}
				if tri, err = lattice.Triangulate(lattice.A, shape, 1); err != nil {
					return err
				}
			}

			tree := simplex.New()
			c, err := alpha.Build(tri, tree,
				alpha.WithKernel(geometry.NewEuclidean(geometry.WithEpsilon(a.cfg.Alpha.Epsilon))),
				alpha.WithMaxAlphaSquare(a.cfg.Alpha.MaxAlphaSquare),
				alpha.WithLogger(a.log))
			if err != nil {
				a.rec.ObserveFailure("alpha")
				return err
			}
			st := c.Stats()
			a.rec.ObserveBuild("alpha", st.PerDimension, st.Duration)
			a.log.Info("alpha complex built", "simplices", st.Simplices, "duration", st.Duration)

			return a.report(cmd, "alpha", tree)
		},
	}
	cmd.Flags().StringVar(&off, "off", "", "OFF file with points and maximal cells")
	cmd.Flags().StringVar(&grid, "grid", "", "regular grid shape such as 4x4, triangulated with type A")
	cmd.Flags().Float64Var(&maxAlpha2, "max-alpha2", 0, "drop simplices with squared radius above this value")

	return cmd
}

func (a *app) newWitnessCmd() *cobra.Command {
	var (
		off, draw  string
		landmarks  int
		relaxation float64
		maxDim     int
		seed       int64
	)
	cmd := &cobra.Command{
		Use:   "witness",
		Short: "Build the (relaxed) Witness filtration of a point cloud",
		Example: `  lvtopo witness --sample circle:200 --landmarks 12
  lvtopo witness --off cloud.off --landmarks 50 --relaxation 0.01 --max-dim 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			w := &a.cfg.Witness
			if flags.Changed("landmarks") {
				w.Landmarks = landmarks
			}
			if flags.Changed("relaxation") {
				w.Relaxation = relaxation
			}
			if flags.Changed("max-dim") {
				w.MaxDimension = maxDim
			}
			if flags.Changed("seed") {
				w.Seed = seed
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			if err := oneOf(map[string]string{"off": off, "sample": draw}); err != nil {
				return err
			}

			var points []geometry.Point
			if off != "" {
				m, err := readOFF(off)
				if err != nil {
					return err
				}
				points = m.Points
			} else {
				var err error
				if points, err = samplePoints(draw, w.Seed); err != nil {
					return err
				}
			}
			idx, err := sample.FarthestPoints(points, min(w.Landmarks, len(points)), 0)
			if err != nil {
				return err
			}
			lms := make([]geometry.Point, len(idx))
			for i, j := range idx {
				lms[i] = points[j]
			}

			var topts []witness.TableOption
			if w.Nearest > 0 {
				topts = append(topts, witness.WithNearest(w.Nearest))
			}
			if w.Workers > 0 {
				topts = append(topts, witness.WithWorkers(w.Workers))
			}
			table, err := witness.NewEuclideanTable(cmd.Context(), points, lms, topts...)
			if err != nil {
				return err
			}
			tree := simplex.New()
			st, err := witness.Build(table, tree,
				witness.WithRelaxation(w.Relaxation),
				witness.WithMaxDimension(w.MaxDimension),
				witness.WithLandmarkCount(len(lms)),
				witness.WithLogger(a.log))
			if err != nil {
				a.rec.ObserveFailure("witness")
				return err
			}
			a.rec.ObserveBuild("witness", st.PerDimension, st.Duration)
			a.log.Info("witness complex built", "landmarks", st.Landmarks, "witnesses", st.Witnesses, "simplices", st.Simplices)

			return a.report(cmd, "witness", tree)
		},
	}
	cmd.Flags().StringVar(&off, "off", "", "OFF file whose vertices are the witnesses")
	cmd.Flags().StringVar(&draw, "sample", "", "generated witnesses: circle:N, sphere:N[:dim] or cube:N[:dim]")
	cmd.Flags().IntVar(&landmarks, "landmarks", 0, "number of farthest-point landmarks")
	cmd.Flags().Float64Var(&relaxation, "relaxation", 0, "relaxation α²")
	cmd.Flags().IntVar(&maxDim, "max-dim", 0, "largest simplex dimension")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for --sample")

	return cmd
}

func (a *app) newCollapseCmd() *cobra.Command {
	var (
		edgesPath, off string
		threshold      float64
		expand         int
	)
	cmd := &cobra.Command{
		Use:   "collapse",
		Short: "Strong-collapse a flag complex",
		Example: `  lvtopo collapse --edges graph.txt
  lvtopo collapse --off cloud.off --threshold 0.5 --expand 3`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := &a.cfg.Collapse
			if cmd.Flags().Changed("threshold") {
				c.Threshold = threshold
			}
			if cmd.Flags().Changed("expand") {
				c.Expand = expand
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			edges, err := a.loadEdges(edgesPath, off, c.Threshold)
			if err != nil {
				return err
			}

			fc, err := collapse.FromEdges(edges, collapse.WithLogger(a.log))
			if err != nil {
				return err
			}
			res, err := fc.StrongCollapse()
			if err != nil {
				a.rec.ObserveFailure("collapse")
				return err
			}
			a.rec.ObserveCollapse(res)
			a.log.Info("strong collapse done", "removed", res.Removed(), "checks", res.Checks)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vertices: %d -> %d\n", res.VerticesBefore, res.VerticesAfter)
			fmt.Fprintf(out, "edges: %d -> %d\n", res.EdgesBefore, res.EdgesAfter)
			if a.cfg.Dump {
				writeReduction(out, fc.ReductionMap())
			}
			if c.Expand > 0 {
				tree, err := fc.ToTree(c.Expand)
				if err != nil {
					return err
				}
				a.rec.ObserveBuild("flag", perDimension(tree), res.Duration)
				return a.report(cmd, "flag", tree)
			}

			return a.finish(out)
		},
	}
	cmd.Flags().StringVar(&edgesPath, "edges", "", "edge list file of \"u v [w]\" lines")
	cmd.Flags().StringVar(&off, "off", "", "OFF file; edges join points closer than --threshold")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Rips edge length for --off")
	cmd.Flags().IntVar(&expand, "expand", 0, "re-expand the reduced flag complex up to this dimension")

	return cmd
}

func (a *app) newSimplifyCmd() *cobra.Command {
	var (
		edgesPath, off string
		threshold      float64
		maxDim, limit  int
	)
	cmd := &cobra.Command{
		Use:   "simplify",
		Short: "Expand a flag complex and simplify it by edge contraction",
		Example: `  lvtopo simplify --off cloud.off --threshold 0.4 --max-dim 2
  lvtopo simplify --edges graph.txt --limit 10`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := &a.cfg.Simplify
			flags := cmd.Flags()
			if flags.Changed("threshold") {
				s.Threshold = threshold
			}
			if flags.Changed("max-dim") {
				s.MaxDimension = maxDim
			}
			if flags.Changed("limit") {
				s.Limit = limit
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			edges, err := a.loadEdges(edgesPath, off, s.Threshold)
			if err != nil {
				return err
			}
			fc, err := collapse.FromEdges(edges)
			if err != nil {
				return err
			}
			tree, err := fc.ToTree(s.MaxDimension)
			if err != nil {
				return err
			}
			before := tree.NumSimplices()

			n, err := contraction.NewContractor(contraction.WithLogger(a.log)).Simplify(tree, s.Limit)
			if err != nil {
				a.rec.ObserveFailure("simplify")
				return err
			}
			a.rec.ObserveContractions(n)
			a.log.Info("simplification done", "contractions", n, "before", before, "after", tree.NumSimplices())
			fmt.Fprintf(cmd.OutOrStdout(), "contractions: %d\n", n)

			return a.report(cmd, "simplified", tree)
		},
	}
	cmd.Flags().StringVar(&edgesPath, "edges", "", "edge list file of \"u v [w]\" lines")
	cmd.Flags().StringVar(&off, "off", "", "OFF file; edges join points closer than --threshold")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Rips edge length for --off")
	cmd.Flags().IntVar(&maxDim, "max-dim", 0, "expansion dimension of the flag complex")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of contractions (0: unlimited)")

	return cmd
}

// loadEdges reads an edge list or the Rips edges of an OFF point cloud.
func (a *app) loadEdges(edgesPath, off string, threshold float64) ([]collapse.Edge, error) {
	if err := oneOf(map[string]string{"edges": edgesPath, "off": off}); err != nil {
		return nil, err
	}
	if edgesPath != "" {
		return readEdges(edgesPath)
	}

	return ripsEdges(off, threshold)
}

// report prints the summary, the optional dump and the metrics.
func (a *app) report(cmd *cobra.Command, name string, tree *simplex.Tree) error {
	out := cmd.OutOrStdout()
	writeSummary(out, name, tree)
	if a.cfg.Dump {
		if err := writeDump(out, tree); err != nil {
			return err
		}
	}

	return a.finish(out)
}
