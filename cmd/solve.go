package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/fixsolve/algebra"
	"github.com/gnolang/fixsolve/assign"
	"github.com/gnolang/fixsolve/solver"
	"github.com/gnolang/fixsolve/tracerkit"
	"github.com/gnolang/fixsolve/yamlsys"
)

var (
	useProgressBar bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [paths...]",
	Short: "Solve the equation systems described by one or more YAML files",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: please provide one or more YAML file paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		for _, path := range args {
			if err := solveFile(ctx, path); err != nil {
				logger.Error("failed to solve", zap.String("path", path), zap.Error(err))
				os.Exit(1)
			}
		}
	},
}

func init() {
	solveCmd.Flags().BoolVar(&useProgressBar, "progress", false, "show a progress bar instead of per-unknown console output")
}

func solveFile(ctx context.Context, path string) error {
	g, err := yamlsys.LoadFile(path)
	if err != nil {
		return err
	}

	start := assign.Const[string, algebra.Flat[string]](algebra.FlatBottom[string]())

	var tr interface {
		Initialized(assign.ReadOnly[string, algebra.Flat[string]])
		Evaluated(assign.ReadOnly[string, algebra.Flat[string]], string, algebra.Flat[string])
		Completed(assign.ReadOnly[string, algebra.Flat[string]])
	}
	if useProgressBar {
		tr = tracerkit.NewProgressBarTracer[string, algebra.Flat[string]](len(g.Unknowns()), path)
	} else {
		tr = tracerkit.NewConsoleTracer[string, algebra.Flat[string]](os.Stdout)
	}

	eq := func(a, b algebra.Flat[string]) bool {
		av, aok := a.Value()
		bv, bok := b.Value()
		return a.IsBottom() == b.IsBottom() && a.IsTop() == b.IsTop() && aok == bok && av == bv
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	result := solver.SolveEq[string, algebra.Flat[string]](g, start, tr, eq)

	for _, u := range g.Unknowns() {
		v := result.Get(u)
		switch {
		case v.IsBottom():
			fmt.Printf("%s = bottom\n", u)
		case v.IsTop():
			fmt.Printf("%s = top\n", u)
		default:
			val, _ := v.Value()
			fmt.Printf("%s = %s\n", u, val)
		}
	}
	return nil
}
