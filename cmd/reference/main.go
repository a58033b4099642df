// Command reference evaluates the built-in reference risers and prints the
// life-cycle cells of each one.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"Riserwt/internal/calc/batch"
	"Riserwt/internal/calc/pressure"
	"Riserwt/internal/calc/report"
	"Riserwt/internal/casefile"
	"Riserwt/internal/catalog"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	name := flag.String("case", "", "evaluate only the reference case with this name")
	flag.Parse()

	cases := casefile.References()
	if *name != "" {
		var picked []casefile.Case
		for _, c := range cases {
			if c.Name == *name {
				picked = append(picked, c)
			}
		}
		if len(picked) == 0 {
			slog.Error("Unknown reference case", "case", *name)
			os.Exit(2)
		}
		cases = picked
	}

	res, err := batch.Evaluate(ctx, cases, batch.Options{Workers: len(cases)})
	if err != nil {
		slog.Error("Reference evaluation failed", "error", err)
		os.Exit(1)
	}
	for _, it := range res.Items {
		if err := printCase(os.Stdout, it); err != nil {
			slog.Error("Print failed", "case", it.Case.Name, "error", err)
			os.Exit(1)
		}
	}
}

func printCase(w io.Writer, it batch.Item) error {
	fmt.Fprintf(w, "== %s ==\n", it.Case.Name)
	if it.Err != "" {
		fmt.Fprintf(w, "error: %s\n\n", it.Err)
		return nil
	}
	run := it.Nominal
	if run == nil {
		return nil
	}
	res := pressure.New(run.Pipe.FluidSG, run.Load)
	fmt.Fprintf(w, "OD %.3f in, WT %.3f in, %s, MOP %.1f psi, head %.1f psi, hydrotest %.1f psi\n",
		run.Pipe.OuterDiameterIn, run.NominalWT, run.Pipe.Grade, run.MOP, res.HydrostaticHead(), res.HydrotestBase())

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STAGE\tPOSITION\tVARIANT\tWT EFF\tPO\tLIMITING\tSF\tMAX UTIL\tVON MISES\tRESULT")
	for _, c := range run.Cells {
		result := "PASS"
		if !c.Pass {
			result = "FAIL"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.4f\t%.1f\t%s\t%s\t%s\t%.0f\t%s\n",
			c.Stage, c.Position, c.Variant, c.EffectiveWT, c.Po, c.Limiting, c.LimitingSF,
			report.UtilizationText(c.MaxUtilization(), c.Invalid()), c.Stress.VonMises, result)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	labels := catalog.Standard()
	if least, ok := it.Search.Least(); ok {
		fmt.Fprintf(w, "least passing %s", labels.Label(run.Pipe.OuterDiameterIn, least.WT))
		if rec, ok := it.Search.Recommendation(); ok {
			fmt.Fprintf(w, ", recommended %s", labels.Label(run.Pipe.OuterDiameterIn, rec.WT))
		}
		fmt.Fprintln(w)
	} else if it.Search.NoCandidates {
		fmt.Fprintln(w, "no standard thicknesses for this OD")
	} else {
		fmt.Fprintln(w, "no standard thickness passes")
	}
	for _, n := range it.Notes {
		fmt.Fprintf(w, "note: %s\n", n)
	}
	fmt.Fprintln(w)
	return nil
}
