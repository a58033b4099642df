package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"

	"Riserwt/internal/calc/batch"
	"Riserwt/internal/calc/importer"
	"Riserwt/internal/calc/report"
	"Riserwt/internal/casefile"
	"Riserwt/internal/catalog"
	"Riserwt/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("riserwt failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fl := flag.NewFlagSet("riserwt", flag.ContinueOnError)
	envFile := fl.String("env", ".env", "dotenv file to load")
	outDir := fl.String("out", "", "report directory (overrides RISER_REPORT_DIR)")
	workers := fl.Int("workers", 0, "concurrent cases (overrides RISER_WORKERS)")
	asJSON := fl.Bool("json", false, "print results as JSON instead of a table")
	noReports := fl.Bool("no-reports", false, "skip PDF and XLSX reports")
	template := fl.String("template", "", "write the reference cases to this .yaml or .xlsx file and exit")
	project := fl.String("project", "", "project name printed on reports")
	author := fl.String("author", "", "author printed on reports")
	if err := fl.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))
	if *outDir != "" {
		cfg.ReportDir = *outDir
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}

	if *template != "" {
		if err := writeCases(*template, casefile.References()); err != nil {
			return err
		}
		slog.Info("Template written", "path", *template)
		return nil
	}

	path := cfg.CaseFile
	if fl.NArg() > 0 {
		path = fl.Arg(0)
	}
	if path == "" {
		return fmt.Errorf("no case file: pass one as argument or set RISER_CASE_FILE")
	}
	cases, err := readCases(path)
	if err != nil {
		return err
	}
	slog.Info("Cases loaded", "path", path, "count", len(cases), "workers", cfg.Workers)

	res, err := batch.Evaluate(ctx, cases, batch.Options{
		Workers:                cfg.Workers,
		RecommendedUtilization: cfg.RecommendedUtilization,
	})
	if err != nil {
		return err
	}

	if !*noReports {
		for _, it := range res.Items {
			if it.Err != "" {
				continue
			}
			files, err := report.WriteFiles(cfg.ReportDir, report.Input{Project: *project, Author: *author, Item: it})
			if err != nil {
				return err
			}
			slog.Info("Report written", "case", it.Case.Name, "id", files.ID, "pdf", files.PDF, "xlsx", files.XLSX)
		}
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	return printTable(stdout, res)
}

func readCases(path string) ([]casefile.Case, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		res, err := importer.ReadFile(path)
		if err != nil {
			return nil, err
		}
		for _, e := range res.Skipped {
			slog.Warn("Row skipped", "path", path, "row", e.Row, "error", e.Err)
		}
		if len(res.Cases) == 0 {
			return nil, fmt.Errorf("%s: no readable cases", path)
		}
		return res.Cases, nil
	case ".yaml", ".yml":
		return casefile.Load(path)
	}
	return nil, fmt.Errorf("unsupported case file %q (want .yaml, .yml or .xlsx)", path)
}

func writeCases(path string, cases []casefile.Case) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := importer.Write(f, cases); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	case ".yaml", ".yml":
		return casefile.Save(path, cases)
	}
	return fmt.Errorf("unsupported template file %q (want .yaml, .yml or .xlsx)", path)
}

func printTable(w io.Writer, res batch.Result) error {
	labels := catalog.Standard()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CASE\tNOMINAL\tMAX UTIL\tLEAST PASSING\tRECOMMENDED\tCLOSEST")
	for _, it := range res.Items {
		if it.Err != "" {
			fmt.Fprintf(tw, "%s\terror: %s\t\t\t\t\n", it.Case.Name, it.Err)
			continue
		}
		od := it.Case.Pipe.OuterDiameterIn
		nominal, util := "-", "-"
		if it.Nominal != nil {
			nominal = "FAIL"
			if it.Nominal.AllPass {
				nominal = "PASS"
			}
			util = report.UtilizationText(it.Nominal.MaxUtilization(), it.Nominal.Invalid())
		}
		pick := func(i int) string {
			if it.Search.NoCandidates {
				return "no standard sizes"
			}
			if i < 0 {
				return "none"
			}
			return labels.Label(od, it.Search.Candidates[i].WT)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", it.Case.Name, nominal, util,
			pick(it.Search.LeastPassing), pick(it.Search.Recommended), pick(it.Search.ClosestAbove))
	}
	return tw.Flush()
}
