package main

import (
	"flag"
	"log"
	"time"

	"github.com/contactkeval/opcalc/internal/logger"
	"github.com/contactkeval/opcalc/internal/report"
	"github.com/contactkeval/opcalc/internal/scenario"
)

func main() {
	scenarioPath := flag.String("scenarios", "", "path to a JSON or CSV scenario file")
	synthetic := flag.Int("synthetic", 0, "generate N synthetic scenarios instead of reading a file")
	seed := flag.Int64("seed", 1, "seed for synthetic scenario generation")
	outDir := flag.String("out", "./out", "output directory for reports")
	workers := flag.Int("workers", 4, "number of concurrent pricing workers")
	verbosity := flag.Int("v", 1, "verbosity: 0=errors,1=info,2=debug,3=trace")
	flag.Parse()

	logger.SetVerbosity(*verbosity)

	var src scenario.Source
	switch {
	case *synthetic > 0:
		src = scenario.NewSyntheticSource(*synthetic, *seed)
		logger.Infof("synthetic source enabled (%d scenarios, seed %d)", *synthetic, *seed)
	case *scenarioPath != "":
		src = scenario.FromFile(*scenarioPath)
		logger.Infof("file source enabled: %s", *scenarioPath)
	default:
		log.Fatal("either -scenarios or -synthetic is required")
	}

	scenarios, err := src.Scenarios()
	if err != nil {
		log.Fatalf("loading scenarios: %v", err)
	}

	start := time.Now()
	results := scenario.Run(scenarios, *workers)

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}

	if err := report.Write(results, *outDir); err != nil {
		log.Fatalf("writing reports: %v", err)
	}
	logger.Infof("priced %d scenarios (%d rejected) in %v, reports in %s",
		len(results), failed, time.Since(start), *outDir)
}
