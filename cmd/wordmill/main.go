// Command wordmill generates an assembly network from a YAML scenario
// file and writes its GraphViz representation.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/wordmill/pkg/algorithms"
	"github.com/dd0wney/wordmill/pkg/assembly"
	"github.com/dd0wney/wordmill/pkg/logging"
	"github.com/dd0wney/wordmill/pkg/metrics"
	"github.com/dd0wney/wordmill/pkg/validation"
	"github.com/dd0wney/wordmill/pkg/visualization"
)

func main() {
	var (
		scenarioPath = flag.String("scenario", "scenario.yaml", "Scenario configuration file")
		outPath      = flag.String("out", "", "Output file for the DOT graph (default stdout)")
	)
	flag.Parse()

	logger := logging.NewDefaultLogger()

	scenario, err := loadScenario(*scenarioPath)
	if err != nil {
		logger.Error("invalid scenario", logging.Path(*scenarioPath), logging.Error(err))
		os.Exit(1)
	}
	if scenario.LogLevel != "" {
		logger.SetLevel(logging.ParseLevel(scenario.LogLevel))
	}

	gen, err := algorithms.ByName(scenario.Algorithm, scenario.StandardWords)
	if err != nil {
		logger.Error("unknown algorithm", logging.Error(err))
		os.Exit(1)
	}

	reg := metrics.DefaultRegistry()
	start := time.Now()
	sys, err := assembly.Generate(gen, scenario.Outputs...)
	elapsed := time.Since(start)
	if err != nil {
		reg.RecordGeneration(scenario.Algorithm, "error", elapsed)
		logger.Error("generation failed", generationFailureFields(scenario.Algorithm, err)...)
		os.Exit(1)
	}
	reg.RecordGeneration(scenario.Algorithm, "success", elapsed)
	for _, kind := range []assembly.Kind{
		assembly.KindSource, assembly.KindSink, assembly.KindInventory, assembly.KindMachine,
	} {
		reg.RecordGeneratedNodes(scenario.Algorithm, kind.String(), len(sys.NodesOfKind(kind)))
	}
	reg.RecordGeneratedEdges(scenario.Algorithm, sys.EdgeCount())

	logger.Info("network generated",
		logging.Algorithm(scenario.Algorithm),
		logging.RunID(sys.RunID()),
		logging.Count(sys.Size()),
		logging.Latency(elapsed),
	)

	dot := visualization.DOT(sys)
	reg.RecordExport("dot")
	if *outPath == "" {
		fmt.Println(dot)
		return
	}
	if err := os.WriteFile(*outPath, []byte(dot+"\n"), 0o644); err != nil {
		logger.Error("write failed", logging.Path(*outPath), logging.Error(err))
		os.Exit(1)
	}
	logger.Info("graph written", logging.Path(*outPath))
}

// generationFailureFields builds the log fields for a failed generation.
// When the error names an offending node, its kind and word are included
// so the log pinpoints where the graph broke.
func generationFailureFields(algorithm string, err error) []logging.Field {
	fields := []logging.Field{
		logging.Algorithm(algorithm),
		logging.Error(err),
	}
	var aerr *assembly.AssemblyError
	if errors.As(err, &aerr) {
		fields = append(fields,
			logging.NodeKind(aerr.Kind.String()),
			logging.Word(aerr.Word),
		)
	}
	return fields
}

func loadScenario(path string) (*validation.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var scenario validation.Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := validation.ValidateScenario(&scenario); err != nil {
		return nil, err
	}
	return &scenario, nil
}
