// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

// Package main provides the command-line interface and the main entry
// point for the conversational AI QA framework.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Alemaksus/conversational-ai-qa-framework/config"
	"github.com/Alemaksus/conversational-ai-qa-framework/matrix"
	"github.com/Alemaksus/conversational-ai-qa-framework/pkg/logging"
	"github.com/Alemaksus/conversational-ai-qa-framework/pkg/utils"
	"github.com/Alemaksus/conversational-ai-qa-framework/reporting"
	"github.com/Alemaksus/conversational-ai-qa-framework/runner"
	"github.com/Alemaksus/conversational-ai-qa-framework/version"
)

const (
	runCommandName     = "run"
	helpCommandName    = "help"
	versionCommandName = "version"

	exitCodeOK          = 0
	exitCodeError       = 1
	exitCodeHadFailures = 2

	defaultMatrixFile  = "templates/test-case-matrix.xlsx"
	defaultMaxFailures = 10
	defaultShowLimit   = 5

	// expectedResultPrintLimit caps expected-result text in failure details.
	expectedResultPrintLimit = 80
)

var commandDoc = map[string]string{
	runCommandName:     "run test cases from the matrix",
	helpCommandName:    "show help",
	versionCommandName: "show version",
}

var (
	matrixFilePath     = flag.String("matrix", defaultMatrixFile, "Excel test case matrix file path")
	casesFilePath      = flag.String("cases", "", "YAML case file path; overrides -matrix when set")
	priorityFilter     = flag.String("priority", "", "filter by priority (comma-separated, e.g. 'Critical,High')")
	statusFilter       = flag.String("status", "", "filter by status (comma-separated, e.g. 'Ready')")
	componentFilter    = flag.String("component", "", "filter by component (comma-separated, e.g. 'Chatbot,Voice')")
	useSyntheticActual = flag.Bool("use-synthetic-actual", false, "generate synthetic actual output for demo when none is recorded")
	maxFailures        = flag.Int("max-failures", defaultMaxFailures, "stop early after N failures; 0 = never")
	showFailures       = flag.Int("show-failures", defaultShowLimit, "print top N failure details")
	junitReportPath    = flag.String("junit", "", "JUnit XML report file path (optional)")
	mdReportPath       = flag.String("md", "", "Markdown report file path (optional)")
	logFilePath        = flag.String("log", "", "log file path; append if exists; blank = stdout only")
	verbose            = flag.Bool("verbose", false, "enable detailed logging")
	debug              = flag.Bool("debug", false, "enable low-level debug logging")
)

var stderr = logging.NewLogger(zerolog.TraceLevel, logging.NewConsoleWriter(os.Stderr, true))

func init() {
	flag.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage: %s [options] [command]\n", os.Args[0])
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Commands:")
		printCommandHelp(w, runCommandName, helpCommandName, versionCommandName)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		flag.PrintDefaults()
	}
}

func printCommandHelp(out io.Writer, commands ...string) {
	for _, cmdName := range commands {
		fmt.Fprintf(out, "  %s\n", cmdName)
		fmt.Fprintf(out, "        %s\n", commandDoc[cmdName])
	}
}

func main() {
	flag.Parse()
	os.Exit(execute())
}

func execute() int {
	for _, arg := range flag.Args() {
		switch arg {
		case helpCommandName:
			printHelp(os.Stdout)
			return exitCodeOK
		case versionCommandName:
			printVersion(os.Stdout)
			return exitCodeOK
		case runCommandName:
			return runTests()
		}
	}
	printHelp(os.Stdout)
	return exitCodeOK
}

func printHelp(out io.Writer) {
	if out != nil {
		flag.CommandLine.SetOutput(out)
		defer flag.CommandLine.SetOutput(nil) // os.Stderr
	}
	flag.Usage()
}

func printVersion(out io.Writer) {
	fmt.Fprintf(out, "%s %s (%s)\n", version.Name, version.GetVersion(), version.GetSource())
}

// runTests loads, filters and executes the test cases, prints the summary
// and writes the requested reports. It returns the process exit code.
func runTests() int {
	logger, closeLog, err := newRunLogger()
	if err != nil {
		stderr.Error().Err(err).Msg("failed to configure logging")
		return exitCodeError
	}
	defer closeLog()

	settings, err := config.Load()
	if err != nil {
		stderr.Error().Err(err).Msg("failed to load settings")
		return exitCodeError
	}
	if settings.ClientMode == config.ClientModeLive {
		logger.Warn().Msgf("live client mode is configured for %s but actual outputs are read from the matrix", settings.BaseURL)
	}

	cases, err := loadCases()
	if err != nil {
		stderr.Error().Err(err).Msg("failed to load test cases")
		return exitCodeError
	}

	filtered := matrix.Filter(cases, *priorityFilter, *statusFilter, *componentFilter)
	if len(filtered) == 0 {
		fmt.Printf("Loaded: %d\n", len(cases))
		fmt.Printf("Filtered: %d\n", len(filtered))
		fmt.Println("No test cases match the filter criteria.")
		return exitCodeOK
	}

	exec := runner.New(logger)
	results, stoppedEarly := exec.RunAll(filtered, runner.Options{
		UseSyntheticActual: *useSyntheticActual,
		MaxFailures:        *maxFailures,
	})
	if stoppedEarly {
		fmt.Printf("\nStopping early after %d failure(s) (-max-failures=%d)\n", *maxFailures, *maxFailures)
	}

	fmt.Printf("\nLoaded: %d\n", len(cases))
	fmt.Printf("Filtered: %d\n", len(filtered))
	fmt.Printf("PASS: %d\n", results.CountByStatus(runner.Pass))
	fmt.Printf("FAIL: %d\n", results.CountByStatus(runner.Fail))
	fmt.Printf("BLOCKED: %d\n", results.CountByStatus(runner.Blocked))

	printFailureDetails(os.Stdout, results)

	fmt.Println()
	if err := reporting.NewSummaryFormatter().Write(results, os.Stdout); err != nil {
		stderr.Error().Err(err).Msg("failed to print result summary")
		return exitCodeError
	}

	saveReports(results)

	if results.CountByStatus(runner.Fail) > 0 {
		return exitCodeHadFailures
	}
	return exitCodeOK
}

// newRunLogger builds the run logger from the verbosity and log-file
// flags. The returned close function releases the log file, if any.
func newRunLogger() (zerolog.Logger, func(), error) {
	writers := []io.Writer{logging.NewConsoleWriter(os.Stdout, false)}
	closeLog := func() {}

	if *logFilePath != "" {
		fp, err := os.OpenFile(filepath.Clean(*logFilePath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), closeLog, fmt.Errorf("failed to open log file: %w", err)
		}
		fmt.Printf("Log messages will be saved to: %s\n", *logFilePath)
		writers = append(writers, logging.NewConsoleWriter(fp, true))
		closeLog = func() { fp.Close() }
	}

	return logging.NewLogger(logging.LevelFromFlags(*verbose, *debug), writers...), closeLog, nil
}

func loadCases() ([]matrix.Case, error) {
	if *casesFilePath != "" {
		fmt.Printf("Loading test cases from file: %s\n", *casesFilePath)
		return matrix.LoadCasesYAML(*casesFilePath)
	}
	fmt.Printf("Loading test cases from file: %s\n", *matrixFilePath)
	return matrix.LoadCases(*matrixFilePath)
}

func printFailureDetails(out io.Writer, results runner.Results) {
	failures := results.Failures()
	if len(failures) == 0 {
		return
	}

	shown := min(*showFailures, len(failures))
	fmt.Fprintf(out, "\nTop %d failure(s):\n", shown)
	for i, failure := range failures[:shown] {
		fmt.Fprintf(out, "\n%d. Test Case: %s\n", i+1, failure.Case.TestCaseID)
		fmt.Fprintf(out, "   Scenario: %s\n", failure.Case.ScenarioID)
		fmt.Fprintf(out, "   Component: %s\n", failure.Case.Component)
		fmt.Fprintf(out, "   Expected: %s\n", utils.Truncate(failure.Case.ExpectedResult, expectedResultPrintLimit))
		fmt.Fprintf(out, "   Trace: %s\n", failure.Result.TraceID)
		if len(failure.Result.FailedReasons) > 0 {
			fmt.Fprintf(out, "   Failed Reasons: %s\n", strings.Join(failure.Result.FailedReasons, ", "))
		}
	}
}

// saveReports writes the optional JUnit and Markdown reports. Report
// errors are warnings: the run result already stands on its own.
func saveReports(results runner.Results) {
	if *junitReportPath != "" {
		if err := writeReport(reporting.NewJUnitFormatter(""), results, *junitReportPath); err != nil {
			stderr.Warn().Err(err).Msg("failed to generate JUnit report")
		} else {
			fmt.Printf("\nJUnit XML report written to: %s\n", *junitReportPath)
		}
	}
	if *mdReportPath != "" {
		if err := writeReport(reporting.NewMarkdownFormatter(), results, *mdReportPath); err != nil {
			stderr.Warn().Err(err).Msg("failed to generate Markdown report")
		} else {
			fmt.Printf("Markdown report written to: %s\n", *mdReportPath)
		}
	}
}

func writeReport(formatter reporting.Formatter, results runner.Results, path string) error {
	fp, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer fp.Close()
	return formatter.Write(results, fp)
}
