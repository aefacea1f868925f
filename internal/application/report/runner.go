// Package report contains the orchestrator that sequences the fetch
// and the five read queries into one console-reported run.
package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/campus-hub/student-reports/internal/application/query"
	"github.com/campus-hub/student-reports/internal/domain/student"
)

// StudentSource provides the snapshot of student records a run
// operates on. Implemented by the registry adapter.
type StudentSource interface {
	FetchAll(ctx context.Context) ([]student.Student, error)
}

// Options configures a report run.
type Options struct {
	// City names the city for the adult-males query (default "Skopje").
	City string

	// NamePrefix is the first-name prefix for the prefix query
	// (default "B").
	NamePrefix string
}

// Runner fetches the student snapshot once and executes the five
// queries sequentially over it, writing one line per result.
type Runner struct {
	source  StudentSource
	logger  *slog.Logger
	out     io.Writer
	options Options
}

// NewRunner creates a report runner.
func NewRunner(source StudentSource, logger *slog.Logger, out io.Writer, options Options) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if options.City == "" {
		options.City = "Skopje"
	}
	if options.NamePrefix == "" {
		options.NamePrefix = "B"
	}

	return &Runner{
		source:  source,
		logger:  logger,
		out:     out,
		options: options,
	}
}

// Run performs one report run: a single fetch followed by the five
// queries over the same immutable snapshot. A fetch failure aborts the
// whole batch; the error is logged and returned unchanged to the
// caller, with no fallback dataset and no per-query recovery.
func (r *Runner) Run(ctx context.Context) error {
	runID := uuid.NewString()
	log := r.logger.With("run_id", runID)

	log.Info("starting report run")

	students, err := r.source.FetchAll(ctx)
	if err != nil {
		log.Error("fetch failed, aborting all reports", "error", err)
		return err
	}

	log.Info("students fetched", "count", len(students))
	fmt.Fprintf(r.out, "students fetched: %d\n", len(students))

	highPerformers := query.HighPerformersQuery{}
	if err := highPerformers.Validate(); err != nil {
		return fmt.Errorf("high performers query: %w", err)
	}
	fmt.Fprintf(r.out, "high performers (average grade >= %g): %d\n",
		highPerformers.MinGrade, highPerformers.Execute(students).Count)

	topFemale := query.TopFemaleStudentsQuery{}
	if err := topFemale.Validate(); err != nil {
		return fmt.Errorf("top female students query: %w", err)
	}
	fmt.Fprintf(r.out, "top female students: %s\n",
		formatNames(topFemale.Execute(students).FirstNames))

	adultMales := query.AdultMalesInCityQuery{City: r.options.City}
	if err := adultMales.Validate(); err != nil {
		return fmt.Errorf("adult males query: %w", err)
	}
	fmt.Fprintf(r.out, "adult male students in %s: %s\n",
		adultMales.City, formatNames(adultMales.Execute(students).FullNames))

	seniorFemale := query.SeniorFemaleAverageQuery{}
	if err := seniorFemale.Validate(); err != nil {
		return fmt.Errorf("senior female average query: %w", err)
	}
	fmt.Fprintf(r.out, "average grade of female students aged %d+: %.2f\n",
		seniorFemale.MinAge, seniorFemale.Execute(students).AverageGrade)

	prefixMales := query.MalesNamedWithPrefixQuery{Prefix: r.options.NamePrefix}
	if err := prefixMales.Validate(); err != nil {
		return fmt.Errorf("name prefix query: %w", err)
	}
	fmt.Fprintf(r.out, "male students with first name starting with %q: %s\n",
		prefixMales.Prefix, formatNames(prefixMales.Execute(students).FirstNames))

	log.Info("report run finished")
	return nil
}

// formatNames renders a name list for one report line.
func formatNames(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}
