// Package pipeline provides the high-level orchestration for a ranking run.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-ranker/internal/ingestion"
	"github.com/jonathan/resume-ranker/internal/logger"
	"github.com/jonathan/resume-ranker/internal/parsing"
	"github.com/jonathan/resume-ranker/internal/ranking"
	"github.com/jonathan/resume-ranker/internal/similarity"
	"github.com/jonathan/resume-ranker/internal/skills"
	"github.com/jonathan/resume-ranker/internal/types"
)

// Progress steps emitted through ProgressCallback.
const (
	StepReference = "reference"
	StepSelfCheck = "self_check"
	StepSkipped   = "skipped"
	StepCandidate = "candidate"
	StepRanked    = "ranked"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	// Content is *types.Document for StepReference, ranking.Result for
	// StepCandidate, float64 for StepSelfCheck and types.SkippedFile for StepSkipped.
	Content any `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs. Calls are
// serialized even when candidates are scored concurrently.
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	JobPath        string
	CandidatesDir  string
	VocabularyPath string // empty uses the built-in vocabulary
	Workers        int    // <= 1 scores candidates sequentially
	SelfCheck      bool
	Similarity     similarity.Similarity // nil uses TF-IDF
	OnProgress     ProgressCallback
}

// run carries the per-run state shared by the scoring goroutines.
type run struct {
	id     string
	opts   *RunOptions
	log    zerolog.Logger
	parser *parsing.Parser
	scorer *ranking.Scorer

	mu sync.Mutex
}

func (r *run) emit(step, message string, content any) {
	if r.opts.OnProgress == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opts.OnProgress(ProgressEvent{
		Step:    step,
		Message: message,
		RunID:   r.id,
		Content: content,
	})
}

// NewParser builds a parser over the vocabulary at path, or the built-in
// vocabulary when path is empty.
func NewParser(vocabularyPath string) (*parsing.Parser, error) {
	vocab := skills.DefaultVocabulary()
	if vocabularyPath != "" {
		var err error
		vocab, err = skills.LoadVocabulary(vocabularyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load vocabulary: %w", err)
		}
	}
	return parsing.NewParser(skills.NewExtractor(vocab)), nil
}

// Run parses the job description, scores every supported file of the
// candidates directory against it and returns them ranked by score.
//
// A candidate that cannot be extracted is logged, listed in Skipped and left
// out of the ranking. A job description without text does not fail the run:
// every candidate then scores 0.
func Run(ctx context.Context, opts RunOptions) (*types.RankedCandidates, error) {
	parser, err := NewParser(opts.VocabularyPath)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	r := &run{
		id:     id,
		opts:   &opts,
		log:    logger.WithComponent("pipeline").With().Str("run_id", id).Logger(),
		parser: parser,
		scorer: ranking.NewScorer(opts.Similarity),
	}

	reference := r.loadReference()
	report := &types.RankedCandidates{
		RunID:     id,
		Reference: reference.SourceName,
		Ranked:    []types.RankedCandidate{},
		Skipped:   []types.SkippedFile{},
	}

	if opts.SelfCheck {
		self := r.scorer.Score(reference, reference).Final
		report.SelfScore = &self
		r.log.Info().Float64("score", self).Msg("self-match check")
		r.emit(StepSelfCheck, fmt.Sprintf("Self-match score for %s: %.2f", reference.SourceName, self), self)
	}

	paths, skipped, err := ingestion.ListCandidates(opts.CandidatesDir, opts.JobPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	for _, s := range skipped {
		r.log.Info().Str("file", s.SourceName).Str("reason", s.Reason).Msg("skipping file")
		r.emit(StepSkipped, "Skipping "+s.SourceName, s)
	}
	report.Skipped = append(report.Skipped, skipped...)

	results, failed, err := r.scoreCandidates(ctx, reference, paths)
	if err != nil {
		return nil, err
	}
	report.Skipped = append(report.Skipped, failed...)
	sort.SliceStable(report.Skipped, func(i, j int) bool {
		return report.Skipped[i].SourceName < report.Skipped[j].SourceName
	})

	report.Ranked = ranking.RankCandidates(results)
	r.log.Info().
		Int("ranked", len(report.Ranked)).
		Int("skipped", len(report.Skipped)).
		Msg("ranking complete")
	r.emit(StepRanked, fmt.Sprintf("Ranked %d candidates", len(report.Ranked)), report)

	return report, nil
}

// loadReference never fails: an unreadable job description becomes an empty
// reference so every candidate scores 0.
func (r *run) loadReference() *types.Document {
	reference, err := r.parser.ParseReference(r.opts.JobPath)
	if err != nil {
		r.log.Error().Err(err).Str("file", r.opts.JobPath).
			Msg("job description has no extractable text; every candidate will score 0")
		reference = r.parser.ReferenceFromText(filepath.Base(r.opts.JobPath), "")
	}
	r.log.Debug().
		Str("file", reference.SourceName).
		Strs("required_skills", reference.RequiredSkills.Sorted()).
		Msg("parsed job description")
	r.emit(StepReference, "Parsed "+reference.SourceName, reference)
	return reference
}

func (r *run) scoreCandidates(ctx context.Context, reference *types.Document, paths []string) ([]ranking.Result, []types.SkippedFile, error) {
	slots := make([]*ranking.Result, len(paths))
	var (
		failedMu sync.Mutex
		failed   []types.SkippedFile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.opts.Workers, 1))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			candidate, err := r.parser.ParseCandidate(path)
			if err != nil {
				r.log.Warn().Err(err).Str("file", path).Msg("failed to parse candidate")
				failedMu.Lock()
				failed = append(failed, types.SkippedFile{
					SourceName: filepath.Base(path),
					Reason:     "extraction failed: " + err.Error(),
				})
				failedMu.Unlock()
				return nil
			}

			result := ranking.Result{Candidate: candidate, Breakdown: r.scorer.Score(candidate, reference)}
			slots[i] = &result
			r.log.Debug().
				Str("file", candidate.SourceName).
				Float64("coverage", result.Breakdown.Coverage).
				Float64("similarity", result.Breakdown.Similarity).
				Float64("score", result.Breakdown.Final).
				Msg("scored candidate")
			r.emit(StepCandidate, "Scored "+candidate.SourceName, result)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("ranking run cancelled: %w", err)
	}

	results := make([]ranking.Result, 0, len(slots))
	for _, s := range slots {
		if s != nil {
			results = append(results, *s)
		}
	}
	return results, failed, nil
}

// ScoreFile scores a single resume against a job description.
func ScoreFile(jobPath, resumePath, vocabularyPath string) (ranking.Result, error) {
	parser, err := NewParser(vocabularyPath)
	if err != nil {
		return ranking.Result{}, err
	}
	reference, err := parser.ParseReference(jobPath)
	if err != nil {
		return ranking.Result{}, err
	}
	candidate, err := parser.ParseCandidate(resumePath)
	if err != nil {
		return ranking.Result{}, err
	}
	return ranking.Result{
		Candidate: candidate,
		Breakdown: ranking.NewScorer(nil).Score(candidate, reference),
	}, nil
}

// ParseFile parses one file as a job description (asReference) or a resume.
func ParseFile(path, vocabularyPath string, asReference bool) (*types.Document, error) {
	parser, err := NewParser(vocabularyPath)
	if err != nil {
		return nil, err
	}
	if asReference {
		return parser.ParseReference(path)
	}
	return parser.ParseCandidate(path)
}
