/*
Package survey ties the questionnaire together: it turns a completed answer
set into a stored record, moves the session's Navigator between the form and
the results, and assembles the results screen from the stored history.

Every interaction runs to completion before returning. Callers that share a
Service between goroutines must serialise Submit and Results themselves.
*/
package survey

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/khanglvm/gift-inventory/internal/config"
	"github.com/khanglvm/gift-inventory/internal/scoring"
	"github.com/khanglvm/gift-inventory/internal/storage"
)

// ErrInvalidAnswer is returned for an answer set naming an unknown question
// or an unknown choice label.
var ErrInvalidAnswer = errors.New("invalid answer")

// Answers maps 1-based question numbers to the selected choice label.
type Answers map[int]string

// IncompleteError lists the 1-based numbers of unanswered questions. Every
// question must be answered explicitly; nothing defaults to the first choice.
type IncompleteError struct {
	Missing []int
}

func (e *IncompleteError) Error() string {
	const show = 10
	nums := make([]string, 0, show)
	for i, q := range e.Missing {
		if i == show {
			break
		}
		nums = append(nums, strconv.Itoa(q))
	}
	msg := "unanswered questions: " + strings.Join(nums, ", ")
	if extra := len(e.Missing) - show; extra > 0 {
		msg += fmt.Sprintf(" and %d more", extra)
	}
	return msg
}

// Results is everything the results screen shows.
type Results struct {
	// Latest is the most recent respondent's ranked scores.
	Latest []scoring.CategoryScore `json:"latest"`
	// Totals holds every category's total across all respondents, in
	// declaration order.
	Totals []scoring.CategoryScore `json:"totals"`
	// Respondents ranks every respondent, oldest first.
	Respondents []scoring.Respondent `json:"respondents"`
	Header      []string             `json:"header"`
	History     storage.History      `json:"history"`
}

// Empty reports whether nobody has answered yet.
func (r *Results) Empty() bool {
	return len(r.History) == 0
}

// Service runs submissions and builds results.
type Service struct {
	questionnaire *config.Questionnaire
	scale         *Scale
	store         storage.Store
	logger        *zap.Logger
}

// NewService creates a service for questionnaire q backed by store.
func NewService(q *config.Questionnaire, store storage.Store, logger *zap.Logger) (*Service, error) {
	scale, err := NewScale(q.Labels)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		questionnaire: q,
		scale:         scale,
		store:         store,
		logger:        logger,
	}, nil
}

// Questionnaire returns the configuration the service was built with.
func (s *Service) Questionnaire() *config.Questionnaire {
	return s.questionnaire
}

// Scale returns the answer scale.
func (s *Service) Scale() *Scale {
	return s.scale
}

// Record converts a complete answer set into a record.
func (s *Service) Record(answers Answers) (storage.Record, error) {
	n := s.questionnaire.Catalog.Len()

	numbers := make([]int, 0, len(answers))
	for q := range answers {
		numbers = append(numbers, q)
	}
	sort.Ints(numbers)
	for _, q := range numbers {
		if q < 1 || q > n {
			return nil, fmt.Errorf("%w: question %d does not exist", ErrInvalidAnswer, q)
		}
	}

	rec := make(storage.Record, n)
	var missing []int
	for i := range rec {
		label, ok := answers[i+1]
		if !ok || label == "" {
			missing = append(missing, i+1)
			continue
		}
		v, ok := s.scale.Value(label)
		if !ok {
			return nil, fmt.Errorf("%w: question %d: unknown choice %q", ErrInvalidAnswer, i+1, label)
		}
		rec[i] = v
	}

	if len(missing) > 0 {
		return nil, &IncompleteError{Missing: missing}
	}
	return rec, nil
}

// Submit stores the answers and moves nav to the results screen. On any
// error nav stays on the form and nothing is retried.
func (s *Service) Submit(nav *Navigator, answers Answers) (storage.Record, error) {
	if err := nav.canSubmit(); err != nil {
		return nil, err
	}

	rec, err := s.Record(answers)
	if err != nil {
		return nil, err
	}

	if err := s.store.Append(rec); err != nil {
		s.logger.Error("Failed to store response",
			zap.String("file", s.store.Path()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to store response: %w", err)
	}

	s.logger.Info("Response recorded",
		zap.String("file", s.store.Path()),
		zap.Int("questions", len(rec)))

	nav.submitted()
	return rec, nil
}

// Results loads the history and scores it. A corrupt response file is
// returned as a *storage.StoreError; callers should show the error instead of
// the results.
func (s *Service) Results() (*Results, error) {
	history, err := s.store.LoadHistory()
	if err != nil {
		return nil, err
	}

	n := s.questionnaire.Catalog.Len()
	if w := history.Width(); w != 0 && w != n {
		return nil, &storage.StoreError{
			Path: s.store.Path(),
			Err:  fmt.Errorf("file has %d columns but the catalog has %d questions", w, n),
		}
	}

	categories := s.questionnaire.Categories
	res := &Results{
		Totals:      scoring.Totals(history, categories),
		Respondents: scoring.RankHistory(history, categories),
		Header:      storage.Header(n),
		History:     history,
	}
	if latest, ok := history.Latest(); ok {
		res.Latest = scoring.ScoreRespondent(latest, categories)
	}

	s.logger.Debug("Results computed",
		zap.Int("respondents", len(history)),
		zap.Int("categories", categories.Len()))

	return res, nil
}
