package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/khanglvm/gift-inventory/internal/render"
	"github.com/khanglvm/gift-inventory/internal/scoring"
	"github.com/khanglvm/gift-inventory/internal/storage"
	"github.com/khanglvm/gift-inventory/internal/survey"
)

type questionView struct {
	Number   int
	Prompt   string
	Selected string
}

type formPage struct {
	Title     string
	Questions []questionView
	Choices   []survey.Choice
	Problem   string
}

type barView struct {
	Category string
	Score    int
	Percent  int
}

type resultsPage struct {
	Title       string
	Empty       bool
	Latest      []scoring.CategoryScore
	Bars        []barView
	Respondents []scoring.Respondent
	Header      []string
	History     storage.History
}

type errorPage struct {
	Title   string
	Message string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.lookup(r)
	if sess == nil {
		s.renderForm(w, http.StatusOK, &session{})
		return
	}
	if sess.nav.Screen() == survey.ScreenResults {
		s.renderResults(w)
		return
	}
	s.renderForm(w, http.StatusOK, sess)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A client without a session gets one only once its answers are stored.
	sess := s.lookup(r)
	anonymous := sess == nil
	if anonymous {
		sess = &session{nav: survey.NewNavigator()}
	}
	if err := r.ParseForm(); err != nil {
		s.renderError(w, http.StatusBadRequest, "The form could not be read.")
		return
	}

	answers := parseAnswers(r.PostForm, s.svc.Questionnaire().Catalog.Len())
	_, err := s.svc.Submit(sess.nav, answers)

	var incomplete *survey.IncompleteError
	switch {
	case err == nil:
		s.metrics.Submissions.Inc()
		if anonymous {
			s.start(w, sess)
		}
		sess.answers = nil
		sess.problem = ""
		http.Redirect(w, r, "/", http.StatusSeeOther)

	case errors.Is(err, survey.ErrInvalidTransition):
		http.Redirect(w, r, "/", http.StatusSeeOther)

	case errors.As(err, &incomplete), errors.Is(err, survey.ErrInvalidAnswer):
		reason := "invalid"
		if incomplete != nil {
			reason = "incomplete"
		}
		s.metrics.Rejected.WithLabelValues(reason).Inc()
		sess.answers = answers
		sess.problem = err.Error()
		s.renderForm(w, http.StatusUnprocessableEntity, sess)

	default:
		s.metrics.StoreErrors.Inc()
		sess.answers = answers
		s.renderError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) handleBack(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.lookup(r)
	if sess == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := sess.nav.Back(); err == nil {
		sess.answers = nil
		sess.problem = ""
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleAPIResults(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.svc.Results()
	if err != nil {
		s.metrics.StoreErrors.Inc()
		s.logger.Error("Failed to load results", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.metrics.ResultsViews.Inc()
	writeJSON(w, http.StatusOK, res)
}

// parseAnswers reads fields q1..qn. Blank fields are left out so they are
// reported as unanswered.
func parseAnswers(form url.Values, n int) survey.Answers {
	answers := make(survey.Answers, n)
	for i := 1; i <= n; i++ {
		if v := form.Get("q" + strconv.Itoa(i)); v != "" {
			answers[i] = v
		}
	}
	return answers
}

func (s *Server) renderForm(w http.ResponseWriter, status int, sess *session) {
	prompts := s.svc.Questionnaire().Catalog.Prompts()
	page := formPage{
		Title:     s.svc.Questionnaire().Title,
		Questions: make([]questionView, len(prompts)),
		Choices:   s.svc.Scale().Choices(),
		Problem:   sess.problem,
	}
	for i, p := range prompts {
		page.Questions[i] = questionView{Number: i + 1, Prompt: p, Selected: sess.answers[i+1]}
	}
	s.execute(w, status, "form.html", page)
}

func (s *Server) renderResults(w http.ResponseWriter) {
	res, err := s.svc.Results()
	if err != nil {
		s.metrics.StoreErrors.Inc()
		s.logger.Error("Failed to load results", zap.Error(err))
		s.renderError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.metrics.ResultsViews.Inc()

	page := resultsPage{
		Title:       s.svc.Questionnaire().Title,
		Empty:       res.Empty(),
		Latest:      res.Latest,
		Respondents: res.Respondents,
		Header:      res.Header,
		History:     res.History,
	}
	top := 0
	for _, t := range res.Totals {
		top = max(top, t.Score)
	}
	for _, t := range res.Totals {
		page.Bars = append(page.Bars, barView{
			Category: t.Category,
			Score:    t.Score,
			Percent:  render.BarLength(t.Score, top, 100),
		})
	}
	s.execute(w, http.StatusOK, "results.html", page)
}

func (s *Server) renderError(w http.ResponseWriter, status int, msg string) {
	s.execute(w, status, "error.html", errorPage{
		Title:   s.svc.Questionnaire().Title,
		Message: msg,
	})
}

// execute renders the whole page before writing any headers.
func (s *Server) execute(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("Failed to render page", zap.String("template", name), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
