/*
Package render draws the results screen on a terminal: the latest
respondent's ranked scores, a bar chart of the totals across everyone, the
per-respondent rankings, and the raw answer history.
*/
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/khanglvm/gift-inventory/internal/scoring"
	"github.com/khanglvm/gift-inventory/internal/storage"
	"github.com/khanglvm/gift-inventory/internal/survey"
)

// DefaultBarWidth is the length of the longest bar.
const DefaultBarWidth = 40

const barRune = "█"

// Options selects the optional sections of the results screen.
type Options struct {
	// Respondents adds every respondent's ranking.
	Respondents bool
	// History adds the raw answer table.
	History bool
}

// Renderer writes results to w.
type Renderer struct {
	w        io.Writer
	styles   Styles
	barWidth int
}

// New creates a renderer with the default styles.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w, styles: DefaultStyles(), barWidth: DefaultBarWidth}
}

// Results draws the whole results screen.
func (r *Renderer) Results(res *survey.Results, opts Options) {
	if res.Empty() {
		fmt.Fprintln(r.w, r.styles.Muted.Render("No responses yet."))
		return
	}

	r.Ranked("Scores by gift", res.Latest)
	fmt.Fprintln(r.w)
	r.Chart("Totals across all respondents", res.Totals)

	if opts.Respondents {
		fmt.Fprintln(r.w)
		r.Respondents(res.Respondents)
	}
	if opts.History {
		fmt.Fprintln(r.w)
		r.History("Previous responses", res.Header, res.History)
	}
}

// Ranked draws one respondent's scores, highest first.
func (r *Renderer) Ranked(title string, scores []scoring.CategoryScore) {
	fmt.Fprintln(r.w, r.styles.Title.Render(title))

	nameWidth := lipgloss.Width("Gift")
	for _, s := range scores {
		nameWidth = max(nameWidth, lipgloss.Width(s.Category))
	}
	rankWidth := len(strconv.Itoa(len(scores)))

	fmt.Fprintln(r.w, r.styles.Header.Render(
		pad("#", rankWidth)+"  "+pad("Gift", nameWidth)+"  Score"))
	for i, s := range scores {
		fmt.Fprintf(r.w, "%s  %s  %5d\n", padLeft(strconv.Itoa(i+1), rankWidth), pad(s.Category, nameWidth), s.Score)
	}
}

// Chart draws a horizontal bar per category, scaled to the largest total.
func (r *Renderer) Chart(title string, totals []scoring.CategoryScore) {
	fmt.Fprintln(r.w, r.styles.Title.Render(title))

	nameWidth, top := 0, 0
	for _, s := range totals {
		nameWidth = max(nameWidth, lipgloss.Width(s.Category))
		top = max(top, s.Score)
	}

	for _, s := range totals {
		bar := strings.Repeat(barRune, BarLength(s.Score, top, r.barWidth))
		fmt.Fprintf(r.w, "%s %s %d\n", pad(s.Category, nameWidth), r.styles.Bar.Render(bar), s.Score)
	}
}

// BarLength scales score against top. Any positive score gets at least one
// cell.
func BarLength(score, top, width int) int {
	if top <= 0 || score <= 0 {
		return 0
	}
	n := score * width / top
	if n == 0 {
		n = 1
	}
	return n
}

// Respondents draws one column per respondent, one row per rank.
func (r *Renderer) Respondents(respondents []scoring.Respondent) {
	fmt.Fprintln(r.w, r.styles.Title.Render("Scores by respondent"))
	if len(respondents) == 0 {
		return
	}

	rows := len(respondents[0].Scores)
	widths := make([]int, len(respondents))
	for i, resp := range respondents {
		widths[i] = lipgloss.Width(resp.Label)
		for _, s := range resp.Scores {
			widths[i] = max(widths[i], lipgloss.Width(cell(s)))
		}
	}
	rankWidth := max(1, len(strconv.Itoa(rows)))

	header := make([]string, 0, len(respondents)+1)
	header = append(header, pad("#", rankWidth))
	for i, resp := range respondents {
		header = append(header, pad(resp.Label, widths[i]))
	}
	fmt.Fprintln(r.w, r.styles.Header.Render(strings.Join(header, "  ")))

	for row := 0; row < rows; row++ {
		line := make([]string, 0, len(respondents)+1)
		line = append(line, padLeft(strconv.Itoa(row+1), rankWidth))
		for i, resp := range respondents {
			line = append(line, pad(cell(resp.Scores[row]), widths[i]))
		}
		fmt.Fprintln(r.w, strings.TrimRight(strings.Join(line, "  "), " "))
	}
}

// History draws the raw answers, one row per respondent.
func (r *Renderer) History(title string, header []string, history storage.History) {
	fmt.Fprintln(r.w, r.styles.Title.Render(title))

	width := 1
	for _, h := range header {
		width = max(width, len(h))
	}
	idxWidth := max(1, len(strconv.Itoa(len(history))))

	cols := make([]string, 0, len(header)+1)
	cols = append(cols, pad("#", idxWidth))
	for _, h := range header {
		cols = append(cols, padLeft(h, width))
	}
	fmt.Fprintln(r.w, r.styles.Header.Render(strings.Join(cols, " ")))

	for i, rec := range history {
		cols = cols[:0]
		cols = append(cols, padLeft(strconv.Itoa(i+1), idxWidth))
		for _, v := range rec {
			cols = append(cols, padLeft(strconv.Itoa(v), width))
		}
		fmt.Fprintln(r.w, strings.Join(cols, " "))
	}
}

// Error draws a failure in place of the results.
func (r *Renderer) Error(err error) {
	fmt.Fprintln(r.w, r.styles.Error.Render("Error: "+err.Error()))
}

func cell(s scoring.CategoryScore) string {
	return s.Category + " " + strconv.Itoa(s.Score)
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}
