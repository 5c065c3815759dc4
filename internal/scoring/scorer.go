/*
Package scoring turns raw answer records into per-category scores.

A category's score for one respondent is the sum of that respondent's answer
values at the category's question indices. Totals sum the same quantity over
every respondent. Nothing is cached: every call recomputes from its input.

All functions assume the category map was validated against the catalog the
records were collected with, so every index is within the record. They panic
with an index out of range error when a record is shorter than that. Records
read through storage.CSVStore always have the header's width, and
survey.Service checks that width against the catalog before scoring.
*/
package scoring

import (
	"sort"
	"strconv"

	"github.com/khanglvm/gift-inventory/internal/config"
	"github.com/khanglvm/gift-inventory/internal/storage"
)

// CategoryScore pairs a category with its summed score.
type CategoryScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
}

// Respondent is one record's ranked scores.
type Respondent struct {
	// Label is "Respondent N", 1-based in submission order.
	Label  string          `json:"label"`
	Scores []CategoryScore `json:"scores"`
}

// Score sums rec at the given indices. It panics if an index is outside rec.
func Score(rec storage.Record, indices []int) int {
	sum := 0
	for _, idx := range indices {
		sum += rec[idx]
	}
	return sum
}

// ScoreRespondent returns one entry per category, sorted by score
// descending. Categories with equal scores keep their declaration order.
// It panics if rec is shorter than the catalog the map was built for.
func ScoreRespondent(rec storage.Record, categories *config.CategoryMap) []CategoryScore {
	scores := make([]CategoryScore, 0, categories.Len())
	for _, c := range categories.Categories() {
		scores = append(scores, CategoryScore{
			Category: c.Name,
			Score:    Score(rec, c.Indices),
		})
	}

	Rank(scores)
	return scores
}

// ScoreAll returns each category's total across every record in history.
// Like ScoreRespondent it panics on a record shorter than the catalog.
func ScoreAll(history storage.History, categories *config.CategoryMap) map[string]int {
	totals := make(map[string]int, categories.Len())
	for _, s := range Totals(history, categories) {
		totals[s.Category] = s.Score
	}
	return totals
}

// Totals returns the same sums as ScoreAll in declaration order, which is the
// order the bar chart draws them in.
func Totals(history storage.History, categories *config.CategoryMap) []CategoryScore {
	cats := categories.Categories()
	totals := make([]CategoryScore, len(cats))
	for i, c := range cats {
		totals[i].Category = c.Name
		for _, rec := range history {
			totals[i].Score += Score(rec, c.Indices)
		}
	}
	return totals
}

// RankHistory ranks every respondent in history, oldest first.
func RankHistory(history storage.History, categories *config.CategoryMap) []Respondent {
	respondents := make([]Respondent, len(history))
	for i, rec := range history {
		respondents[i] = Respondent{
			Label:  RespondentLabel(i),
			Scores: ScoreRespondent(rec, categories),
		}
	}
	return respondents
}

// RespondentLabel names the respondent at 0-based history position i.
func RespondentLabel(i int) string {
	return "Respondent " + strconv.Itoa(i+1)
}

// Rank sorts scores descending in place, keeping the existing order of ties.
func Rank(scores []CategoryScore) {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
}
