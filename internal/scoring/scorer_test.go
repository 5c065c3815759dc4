package scoring

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanglvm/gift-inventory/internal/config"
	"github.com/khanglvm/gift-inventory/internal/storage"
)

func mustMap(t *testing.T, questions int, cats ...config.Category) *config.CategoryMap {
	t.Helper()
	m, err := config.NewCategoryMap(questions, cats...)
	require.NoError(t, err)
	return m
}

func abMap(t *testing.T) *config.CategoryMap {
	return mustMap(t, 3,
		config.Category{Name: "A", Indices: []int{0, 1}},
		config.Category{Name: "B", Indices: []int{2}},
	)
}

func TestScoreRespondent_Scenario(t *testing.T) {
	got := ScoreRespondent(storage.Record{5, 4, 3}, abMap(t))

	want := []CategoryScore{{"A", 9}, {"B", 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ScoreRespondent mismatch (-want +got):\n%s", diff)
	}
}

func TestScoreRespondent_SortsDescending(t *testing.T) {
	got := ScoreRespondent(storage.Record{1, 1, 5}, abMap(t))

	want := []CategoryScore{{"B", 5}, {"A", 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ScoreRespondent mismatch (-want +got):\n%s", diff)
	}
}

func TestScoreRespondent_TiesKeepDeclarationOrder(t *testing.T) {
	m := mustMap(t, 4,
		config.Category{Name: "Zeal", Indices: []int{0}},
		config.Category{Name: "Mercy", Indices: []int{1}},
		config.Category{Name: "Apostle", Indices: []int{2, 3}},
		config.Category{Name: "Faith", Indices: []int{3}},
	)

	got := ScoreRespondent(storage.Record{3, 3, 1, 2}, m)

	// Zeal, Mercy and Apostle tie at 3; Faith has 2.
	want := []CategoryScore{{"Zeal", 3}, {"Mercy", 3}, {"Apostle", 3}, {"Faith", 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tie order mismatch (-want +got):\n%s", diff)
	}
}

func TestScoreRespondent_EmptyCategoryScoresZero(t *testing.T) {
	m := mustMap(t, 2,
		config.Category{Name: "Empty"},
		config.Category{Name: "Full", Indices: []int{0, 1}},
	)

	got := ScoreRespondent(storage.Record{2, 2}, m)
	assert.Equal(t, []CategoryScore{{"Full", 4}, {"Empty", 0}}, got)
}

func TestScoreAll_Scenario(t *testing.T) {
	history := storage.History{{1, 1, 1}, {5, 5, 5}}

	got := ScoreAll(history, abMap(t))
	assert.Equal(t, map[string]int{"A": 12, "B": 6}, got)
}

func TestScoreAll_EmptyHistory(t *testing.T) {
	got := ScoreAll(storage.History{}, abMap(t))
	assert.Equal(t, map[string]int{"A": 0, "B": 0}, got)
}

func TestTotals_DeclarationOrder(t *testing.T) {
	history := storage.History{{1, 1, 5}, {1, 1, 5}}

	got := Totals(history, abMap(t))
	assert.Equal(t, []CategoryScore{{"A", 4}, {"B", 10}}, got)
}

func TestRankHistory(t *testing.T) {
	history := storage.History{{5, 4, 3}, {1, 1, 5}}

	got := RankHistory(history, abMap(t))

	want := []Respondent{
		{Label: "Respondent 1", Scores: []CategoryScore{{"A", 9}, {"B", 3}}},
		{Label: "Respondent 2", Scores: []CategoryScore{{"B", 5}, {"A", 2}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RankHistory mismatch (-want +got):\n%s", diff)
	}
}

// randomFixture builds a category map with shared questions and a history of
// records drawn from the answer scale.
func randomFixture(t *testing.T, rng *rand.Rand) (*config.CategoryMap, storage.History) {
	questions := 1 + rng.Intn(40)
	ncat := 1 + rng.Intn(8)

	cats := make([]config.Category, ncat)
	for i := range cats {
		cats[i].Name = string(rune('A' + i))
		for _, q := range rng.Perm(questions)[:rng.Intn(questions+1)] {
			cats[i].Indices = append(cats[i].Indices, q)
		}
	}

	history := make(storage.History, rng.Intn(6))
	for i := range history {
		rec := make(storage.Record, questions)
		for j := range rec {
			rec[j] = storage.MinValue + rng.Intn(storage.MaxValue)
		}
		history[i] = rec
	}

	return mustMap(t, questions, cats...), history
}

func TestScoreRespondent_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 200; iter++ {
		m, history := randomFixture(t, rng)
		for _, rec := range history {
			got := ScoreRespondent(rec, m)

			require.Len(t, got, m.Len(), "one entry per category")
			for i := 1; i < len(got); i++ {
				require.GreaterOrEqual(t, got[i-1].Score, got[i].Score, "scores must be non-increasing: %v", got)
			}

			again := ScoreRespondent(rec, m)
			require.Equal(t, got, again, "same input must give same output")
		}
	}
}

func TestScoreAll_IsSumOfRespondents(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for iter := 0; iter < 200; iter++ {
		m, history := randomFixture(t, rng)

		want := make(map[string]int, m.Len())
		for _, name := range m.Names() {
			want[name] = 0
		}
		for _, rec := range history {
			for _, s := range ScoreRespondent(rec, m) {
				want[s.Category] += s.Score
			}
		}

		require.Equal(t, want, ScoreAll(history, m))
	}
}

func TestScoreDoesNotMutateInput(t *testing.T) {
	rec := storage.Record{5, 4, 3}
	history := storage.History{rec.Clone()}

	_ = ScoreRespondent(rec, abMap(t))
	_ = ScoreAll(history, abMap(t))

	assert.Equal(t, storage.Record{5, 4, 3}, rec)
	assert.Equal(t, storage.History{{5, 4, 3}}, history)
}

func TestShortRecordPanics(t *testing.T) {
	short := storage.Record{5, 4}

	assert.Panics(t, func() { Score(short, []int{2}) })
	assert.Panics(t, func() { ScoreRespondent(short, abMap(t)) })
	assert.Panics(t, func() { Totals(storage.History{{1, 1, 1}, short}, abMap(t)) })
	assert.NotPanics(t, func() { Score(short, []int{0, 1}) })
}
