package storage

import "strconv"

const (
	// MinValue and MaxValue bound every stored answer.
	MinValue = 1
	MaxValue = 5
)

// Record is one submission: the answer value of every question, indexed by
// 0-based question position. Records are not modified after creation.
type Record []int

// Clone returns a copy of r.
func (r Record) Clone() Record {
	return append(Record(nil), r...)
}

// Equal reports whether r and o hold the same answers.
func (r Record) Equal(o Record) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if r[i] != o[i] {
			return false
		}
	}
	return true
}

// History is every record in submission order. The last record is the most
// recent respondent.
type History []Record

// Latest returns the most recent record.
func (h History) Latest() (Record, bool) {
	if len(h) == 0 {
		return nil, false
	}
	return h[len(h)-1], true
}

// Width returns the number of columns, or 0 for an empty history.
func (h History) Width() int {
	if len(h) == 0 {
		return 0
	}
	return len(h[0])
}

// ColumnName returns the header name for 0-based question index i.
func ColumnName(i int) string {
	return "Q" + strconv.Itoa(i+1)
}

// Header returns the column names Q1..Qn.
func Header(n int) []string {
	h := make([]string, n)
	for i := range h {
		h[i] = ColumnName(i)
	}
	return h
}
