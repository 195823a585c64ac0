package exercises

import (
	"cmp"
	"slices"
	"unicode/utf8"
)

// Student is a name with an exam score
type Student struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// SortStudentsByScoreDesc returns a copy of students, best score first.
// Students with equal scores keep their relative order.
func SortStudentsByScoreDesc(students []Student) []Student {
	sorted := slices.Clone(students)
	slices.SortStableFunc(sorted, func(a, b Student) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return sorted
}

// SortWordsByLengthThenInitial returns a copy of words ordered by length in
// characters and then by first character
func SortWordsByLengthThenInitial(words []string) []string {
	sorted := slices.Clone(words)
	slices.SortStableFunc(sorted, func(a, b string) int {
		if c := cmp.Compare(utf8.RuneCountInString(a), utf8.RuneCountInString(b)); c != 0 {
			return c
		}
		return cmp.Compare(initial(a), initial(b))
	})
	return sorted
}

func initial(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// SortingDemo returns the sorted sample data
func SortingDemo() Object {
	students := []Student{{"Bobik", 3}, {"Ebobik", 67}, {"Aibar", 17}}
	words := []string{"Bobik", "Ebobik", "Aibar"}
	return Object{
		{"students", SortStudentsByScoreDesc(students)},
		{"words", SortWordsByLengthThenInitial(words)},
	}
}
