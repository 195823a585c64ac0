// Package exercises holds the small pattern matching, interface composition
// and sorting exercises that ship with the receipt parser.
package exercises

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	task1Pattern = regexp.MustCompile(`^ab*$`)
	task2Pattern = regexp.MustCompile(`^ab{2,3}$`)
	task3Pattern = regexp.MustCompile(`^[a-z]+_[a-z]+$`)
	task4Pattern = regexp.MustCompile(`^[A-Z][a-z]+$`)
	task5Pattern = regexp.MustCompile(`^a.*b$`)
	task6Pattern = regexp.MustCompile(`[ ,.]`)
	task7Pattern = regexp.MustCompile(`_[a-z]`)
	task8Pattern = regexp.MustCompile(`^[^A-Z]+|[A-Z][^A-Z]*`)

	// capitals except the first character, needs lookbehind
	innerCapital = regexp2.MustCompile(`(?<!^)([A-Z])`, regexp2.None)
)

// Task1 matches an "a" followed by any number of "b"s
func Task1(s string) bool { return task1Pattern.MatchString(s) }

// Task2 matches an "a" followed by two or three "b"s
func Task2(s string) bool { return task2Pattern.MatchString(s) }

// Task3 matches two lowercase words joined by an underscore
func Task3(s string) bool { return task3Pattern.MatchString(s) }

// Task4 matches one capital followed by lowercase letters
func Task4(s string) bool { return task4Pattern.MatchString(s) }

// Task5 matches strings that start with "a" and end with "b"
func Task5(s string) bool { return task5Pattern.MatchString(s) }

// Task6 replaces spaces, commas and dots with colons
func Task6(s string) string { return task6Pattern.ReplaceAllString(s, ":") }

// Task7 converts snake_case to camelCase
func Task7(s string) string {
	return task7Pattern.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// Task8 splits a string before every capital letter
func Task8(s string) []string {
	parts := task8Pattern.FindAllString(s, -1)
	if parts == nil {
		return []string{}
	}
	return parts
}

// Task9 inserts a space before every capital but the first character
func Task9(s string) string { return replaceInnerCapitals(s, " $1") }

// Task10 converts camelCase to snake_case
func Task10(s string) string { return strings.ToLower(replaceInnerCapitals(s, "_$1")) }

func replaceInnerCapitals(s, replacement string) string {
	out, err := innerCapital.Replace(s, replacement, -1, -1)
	if err != nil {
		slog.Warn("Replacing capitals failed", "input", s, "error", err)
		return s
	}
	return out
}

// RegexDemo runs every task against a fixed set of inputs
func RegexDemo() Object {
	return Object{
		{"task1", Object{{"abbb", Task1("abbb")}, {"a", Task1("a")}, {"ac", Task1("ac")}}},
		{"task2", Object{{"abb", Task2("abb")}, {"abbb", Task2("abbb")}, {"abbbb", Task2("abbbb")}}},
		{"task3", Object{{"abc_def", Task3("abc_def")}, {"abc_", Task3("abc_")}, {"Abc_def", Task3("Abc_def")}}},
		{"task4", Object{{"Hello", Task4("Hello")}, {"HELLO", Task4("HELLO")}, {"hello", Task4("hello")}}},
		{"task5", Object{{"axxxb", Task5("axxxb")}, {"ab", Task5("ab")}, {"ba", Task5("ba")}}},
		{"task6", Object{{"input", "hello, world. test"}, {"output", Task6("hello, world. test")}}},
		{"task7", Object{{"hello_world_test", Task7("hello_world_test")}}},
		{"task8", Object{{"HelloWorldTest", Task8("HelloWorldTest")}}},
		{"task9", Object{{"HelloWorldTest", Task9("HelloWorldTest")}}},
		{"task10", Object{{"helloWorldTest", Task10("helloWorldTest")}}},
	}
}
