package exercises

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Movers", func() {
	It("should let a duck combine both movements", func() {
		var m Mover = Duck{}
		Expect(m.Move()).To(Equal("I can fly and I can swim"))
	})

	It("should keep each capability usable on its own", func() {
		movers := []Mover{Flyer{}, Swimmer{}}
		Expect(movers[0].Move()).To(Equal("I can fly"))
		Expect(movers[1].Move()).To(Equal("I can swim"))
	})

	It("should print both coordinates of a point", func() {
		c := NewCoord(3, 4)
		Expect(c.Coords()).To(Equal("3 4"))
		Expect(c.XCoord.Coords()).To(Equal("3"))
		Expect(c.YCoord.Coords()).To(Equal("4"))
	})

	It("should build a full name from its parts", func() {
		Expect(NewPerson("Bobik", "Ebobik").FullName()).To(Equal("Bobik Ebobik"))
	})

	It("should produce the demo lines in order", func() {
		Expect(MoversDemo()).To(Equal([]string{
			"I can fly and I can swim",
			"2",
			"5",
			"3 4",
			"Bobik Ebobik",
		}))
	})
})

var _ = Describe("Sorting", func() {
	It("should order students by descending score", func() {
		sorted := SortStudentsByScoreDesc([]Student{{"Bobik", 3}, {"Ebobik", 67}, {"Aibar", 17}})
		Expect(sorted).To(Equal([]Student{{"Ebobik", 67}, {"Aibar", 17}, {"Bobik", 3}}))
	})

	It("should keep equal scores in input order", func() {
		sorted := SortStudentsByScoreDesc([]Student{{"A", 1}, {"B", 1}})
		Expect(sorted).To(Equal([]Student{{"A", 1}, {"B", 1}}))
	})

	It("should not modify its input", func() {
		input := []Student{{"Bobik", 3}, {"Ebobik", 67}}
		SortStudentsByScoreDesc(input)
		Expect(input[0].Name).To(Equal("Bobik"))
	})

	It("should measure length in characters, not bytes", func() {
		Expect(SortWordsByLengthThenInitial([]string{"abcde", "Аист", "Бык", "Ёж"})).
			To(Equal([]string{"Ёж", "Бык", "Аист", "abcde"}))
	})

	It("should compare whole first characters", func() {
		Expect(SortWordsByLengthThenInitial([]string{"Яз", "Аб"})).
			To(Equal([]string{"Аб", "Яз"}))
	})

	It("should order words by length then first letter", func() {
		Expect(SortWordsByLengthThenInitial([]string{"Bobik", "Ebobik", "Aibar"})).
			To(Equal([]string{"Aibar", "Bobik", "Ebobik"}))
	})
})
