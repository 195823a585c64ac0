package exercises

import "fmt"

// Mover is anything that can describe how it moves
type Mover interface {
	Move() string
}

// Flyer moves through the air
type Flyer struct{}

func (Flyer) Move() string { return "I can fly" }

// Swimmer moves through water
type Swimmer struct{}

func (Swimmer) Move() string { return "I can swim" }

// Duck both flies and swims. Both embedded Move methods are promoted at the
// same depth, so Duck must pick explicitly.
type Duck struct {
	Flyer
	Swimmer
}

func (d Duck) Move() string {
	return d.Flyer.Move() + " and " + d.Swimmer.Move()
}

// Coordinates prints its own components
type Coordinates interface {
	Coords() string
}

// XCoord is the horizontal component of a point
type XCoord struct{ X int }

func (c XCoord) Coords() string { return fmt.Sprint(c.X) }

// YCoord is the vertical component of a point
type YCoord struct{ Y int }

func (c YCoord) Coords() string { return fmt.Sprint(c.Y) }

// Coord is a point built from both axes
type Coord struct {
	XCoord
	YCoord
}

// NewCoord creates a Coord at x, y
func NewCoord(x, y int) Coord {
	return Coord{XCoord{X: x}, YCoord{Y: y}}
}

func (c Coord) Coords() string { return fmt.Sprint(c.X, c.Y) }

// Name holds a given name
type Name struct{ Name string }

// Surname holds a family name
type Surname struct{ Surname string }

// Person gets its fields from Name and Surname
type Person struct {
	Name
	Surname
}

// NewPerson creates a Person from a name and surname
func NewPerson(name, surname string) Person {
	return Person{Name{Name: name}, Surname{Surname: surname}}
}

// FullName joins the name and surname with a space
func (p Person) FullName() string { return p.Name.Name + " " + p.Surname.Surname }

// MoversDemo returns the lines printed by the interface demo
func MoversDemo() []string {
	return []string{
		Duck{}.Move(),
		XCoord{X: 2}.Coords(),
		YCoord{Y: 5}.Coords(),
		NewCoord(3, 4).Coords(),
		NewPerson("Bobik", "Ebobik").FullName(),
	}
}
