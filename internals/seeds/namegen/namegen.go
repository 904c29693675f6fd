// file: internals/seeds/namegen/namegen.go
package namegen

import (
	"fmt"
	"math/rand"
)

// Name pools for synthetic people. Kept small on purpose: demo data,
// not a census.
var (
	maleFirstNames = []string{
		"Ahmed", "Omar", "Khalid", "Mustafa", "Ibrahim", "Yousif", "Hassan",
		"Tariq", "Salim", "Mohammed", "Abdalla", "Zain", "Hamza", "Idris",
	}
	femaleFirstNames = []string{
		"Fatima", "Aisha", "Mariam", "Samira", "Huda", "Layla", "Nour",
		"Zainab", "Amira", "Sara", "Rania", "Hiba", "Salma", "Tasneem",
	}
	surnames = []string{
		"Hassan", "Ali", "Osman", "Abdelrahman", "Elhassan", "Mahmoud",
		"Babiker", "Elamin", "Ahmed", "Siddig", "Hamid", "Abdelaziz",
	}
	occupations = []string{
		"Engineer", "Trader", "Farmer", "Nurse", "Driver", "Teacher",
		"Shopkeeper", "Civil Servant",
	}
)

// Generator produces reproducible synthetic identities. Inject the same
// seed and you get the same names; tests rely on that.
type Generator struct {
	r *rand.Rand
}

func New(seed int64) *Generator {
	return &Generator{r: rand.New(rand.NewSource(seed))}
}

func (g *Generator) FirstName(gender string) string {
	if gender == "female" {
		return femaleFirstNames[g.r.Intn(len(femaleFirstNames))]
	}
	return maleFirstNames[g.r.Intn(len(maleFirstNames))]
}

func (g *Generator) Surname() string {
	return surnames[g.r.Intn(len(surnames))]
}

func (g *Generator) FullName(gender string) string {
	return g.FirstName(gender) + " " + g.Surname()
}

// Gender alternates male/female pseudo-randomly.
func (g *Generator) Gender() string {
	if g.r.Intn(2) == 0 {
		return "male"
	}
	return "female"
}

func (g *Generator) Phone() string {
	return fmt.Sprintf("+249 9%d %03d %04d", 1+g.r.Intn(8), g.r.Intn(1000), g.r.Intn(10000))
}

func (g *Generator) Occupation() string {
	return occupations[g.r.Intn(len(occupations))]
}

// Intn exposes the underlying RNG so seeders that need raw numbers
// (marks, statuses) stay on the same reproducible stream.
func (g *Generator) Intn(n int) int {
	return g.r.Intn(n)
}

func (g *Generator) Float64() float64 {
	return g.r.Float64()
}
