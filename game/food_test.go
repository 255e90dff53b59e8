package game

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// TestFoodRandomizeInBounds verifies randomized cells stay on the grid
func TestFoodRandomizeInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var f Food
	for i := 0; i < 1000; i++ {
		f.Randomize(rng, constants.GridWidth, constants.GridHeight)
		if !f.Position.In(constants.GridWidth, constants.GridHeight) {
			t.Fatalf("Food at %v is off the grid", f.Position)
		}
	}
}

// TestFoodPlaceAvoidsSnake verifies the food never lands on the snake
func TestFoodPlaceAvoidsSnake(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s := NewSnake(4, 4, Medium, rng, testEpoch)
	// Cover all but (3,3)
	s.Positions = s.Positions[:0]
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x == 3 && y == 3 {
				continue
			}
			s.Positions = append(s.Positions, core.Point{X: x, Y: y})
		}
	}

	var f Food
	for i := 0; i < 50; i++ {
		f.Place(rng, 4, 4, s)
		if f.Position != (core.Point{X: 3, Y: 3}) {
			t.Fatalf("Food placed at %v, only free cell is (3,3)", f.Position)
		}
	}
}

// TestFoodPlaceRandomSnake checks the invariant against many random bodies
func TestFoodPlaceRandomSnake(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	s := NewSnake(constants.GridWidth, constants.GridHeight, Easy, rng, testEpoch)

	var f Food
	for trial := 0; trial < 100; trial++ {
		s.Positions = s.Positions[:0]
		for i := 0; i < 200; i++ {
			s.Positions = append(s.Positions, core.Point{X: rng.Intn(constants.GridWidth), Y: rng.Intn(constants.GridHeight)})
		}
		f.Place(rng, constants.GridWidth, constants.GridHeight, s)
		if s.Occupies(f.Position) {
			t.Fatalf("Trial %d: food %v on snake", trial, f.Position)
		}
	}
}
