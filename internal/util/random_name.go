package util

import (
	"fmt"
	"math/rand"
	"time"
)

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

var adjectives = []string{
	"Fast", "Slow", "Quick", "Speedy", "Gracious", "Healthy", "Happy", "Funny",
	"Red", "Blue", "Green", "Orange", "Purple", "Smiling", "Tall", "Grand",
	"Lucky", "Sneaky", "Patient", "Bold", "Clever", "Daring", "Quiet", "Wily",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Alligator", "Shark", "Hippo", "Giraffe", "Lion",
	"Tiger", "Bear", "Otter", "Dolphin", "Hedgehog", "Snake", "Lizard", "Bird",
	"Eagle", "Wolf", "Fox", "Armadillo", "Rhino", "Reindeer", "Deer", "Panda",
}

// RandomPlayerName returns a random display name by combining an adjective with an animal.
// The simulator uses these when no player names are configured.
func RandomPlayerName() string {
	return fmt.Sprintf("%s %s", adjectives[random.Intn(len(adjectives))], animals[random.Intn(len(animals))])
}
