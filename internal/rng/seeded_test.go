package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeeded_Intn(t *testing.T) {
	a := assert.New(t)

	s1 := NewSeeded(1)
	s2 := NewSeeded(1)
	for i := 0; i < 100; i++ {
		a.Equal(s1.Intn(108), s2.Intn(108))
	}

	s3 := NewSeeded(2)
	same := true
	s4 := NewSeeded(1)
	for i := 0; i < 100; i++ {
		if s3.Intn(108) != s4.Intn(108) {
			same = false
		}
	}
	a.False(same)
}
