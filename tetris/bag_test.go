package tetris_test

import (
	"testing"

	"github.com/plus3/termtris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bagA = tetris.Bag{tetris.I, tetris.O, tetris.T, tetris.S, tetris.Z, tetris.J, tetris.L}
	bagB = tetris.Bag{tetris.L, tetris.J, tetris.Z, tetris.S, tetris.T, tetris.O, tetris.I}
)

func TestNewBagIsPermutation(t *testing.T) {
	rng := tetris.NewRand(7)
	for range 50 {
		bag := tetris.NewBag(rng)
		assert.ElementsMatch(t, tetris.Kinds[:], bag[:])
	}
}

func TestNewBagIsUniform(t *testing.T) {
	rng := tetris.NewRand(99)
	const bags = 7000

	var first [tetris.L + 1]int
	for range bags {
		bag := tetris.NewBag(rng)
		first[bag[0]]++
	}

	for _, k := range tetris.Kinds {
		assert.InDelta(t, bags/7, first[k], 200, "kind %s dealt first", k)
	}
}

func TestSequenceExhaustion(t *testing.T) {
	seq := tetris.NewSequenceFrom(bagA, bagB, tetris.NewRand(1))

	for i := range tetris.BagSize {
		require.Equal(t, bagA[i], seq.Next())
	}

	current, _, index := seq.Bags()
	assert.Equal(t, bagA, current)
	assert.Equal(t, tetris.BagSize, index)
	assert.Equal(t, bagB[:5], seq.Peek(5))

	assert.Equal(t, bagB[0], seq.Next(), "eighth piece comes from the second bag")

	current, next, index := seq.Bags()
	assert.Equal(t, bagB, current)
	assert.Equal(t, 1, index)
	assert.ElementsMatch(t, tetris.Kinds[:], next[:])
}

func TestSequencePeekAcrossBags(t *testing.T) {
	seq := tetris.NewSequenceFrom(bagA, bagB, tetris.NewRand(1))
	for range 4 {
		seq.Next()
	}

	want := []tetris.Kind{bagA[4], bagA[5], bagA[6], bagB[0], bagB[1]}
	assert.Equal(t, want, seq.Peek(5))
	assert.Len(t, seq.Peek(20), tetris.BagSize)
	assert.Equal(t, bagA[4], seq.Next(), "peek does not deal")
}

func TestSequenceEveryBagHoldsEachKind(t *testing.T) {
	seq := tetris.NewSequence(tetris.NewRand(2024))

	for range 10 {
		dealt := make([]tetris.Kind, 0, tetris.BagSize)
		for range tetris.BagSize {
			dealt = append(dealt, seq.Next())
		}
		assert.ElementsMatch(t, tetris.Kinds[:], dealt)
	}
}

func TestSequenceSeedIsReproducible(t *testing.T) {
	a := tetris.NewSequence(tetris.NewRand(42))
	b := tetris.NewSequence(tetris.NewRand(42))

	for range 21 {
		assert.Equal(t, a.Next(), b.Next())
	}
}
