// Package words holds the fixed word lists and emoji grids the mini-games
// draw from, plus the random pickers the game controllers use.
package words

import (
	"math/rand"
	"sync"
)

// Drawing word lists by category.
var drawingWords = map[string][]string{
	"animals": {
		"cat", "dog", "elephant", "giraffe", "lion", "tiger", "zebra", "monkey",
		"bear", "fox", "wolf", "rabbit", "deer", "horse", "cow", "pig",
		"sheep", "goat", "chicken", "duck",
	},
	"objects": {
		"chair", "table", "lamp", "clock", "book", "pen", "phone", "computer",
		"television", "cup", "bottle", "plate", "fork", "knife", "spoon",
		"glasses", "hat", "shoe", "umbrella", "key",
	},
	"nature": {
		"tree", "flower", "mountain", "river", "ocean", "beach", "forest",
		"desert", "island", "sun", "moon", "star", "cloud", "rain", "snow",
		"wind", "rainbow", "waterfall", "volcano", "canyon",
	},
	"food": {
		"apple", "banana", "orange", "grape", "strawberry", "pizza", "burger",
		"sandwich", "pasta", "rice", "bread", "cake", "cookie", "ice cream",
		"chocolate", "coffee", "tea", "milk", "juice", "water",
	},
	"sports": {
		"soccer", "basketball", "baseball", "tennis", "golf", "swimming",
		"running", "cycling", "skiing", "skating", "volleyball", "football",
		"hockey", "boxing", "wrestling", "surfing", "skateboarding",
		"climbing", "bowling", "archery",
	},
}

// Prompts for the draw-then-guess chain game.
var garticWords = []string{
	"happy", "sad", "angry", "surprised", "sleepy", "hungry", "cold", "hot",
	"running", "jumping", "dancing", "singing", "reading", "writing",
	"cooking", "swimming", "flying", "driving", "sleeping", "eating",

	"dragon", "unicorn", "mermaid", "pirate", "ninja", "wizard", "princess",
	"superhero", "alien", "ghost", "vampire", "zombie", "fairy", "angel",
	"robot", "dinosaur", "monster", "witch", "knight", "astronaut",

	"birthday party", "camping", "magic trick", "treasure hunt",
	"space travel", "time machine", "invisible", "giant", "tiny",
	"backwards", "upside down", "underwater", "on fire", "frozen",
	"melting", "exploding",
}

// Memory-match card faces per difficulty.
var memoryEmojis = map[string][]string{
	"easy":   {"🌞", "🌈", "🍕", "🚀", "🐶", "⚽"},
	"medium": {"🌞", "🌈", "🍕", "🚀", "🐶", "⚽", "🎉", "🎸"},
	"hard":   {"🌞", "🌈", "🍕", "🚀", "🐶", "⚽", "🎉", "🎸", "🦄", "🍎", "🎯", "🎭"},
}

// Picker draws words with a caller-supplied random source so game rounds can
// be reproduced in tests. A single Picker serves all requests concurrently;
// *rand.Rand is not safe for concurrent use, so draws are serialized.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker builds a Picker from a random source.
func NewPicker(rng *rand.Rand) *Picker {
	return &Picker{rng: rng}
}

// RandomWord picks a word from the named drawing category, or from the
// gartic prompts when the category is unknown.
func (p *Picker) RandomWord(category string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if list, ok := drawingWords[category]; ok {
		return list[p.rng.Intn(len(list))]
	}
	return garticWords[p.rng.Intn(len(garticWords))]
}

// Shuffle returns a Fisher-Yates shuffled copy of items.
func (p *Picker) Shuffle(items []string) []string {
	shuffled := make([]string, len(items))
	copy(shuffled, items)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// Categories lists the drawing categories in no particular order.
func Categories() []string {
	out := make([]string, 0, len(drawingWords))
	for c := range drawingWords {
		out = append(out, c)
	}
	return out
}

// MemoryEmojis returns the card faces for a difficulty, defaulting to medium.
func MemoryEmojis(difficulty string) []string {
	if set, ok := memoryEmojis[difficulty]; ok {
		return set
	}
	return memoryEmojis["medium"]
}
