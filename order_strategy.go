package main

import (
	"math/rand/v2"
	"sort"

	"github.com/maruel/natural"
)

// Order method constants
const (
	OrderShuffle    = 0 // Random order, drawn once at startup
	OrderNatural    = 1 // Natural sort order (e.g., file1, file2, file10)
	OrderSimple     = 2 // Simple string sort (lexicographical)
	OrderEntryOrder = 3 // Keep enumeration order
)

// OrderStrategy defines the interface for the different slideshow orders
type OrderStrategy interface {
	// Order returns a new ordered slice without modifying the original
	Order(files []string) []string
	// Name returns the human-readable name of the strategy
	Name() string
	// ID returns the numeric identifier for config storage
	ID() int
}

func copyFiles(files []string) []string {
	result := make([]string, len(files))
	copy(result, files)
	return result
}

// ShuffleOrderStrategy shuffles the list with its own random source
type ShuffleOrderStrategy struct {
	rng *rand.Rand
}

// NewShuffleOrderStrategy creates a shuffle strategy. A nil source draws a
// random seed.
func NewShuffleOrderStrategy(src rand.Source) *ShuffleOrderStrategy {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &ShuffleOrderStrategy{rng: rand.New(src)}
}

func (s *ShuffleOrderStrategy) Order(files []string) []string {
	if len(files) == 0 {
		return []string{}
	}

	result := copyFiles(files)
	s.rng.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})
	return result
}

func (s *ShuffleOrderStrategy) Name() string {
	return "Shuffle"
}

func (s *ShuffleOrderStrategy) ID() int {
	return OrderShuffle
}

// NaturalOrderStrategy implements natural sorting using maruel/natural
type NaturalOrderStrategy struct{}

func (s *NaturalOrderStrategy) Order(files []string) []string {
	if len(files) == 0 {
		return []string{}
	}

	result := copyFiles(files)
	sort.SliceStable(result, func(i, j int) bool {
		return natural.Less(result[i], result[j])
	})
	return result
}

func (s *NaturalOrderStrategy) Name() string {
	return "Natural"
}

func (s *NaturalOrderStrategy) ID() int {
	return OrderNatural
}

// SimpleOrderStrategy implements lexicographical sorting
type SimpleOrderStrategy struct{}

func (s *SimpleOrderStrategy) Order(files []string) []string {
	if len(files) == 0 {
		return []string{}
	}

	result := copyFiles(files)
	sort.Strings(result)
	return result
}

func (s *SimpleOrderStrategy) Name() string {
	return "Simple"
}

func (s *SimpleOrderStrategy) ID() int {
	return OrderSimple
}

// EntryOrderStrategy preserves the enumeration order
type EntryOrderStrategy struct{}

func (s *EntryOrderStrategy) Order(files []string) []string {
	if len(files) == 0 {
		return []string{}
	}
	return copyFiles(files)
}

func (s *EntryOrderStrategy) Name() string {
	return "Entry Order"
}

func (s *EntryOrderStrategy) ID() int {
	return OrderEntryOrder
}

// GetOrderStrategy returns the strategy for the order method ID
func GetOrderStrategy(orderMethod int) OrderStrategy {
	switch orderMethod {
	case OrderShuffle:
		return NewShuffleOrderStrategy(nil)
	case OrderNatural:
		return &NaturalOrderStrategy{}
	case OrderSimple:
		return &SimpleOrderStrategy{}
	case OrderEntryOrder:
		return &EntryOrderStrategy{}
	default:
		return NewShuffleOrderStrategy(nil) // Default fallback
	}
}

// GetAllOrderStrategies returns all available order strategies
func GetAllOrderStrategies() []OrderStrategy {
	return []OrderStrategy{
		NewShuffleOrderStrategy(nil),
		&NaturalOrderStrategy{},
		&SimpleOrderStrategy{},
		&EntryOrderStrategy{},
	}
}
