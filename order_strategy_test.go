package main

import (
	"math/rand/v2"
	"reflect"
	"sort"
	"testing"
)

// Test data for order strategies
func getTestFiles() []string {
	return []string{
		"test/01.png",
		"test/04.jpg",
		"test/08.png",
		"test/09.png",
		"test/2.png",
		"test/３.png",
	}
}

func getExpectedNaturalOrder() []string {
	return []string{
		"test/01.png",
		"test/2.png",
		"test/04.jpg",
		"test/08.png",
		"test/09.png",
		"test/３.png",
	}
}

func getExpectedSimpleOrder() []string {
	return []string{
		"test/01.png",
		"test/04.jpg",
		"test/08.png",
		"test/09.png",
		"test/2.png",
		"test/３.png",
	}
}

func TestNaturalOrderStrategy(t *testing.T) {
	strategy := &NaturalOrderStrategy{}

	t.Run("Name", func(t *testing.T) {
		if strategy.Name() != "Natural" {
			t.Errorf("Expected 'Natural', got '%s'", strategy.Name())
		}
	})

	t.Run("ID", func(t *testing.T) {
		if strategy.ID() != OrderNatural {
			t.Errorf("Expected %d, got %d", OrderNatural, strategy.ID())
		}
	})

	t.Run("Order", func(t *testing.T) {
		result := strategy.Order(getTestFiles())
		expected := getExpectedNaturalOrder()
		if !reflect.DeepEqual(result, expected) {
			t.Errorf("Natural order failed")
			t.Logf("Expected: %v", expected)
			t.Logf("Got:      %v", result)
		}
	})

	t.Run("EmptySlice", func(t *testing.T) {
		result := strategy.Order([]string{})
		if len(result) != 0 {
			t.Errorf("Expected empty slice, got %v", result)
		}
	})
}

func TestSimpleOrderStrategy(t *testing.T) {
	strategy := &SimpleOrderStrategy{}

	if strategy.Name() != "Simple" {
		t.Errorf("Expected 'Simple', got '%s'", strategy.Name())
	}
	if strategy.ID() != OrderSimple {
		t.Errorf("Expected %d, got %d", OrderSimple, strategy.ID())
	}

	result := strategy.Order(getTestFiles())
	expected := getExpectedSimpleOrder()
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Simple order failed")
		t.Logf("Expected: %v", expected)
		t.Logf("Got:      %v", result)
	}
}

func TestEntryOrderStrategy(t *testing.T) {
	strategy := &EntryOrderStrategy{}

	if strategy.Name() != "Entry Order" {
		t.Errorf("Expected 'Entry Order', got '%s'", strategy.Name())
	}

	result := strategy.Order(getTestFiles())
	if !reflect.DeepEqual(result, getTestFiles()) {
		t.Errorf("Entry order changed the input order: %v", result)
	}
}

func TestShuffleOrderStrategy(t *testing.T) {
	t.Run("SameSeedSameOrder", func(t *testing.T) {
		a := NewShuffleOrderStrategy(rand.NewPCG(1, 2)).Order(getTestFiles())
		b := NewShuffleOrderStrategy(rand.NewPCG(1, 2)).Order(getTestFiles())
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Expected identical shuffles for the same seed, got %v and %v", a, b)
		}
	})

	t.Run("IsPermutation", func(t *testing.T) {
		result := NewShuffleOrderStrategy(rand.NewPCG(7, 7)).Order(getTestFiles())
		sorted := append([]string(nil), result...)
		sort.Strings(sorted)
		if !reflect.DeepEqual(sorted, getExpectedSimpleOrder()) {
			t.Errorf("Shuffle lost or duplicated files: %v", result)
		}
	})
}

func TestOrderStrategyImmutableInput(t *testing.T) {
	for _, strategy := range GetAllOrderStrategies() {
		t.Run(strategy.Name(), func(t *testing.T) {
			input := getTestFiles()
			_ = strategy.Order(input)
			if !reflect.DeepEqual(input, getTestFiles()) {
				t.Error("Input slice was modified - should be immutable")
			}
		})
	}
}

func TestGetOrderStrategy(t *testing.T) {
	tests := []struct {
		orderMethod  int
		expectedID   int
		expectedName string
	}{
		{OrderShuffle, OrderShuffle, "Shuffle"},
		{OrderNatural, OrderNatural, "Natural"},
		{OrderSimple, OrderSimple, "Simple"},
		{OrderEntryOrder, OrderEntryOrder, "Entry Order"},
		{999, OrderShuffle, "Shuffle"}, // Default fallback
	}

	for _, tt := range tests {
		t.Run(tt.expectedName, func(t *testing.T) {
			strategy := GetOrderStrategy(tt.orderMethod)

			if strategy.ID() != tt.expectedID {
				t.Errorf("Expected ID %d, got %d", tt.expectedID, strategy.ID())
			}
			if strategy.Name() != tt.expectedName {
				t.Errorf("Expected name '%s', got '%s'", tt.expectedName, strategy.Name())
			}
		})
	}
}
