// Package engine implements grid layout queries: collision detection,
// grid dimensions and free-position search. All functions are pure; they
// read the items they are given and never modify them.
package engine

import "github.com/piwi3910/gridsnap/internal/model"

// IsItemColliding reports whether a and b overlap with positive area.
// An item never collides with itself: items sharing an ID are not compared,
// so a record can be tested against a collection holding its old placement.
// Touching edges do not collide.
func IsItemColliding(a, b model.LayoutItem) bool {
	if a.ID == b.ID {
		return false
	}
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// HasCollisions reports whether any other item in items collides with item.
func HasCollisions(item model.LayoutItem, items []model.LayoutItem) bool {
	for _, other := range items {
		if IsItemColliding(item, other) {
			return true
		}
	}
	return false
}

// GetCollisions returns every other item in items that collides with item,
// in collection order.
func GetCollisions(item model.LayoutItem, items []model.LayoutItem) []model.LayoutItem {
	collisions := []model.LayoutItem{}
	for _, other := range items {
		if IsItemColliding(item, other) {
			collisions = append(collisions, other)
		}
	}
	return collisions
}

// CollidingPair is two items of one collection that overlap.
type CollidingPair struct {
	A model.LayoutItem `json:"a"`
	B model.LayoutItem `json:"b"`
}

// FindAllCollisions returns every overlapping pair in items. A pair is
// listed once, ordered by the index of its first member.
func FindAllCollisions(items []model.LayoutItem) []CollidingPair {
	var pairs []CollidingPair
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			if IsItemColliding(items[i], items[j]) {
				pairs = append(pairs, CollidingPair{A: items[i], B: items[j]})
			}
		}
	}
	return pairs
}
