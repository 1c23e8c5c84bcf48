package world

// TreeCount is the fixed number of tree slots on every map.
const TreeCount = 4

// TreeRows bounds the rows trees are placed in. Placement deliberately favours
// the upper part of the map; it is not a general bounding rule.
const TreeRows = 24

// Tree is a harvestable resource node.
// Activity > 0 means the tree can be chopped; <= 0 means it has been harvested.
type Tree struct {
	X        uint16
	Y        uint16
	Activity int8
}

// Active reports whether the tree can still be harvested.
func (t Tree) Active() bool {
	return t.Activity > 0
}

// At reports whether the tree stands on (x, y).
func (t Tree) At(x, y int) bool {
	return int(t.X) == x && int(t.Y) == y
}

// Trees is the fixed tree table. Slots are never added or removed.
type Trees [TreeCount]Tree

// emptyTrees returns a table whose slots are all inactive.
func emptyTrees() Trees {
	var t Trees
	for i := range t {
		t[i].Activity = -1
	}
	return t
}

// ActiveAt reports whether an active tree stands on (x, y).
func (t *Trees) ActiveAt(x, y int) bool {
	for _, tree := range t {
		if tree.Active() && tree.At(x, y) {
			return true
		}
	}
	return false
}

// ActiveCount returns how many trees can still be harvested.
func (t *Trees) ActiveCount() int {
	n := 0
	for _, tree := range t {
		if tree.Active() {
			n++
		}
	}
	return n
}
