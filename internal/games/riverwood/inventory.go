package riverwood

// Item is a kind of resource the player can carry.
type Item uint8

const (
	WoodPlank Item = iota
	Fish

	itemCount
)

// Items lists every item kind in storage order.
var Items = [itemCount]Item{WoodPlank, Fish}

// String returns the display name of the item.
func (i Item) String() string {
	switch i {
	case WoodPlank:
		return "wood"
	case Fish:
		return "fish"
	default:
		return "unknown"
	}
}

func (i Item) valid() bool {
	return i < itemCount
}

// Inventory holds one saturating counter per item kind.
// Counts stay within 0..255: additions stop at the top, removals at zero.
type Inventory struct {
	counts [itemCount]uint8
}

// Get returns the count of an item. Unknown kinds read as 0.
func (inv *Inventory) Get(i Item) uint8 {
	if !i.valid() {
		return 0
	}
	return inv.counts[i]
}

// Add increases an item count, saturating at 255.
func (inv *Inventory) Add(i Item, n uint8) {
	if !i.valid() {
		return
	}
	sum := uint16(inv.counts[i]) + uint16(n)
	if sum > 255 {
		sum = 255
	}
	inv.counts[i] = uint8(sum)
}

// Sub decreases an item count, saturating at 0.
func (inv *Inventory) Sub(i Item, n uint8) {
	if !i.valid() {
		return
	}
	if n >= inv.counts[i] {
		inv.counts[i] = 0
		return
	}
	inv.counts[i] -= n
}

// Digits splits a counter into three decimal digits, most significant first,
// the way the HUD draws it.
func Digits(n uint8) [3]uint8 {
	return [3]uint8{n / 100, n / 10 % 10, n % 10}
}
