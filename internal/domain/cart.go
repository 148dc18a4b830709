package domain

// CartItem is one cart line: a product snapshot plus the chosen size.
type CartItem struct {
	Product      Product `json:"product"`
	SelectedSize string  `json:"selected_size"`
}

// NewCartItem snapshots p so later catalog changes never reach the line.
func NewCartItem(p Product, size string) CartItem {
	return CartItem{Product: p.Clone(), SelectedSize: size}
}

// Clone returns a deep copy of the line.
func (i CartItem) Clone() CartItem {
	return CartItem{Product: i.Product.Clone(), SelectedSize: i.SelectedSize}
}

// Cart is an ordered list of lines. The same product and size may appear
// several times as distinct lines.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Append adds item at the end of the cart.
func (c *Cart) Append(item CartItem) {
	c.Items = append(c.Items, item.Clone())
}

// RemoveAt removes the line at index. Out-of-range indexes are a no-op and
// report false.
func (c *Cart) RemoveAt(index int) bool {
	if index < 0 || index >= len(c.Items) {
		return false
	}
	c.Items = append(c.Items[:index:index], c.Items[index+1:]...)
	return true
}

// Total sums the price of every line.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Product.Price
	}
	return total
}

// Count returns the number of lines.
func (c *Cart) Count() int {
	return len(c.Items)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// DropFront removes the first n lines, or every line when n exceeds the
// count.
func (c *Cart) DropFront(n int) {
	if n >= len(c.Items) {
		c.Items = nil
		return
	}
	if n > 0 {
		c.Items = append([]CartItem(nil), c.Items[n:]...)
	}
}

// Lines returns a deep copy of the cart lines in order.
func (c *Cart) Lines() []CartItem {
	lines := make([]CartItem, len(c.Items))
	for i, item := range c.Items {
		lines[i] = item.Clone()
	}
	return lines
}
