package cart

import (
	"sync"
	"time"

	"github.com/lcvaldiviag/STREAMIX-sub000/models"
)

// Manager owns the cart of a single session. Every operation is total: bad
// input is normalized, never rejected. Lines keep first-added order.
type Manager struct {
	mu    sync.Mutex
	lines []models.CartLine
}

func NewManager() *Manager {
	return &Manager{}
}

// AddItem increments the quantity of an existing line for the same item id,
// or appends a new line with quantity 1.
func (m *Manager) AddItem(item models.CatalogItem) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.lines {
		if m.lines[i].Item.ID == item.ID {
			m.lines[i].Quantity++
			return
		}
	}
	m.lines = append(m.lines, models.CartLine{
		Item:     item,
		Quantity: 1,
		AddedAt:  time.Now(),
	})
}

// UpdateQuantity sets a line's quantity to exactly quantity. A quantity of
// zero or less removes the line. Unknown ids are ignored.
func (m *Manager) UpdateQuantity(itemID string, quantity int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if quantity <= 0 {
		m.removeLocked(itemID)
		return
	}
	for i := range m.lines {
		if m.lines[i].Item.ID == itemID {
			m.lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line with the given id, if present.
func (m *Manager) RemoveItem(itemID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(itemID)
}

func (m *Manager) removeLocked(itemID string) {
	for i := range m.lines {
		if m.lines[i].Item.ID == itemID {
			m.lines = append(m.lines[:i], m.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called after checkout is confirmed.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = nil
}

// Subtotal is the sum of priceUSD * quantity over all lines, recomputed on
// every call.
func (m *Manager) Subtotal() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return subtotal(m.lines)
}

// ItemCount is the sum of quantities over all lines (badge count, not the
// number of lines).
func (m *Manager) ItemCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return itemCount(m.lines)
}

// Lines returns a snapshot of the cart in insertion order.
func (m *Manager) Lines() []models.CartLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.CartLine, len(m.lines))
	copy(out, m.lines)
	return out
}

// View returns the cart together with its derived totals.
func (m *Manager) View() models.CartView {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]models.CartLine, len(m.lines))
	copy(items, m.lines)
	return models.CartView{
		Items:     items,
		Subtotal:  subtotal(m.lines),
		ItemCount: itemCount(m.lines),
	}
}

func subtotal(lines []models.CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Item.PriceUSD * float64(line.Quantity)
	}
	return total
}

func itemCount(lines []models.CartLine) int {
	var count int
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}
