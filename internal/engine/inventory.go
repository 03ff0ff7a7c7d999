package engine

import (
	"strings"

	"github.com/zyedidia/generic/avl"
)

// Entry is one inventory line.
type Entry struct {
	Item  Item
	Count int
}

// Inventory keeps item stacks ordered by display name, one stack per name,
// and tracks the selected stack by position.
type Inventory struct {
	stacks   *avl.Tree[string, *Entry]
	selected int
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{
		stacks: avl.New[string, *Entry](func(a, b string) bool { return a < b }),
	}
}

// Len returns the number of stacks.
func (inv *Inventory) Len() int {
	return inv.stacks.Size()
}

// Entries returns the stacks in name order.
func (inv *Inventory) Entries() []Entry {
	out := make([]Entry, 0, inv.stacks.Size())
	inv.stacks.Each(func(_ string, e *Entry) {
		out = append(out, *e)
	})
	return out
}

// SelectedIndex returns the position of the selected stack.
func (inv *Inventory) SelectedIndex() int {
	return inv.selected
}

// Selected returns the selected stack.
func (inv *Inventory) Selected() (Entry, bool) {
	entries := inv.Entries()
	if len(entries) == 0 {
		return Entry{}, false
	}
	return entries[inv.selected], true
}

// Add merges count units of item into its stack, creating the stack at its
// sorted position if needed. The selection keeps pointing at the same stack.
func (inv *Inventory) Add(item Item, count int) {
	if count <= 0 {
		return
	}
	name := item.Name()
	if e, ok := inv.stacks.Get(name); ok {
		e.Count += count
		return
	}

	index := 0
	inv.stacks.Each(func(k string, _ *Entry) {
		if strings.Compare(k, name) < 0 {
			index++
		}
	})
	wasEmpty := inv.stacks.Size() == 0
	inv.stacks.Put(name, &Entry{Item: item, Count: count})
	if !wasEmpty && index <= inv.selected {
		inv.selected++
	}
}

// Count returns how many units of the named item are held.
func (inv *Inventory) Count(name string) int {
	if e, ok := inv.stacks.Get(name); ok {
		return e.Count
	}
	return 0
}

// SelectPrevious moves the selection one stack back, wrapping around.
func (inv *Inventory) SelectPrevious() {
	if n := inv.stacks.Size(); n > 0 {
		inv.selected = (inv.selected - 1 + n) % n
	}
}

// SelectNext moves the selection one stack forward, wrapping around.
func (inv *Inventory) SelectNext() {
	if n := inv.stacks.Size(); n > 0 {
		inv.selected = (inv.selected + 1) % n
	}
}

// Use applies the selected item. A successful use consumes one unit and
// drops the stack when it runs out.
func (inv *Inventory) Use(w *World) bool {
	cur, ok := inv.Selected()
	if !ok {
		return false
	}
	if !cur.Item.Use(w) {
		return false
	}

	name := cur.Item.Name()
	e, _ := inv.stacks.Get(name)
	e.Count--
	if e.Count == 0 {
		inv.stacks.Remove(name)
		if inv.selected > 0 {
			inv.selected--
		}
	}
	return true
}
