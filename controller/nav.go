package controller

import "sync"

// Nav tracks which flow panel is visible and which menu entry is active
type Nav struct {
	mu      sync.RWMutex
	panels  []string
	visible map[string]bool
	active  string
}

// NewNav starts with initial visible and marked active
func NewNav(panels []string, initial string) *Nav {
	n := &Nav{
		panels:  append([]string(nil), panels...),
		visible: map[string]bool{},
	}
	if n.has(initial) {
		n.visible[initial] = true
		n.active = initial
	}
	return n
}

func (n *Nav) has(panel string) bool {
	for _, p := range n.panels {
		if p == panel {
			return true
		}
	}
	return false
}

// Click hides every panel, shows target and moves the active marker to it.
// An unknown target changes nothing.
func (n *Nav) Click(target string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.has(target) {
		return false
	}
	for _, p := range n.panels {
		n.visible[p] = false
	}
	n.visible[target] = true
	n.active = target
	return true
}

// Panels returns the panel ids in menu order
func (n *Nav) Panels() []string {
	return append([]string(nil), n.panels...)
}

// Visible returns the visible panels in menu order
func (n *Nav) Visible() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	var out []string
	for _, p := range n.panels {
		if n.visible[p] {
			out = append(out, p)
		}
	}
	return out
}

func (n *Nav) IsVisible(panel string) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.visible[panel]
}

// Active returns the marked menu entry
func (n *Nav) Active() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.active
}

// Step clicks the entry delta places from the active one, wrapping around
func (n *Nav) Step(delta int) string {
	active := n.Active()
	idx := 0
	for i, p := range n.panels {
		if p == active {
			idx = i
			break
		}
	}
	if len(n.panels) == 0 {
		return ""
	}
	next := n.panels[((idx+delta)%len(n.panels)+len(n.panels))%len(n.panels)]
	n.Click(next)
	return next
}
