package controller

import "sync"

// Role marks a status child as a message or an error
type Role int

const (
	RoleMessage Role = iota
	RoleError
)

func (r Role) String() string {
	if r == RoleError {
		return "error"
	}
	return "message"
}

// Child is one status line inside a slot
type Child struct {
	Role    Role
	Text    string
	Visible bool
}

type slot struct {
	children []*Child
}

func (s *slot) child(role Role) *Child {
	for _, c := range s.children {
		if c.Role == role {
			return c
		}
	}
	return nil
}

// Registry holds the status slots of every region.
// A slot shows at most one of its message and error children.
type Registry struct {
	mu    sync.RWMutex
	slots map[string]*slot
}

func NewRegistry() *Registry {
	return &Registry{slots: map[string]*slot{}}
}

// SetMessage shows text as the slot's message, or hides the message when text is empty
func (r *Registry) SetMessage(slotID, text string) {
	r.set(slotID, RoleMessage, text)
}

// SetError shows text as the slot's error, or hides the error when text is empty
func (r *Registry) SetError(slotID, text string) {
	r.set(slotID, RoleError, text)
}

func (r *Registry) set(slotID string, role Role, text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[slotID]
	if !ok {
		s = &slot{}
		r.slots[slotID] = s
	}
	c := s.child(role)
	if c == nil {
		c = &Child{Role: role}
		s.children = append(s.children, c)
	}

	c.Text = text
	c.Visible = text != ""
	if !c.Visible {
		return
	}
	for _, other := range s.children {
		if other != c {
			other.Visible = false
		}
	}
}

// Children returns copies of the slot's children in creation order
func (r *Registry) Children(slotID string) []Child {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.slots[slotID]
	if !ok {
		return nil
	}
	out := make([]Child, 0, len(s.children))
	for _, c := range s.children {
		out = append(out, *c)
	}
	return out
}

// Visible returns the slot's visible child, if any
func (r *Registry) Visible(slotID string) (Child, bool) {
	for _, c := range r.Children(slotID) {
		if c.Visible {
			return c, true
		}
	}
	return Child{}, false
}

// Clear hides both children of a slot
func (r *Registry) Clear(slotID string) {
	r.SetMessage(slotID, "")
	r.SetError(slotID, "")
}
