package svg

// Attrs is an insertion-ordered set of string attributes.
// The zero value is ready to use.
type Attrs struct {
	keys []string
	vals map[string]string
}

// Set sets key to value. A new key is appended after existing keys; an
// existing key keeps its position.
func (a *Attrs) Set(key, value string) {
	if a.vals == nil {
		a.vals = make(map[string]string, 4)
	}
	if _, ok := a.vals[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.vals[key] = value
}

// Get returns the value for key and whether it was set.
func (a *Attrs) Get(key string) (string, bool) {
	v, ok := a.vals[key]
	return v, ok
}

// Delete removes key. Deleting a missing key is a no-op.
func (a *Attrs) Delete(key string) {
	if _, ok := a.vals[key]; !ok {
		return
	}
	delete(a.vals, key)
	for i, k := range a.keys {
		if k == key {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the attribute names in insertion order.
func (a *Attrs) Keys() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Len returns the number of attributes.
func (a *Attrs) Len() int {
	return len(a.keys)
}

func (a *Attrs) clone() Attrs {
	c := Attrs{keys: make([]string, len(a.keys))}
	copy(c.keys, a.keys)
	if a.vals != nil {
		c.vals = make(map[string]string, len(a.vals))
		for k, v := range a.vals {
			c.vals[k] = v
		}
	}
	return c
}
