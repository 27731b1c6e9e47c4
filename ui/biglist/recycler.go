package biglist

// KeyCounter mints element keys. Each list owns one so that keys stay unique
// for the list's lifetime without sharing state between lists. The zero value
// is ready to use.
type KeyCounter struct {
	last Key
}

// Next returns a key that has never been returned by this counter.
func (c *KeyCounter) Next() Key {
	c.last++
	return c.last
}

// Last returns the most recently minted key, or 0 if none.
func (c *KeyCounter) Last() Key {
	return c.last
}

// retained holds the previous frame's elements of one type.
type retained struct {
	order []*Element
	byID  map[Identity]*Element
}

// Recycler hands out elements for a pass, reusing the previous frame's
// elements (and their keys) where the identity matches.
//
// Get may be called any number of times; Fill must be called exactly once,
// after the last Get of the pass.
type Recycler struct {
	keys     *KeyCounter
	previous map[ElementType]*retained
	current  map[Identity]*Element
	pending  map[ElementType][]*Element
}

// NewRecycler seeds a recycler with the previous frame. The previous elements
// are updated in place when matched, so the caller must not reuse the slice
// as a frame of its own afterwards.
func NewRecycler(previous []*Element, keys *KeyCounter) *Recycler {
	if keys == nil {
		keys = &KeyCounter{}
	}
	r := &Recycler{
		keys:     keys,
		previous: make(map[ElementType]*retained),
		current:  make(map[Identity]*Element),
		pending:  make(map[ElementType][]*Element),
	}
	for _, e := range previous {
		if e == nil {
			continue
		}
		set := r.previous[e.Type]
		if set == nil {
			set = &retained{byID: make(map[Identity]*Element)}
			r.previous[e.Type] = set
		}
		set.order = append(set.order, e)
		set.byID[e.Identity()] = e
	}
	return r
}

// Get returns the element for the given coordinates. A previous element with
// the same identity is reused with its key; otherwise a new element with
// UnassignedKey is queued for Fill.
func (r *Recycler) Get(typ ElementType, section, index int, position, height float64) *Element {
	id := Identity{Type: typ, Section: section, Index: index}
	if e, ok := r.current[id]; ok {
		e.Position = position
		e.Height = height
		return e
	}
	var e *Element
	if set := r.previous[typ]; set != nil {
		if prev, ok := set.byID[id]; ok {
			delete(set.byID, id)
			e = prev
			e.Position = position
			e.Height = height
		}
	}
	if e == nil {
		e = &Element{
			Type:     typ,
			Key:      UnassignedKey,
			Position: position,
			Height:   height,
			Section:  section,
			Index:    index,
		}
		r.pending[typ] = append(r.pending[typ], e)
	}
	r.current[id] = e
	return e
}

// Release hands back an element returned by Get during this pass that did not
// make it into the frame. A reused element's key becomes free again; a new
// element is dropped from the pending queue.
func (r *Recycler) Release(e *Element) {
	id := e.Identity()
	if r.current[id] != e {
		return
	}
	delete(r.current, id)
	if e.Key == UnassignedKey {
		pending := r.pending[e.Type]
		for i, p := range pending {
			if p == e {
				r.pending[e.Type] = append(pending[:i], pending[i+1:]...)
				break
			}
		}
		return
	}
	if set := r.previous[e.Type]; set != nil {
		set.byID[id] = e
	}
}

// Fill assigns keys to pending elements. Keys of previous elements that were
// not matched this pass are handed out first, in previous-frame order; new
// keys are minted once those run out.
func (r *Recycler) Fill() {
	for _, typ := range elementTypes {
		pending := r.pending[typ]
		if len(pending) == 0 {
			continue
		}
		next := 0
		if set := r.previous[typ]; set != nil {
			for _, prev := range set.order {
				if next == len(pending) {
					break
				}
				if set.byID[prev.Identity()] != prev {
					continue
				}
				pending[next].Key = prev.Key
				next++
			}
		}
		for ; next < len(pending); next++ {
			pending[next].Key = r.keys.Next()
		}
		r.pending[typ] = nil
	}
}
