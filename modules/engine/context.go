package engine

// AttributeSet is a set of attribute labels.
type AttributeSet map[string]bool

func NewAttributeSet(labels ...string) AttributeSet {
	result := make(AttributeSet, len(labels))
	for _, label := range labels {
		result[label] = true
	}
	return result
}

func (s AttributeSet) Add(label string) {
	s[label] = true
}

func (s AttributeSet) Contains(label string) bool {
	return s[label]
}

func (s AttributeSet) Union(other AttributeSet) {
	for label := range other {
		s[label] = true
	}
}

// Intersect removes every label not present in other.
func (s AttributeSet) Intersect(other AttributeSet) {
	for label := range s {
		if !other[label] {
			delete(s, label)
		}
	}
}

func (s AttributeSet) Copy() AttributeSet {
	result := make(AttributeSet, len(s))
	for label := range s {
		result[label] = true
	}
	return result
}

// Context is a formal context under construction: objects, attributes and
// the incidence relation between them, plus optional background knowledge.
// Single writer, mutated one entity contribution at a time.
type Context struct {
	Objects    map[string]bool
	Attributes map[string]bool
	Incidence  map[string]AttributeSet
	Background map[string]AttributeSet
}

func NewContext() *Context {
	return &Context{
		Objects:    make(map[string]bool),
		Attributes: make(map[string]bool),
		Incidence:  make(map[string]AttributeSet),
	}
}

// AddIncidence folds one object's attribute contribution into the context
// by set union. The fold is commutative and associative per object, so
// entity processing order does not affect the final context.
func (c *Context) AddIncidence(object string, attributes AttributeSet) {
	c.Objects[object] = true
	for label := range attributes {
		c.Attributes[label] = true
	}
	if incidence, found := c.Incidence[object]; found {
		incidence.Union(attributes)
	} else {
		c.Incidence[object] = attributes.Copy()
	}
}

// AddBackground folds background knowledge for an object. Unlike
// incidence, repeated contributions for the same object intersect: only
// facts asserted by every contribution survive.
func (c *Context) AddBackground(object string, attributes AttributeSet) {
	if c.Background == nil {
		c.Background = make(map[string]AttributeSet)
	}
	if background, found := c.Background[object]; found {
		background.Intersect(attributes)
	} else {
		c.Background[object] = attributes.Copy()
	}
}
