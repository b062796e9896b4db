package spec

// Attr is a single resolved attribute of an Element. Unlike the wider
// DOM Attr interface, there is no standalone attribute node: attributes
// live only inside an Element's AttributeMap.
// https://dom.spec.whatwg.org/#attr
type Attr struct {
	Namespace    string
	Prefix       string
	Name         string
	Value        string
	OwnerElement *Node
}

// AttributeMap is an insertion-ordered, unique-keyed collection of
// attributes. The tokeniser hands it attributes in document order and
// it is responsible for the "first one wins" duplicate rule required
// by https://html.spec.whatwg.org/#attribute-name-state.
type AttributeMap struct {
	order             []*Attr
	index             map[string]int
	AssociatedElement *Node
}

func NewAttributeMap(oe *Node) *AttributeMap {
	return &AttributeMap{index: map[string]int{}, AssociatedElement: oe}
}

// Add appends a new attribute if name hasn't been seen yet. It reports
// whether the attribute was added; a false return means a duplicate
// was silently dropped, matching tokeniser semantics.
func (m *AttributeMap) Add(name, value string) bool {
	if _, ok := m.index[name]; ok {
		return false
	}
	a := &Attr{Name: name, Value: value, OwnerElement: m.AssociatedElement}
	m.index[name] = len(m.order)
	m.order = append(m.order, a)
	return true
}

func (m *AttributeMap) AddNS(namespace, prefix, name, value string) bool {
	if _, ok := m.index[name]; ok {
		return false
	}
	a := &Attr{Namespace: namespace, Prefix: prefix, Name: name, Value: value, OwnerElement: m.AssociatedElement}
	m.index[name] = len(m.order)
	m.order = append(m.order, a)
	return true
}

func (m *AttributeMap) GetNamedItem(name string) *Attr {
	if i, ok := m.index[name]; ok {
		return m.order[i]
	}
	return nil
}

func (m *AttributeMap) Get(name string) (string, bool) {
	if a := m.GetNamedItem(name); a != nil {
		return a.Value, true
	}
	return "", false
}

func (m *AttributeMap) Set(name, value string) {
	if a := m.GetNamedItem(name); a != nil {
		a.Value = value
		return
	}
	m.Add(name, value)
}

func (m *AttributeMap) Length() int { return len(m.order) }

// List returns the attributes in document order. Callers must not
// mutate the returned slice.
func (m *AttributeMap) List() []*Attr { return m.order }

func (m *AttributeMap) Clone(oe *Node) *AttributeMap {
	c := NewAttributeMap(oe)
	for _, a := range m.order {
		c.AddNS(a.Namespace, a.Prefix, a.Name, a.Value)
	}
	return c
}
