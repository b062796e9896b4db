package spec

// NodeList is an ordered collection of nodes. It backs the stack of
// open elements and the list of active formatting elements, as well
// as every node's ChildNodes.
type NodeList []*Node

func (h *NodeList) Contains(n *Node) int {
	for i := range *h {
		if (*h)[i] == n {
			return i
		}
	}
	return -1
}

func (h *NodeList) Remove(i int) *Node {
	if i < 0 || i >= len(*h) {
		return nil
	}
	node := (*h)[i]
	*h = append((*h)[:i], (*h)[i+1:]...)
	return node
}

// InsertAt inserts n at index i, shifting everything after it right.
func (h *NodeList) InsertAt(i int, n *Node) {
	if i < 0 || i >= len(*h) {
		*h = append(*h, n)
		return
	}
	*h = append(*h, nil)
	copy((*h)[i+1:], (*h)[i:])
	(*h)[i] = n
}

func (h *NodeList) Push(n *Node) { *h = append(*h, n) }

func (h *NodeList) Top() *Node {
	if len(*h) == 0 {
		return nil
	}
	return (*h)[len(*h)-1]
}

func (h *NodeList) Pop() *Node {
	if len(*h) == 0 {
		return nil
	}
	popped := (*h)[len(*h)-1]
	*h = (*h)[:len(*h)-1]
	return popped
}

// PopUntil pops elements off the end of the list until one whose
// NodeName matches one of the given names is popped (inclusive).
func (h *NodeList) PopUntil(first string, rest ...string) *Node {
	for {
		popped := h.Pop()
		if popped == nil {
			return nil
		}
		if popped.NodeName == first {
			return popped
		}
		for _, name := range rest {
			if popped.NodeName == name {
				return popped
			}
		}
	}
}

// elementInScopeList is the default scope barrier set, shared by the
// general, list-item and button scope variants.
// https://html.spec.whatwg.org/#has-an-element-in-the-specific-scope
var elementInScopeList = []string{
	"applet", "caption", "html", "table", "td", "th", "marquee", "object",
	"template", "mi", "mo", "mn", "ms", "mtext", "annotation-xml",
	"foreignObject", "desc", "title",
}

func withExtra(extra ...string) []string {
	out := make([]string, len(elementInScopeList)+len(extra))
	copy(out, elementInScopeList)
	copy(out[len(elementInScopeList):], extra)
	return out
}

// ContainsElementInSpecificScope walks the stack top-to-bottom looking
// for target, failing as soon as it hits a node in list (the scope
// barrier).
func (c *NodeList) ContainsElementInSpecificScope(target string, list []string) bool {
	for i := len(*c) - 1; i >= 0; i-- {
		name := (*c)[i].NodeName
		if name == target {
			return true
		}
		for _, barrier := range list {
			if name == barrier {
				return false
			}
		}
	}
	return false
}

// ContainsElementInSpecificScopeExcept is the inverted form used for
// select scope: it succeeds unless it hits a node NOT in the allowed
// set before finding target.
func (c *NodeList) ContainsElementInSpecificScopeExcept(target string, allowed []string) bool {
	for i := len(*c) - 1; i >= 0; i-- {
		name := (*c)[i].NodeName
		if name == target {
			return true
		}
		ok := false
		for _, a := range allowed {
			if name == a {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return false
}

func (c *NodeList) ContainsElementInScope(target string) bool {
	return c.ContainsElementInSpecificScope(target, elementInScopeList)
}

func (c *NodeList) ContainsElementsInScope(names ...string) bool {
	for _, n := range names {
		if c.ContainsElementInScope(n) {
			return true
		}
	}
	return false
}

func (c *NodeList) ContainsElementInListItemScope(target string) bool {
	return c.ContainsElementInSpecificScope(target, withExtra("ol", "ul"))
}

func (c *NodeList) ContainsElementInButtonScope(target string) bool {
	return c.ContainsElementInSpecificScope(target, withExtra("button"))
}

func (c *NodeList) ContainsElementInTableScope(target string) bool {
	return c.ContainsElementInSpecificScope(target, []string{"html", "table", "template"})
}

func (c *NodeList) ContainsElementInSelectScope(target string) bool {
	return c.ContainsElementInSpecificScopeExcept(target, []string{"optgroup", "option"})
}

// StackOfOpenElements is the stack driving insertion-point decisions
// and end-tag matching. https://html.spec.whatwg.org/#the-stack-of-open-elements
type StackOfOpenElements struct {
	NodeList
}

// ActiveFormattingElements is the list reconstructed before inserting
// character data or inline content, capped per element per the
// Noah's Ark clause. https://html.spec.whatwg.org/#the-list-of-active-formatting-elements
type ActiveFormattingElements struct {
	NodeList
}

// Push appends n, first dropping the earliest of three-or-more
// matching entries seen since the last marker.
// https://html.spec.whatwg.org/#push-onto-the-list-of-active-formatting-elements
func (s *ActiveFormattingElements) Push(n *Node) {
	start := 0
	for i := len(s.NodeList) - 1; i >= 0; i-- {
		if s.NodeList[i] == ScopeMarker {
			start = i + 1
			break
		}
	}

	var similar []int
	for i := start; i < len(s.NodeList); i++ {
		if compareFormattingElements(s.NodeList[i], n) {
			similar = append(similar, i)
		}
	}
	if len(similar) >= 3 {
		s.NodeList.Remove(similar[0])
	}

	s.NodeList = append(s.NodeList, n)
}

func compareFormattingElements(a, b *Node) bool {
	if a.NodeName != b.NodeName || a.Element.NamespaceURI != b.Element.NamespaceURI {
		return false
	}
	if a.Attributes.Length() != b.Attributes.Length() {
		return false
	}
	for _, attr := range a.Attributes.List() {
		other := b.Attributes.GetNamedItem(attr.Name)
		if other == nil || other.Value != attr.Value || other.Namespace != attr.Namespace {
			return false
		}
	}
	return true
}
