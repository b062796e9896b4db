package spec

import (
	"strings"
)

// NodeType enumerates the node kinds the tree builder can produce.
// ScopeMarkerNode has no DOM equivalent; it's the sentinel pushed onto
// the list of active formatting elements.
type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	TextNode
	CDATASectionNode
	ProcessingInstructionNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
	ScopeMarkerNode
)

// ScopeMarker is the single shared sentinel used to bound the active
// formatting elements list at table/object/template boundaries.
// https://html.spec.whatwg.org/#the-list-of-active-formatting-elements
var ScopeMarker = &Node{NodeType: ScopeMarkerNode, NodeName: "marker"}

// Node is a tagged union covering every node kind the tree builder
// creates. Only the fields relevant to NodeType are populated; this
// mirrors how nodes are modeled in the rest of this package rather
// than building out the full DOM Node interface (events, ranges,
// shadow trees and friends are out of scope here).
type Node struct {
	NodeType      NodeType
	NodeName      string
	OwnerDocument *Node

	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	*Element
	*Text
	*CDATASection
	*ProcessingInstruction
	*Comment
	*Document
	*DocumentType
	*DocumentFragment
}

func NewDocumentNode() *Node {
	return &Node{NodeType: DocumentNode, NodeName: "#document", Document: &Document{}}
}

func NewComment(data string, od *Node) *Node {
	return &Node{
		NodeType:      CommentNode,
		NodeName:      "#comment",
		OwnerDocument: od,
		Comment:       &Comment{CharacterData: &CharacterData{Data: data}},
	}
}

func NewTextNode(od *Node, text string) *Node {
	return &Node{
		NodeType:      TextNode,
		NodeName:      "#text",
		OwnerDocument: od,
		Text:          NewText(text),
	}
}

func NewProcessingInstruction(od *Node, target, data string) *Node {
	return &Node{
		NodeType:              ProcessingInstructionNode,
		NodeName:              target,
		OwnerDocument:         od,
		ProcessingInstruction: &ProcessingInstruction{Target: target, CharacterData: &CharacterData{Data: data}},
	}
}

func NewDocTypeNode(name, pub, sys string) *Node {
	return &Node{
		NodeType:     DocumentTypeNode,
		NodeName:     name,
		DocumentType: &DocumentType{Name: name, PublicID: pub, SystemID: sys},
	}
}

func NewDocumentFragmentNode(od *Node) *Node {
	return &Node{
		NodeType:         DocumentFragmentNode,
		NodeName:         "#document-fragment",
		OwnerDocument:    od,
		DocumentFragment: &DocumentFragment{},
	}
}

// NewElement creates an element node in namespace ns, with an empty
// ordered attribute map ready to be filled in by the caller.
func NewElement(od *Node, name string, ns Namespace, prefix string) *Node {
	n := &Node{
		NodeType:      ElementNode,
		NodeName:      name,
		OwnerDocument: od,
		Element: &Element{
			NamespaceURI: ns,
			Prefix:       prefix,
			LocalName:    name,
		},
	}
	n.Attributes = NewAttributeMap(n)
	return n
}

func (n *Node) HasChildNodes() bool { return len(n.ChildNodes) > 0 }

// AppendChild appends on as the new last child of n.
func (n *Node) AppendChild(on *Node) *Node {
	if n.LastChild != nil {
		on.PreviousSibling = n.LastChild
		n.LastChild.NextSibling = on
	} else {
		n.FirstChild = on
	}
	on.NextSibling = nil
	on.ParentNode = n
	n.LastChild = on
	n.ChildNodes = append(n.ChildNodes, on)
	return on
}

// InsertBefore inserts on immediately before child. If child is nil,
// on is appended, matching https://dom.spec.whatwg.org/#concept-node-insert.
func (n *Node) InsertBefore(on, child *Node) *Node {
	if child == nil {
		return n.AppendChild(on)
	}
	i := n.ChildNodes.Contains(child)
	if i == -1 {
		return n.AppendChild(on)
	}
	n.ChildNodes = append(n.ChildNodes[:i], append(NodeList{on}, n.ChildNodes[i:]...)...)
	on.ParentNode = n
	on.NextSibling = child
	on.PreviousSibling = child.PreviousSibling
	if child.PreviousSibling != nil {
		child.PreviousSibling.NextSibling = on
	} else {
		n.FirstChild = on
	}
	child.PreviousSibling = on
	return on
}

func (n *Node) RemoveChild(child *Node) *Node {
	i := n.ChildNodes.Contains(child)
	if i == -1 {
		return nil
	}
	n.ChildNodes.Remove(i)
	if child.PreviousSibling != nil {
		child.PreviousSibling.NextSibling = child.NextSibling
	} else {
		n.FirstChild = child.NextSibling
	}
	if child.NextSibling != nil {
		child.NextSibling.PreviousSibling = child.PreviousSibling
	} else {
		n.LastChild = child.PreviousSibling
	}
	child.ParentNode = nil
	child.PreviousSibling = nil
	child.NextSibling = nil
	return child
}

// CloneNode shallow- or deep-clones n, matching the subset of
// https://dom.spec.whatwg.org/#concept-node-clone the tree builder
// relies on (adoption agency clones formatting elements; the active
// formatting elements list clones elements when reconstructing them).
func (n *Node) CloneNode(deep bool) *Node {
	var c *Node
	switch n.NodeType {
	case ElementNode:
		c = NewElement(n.OwnerDocument, n.NodeName, n.Element.NamespaceURI, n.Element.Prefix)
		c.Attributes = n.Attributes.Clone(c)
	case TextNode:
		c = NewTextNode(n.OwnerDocument, n.Text.Data)
	case CommentNode:
		c = NewComment(n.Comment.Data, n.OwnerDocument)
	case ProcessingInstructionNode:
		c = NewProcessingInstruction(n.OwnerDocument, n.ProcessingInstruction.Target, n.ProcessingInstruction.Data)
	case DocumentTypeNode:
		c = NewDocTypeNode(n.DocumentType.Name, n.DocumentType.PublicID, n.DocumentType.SystemID)
	case DocumentFragmentNode:
		c = NewDocumentFragmentNode(n.OwnerDocument)
	default:
		c = &Node{NodeType: n.NodeType, NodeName: n.NodeName, OwnerDocument: n.OwnerDocument}
	}

	if deep {
		for _, child := range n.ChildNodes {
			c.AppendChild(child.CloneNode(true))
		}
	}
	return c
}

func serializeNodeType(node *Node) string {
	switch node.NodeType {
	case ElementNode:
		s := "<"
		if ns := node.Element.NamespaceURI; ns == Svgns || ns == Mathmlns {
			s += ns.String() + " "
		}
		s += node.NodeName
		for _, attr := range node.Attributes.List() {
			s += " " + attr.Name + "=\"" + attr.Value + "\""
		}
		return s + ">"
	case TextNode:
		return "\"" + node.Text.Data + "\""
	case CommentNode:
		return "<!-- " + node.Comment.Data + " -->"
	case DocumentTypeNode:
		return "<!DOCTYPE " + node.DocumentType.Name + ">"
	case DocumentNode:
		return "#document"
	case ProcessingInstructionNode:
		return "<?" + node.ProcessingInstruction.Target + " " + node.ProcessingInstruction.Data + ">"
	default:
		return ""
	}
}

func (node *Node) serialize(indent int) string {
	prefix := strings.Repeat("  ", indent)
	out := prefix + serializeNodeType(node) + "\n"
	for _, child := range node.ChildNodes {
		out += child.serialize(indent + 1)
	}
	return out
}

func (node *Node) String() string {
	return strings.TrimRight(node.serialize(0), "\n")
}
