package parser

import (
	"sort"
	"strings"

	"github.com/heathj/htmlparse/parser/spec"
)

// escapeString implements the serialization escaping rules for text
// and attribute values. https://html.spec.whatwg.org/multipage/parsing.html#escapingString
func escapeString(s string, attrVal bool) string {
	s = strings.Replace(s, "&", "&amp;", -1)
	s = strings.Replace(s, " ", "&nbsp;", -1)
	if attrVal {
		s = strings.Replace(s, "\"", "&quot;", -1)
	} else {
		s = strings.Replace(s, "<", "&lt;", -1)
		s = strings.Replace(s, ">", "&gt;", -1)
	}
	return s
}

// SerializeHTMLFragment renders a node's children back to an HTML
// string using the fragment serialization algorithm.
// https://html.spec.whatwg.org/multipage/parsing.html#serialising-html-fragments
func SerializeHTMLFragment(node *spec.Node) string {
	switch node.NodeName {
	case "basefont", "bgsound", "frame", "keygen":
		return ""
	}

	var ret strings.Builder
	for _, child := range node.ChildNodes {
		switch child.NodeType {
		case spec.ElementNode:
			ret.WriteString("<" + child.NodeName)

			attrs := child.Attributes.List()
			keys := make([]string, 0, len(attrs))
			byName := make(map[string]string, len(attrs))
			for _, a := range attrs {
				keys = append(keys, a.Name)
				byName[a.Name] = a.Value
			}
			sort.Strings(keys)
			for _, k := range keys {
				ret.WriteString(" " + k + "=\"" + escapeString(byName[k], true) + "\"")
			}
			ret.WriteString(">")
			switch child.NodeName {
			case "area", "base", "basefont", "bgsound", "br", "col", "embed", "frame", "hr", "img", "input", "keygen", "link", "meta", "param", "source", "track", "wbr":
				continue
			}
			ret.WriteString(SerializeHTMLFragment(child) + "</" + child.NodeName + ">")
		case spec.TextNode:
			switch child.ParentNode.NodeName {
			case "style", "script", "xmp", "iframe", "noembed", "noframes", "plaintext":
				ret.WriteString(child.Text.Data)
			default:
				ret.WriteString(escapeString(child.Text.Data, false))
			}
		case spec.CommentNode:
			ret.WriteString("<!--" + child.Comment.Data + "-->")
		case spec.ProcessingInstructionNode:
			ret.WriteString("<?" + child.ProcessingInstruction.Target + " " + child.ProcessingInstruction.Data + ">")
		case spec.DocumentTypeNode:
			ret.WriteString("<!DOCTYPE " + child.DocumentType.Name + ">")
		}
	}
	return ret.String()
}

// ParseHTMLFragment runs the tree construction phase seeded with a
// context element, per
// https://html.spec.whatwg.org/multipage/parsing.html#parsing-html-fragments,
// and returns the resulting children in document order.
func ParseHTMLFragment(context *spec.Node, input string, quirksMode spec.QuirksMode, scriptingEnabled bool) []*spec.Node {
	tc := NewHTMLTreeConstructor()
	tc.Document.QuirksMode = quirksMode
	tc.scriptingEnabled = scriptingEnabled
	tc.createdBy = htmlFragmentParsingAlgorithm

	root := spec.NewElement(tc.Document, "html", spec.Htmlns, "")
	tc.Document.AppendChild(root)
	tc.Document.DocumentElement = root.Element
	tc.openElements.Push(root)

	if context.NodeName == "template" {
		tc.templateInsertionModes = append(tc.templateInsertionModes, inTemplate)
	}

	// Reset the insertion mode considering the context element as if it
	// were the bottommost entry on the stack of open elements, per the
	// substitution rule in the fragment parsing algorithm, then restore
	// the real html root before tokenisation begins.
	htmlNode := tc.openElements.Pop()
	ctxProxy := spec.NewElement(tc.Document, context.NodeName, spec.Htmlns, "")
	tc.openElements.Push(ctxProxy)
	tc.mode = tc.resetInsertionMode()
	tc.openElements.Pop()
	tc.openElements.Push(htmlNode)

	for next := context.ParentNode; next != nil; next = next.ParentNode {
		if next.NodeName == "form" {
			tc.formElementPointer = next
			break
		}
	}

	var start tokenizerState
	switch context.NodeName {
	case "title", "textarea":
		start = rcDataState
	case "style", "xmp", "iframe", "noembed", "noframes":
		start = rawTextState
	case "script":
		start = scriptDataState
	case "noscript":
		if scriptingEnabled {
			start = rawTextState
		} else {
			start = dataState
		}
	case "plaintext":
		start = plaintextState
	default:
		start = dataState
	}

	tokenizer := NewHTMLTokenizer(input)
	progress := MakeProgress(nil, &start)
	for tokenizer.Next() {
		t, err := tokenizer.Token(progress)
		if err != nil {
			break
		}
		progress = tc.ProcessToken(t)
	}

	return root.ChildNodes
}
