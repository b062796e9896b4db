package parser

import (
	"strings"

	"github.com/heathj/htmlparse/parser/spec"
)

type createdByOrigin uint

const (
	htmlFragmentParsingAlgorithm createdByOrigin = iota
	htmlDocumentParsingAlgorithm
)

type frameset uint

const (
	framesetOK frameset = iota
	framesetNotOK
)

// HTMLTreeConstructor drives the tree construction phase: it consumes
// tokens from the tokeniser one at a time and mutates the document
// tree according to the current insertion mode.
// https://html.spec.whatwg.org/multipage/parsing.html#tree-construction
type HTMLTreeConstructor struct {
	Document *spec.Node

	mode                   insertionMode
	originalInsertionMode  insertionMode
	templateInsertionModes []insertionMode

	openElements             spec.StackOfOpenElements
	activeFormattingElements spec.ActiveFormattingElements

	headElementPointer *spec.Node
	formElementPointer *spec.Node

	fosterParenting   bool
	scriptingEnabled  bool
	frameset          frameset
	createdBy         createdByOrigin
	stopParsing       bool
	pendingTableText  strings.Builder
	tableTextHasNonWS bool

	pendingTokenizerState *tokenizerState
	pendingSelfClosingAck bool

	errorSink *ErrorSink

	mappings map[insertionMode]treeConstructionModeHandler
}

// NewHTMLTreeConstructor allocates a tree constructor rooted at a
// fresh document node, ready to receive tokens in the initial
// insertion mode.
func NewHTMLTreeConstructor() *HTMLTreeConstructor {
	c := &HTMLTreeConstructor{
		Document: spec.NewDocumentNode(),
		mode:     initial,
		frameset: framesetOK,
	}
	c.createMappings()
	return c
}

func (c *HTMLTreeConstructor) createMappings() {
	c.mappings = map[insertionMode]treeConstructionModeHandler{
		initial:            c.initialModeHandler,
		beforeHTML:         c.beforeHTMLModeHandler,
		beforeHead:         c.beforeHeadModeHandler,
		inHead:             c.inHeadModeHandler,
		inHeadNoScript:     c.inHeadNoScriptModeHandler,
		afterHead:          c.afterHeadModeHandler,
		inBody:             c.inBodyModeHandler,
		text:               c.textModeHandler,
		inTable:            c.inTableModeHandler,
		inTableText:        c.inTableTextModeHandler,
		inCaption:          c.inCaptionModeHandler,
		inColumnGroup:      c.inColumnGroupModeHandler,
		inTableBody:        c.inTableBodyModeHandler,
		inRow:              c.inRowModeHandler,
		inCell:             c.inCellModeHandler,
		inSelect:           c.inSelectModeHandler,
		inSelectInTable:    c.inSelectInTableModeHandler,
		inTemplate:         c.inTemplateModeHandler,
		afterBody:          c.afterBodyModeHandler,
		inFrameset:         c.inFramesetModeHandler,
		afterFrameset:      c.afterFramesetModeHandler,
		afterAfterBody:     c.afterAfterBodyModeHandler,
		afterAfterFrameset: c.afterAfterFramesetModeHandler,
	}
}

// ProcessToken feeds a single token through the current insertion
// mode, reprocessing it through whatever modes request a reprocess,
// and reports the progress the tokeniser needs for its next token:
// the node foreign-content rules should be evaluated against, and any
// tokenizer state switch (RAWTEXT/RCDATA/PLAINTEXT) a mode handler
// requested.
func (c *HTMLTreeConstructor) ProcessToken(t *Token) *Progress {
	c.pendingTokenizerState = nil
	c.pendingSelfClosingAck = false

	handler := c.mappings[c.mode]
	reprocess, next, err := handler(t)
	logError(c.errorSink, 0, err)
	for reprocess {
		c.mode = next
		handler = c.mappings[c.mode]
		reprocess, next, err = handler(t)
		logError(c.errorSink, 0, err)
	}
	c.mode = next

	return MakeProgressAck(c.adjustedCurrentNode(), c.pendingTokenizerState, c.pendingSelfClosingAck)
}

// acknowledgeSelfClosingFlag records that the current token's
// self-closing flag (meaningful only on void and foreign elements)
// was consulted by this insertion mode, so the tokeniser should not
// raise its unacknowledged-flag parse error for it.
// https://html.spec.whatwg.org/multipage/parsing.html#acknowledge-self-closing-flag
func (c *HTMLTreeConstructor) acknowledgeSelfClosingFlag() {
	c.pendingSelfClosingAck = true
}

// adjustedCurrentNode returns the current node in every case. The
// context element of fragment parsing is not consulted: the stack
// that ParseHTMLFragment builds holds only its html root, and the
// context element never takes the current node's place here.
// https://html.spec.whatwg.org/multipage/parsing.html#adjusted-current-node
func (c *HTMLTreeConstructor) adjustedCurrentNode() *spec.Node {
	return c.currentNode()
}

func (c *HTMLTreeConstructor) currentNode() *spec.Node {
	return c.openElements.NodeList.Top()
}

func (c *HTMLTreeConstructor) switchToTextMode(t *Token, from insertionMode, state tokenizerState) (bool, insertionMode, parseError) {
	c.insertHTMLElementForToken(t)
	c.originalInsertionMode = from
	s := state
	c.pendingTokenizerState = &s
	return false, text, noError
}

// insertionTarget returns the parent to insert into and, when foster
// parenting kicks in, the sibling the new node must land before.
// https://html.spec.whatwg.org/multipage/parsing.html#appropriate-place-for-inserting-a-node
func (c *HTMLTreeConstructor) insertionTarget() (*spec.Node, *spec.Node) {
	cur := c.currentNode()
	if !c.fosterParenting {
		return cur, nil
	}
	switch cur.NodeName {
	case "table", "tbody", "tfoot", "thead", "tr":
	default:
		return cur, nil
	}

	var lastTable *spec.Node
	for i := len(c.openElements.NodeList) - 1; i >= 0; i-- {
		if c.openElements.NodeList[i].NodeName == "table" {
			lastTable = c.openElements.NodeList[i]
			break
		}
	}
	if lastTable == nil {
		return c.openElements.NodeList[0], nil
	}
	if lastTable.ParentNode != nil {
		return lastTable.ParentNode, lastTable
	}
	if i := c.openElements.NodeList.Contains(lastTable); i > 0 {
		return c.openElements.NodeList[i-1], nil
	}
	return c.openElements.NodeList[0], nil
}

func (c *HTMLTreeConstructor) insertNode(n *spec.Node) *spec.Node {
	parent, before := c.insertionTarget()
	parent.InsertBefore(n, before)
	return n
}

// insertCharacter appends data to the adjusted insertion location,
// merging into a trailing text node when one is already there.
// https://html.spec.whatwg.org/multipage/parsing.html#insert-a-character
func (c *HTMLTreeConstructor) insertCharacter(data string) {
	parent, before := c.insertionTarget()
	var prev *spec.Node
	if before == nil {
		prev = parent.LastChild
	} else {
		prev = before.PreviousSibling
	}
	if prev != nil && prev.NodeType == spec.TextNode {
		prev.Text.Data += data
		return
	}
	parent.InsertBefore(spec.NewTextNode(c.Document, data), before)
}

// insertComment inserts a comment node at the adjusted insertion
// location, or as the last child of the Document while the stack of
// open elements is still empty (the initial and before-html modes).
// https://html.spec.whatwg.org/multipage/parsing.html#insert-a-comment
func (c *HTMLTreeConstructor) insertComment(t *Token) {
	comment := spec.NewComment(t.Data, c.Document)
	if len(c.openElements.NodeList) == 0 {
		c.Document.AppendChild(comment)
		return
	}
	c.insertNode(comment)
}

// createElementForToken creates an element from a start tag token's
// name and attributes in the given namespace.
// https://html.spec.whatwg.org/multipage/parsing.html#create-an-element-for-the-token
func (c *HTMLTreeConstructor) createElementForToken(t *Token, ns spec.Namespace) *spec.Node {
	elem := spec.NewElement(c.Document, t.TagName, ns, "")
	if t.Attributes != nil {
		for _, a := range t.Attributes.List() {
			elem.Attributes.AddNS(a.Namespace, a.Prefix, a.Name, a.Value)
		}
	}
	return elem
}

func (c *HTMLTreeConstructor) insertHTMLElementForToken(t *Token) *spec.Node {
	return c.insertForeignElementForToken(t, spec.Htmlns)
}

// insertForeignElementForToken creates and inserts an element for t in
// the given namespace and pushes it onto the stack of open elements.
// https://html.spec.whatwg.org/multipage/parsing.html#insert-a-foreign-element
func (c *HTMLTreeConstructor) insertForeignElementForToken(t *Token, ns spec.Namespace) *spec.Node {
	elem := c.createElementForToken(t, ns)
	c.insertNode(elem)
	c.openElements.Push(elem)
	return elem
}

func isSpecial(n *spec.Node) bool {
	switch n.NodeName {
	case "address", "applet", "area", "article", "aside", "base", "basefont",
		"bgsound", "blockquote", "body", "br", "button", "caption", "center",
		"col", "colgroup", "dd", "details", "dir", "div", "dl", "dt", "embed",
		"fieldset", "figcaption", "figure", "footer", "form", "frame",
		"frameset", "h1", "h2", "h3", "h4", "h5", "h6", "head", "header",
		"hgroup", "hr", "html", "iframe", "img", "input", "keygen", "li",
		"link", "listing", "main", "marquee", "menu", "meta", "nav",
		"noembed", "noframes", "object", "ol", "p", "param", "plaintext",
		"pre", "script", "section", "select", "source", "style", "summary",
		"table", "tbody", "td", "template", "textarea", "tfoot", "th",
		"thead", "title", "tr", "track", "ul", "wbr", "mi", "mo", "mn", "ms",
		"mtext", "annotation-xml", "foreignObject", "desc":
		return true
	}
	return false
}

var impliableEndTags = map[string]bool{
	"dd": true, "dt": true, "li": true, "optgroup": true, "option": true,
	"p": true, "rb": true, "rp": true, "rt": true, "rtc": true,
}

// generateImpliedEndTags pops elements off the stack of open elements
// whose close tag may legally be implied, per
// https://html.spec.whatwg.org/multipage/parsing.html#generate-implied-end-tags
func (c *HTMLTreeConstructor) generateImpliedEndTags(except ...string) {
	skip := map[string]bool{}
	for _, e := range except {
		skip[e] = true
	}
	for impliableEndTags[c.currentNode().NodeName] && !skip[c.currentNode().NodeName] {
		c.openElements.Pop()
	}
}

func (c *HTMLTreeConstructor) closePElement() {
	c.generateImpliedEndTags("p")
	if c.currentNode().NodeName != "p" {
		logError(c.errorSink, 0, generalParseError)
	}
	c.openElements.PopUntil("p")
}

func (c *HTMLTreeConstructor) clearStackBackTo(names ...string) {
	for {
		cur := c.currentNode()
		for _, n := range names {
			if cur.NodeName == n {
				return
			}
		}
		c.openElements.Pop()
	}
}

func (c *HTMLTreeConstructor) clearActiveFormattingElementsToLastMarker() {
	for len(c.activeFormattingElements.NodeList) > 0 {
		n := c.activeFormattingElements.Pop()
		if n.NodeType == spec.ScopeMarkerNode {
			return
		}
	}
}

// anyOtherEndTag implements the inBody "any other end tag" fallback:
// walk the stack looking for a matching element, bailing with a parse
// error if a special element is found first.
// https://html.spec.whatwg.org/multipage/parsing.html#the-in-body-insertion-mode (any other end tag)
func (c *HTMLTreeConstructor) anyOtherEndTag(name string) parseError {
	for i := len(c.openElements.NodeList) - 1; i >= 0; i-- {
		node := c.openElements.NodeList[i]
		if node.NodeName == name {
			c.generateImpliedEndTags(name)
			c.openElements.PopUntil(name)
			return noError
		}
		if isSpecial(node) {
			return generalParseError
		}
	}
	return generalParseError
}

// reconstructActiveFormattingElements reinserts any formatting
// elements that fell out of the stack of open elements (for example
// because a table closed them) before further content is inserted.
// https://html.spec.whatwg.org/multipage/parsing.html#reconstruct-the-active-formatting-elements
func (c *HTMLTreeConstructor) reconstructActiveFormattingElements() {
	if len(c.activeFormattingElements.NodeList) == 0 {
		return
	}

	last := len(c.activeFormattingElements.NodeList) - 1
	lafe := c.activeFormattingElements.NodeList[last]
	if lafe.NodeType == spec.ScopeMarkerNode || c.openElements.NodeList.Contains(lafe) != -1 {
		return
	}

	i := last
	for i > 0 {
		i--
		entry := c.activeFormattingElements.NodeList[i]
		if entry.NodeType == spec.ScopeMarkerNode || c.openElements.NodeList.Contains(entry) != -1 {
			i++
			break
		}
	}

	for ; i <= last; i++ {
		clone := c.activeFormattingElements.NodeList[i].CloneNode(false)
		c.insertNode(clone)
		c.openElements.Push(clone)
		c.activeFormattingElements.NodeList[i] = clone
	}
}

// adoptionAgencyAlgorithm repairs interleaved formatting/block
// elements, e.g. "<b>1<div>2</b>3</div>" — a formatting element that
// spans a block boundary gets cloned on both sides of it.
// https://html.spec.whatwg.org/multipage/parsing.html#adoption-agency-algorithm
func (c *HTMLTreeConstructor) adoptionAgencyAlgorithm(t *Token) (bool, parseError) {
	cur := c.currentNode()
	if cur.NodeName == t.TagName && c.activeFormattingElements.NodeList.Contains(cur) == -1 {
		c.openElements.Pop()
		return false, noError
	}

	var err parseError
	for x := 0; x < 8; x++ {
		var formattingElement *spec.Node
		y := -1
		for i := len(c.activeFormattingElements.NodeList) - 1; i >= 0; i-- {
			entry := c.activeFormattingElements.NodeList[i]
			if entry.NodeType == spec.ScopeMarkerNode {
				break
			}
			if entry.NodeName == t.TagName {
				formattingElement = entry
				y = i
				break
			}
		}

		if formattingElement == nil {
			return true, err
		}

		si := c.openElements.NodeList.Contains(formattingElement)
		if si == -1 {
			c.activeFormattingElements.Remove(y)
			return false, noError
		}

		if !c.openElements.ContainsElementInScope(formattingElement.NodeName) {
			return false, generalParseError
		}

		if formattingElement != cur {
			err = generalParseError
		}

		var furthestBlock *spec.Node
		fbIndex := -1
		for z := si + 1; z < len(c.openElements.NodeList); z++ {
			if isSpecial(c.openElements.NodeList[z]) {
				furthestBlock = c.openElements.NodeList[z]
				fbIndex = z
				break
			}
		}

		if furthestBlock == nil {
			for c.currentNode() != formattingElement {
				c.openElements.Pop()
			}
			c.openElements.Pop()
			c.activeFormattingElements.Remove(y)
			return false, noError
		}

		commonAncestor := c.openElements.NodeList[si-1]
		bookmark := y

		node := furthestBlock
		lastNode := furthestBlock
		nodeIndex := fbIndex
		for innerLoop := 0; ; innerLoop++ {
			nodeIndex--
			node = c.openElements.NodeList[nodeIndex]
			if node == formattingElement {
				break
			}

			nodeInAFE := c.activeFormattingElements.NodeList.Contains(node)
			if innerLoop >= 3 && nodeInAFE != -1 {
				c.activeFormattingElements.Remove(nodeInAFE)
				if nodeInAFE < bookmark {
					bookmark--
				}
				nodeInAFE = -1
			}
			if nodeInAFE == -1 {
				c.openElements.Remove(nodeIndex)
				nodeIndex++
				continue
			}

			clone := node.CloneNode(false)
			c.activeFormattingElements.NodeList[nodeInAFE] = clone
			c.openElements.NodeList[nodeIndex] = clone
			node = clone

			if lastNode == furthestBlock {
				bookmark = nodeInAFE + 1
			}
			if lastNode.ParentNode != nil {
				lastNode.ParentNode.RemoveChild(lastNode)
			}
			node.AppendChild(lastNode)
			lastNode = node
		}

		if lastNode.ParentNode != nil {
			lastNode.ParentNode.RemoveChild(lastNode)
		}
		switch commonAncestor.NodeName {
		case "table", "tbody", "tfoot", "thead", "tr":
			c.fosterParenting = true
			c.insertNode(lastNode)
			c.fosterParenting = false
		default:
			commonAncestor.AppendChild(lastNode)
		}

		clone := formattingElement.CloneNode(false)
		for _, child := range append(spec.NodeList{}, furthestBlock.ChildNodes...) {
			furthestBlock.RemoveChild(child)
			clone.AppendChild(child)
		}
		furthestBlock.AppendChild(clone)

		if f := c.activeFormattingElements.NodeList.Contains(formattingElement); f != -1 {
			c.activeFormattingElements.Remove(f)
			if bookmark > len(c.activeFormattingElements.NodeList) {
				bookmark = len(c.activeFormattingElements.NodeList)
			}
			c.activeFormattingElements.InsertAt(bookmark, clone)
		}

		if f := c.openElements.NodeList.Contains(formattingElement); f != -1 {
			c.openElements.Remove(f)
			if b := c.openElements.NodeList.Contains(furthestBlock); b != -1 {
				c.openElements.InsertAt(b+1, clone)
			}
		}
	}

	return false, err
}

const w30DTDW3HTMLStrict3En string = "-//W3O//DTD W3 HTML Strict 3.0//EN//"
const w3cDTDHTML4TransitionalEN string = "-/W3C/DTD HTML 4.0 Transitional/EN"
const htmlString string = "HTML"
const ibmxhtml string = "http://www.ibm.com/data/dtd/v11/ibmxhtml1-transitional.dtd"

const silmarilDTDHTMLPro string = "+//Silmaril//dtd html Pro v0r11 19970101//"
const dTDHTML3asWedit string = "-//AS//DTD HTML 3.0 asWedit + extensions//"
const advaSoftDTDHTML3 string = "-//AdvaSoft Ltd//DTD HTML 3.0 asWedit + extensions//"
const iETFDTDHTML2Level1 string = "-//IETF//DTD HTML 2.0 Level 1//"
const iETFDTDHTML2Level2 string = "-//IETF//DTD HTML 2.0 Level 2//"
const iETFDTDHTML2StrictLevel1 string = "-//IETF//DTD HTML 2.0 Strict Level 1//"
const iETFDTDHTML2StrictLevel2 string = "-//IETF//DTD HTML 2.0 Strict Level 2//"
const iETFDTDHTML2Strict string = "-//IETF//DTD HTML 2.0 Strict//"
const iETFDTDHTML2 string = "-//IETF//DTD HTML 2.0//"
const iIETFDTDHTML2E string = "-//IETF//DTD HTML 2.1E//"
const iETFDTDHTML30 string = "-//IETF//DTD HTML 3.0//"
const iETFDTDHTML32Final string = "-//IETF//DTD HTML 3.2 Final//"
const iETFDTDHTML32 string = "-//IETF//DTD HTML 3.2//"
const iETFDTDHTML3 string = "-//IETF//DTD HTML 3//"
const iETFDTDHTMLLevel0 string = "-//IETF//DTD HTML Level 0//"
const iETFDTDHTMLLevel1 string = "-//IETF//DTD HTML Level 1//"
const iETFDTDHTMLLevel2 string = "-//IETF//DTD HTML Level 2//"
const iETFDTDHTMLLevel3 string = "-//IETF//DTD HTML Level 3//"
const iETFDTDHTMLStrictLevel0 string = "-//IETF//DTD HTML Strict Level 0//"
const iETFDTDHTMLStrictLevel1 string = "-//IETF//DTD HTML Strict Level 1//"
const iETFDTDHTMLStrictLevel2 string = "-//IETF//DTD HTML Strict Level 2//"
const iETFDTDHTMLStrictLevel3 string = "-//IETF//DTD HTML Strict Level 3//"
const iETFDTDHTMLStrict string = "-//IETF//DTD HTML Strict//"
const iETFDTDHTML string = "-//IETF//DTD HTML//"
const metriusDTDMetriusPresentational string = "-//Metrius//DTD Metrius Presentational//"
const microsoftDTDInternetExplorer2HTMLStrict string = "-//Microsoft//DTD Internet Explorer 2.0 HTML Strict//"
const microsoftDTDInternetExplorer2HTML string = "-//Microsoft//DTD Internet Explorer 2.0 HTML//"
const microsoftDTDInternetExplorer2Tables string = "-//Microsoft//DTD Internet Explorer 2.0 Tables//"
const microsoftDTDInternetExplorer3HTMLStrict string = "-//Microsoft//DTD Internet Explorer 3.0 HTML Strict//"
const microsoftDTDInternetExplorer3HTML string = "-//Microsoft//DTD Internet Explorer 3.0 HTML//"
const microsoftDTDInternetExplorer3Tables string = "-//Microsoft//DTD Internet Explorer 3.0 Tables//"
const netscapeCommCorpDTDHTML string = "-//Netscape Comm. Corp.//DTD HTML//"
const netscapeCommCorpDTDStrictHTML string = "-//Netscape Comm. Corp.//DTD Strict HTML//"
const oReillyAssociatesDTDHTML2 string = "-//O'Reilly and Associates//DTD HTML 2.0//"
const oReillyAssociatesDTDHTMLExtended1 string = "-//O'Reilly and Associates//DTD HTML Extended 1.0//"
const oReillyAssociatesDTDHTMLExtendedRelaxed1 string = "-//O'Reilly and Associates//DTD HTML Extended Relaxed 1.0//"
const sQDTDHTML2HoTMetaLExtensions string = "-//SQ//DTD HTML 2.0 HoTMetaL + extensions//"
const softQuadSoftwareDTDHoTMetaLPRO string = "-//SoftQuad Software//DTD HoTMetaL PRO 6.0::19990601::extensions to HTML 4.0//"
const softQuadDTDHoTMetaLPRO string = "-//SoftQuad//DTD HoTMetaL PRO 4.0::19971010::extensions to HTML 4.0//"
const spyglassDTDHTML2Extended string = "-//Spyglass//DTD HTML 2.0 Extended//"
const sunMicrosystemsCorpDTDHotJavaHTML string = "-//Sun Microsystems Corp.//DTD HotJava HTML//"
const sunMicrosystemsCorpDTDHotJavaStrictHTML string = "-//Sun Microsystems Corp.//DTD HotJava Strict HTML//"
const w3cDTDHTML31 string = "-//W3C//DTD HTML 3 1995-03-24//"
const w3cDTDHTML32Draft string = "-//W3C//DTD HTML 3.2 Draft//"
const w3cDTDHTML32Final string = "-//W3C//DTD HTML 3.2 Final//"
const w3cDTDHTML32 string = "-//W3C//DTD HTML 3.2//"
const w3cDTDHTML32SDraft string = "-//W3C//DTD HTML 3.2S Draft//"
const w3cDTDHTML4Frameset string = "-//W3C//DTD HTML 4.0 Frameset//"
const w3cDTDHTML4Transitional string = "-//W3C//DTD HTML 4.0 Transitional//"
const w3cDTDHTML401Frameset string = "-//W3C//DTD HTML 4.01 Frameset//"
const w3cDTDHTML401Transitional string = "-//W3C//DTD HTML 4.01 Transitional//"
const w3cDTDHTMLExperimental1996 string = "-//W3C//DTD HTML Experimental 19960712//"
const w3cDTDHTMLExperimental9704 string = "-//W3C//DTD HTML Experimental 970421//"
const w3cDTDXHTML1Frameset string = "-//W3C//DTD XHTML 1.0 Frameset//"
const w3cDTDXHTML1Transitional string = "-//W3C//DTD XHTML 1.0 Transitional//"
const w3cDTDW3HTML string = "-//W3C//DTD W3 HTML//"
const w3cDTDW3HTML3 string = "-//W3O//DTD W3 HTML 3.0//"
const webTechsDTDMozillaHTML2 string = "-//WebTechs//DTD Mozilla HTML 2.0//"
const webTechsDTDMozillaHTML string = "-//WebTechs//DTD Mozilla HTML//"

var knownPublicIdentifiers = []string{
	silmarilDTDHTMLPro, dTDHTML3asWedit, advaSoftDTDHTML3, iETFDTDHTML2Level1,
	iETFDTDHTML2Level2, iETFDTDHTML2StrictLevel1, iETFDTDHTML2StrictLevel2,
	iETFDTDHTML2Strict, iETFDTDHTML2, iIETFDTDHTML2E, iETFDTDHTML30,
	iETFDTDHTML32Final, iETFDTDHTML32, iETFDTDHTML3, iETFDTDHTMLLevel0,
	iETFDTDHTMLLevel1, iETFDTDHTMLLevel2, iETFDTDHTMLLevel3,
	iETFDTDHTMLStrictLevel0, iETFDTDHTMLStrictLevel1, iETFDTDHTMLStrictLevel2,
	iETFDTDHTMLStrictLevel3, iETFDTDHTMLStrict, iETFDTDHTML,
	metriusDTDMetriusPresentational, microsoftDTDInternetExplorer2HTMLStrict,
	microsoftDTDInternetExplorer2HTML, microsoftDTDInternetExplorer2Tables,
	microsoftDTDInternetExplorer3HTMLStrict, microsoftDTDInternetExplorer3HTML,
	microsoftDTDInternetExplorer3Tables, netscapeCommCorpDTDHTML,
	netscapeCommCorpDTDStrictHTML, oReillyAssociatesDTDHTML2,
	oReillyAssociatesDTDHTMLExtended1, oReillyAssociatesDTDHTMLExtendedRelaxed1,
	sQDTDHTML2HoTMetaLExtensions, softQuadSoftwareDTDHoTMetaLPRO,
	softQuadDTDHoTMetaLPRO, spyglassDTDHTML2Extended,
	sunMicrosystemsCorpDTDHotJavaHTML, sunMicrosystemsCorpDTDHotJavaStrictHTML,
	w3cDTDHTML31, w3cDTDHTML32Draft, w3cDTDHTML32Final, w3cDTDHTML32,
	w3cDTDHTML32SDraft, w3cDTDHTML4Frameset, w3cDTDHTML4Transitional,
	w3cDTDHTMLExperimental1996, w3cDTDHTMLExperimental9704, w3cDTDW3HTML,
	w3cDTDW3HTML3, webTechsDTDMozillaHTML2, webTechsDTDMozillaHTML,
}

func (c *HTMLTreeConstructor) isIframeSrcDoc() bool {
	return c.createdBy == htmlFragmentParsingAlgorithm
}

// isForceQuirks implements the DOCTYPE quirks-mode decision table.
// https://html.spec.whatwg.org/multipage/parsing.html#the-initial-insertion-mode
func (c *HTMLTreeConstructor) isForceQuirks(t *Token) bool {
	if c.isIframeSrcDoc() {
		return false
	}
	if t.ForceQuirks {
		return true
	}
	if t.TagName != "html" {
		return true
	}
	switch t.PublicIdentifier {
	case w30DTDW3HTMLStrict3En, w3cDTDHTML4TransitionalEN, htmlString:
		return true
	}
	if t.SystemIdentifier == ibmxhtml {
		return true
	}
	for _, v := range knownPublicIdentifiers {
		if strings.HasPrefix(t.PublicIdentifier, v) {
			return true
		}
	}
	if t.SystemIdentifier == missing &&
		(strings.HasPrefix(t.PublicIdentifier, w3cDTDHTML401Frameset) ||
			strings.HasPrefix(t.PublicIdentifier, w3cDTDHTML401Transitional)) {
		return true
	}
	return false
}

func (c *HTMLTreeConstructor) isLimitedQuirks(t *Token) bool {
	if strings.HasPrefix(t.PublicIdentifier, w3cDTDXHTML1Frameset) {
		return true
	}
	if strings.HasPrefix(t.PublicIdentifier, w3cDTDXHTML1Transitional) {
		return true
	}
	if t.SystemIdentifier != missing {
		if strings.HasPrefix(t.PublicIdentifier, w3cDTDHTML401Frameset) {
			return true
		}
		if strings.HasPrefix(t.PublicIdentifier, w3cDTDHTML401Transitional) {
			return true
		}
	}
	return false
}

func isWhitespace(s string) bool {
	switch s {
	case "\t", "\n", "\f", "\r", " ":
		return true
	}
	return false
}

// https://html.spec.whatwg.org/multipage/parsing.html#the-initial-insertion-mode
func (c *HTMLTreeConstructor) initialModeHandler(t *Token) (bool, insertionMode, parseError) {
	switch t.TokenType {
	case characterToken:
		if isWhitespace(t.Data) {
			return false, initial, noError
		}
	case commentToken:
		c.insertComment(t)
		return false, initial, noError
	case docTypeToken:
		err := noError
		if t.TagName != "html" || t.PublicIdentifier != missing ||
			(t.SystemIdentifier != missing && t.SystemIdentifier != "about:legacy-compat") {
			err = unexpectedDocTypeError
		}

		doctype := spec.NewDocTypeNode(t.TagName, t.PublicIdentifier, t.SystemIdentifier)
		c.Document.AppendChild(doctype)
		c.Document.Doctype = doctype

		switch {
		case c.isForceQuirks(t):
			c.Document.QuirksMode = spec.Quirks
		case c.isLimitedQuirks(t):
			c.Document.QuirksMode = spec.LimitedQuirks
		default:
			c.Document.QuirksMode = spec.NoQuirks
		}

		return false, beforeHTML, err
	}
	return true, beforeHTML, noError
}

// https://html.spec.whatwg.org/multipage/parsing.html#the-before-html-insertion-mode
func (c *HTMLTreeConstructor) beforeHTMLModeHandler(t *Token) (bool, insertionMode, parseError) {
	switch t.TokenType {
	case docTypeToken:
		return false, beforeHTML, generalParseError
	case commentToken:
		c.insertComment(t)
		return false, beforeHTML, noError
	case characterToken:
		if isWhitespace(t.Data) {
			return false, beforeHTML, noError
		}
	case startTagToken:
		if t.TagName == "html" {
			elem := c.createElementForToken(t, spec.Htmlns)
			c.Document.AppendChild(elem)
			c.Document.DocumentElement = elem.Element
			c.openElements.Push(elem)
			return false, beforeHead, noError
		}
	case endTagToken:
		switch t.TagName {
		case "head", "body", "html", "br":
		default:
			return false, beforeHTML, generalParseError
		}
	}

	elem := spec.NewElement(c.Document, "html", spec.Htmlns, "")
	c.Document.AppendChild(elem)
	c.Document.DocumentElement = elem.Element
	c.openElements.Push(elem)
	return true, beforeHead, noError
}

func (c *HTMLTreeConstructor) defaultBeforeHeadModeHandler(t *Token) (bool, insertionMode, parseError) {
	head := &Token{TokenType: startTagToken, TagName: "head", Attributes: spec.NewAttributeMap(nil)}
	c.headElementPointer = c.insertHTMLElementForToken(head)
	return true, inHead, noError
}

// https://html.spec.whatwg.org/multipage/parsing.html#the-before-head-insertion-mode
func (c *HTMLTreeConstructor) beforeHeadModeHandler(t *Token) (bool, insertionMode, parseError) {
	switch t.TokenType {
	case characterToken:
		if isWhitespace(t.Data) {
			return false, beforeHead, noError
		}
	case commentToken:
		c.insertComment(t)
		return false, beforeHead, noError
	case docTypeToken:
		return false, beforeHead, generalParseError
	case startTagToken:
		if t.TagName == "html" {
			return c.useRulesFor(t, beforeHead, inBody)
		}
		if t.TagName == "head" {
			c.headElementPointer = c.insertHTMLElementForToken(t)
			return false, inHead, noError
		}
	case endTagToken:
		switch t.TagName {
		case "head", "body", "html", "br":
			return c.defaultBeforeHeadModeHandler(t)
		}
		return false, beforeHead, generalParseError
	}
	return c.defaultBeforeHeadModeHandler(t)
}

func (c *HTMLTreeConstructor) defaultInHeadModeHandler(t *Token) (bool, insertionMode, parseError) {
	c.openElements.Pop()
	return true, afterHead, noError
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-inhead
func (c *HTMLTreeConstructor) inHeadModeHandler(t *Token) (bool, insertionMode, parseError) {
	switch t.TokenType {
	case characterToken:
		if isWhitespace(t.Data) {
			c.insertCharacter(t.Data)
			return false, inHead, noError
		}
	case commentToken:
		c.insertComment(t)
		return false, inHead, noError
	case docTypeToken:
		return false, inHead, generalParseError
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inHead, inBody)
		case "base", "basefont", "bgsound", "link", "meta":
			c.insertHTMLElementForToken(t)
			c.openElements.Pop()
			c.acknowledgeSelfClosingFlag()
			return false, inHead, noError
		case "title":
			return c.switchToTextMode(t, inHead, rcDataState)
		case "noscript":
			if c.scriptingEnabled {
				return c.switchToTextMode(t, inHead, rawTextState)
			}
			c.insertHTMLElementForToken(t)
			return false, inHeadNoScript, noError
		case "noframes", "style":
			return c.switchToTextMode(t, inHead, rawTextState)
		case "script":
			return c.switchToTextMode(t, inHead, scriptDataState)
		case "template":
			c.insertHTMLElementForToken(t)
			c.activeFormattingElements.Push(spec.ScopeMarker)
			c.frameset = framesetNotOK
			c.templateInsertionModes = append(c.templateInsertionModes, inTemplate)
			return false, inTemplate, noError
		case "head":
			return false, inHead, generalParseError
		}
	case endTagToken:
		switch t.TagName {
		case "head":
			c.openElements.Pop()
			return false, afterHead, noError
		case "body", "html", "br":
			return c.defaultInHeadModeHandler(t)
		case "template":
			c.clearActiveFormattingElementsToLastMarker()
			if len(c.templateInsertionModes) > 0 {
				c.templateInsertionModes = c.templateInsertionModes[:len(c.templateInsertionModes)-1]
			}
			return false, inHead, noError
		default:
			return false, inHead, generalParseError
		}
	}
	return c.defaultInHeadModeHandler(t)
}

func (c *HTMLTreeConstructor) defaultInHeadNoScriptModeHandler(t *Token) (bool, insertionMode, parseError) {
	c.openElements.Pop()
	return true, inHead, generalParseError
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-inheadnoscript
func (c *HTMLTreeConstructor) inHeadNoScriptModeHandler(t *Token) (bool, insertionMode, parseError) {
	switch t.TokenType {
	case characterToken:
		if isWhitespace(t.Data) {
			return c.useRulesFor(t, inHeadNoScript, inHead)
		}
	case commentToken:
		return c.useRulesFor(t, inHeadNoScript, inHead)
	case docTypeToken:
		return false, inHeadNoScript, generalParseError
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inHeadNoScript, inBody)
		case "basefont", "bgsound", "link", "meta", "noframes", "style":
			return c.useRulesFor(t, inHeadNoScript, inHead)
		case "head", "noscript":
			return false, inHeadNoScript, generalParseError
		}
	case endTagToken:
		switch t.TagName {
		case "noscript":
			c.openElements.Pop()
			return false, inHead, noError
		case "br":
			return c.defaultInHeadNoScriptModeHandler(t)
		default:
			return false, inHeadNoScript, generalParseError
		}
	}
	return c.defaultInHeadNoScriptModeHandler(t)
}

func (c *HTMLTreeConstructor) defaultAfterHeadModeHandler(t *Token) (bool, insertionMode, parseError) {
	body := &Token{TokenType: startTagToken, TagName: "body", Attributes: spec.NewAttributeMap(nil)}
	c.insertHTMLElementForToken(body)
	return true, inBody, noError
}

// https://html.spec.whatwg.org/multipage/parsing.html#the-after-head-insertion-mode
func (c *HTMLTreeConstructor) afterHeadModeHandler(t *Token) (bool, insertionMode, parseError) {
	switch t.TokenType {
	case characterToken:
		if isWhitespace(t.Data) {
			c.insertCharacter(t.Data)
			return false, afterHead, noError
		}
	case commentToken:
		c.insertComment(t)
		return false, afterHead, noError
	case docTypeToken:
		return false, afterHead, generalParseError
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, afterHead, inBody)
		case "body":
			c.insertHTMLElementForToken(t)
			c.frameset = framesetNotOK
			return false, inBody, noError
		case "frameset":
			c.insertHTMLElementForToken(t)
			return false, inFrameset, noError
		case "base", "basefont", "bgsound", "link", "meta", "noframes", "script", "style", "template", "title":
			if c.headElementPointer != nil {
				c.openElements.Push(c.headElementPointer)
			}
			reprocess, nextmode, err := c.inHeadModeHandler(t)
			if c.headElementPointer != nil {
				if i := c.openElements.NodeList.Contains(c.headElementPointer); i != -1 {
					c.openElements.Remove(i)
				}
			}
			return reprocess, nextmode, err
		case "head":
			return false, afterHead, generalParseError
		}
	case endTagToken:
		switch t.TagName {
		case "template":
			return c.useRulesFor(t, afterHead, inHead)
		case "body", "html", "br":
			return c.defaultAfterHeadModeHandler(t)
		default:
			return false, afterHead, generalParseError
		}
	}
	return c.defaultAfterHeadModeHandler(t)
}

func (c *HTMLTreeConstructor) defaultInBodyModeHandler(t *Token) (bool, insertionMode, parseError) {
	c.reconstructActiveFormattingElements()
	c.insertHTMLElementForToken(t)
	return false, inBody, noError
}

var headingNames = map[string]bool{"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-inbody
func (c *HTMLTreeConstructor) inBodyModeHandler(t *Token) (bool, insertionMode, parseError) {
	switch t.TokenType {
	case characterToken:
		if t.Data == "\x00" {
			return false, inBody, generalParseError
		}
		c.reconstructActiveFormattingElements()
		c.insertCharacter(t.Data)
		if !isWhitespace(t.Data) {
			c.frameset = framesetNotOK
		}
		return false, inBody, noError
	case commentToken:
		c.insertComment(t)
		return false, inBody, noError
	case docTypeToken:
		return false, inBody, generalParseError
	case startTagToken:
		return c.inBodyStartTag(t)
	case endTagToken:
		return c.inBodyEndTag(t)
	case endOfFileToken:
		if len(c.templateInsertionModes) > 0 {
			return c.useRulesFor(t, inBody, inTemplate)
		}
		c.stopParsing = true
		return false, inBody, noError
	}
	return false, inBody, noError
}

func (c *HTMLTreeConstructor) inBodyStartTag(t *Token) (bool, insertionMode, parseError) {
	switch t.TagName {
	case "html":
		return false, inBody, generalParseError
	case "base", "basefont", "bgsound", "link", "meta", "noframes", "script", "style", "template", "title":
		return c.useRulesFor(t, inBody, inHead)
	case "body", "frameset":
		return false, inBody, generalParseError
	case "address", "article", "aside", "blockquote", "center", "details",
		"dialog", "dir", "div", "dl", "fieldset", "figcaption", "figure",
		"footer", "header", "hgroup", "main", "menu", "nav", "ol", "p",
		"section", "summary", "ul":
		if c.openElements.ContainsElementInButtonScope("p") {
			c.closePElement()
		}
		c.insertHTMLElementForToken(t)
		return false, inBody, noError
	case "h1", "h2", "h3", "h4", "h5", "h6":
		if c.openElements.ContainsElementInButtonScope("p") {
			c.closePElement()
		}
		if headingNames[c.currentNode().NodeName] {
			c.openElements.Pop()
		}
		c.insertHTMLElementForToken(t)
		return false, inBody, noError
	case "pre", "listing":
		if c.openElements.ContainsElementInButtonScope("p") {
			c.closePElement()
		}
		c.insertHTMLElementForToken(t)
		c.frameset = framesetNotOK
		return false, inBody, noError
	case "form":
		if c.formElementPointer != nil && c.templateMarker() == nil {
			return false, inBody, generalParseError
		}
		if c.openElements.ContainsElementInButtonScope("p") {
			c.closePElement()
		}
		elem := c.insertHTMLElementForToken(t)
		if c.templateMarker() == nil {
			c.formElementPointer = elem
		}
		return false, inBody, noError
	case "li":
		c.closeListItemScope("li")
		if c.openElements.ContainsElementInButtonScope("p") {
			c.closePElement()
		}
		c.insertHTMLElementForToken(t)
		return false, inBody, noError
	case "dd", "dt":
		c.closeListItemScope(t.TagName)
		if c.openElements.ContainsElementInButtonScope("p") {
			c.closePElement()
		}
		c.insertHTMLElementForToken(t)
		return false, inBody, noError
	case "plaintext":
		if c.openElements.ContainsElementInButtonScope("p") {
			c.closePElement()
		}
		c.insertHTMLElementForToken(t)
		s := plaintextState
		c.pendingTokenizerState = &s
		return false, inBody, noError
	case "button":
		if c.openElements.ContainsElementInScope("button") {
			c.generateImpliedEndTags()
			c.openElements.PopUntil("button")
		}
		c.reconstructActiveFormattingElements()
		c.insertHTMLElementForToken(t)
		c.frameset = framesetNotOK
		return false, inBody, noError
	case "a":
		if last := c.lastActiveFormattingElementNamed("a"); last != nil {
			c.adoptionAgencyAlgorithm(&Token{TokenType: endTagToken, TagName: "a"})
			if i := c.activeFormattingElements.NodeList.Contains(last); i != -1 {
				c.activeFormattingElements.Remove(i)
			}
			if i := c.openElements.NodeList.Contains(last); i != -1 {
				c.openElements.Remove(i)
			}
		}
		c.reconstructActiveFormattingElements()
		elem := c.insertHTMLElementForToken(t)
		c.activeFormattingElements.Push(elem)
		return false, inBody, noError
	case "b", "big", "code", "em", "font", "i", "s", "small", "strike", "strong", "tt", "u":
		c.reconstructActiveFormattingElements()
		elem := c.insertHTMLElementForToken(t)
		c.activeFormattingElements.Push(elem)
		return false, inBody, noError
	case "nobr":
		c.reconstructActiveFormattingElements()
		if c.openElements.ContainsElementInScope("nobr") {
			c.adoptionAgencyAlgorithm(t)
			c.reconstructActiveFormattingElements()
		}
		elem := c.insertHTMLElementForToken(t)
		c.activeFormattingElements.Push(elem)
		return false, inBody, noError
	case "applet", "marquee", "object":
		c.reconstructActiveFormattingElements()
		c.insertHTMLElementForToken(t)
		c.activeFormattingElements.Push(spec.ScopeMarker)
		c.frameset = framesetNotOK
		return false, inBody, noError
	case "table":
		if c.Document.QuirksMode != spec.Quirks && c.openElements.ContainsElementInButtonScope("p") {
			c.closePElement()
		}
		c.insertHTMLElementForToken(t)
		c.frameset = framesetNotOK
		return false, inTable, noError
	case "area", "br", "embed", "img", "keygen", "wbr":
		c.reconstructActiveFormattingElements()
		c.insertHTMLElementForToken(t)
		c.openElements.Pop()
		c.acknowledgeSelfClosingFlag()
		c.frameset = framesetNotOK
		return false, inBody, noError
	case "input":
		c.reconstructActiveFormattingElements()
		c.insertHTMLElementForToken(t)
		c.openElements.Pop()
		c.acknowledgeSelfClosingFlag()
		if v, ok := t.Attributes.Get("type"); !ok || !strings.EqualFold(v, "hidden") {
			c.frameset = framesetNotOK
		}
		return false, inBody, noError
	case "param", "source", "track":
		c.insertHTMLElementForToken(t)
		c.openElements.Pop()
		c.acknowledgeSelfClosingFlag()
		return false, inBody, noError
	case "hr":
		if c.openElements.ContainsElementInButtonScope("p") {
			c.closePElement()
		}
		c.insertHTMLElementForToken(t)
		c.openElements.Pop()
		c.acknowledgeSelfClosingFlag()
		c.frameset = framesetNotOK
		return false, inBody, noError
	case "image":
		t.TagName = "img"
		return true, inBody, generalParseError
	case "textarea":
		c.insertHTMLElementForToken(t)
		c.originalInsertionMode = inBody
		s := rcDataState
		c.pendingTokenizerState = &s
		c.frameset = framesetNotOK
		return false, text, noError
	case "xmp":
		if c.openElements.ContainsElementInButtonScope("p") {
			c.closePElement()
		}
		c.reconstructActiveFormattingElements()
		c.frameset = framesetNotOK
		return c.switchToTextMode(t, inBody, rawTextState)
	case "iframe":
		c.frameset = framesetNotOK
		return c.switchToTextMode(t, inBody, rawTextState)
	case "noembed":
		return c.switchToTextMode(t, inBody, rawTextState)
	case "noscript":
		if c.scriptingEnabled {
			return c.switchToTextMode(t, inBody, rawTextState)
		}
	case "select":
		c.reconstructActiveFormattingElements()
		c.insertHTMLElementForToken(t)
		c.frameset = framesetNotOK
		switch c.mode {
		case inTable, inCaption, inTableBody, inRow, inCell:
			return false, inSelectInTable, noError
		}
		return false, inSelect, noError
	case "optgroup", "option":
		if c.currentNode().NodeName == "option" {
			c.openElements.Pop()
		}
		c.reconstructActiveFormattingElements()
		c.insertHTMLElementForToken(t)
		return false, inBody, noError
	case "rb", "rtc":
		if c.openElements.ContainsElementInScope("ruby") {
			c.generateImpliedEndTags()
		}
		c.insertHTMLElementForToken(t)
		return false, inBody, noError
	case "rp", "rt":
		if c.openElements.ContainsElementInScope("ruby") {
			c.generateImpliedEndTags("rtc")
		}
		c.insertHTMLElementForToken(t)
		return false, inBody, noError
	case "math":
		c.reconstructActiveFormattingElements()
		elem := c.insertForeignElementForToken(t, spec.Mathmlns)
		if t.SelfClosing {
			c.openElements.Pop()
			c.acknowledgeSelfClosingFlag()
		}
		_ = elem
		return false, inBody, noError
	case "svg":
		c.reconstructActiveFormattingElements()
		elem := c.insertForeignElementForToken(t, spec.Svgns)
		if t.SelfClosing {
			c.openElements.Pop()
			c.acknowledgeSelfClosingFlag()
		}
		_ = elem
		return false, inBody, noError
	case "caption", "col", "colgroup", "frame", "head", "tbody", "td", "tfoot", "th", "thead", "tr":
		return false, inBody, generalParseError
	}
	return c.defaultInBodyModeHandler(t)
}

func (c *HTMLTreeConstructor) inBodyEndTag(t *Token) (bool, insertionMode, parseError) {
	switch t.TagName {
	case "template":
		return c.useRulesFor(t, inBody, inHead)
	case "body":
		if !c.openElements.ContainsElementInScope("body") {
			return false, inBody, generalParseError
		}
		return false, afterBody, noError
	case "html":
		if !c.openElements.ContainsElementInScope("body") {
			return false, inBody, generalParseError
		}
		return true, afterBody, noError
	case "address", "article", "aside", "blockquote", "button", "center",
		"details", "dialog", "dir", "div", "dl", "fieldset", "figcaption",
		"figure", "footer", "header", "hgroup", "listing", "main", "menu",
		"nav", "ol", "pre", "section", "summary", "ul":
		if !c.openElements.ContainsElementInScope(t.TagName) {
			return false, inBody, generalParseError
		}
		c.generateImpliedEndTags()
		c.openElements.PopUntil(t.TagName)
		return false, inBody, noError
	case "form":
		if c.templateMarker() == nil {
			node := c.formElementPointer
			c.formElementPointer = nil
			if node == nil || !c.openElements.ContainsElementInScope(node.NodeName) {
				return false, inBody, generalParseError
			}
			c.generateImpliedEndTags()
			if i := c.openElements.NodeList.Contains(node); i != -1 {
				c.openElements.Remove(i)
			}
			return false, inBody, noError
		}
		if !c.openElements.ContainsElementInScope("form") {
			return false, inBody, generalParseError
		}
		c.generateImpliedEndTags()
		c.openElements.PopUntil("form")
		return false, inBody, noError
	case "p":
		if !c.openElements.ContainsElementInButtonScope("p") {
			c.insertHTMLElementForToken(&Token{TokenType: startTagToken, TagName: "p", Attributes: spec.NewAttributeMap(nil)})
		}
		c.closePElement()
		return false, inBody, noError
	case "li":
		if !c.openElements.ContainsElementInListItemScope("li") {
			return false, inBody, generalParseError
		}
		c.generateImpliedEndTags("li")
		c.openElements.PopUntil("li")
		return false, inBody, noError
	case "dd", "dt":
		if !c.openElements.ContainsElementInScope(t.TagName) {
			return false, inBody, generalParseError
		}
		c.generateImpliedEndTags(t.TagName)
		c.openElements.PopUntil(t.TagName)
		return false, inBody, noError
	case "h1", "h2", "h3", "h4", "h5", "h6":
		if !c.openElements.ContainsElementsInScope("h1", "h2", "h3", "h4", "h5", "h6") {
			return false, inBody, generalParseError
		}
		c.generateImpliedEndTags()
		c.openElements.PopUntil("h1", "h2", "h3", "h4", "h5", "h6")
		return false, inBody, noError
	case "a", "b", "big", "code", "em", "font", "i", "nobr", "s", "small", "strike", "strong", "tt", "u":
		_, err := c.adoptionAgencyAlgorithm(t)
		return false, inBody, err
	case "applet", "marquee", "object":
		if !c.openElements.ContainsElementInScope(t.TagName) {
			return false, inBody, generalParseError
		}
		c.generateImpliedEndTags()
		c.openElements.PopUntil(t.TagName)
		c.clearActiveFormattingElementsToLastMarker()
		return false, inBody, noError
	case "br":
		c.reconstructActiveFormattingElements()
		c.insertHTMLElementForToken(&Token{TokenType: startTagToken, TagName: "br", Attributes: spec.NewAttributeMap(nil)})
		c.openElements.Pop()
		c.frameset = framesetNotOK
		return false, inBody, generalParseError
	}
	return false, inBody, c.anyOtherEndTag(t.TagName)
}

func (c *HTMLTreeConstructor) closeListItemScope(name string) {
	if c.openElements.ContainsElementInListItemScope(name) {
		c.generateImpliedEndTags(name)
		c.openElements.PopUntil(name)
	}
}

func (c *HTMLTreeConstructor) lastActiveFormattingElementNamed(name string) *spec.Node {
	for i := len(c.activeFormattingElements.NodeList) - 1; i >= 0; i-- {
		entry := c.activeFormattingElements.NodeList[i]
		if entry.NodeType == spec.ScopeMarkerNode {
			return nil
		}
		if entry.NodeName == name {
			return entry
		}
	}
	return nil
}

// templateMarker reports the template element currently on the stack
// of open elements, if any; the "form" start/end tag steps need to
// know whether template content is being parsed, since the implicit
// form element pointer tracking is skipped in that case.
func (c *HTMLTreeConstructor) templateMarker() *spec.Node {
	for _, n := range c.openElements.NodeList {
		if n.NodeName == "template" {
			return n
		}
	}
	return nil
}

func (c *HTMLTreeConstructor) useRulesFor(t *Token, returnState, expectedState insertionMode) (bool, insertionMode, parseError) {
	reprocess, nextstate, err := c.mappings[expectedState](t)
	if nextstate == expectedState {
		return reprocess, returnState, err
	}
	return reprocess, nextstate, err
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-incdata
func (c *HTMLTreeConstructor) textModeHandler(t *Token) (bool, insertionMode, parseError) {
	switch t.TokenType {
	case characterToken:
		c.insertCharacter(t.Data)
		return false, text, noError
	case endOfFileToken:
		c.openElements.Pop()
		return true, c.originalInsertionMode, generalParseError
	case endTagToken:
		c.openElements.Pop()
		return false, c.originalInsertionMode, noError
	}
	return false, text, noError
}

func (c *HTMLTreeConstructor) defaultInTableModeHandler(t *Token) (bool, insertionMode, parseError) {
	c.fosterParenting = true
	reprocess, mode, err := c.inBodyModeHandler(t)
	c.fosterParenting = false
	return reprocess, mode, err
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-intable
func (c *HTMLTreeConstructor) inTableModeHandler(t *Token) (bool, insertionMode, parseError) {
	switch t.TokenType {
	case characterToken:
		switch c.currentNode().NodeName {
		case "table", "tbody", "tfoot", "thead", "tr":
			c.pendingTableText.Reset()
			c.tableTextHasNonWS = false
			c.originalInsertionMode = c.mode
			return true, inTableText, noError
		}
	case commentToken:
		c.insertComment(t)
		return false, inTable, noError
	case docTypeToken:
		return false, inTable, generalParseError
	case startTagToken:
		switch t.TagName {
		case "caption":
			c.clearStackBackTo("table", "template", "html")
			c.activeFormattingElements.Push(spec.ScopeMarker)
			c.insertHTMLElementForToken(t)
			return false, inCaption, noError
		case "colgroup":
			c.clearStackBackTo("table", "template", "html")
			c.insertHTMLElementForToken(t)
			return false, inColumnGroup, noError
		case "col":
			c.clearStackBackTo("table", "template", "html")
			c.insertHTMLElementForToken(&Token{TokenType: startTagToken, TagName: "colgroup", Attributes: spec.NewAttributeMap(nil)})
			return true, inColumnGroup, noError
		case "tbody", "tfoot", "thead":
			c.clearStackBackTo("table", "template", "html")
			c.insertHTMLElementForToken(t)
			return false, inTableBody, noError
		case "td", "th", "tr":
			c.clearStackBackTo("table", "template", "html")
			c.insertHTMLElementForToken(&Token{TokenType: startTagToken, TagName: "tbody", Attributes: spec.NewAttributeMap(nil)})
			return true, inTableBody, noError
		case "table":
			if !c.openElements.ContainsElementInTableScope("table") {
				return false, inTable, generalParseError
			}
			c.openElements.PopUntil("table")
			return true, c.resetInsertionMode(), generalParseError
		case "style", "script", "template":
			return c.useRulesFor(t, inTable, inHead)
		case "input":
			value, ok := t.Attributes.Get("type")
			if !ok || !strings.EqualFold(value, "hidden") {
				return c.defaultInTableModeHandler(t)
			}
			c.insertHTMLElementForToken(t)
			c.openElements.Pop()
			c.acknowledgeSelfClosingFlag()
			return false, inTable, generalParseError
		case "form":
			if c.templateMarker() != nil || c.formElementPointer != nil {
				return false, inTable, generalParseError
			}
			elem := c.insertHTMLElementForToken(t)
			c.formElementPointer = elem
			c.openElements.Pop()
			return false, inTable, noError
		}
	case endTagToken:
		switch t.TagName {
		case "table":
			if !c.openElements.ContainsElementInTableScope("table") {
				return false, inTable, generalParseError
			}
			c.openElements.PopUntil("table")
			return false, c.resetInsertionMode(), noError
		case "body", "caption", "col", "colgroup", "html", "tbody", "td", "tfoot", "th", "thead", "tr":
			return false, inTable, generalParseError
		case "template":
			return c.useRulesFor(t, inTable, inHead)
		}
	case endOfFileToken:
		return c.useRulesFor(t, inTable, inBody)
	}
	return c.defaultInTableModeHandler(t)
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-intabletext
func (c *HTMLTreeConstructor) inTableTextModeHandler(t *Token) (bool, insertionMode, parseError) {
	switch t.TokenType {
	case characterToken:
		if t.Data == "\x00" {
			return false, inTableText, generalParseError
		}
		c.pendingTableText.WriteString(t.Data)
		if !isWhitespace(t.Data) {
			c.tableTextHasNonWS = true
		}
		return false, inTableText, noError
	}

	text := c.pendingTableText.String()
	if c.tableTextHasNonWS {
		c.fosterParenting = true
		c.insertCharacter(text)
		c.fosterParenting = false
	} else if text != "" {
		c.insertCharacter(text)
	}
	return true, c.originalInsertionMode, noError
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-incaption
func (c *HTMLTreeConstructor) inCaptionModeHandler(t *Token) (bool, insertionMode, parseError) {
	closeCaption := func() (bool, insertionMode, parseError) {
		if !c.openElements.ContainsElementInTableScope("caption") {
			return false, inCaption, generalParseError
		}
		c.generateImpliedEndTags()
		c.openElements.PopUntil("caption")
		c.clearActiveFormattingElementsToLastMarker()
		return false, inTable, noError
	}

	switch t.TokenType {
	case startTagToken:
		switch t.TagName {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th", "thead", "tr":
			reprocess, mode, err := closeCaption()
			if err == noError {
				return true, mode, err
			}
			return reprocess, mode, err
		}
	case endTagToken:
		switch t.TagName {
		case "caption":
			return closeCaption()
		case "table":
			reprocess, mode, err := closeCaption()
			if err == noError {
				return true, mode, err
			}
			return reprocess, mode, err
		case "body", "col", "colgroup", "html", "tbody", "td", "tfoot", "th", "thead", "tr":
			return false, inCaption, generalParseError
		}
	}
	return c.useRulesFor(t, inCaption, inBody)
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-incolgroup
func (c *HTMLTreeConstructor) inColumnGroupModeHandler(t *Token) (bool, insertionMode, parseError) {
	switch t.TokenType {
	case characterToken:
		if isWhitespace(t.Data) {
			c.insertCharacter(t.Data)
			return false, inColumnGroup, noError
		}
	case commentToken:
		c.insertComment(t)
		return false, inColumnGroup, noError
	case docTypeToken:
		return false, inColumnGroup, generalParseError
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inColumnGroup, inBody)
		case "col":
			c.insertHTMLElementForToken(t)
			c.openElements.Pop()
			return false, inColumnGroup, noError
		case "template":
			return c.useRulesFor(t, inColumnGroup, inHead)
		}
	case endTagToken:
		switch t.TagName {
		case "colgroup":
			if c.currentNode().NodeName != "colgroup" {
				return false, inColumnGroup, generalParseError
			}
			c.openElements.Pop()
			return false, inTable, noError
		case "col":
			return false, inColumnGroup, generalParseError
		case "template":
			return c.useRulesFor(t, inColumnGroup, inHead)
		}
	case endOfFileToken:
		return c.useRulesFor(t, inColumnGroup, inBody)
	}

	if c.currentNode().NodeName != "colgroup" {
		return false, inColumnGroup, generalParseError
	}
	c.openElements.Pop()
	return true, inTable, noError
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-intbody
func (c *HTMLTreeConstructor) inTableBodyModeHandler(t *Token) (bool, insertionMode, parseError) {
	switch t.TokenType {
	case startTagToken:
		switch t.TagName {
		case "tr":
			c.clearStackBackTo("tbody", "tfoot", "thead", "template", "html")
			c.insertHTMLElementForToken(t)
			return false, inRow, noError
		case "th", "td":
			c.clearStackBackTo("tbody", "tfoot", "thead", "template", "html")
			c.insertHTMLElementForToken(&Token{TokenType: startTagToken, TagName: "tr", Attributes: spec.NewAttributeMap(nil)})
			return true, inRow, noError
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead":
			if !c.openElements.ContainsElementsInScope("tbody", "tfoot", "thead") {
				return false, inTableBody, generalParseError
			}
			c.clearStackBackTo("tbody", "tfoot", "thead", "template", "html")
			c.openElements.Pop()
			return true, inTable, noError
		}
	case endTagToken:
		switch t.TagName {
		case "tbody", "tfoot", "thead":
			if !c.openElements.ContainsElementInTableScope(t.TagName) {
				return false, inTableBody, generalParseError
			}
			c.clearStackBackTo("tbody", "tfoot", "thead", "template", "html")
			c.openElements.Pop()
			return false, inTable, noError
		case "table":
			if !c.openElements.ContainsElementsInScope("tbody", "tfoot", "thead") {
				return false, inTableBody, generalParseError
			}
			c.clearStackBackTo("tbody", "tfoot", "thead", "template", "html")
			c.openElements.Pop()
			return true, inTable, noError
		case "body", "caption", "col", "colgroup", "html", "td", "th", "tr":
			return false, inTableBody, generalParseError
		}
	}
	return c.useRulesFor(t, inTableBody, inTable)
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-intr
func (c *HTMLTreeConstructor) inRowModeHandler(t *Token) (bool, insertionMode, parseError) {
	switch t.TokenType {
	case startTagToken:
		switch t.TagName {
		case "th", "td":
			c.clearStackBackTo("tr", "template", "html")
			c.insertHTMLElementForToken(t)
			c.activeFormattingElements.Push(spec.ScopeMarker)
			return false, inCell, noError
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead", "tr":
			if !c.openElements.ContainsElementInTableScope("tr") {
				return false, inRow, generalParseError
			}
			c.clearStackBackTo("tr", "template", "html")
			c.openElements.Pop()
			return true, inTableBody, noError
		}
	case endTagToken:
		switch t.TagName {
		case "tr":
			if !c.openElements.ContainsElementInTableScope("tr") {
				return false, inRow, generalParseError
			}
			c.clearStackBackTo("tr", "template", "html")
			c.openElements.Pop()
			return false, inTableBody, noError
		case "table":
			if !c.openElements.ContainsElementInTableScope("tr") {
				return false, inRow, generalParseError
			}
			c.clearStackBackTo("tr", "template", "html")
			c.openElements.Pop()
			return true, inTableBody, noError
		case "tbody", "tfoot", "thead":
			if !c.openElements.ContainsElementInTableScope(t.TagName) || !c.openElements.ContainsElementInTableScope("tr") {
				return false, inRow, generalParseError
			}
			c.clearStackBackTo("tr", "template", "html")
			c.openElements.Pop()
			return true, inTableBody, noError
		case "body", "caption", "col", "colgroup", "html", "td", "th":
			return false, inRow, generalParseError
		}
	}
	return c.useRulesFor(t, inRow, inTable)
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-intd
func (c *HTMLTreeConstructor) inCellModeHandler(t *Token) (bool, insertionMode, parseError) {
	closeCell := func() {
		c.generateImpliedEndTags()
		c.openElements.PopUntil("td", "th")
		c.clearActiveFormattingElementsToLastMarker()
	}

	switch t.TokenType {
	case startTagToken:
		switch t.TagName {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th", "thead", "tr":
			if !c.openElements.ContainsElementsInScope("td", "th") {
				return false, inCell, generalParseError
			}
			closeCell()
			return true, inRow, noError
		}
	case endTagToken:
		switch t.TagName {
		case "td", "th":
			if !c.openElements.ContainsElementInTableScope(t.TagName) {
				return false, inCell, generalParseError
			}
			closeCell()
			return false, inRow, noError
		case "body", "caption", "col", "colgroup", "html":
			return false, inCell, generalParseError
		case "table", "tbody", "tfoot", "thead", "tr":
			if !c.openElements.ContainsElementInTableScope(t.TagName) {
				return false, inCell, generalParseError
			}
			closeCell()
			return true, inRow, noError
		}
	}
	return c.useRulesFor(t, inCell, inBody)
}

func (c *HTMLTreeConstructor) defaultInSelectModeHandler(t *Token) (bool, insertionMode, parseError) {
	return false, inSelect, generalParseError
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-inselect
func (c *HTMLTreeConstructor) inSelectModeHandler(t *Token) (bool, insertionMode, parseError) {
	switch t.TokenType {
	case characterToken:
		if t.Data == "\x00" {
			return false, inSelect, generalParseError
		}
		c.insertCharacter(t.Data)
		return false, inSelect, noError
	case commentToken:
		c.insertComment(t)
		return false, inSelect, noError
	case docTypeToken:
		return false, inSelect, generalParseError
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inSelect, inBody)
		case "option":
			if c.currentNode().NodeName == "option" {
				c.openElements.Pop()
			}
			c.insertHTMLElementForToken(t)
			return false, inSelect, noError
		case "optgroup":
			if c.currentNode().NodeName == "option" {
				c.openElements.Pop()
			}
			if c.currentNode().NodeName == "optgroup" {
				c.openElements.Pop()
			}
			c.insertHTMLElementForToken(t)
			return false, inSelect, noError
		case "select":
			if !c.openElements.ContainsElementInSelectScope("select") {
				return false, inSelect, generalParseError
			}
			c.openElements.PopUntil("select")
			return false, c.resetInsertionMode(), generalParseError
		case "input", "keygen", "textarea":
			return false, inSelect, generalParseError
		case "script", "template":
			return c.useRulesFor(t, inSelect, inHead)
		}
	case endTagToken:
		switch t.TagName {
		case "optgroup":
			if c.currentNode().NodeName == "option" && len(c.openElements.NodeList) > 1 &&
				c.openElements.NodeList[len(c.openElements.NodeList)-2].NodeName == "optgroup" {
				c.openElements.Pop()
			}
			if c.currentNode().NodeName == "optgroup" {
				c.openElements.Pop()
			}
			return false, inSelect, noError
		case "option":
			if c.currentNode().NodeName == "option" {
				c.openElements.Pop()
			}
			return false, inSelect, noError
		case "select":
			if !c.openElements.ContainsElementInSelectScope("select") {
				return false, inSelect, generalParseError
			}
			c.openElements.PopUntil("select")
			return false, c.resetInsertionMode(), noError
		case "template":
			return c.useRulesFor(t, inSelect, inHead)
		}
	case endOfFileToken:
		return c.useRulesFor(t, inSelect, inBody)
	}
	return c.defaultInSelectModeHandler(t)
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-inselectintable
func (c *HTMLTreeConstructor) inSelectInTableModeHandler(t *Token) (bool, insertionMode, parseError) {
	if t.TokenType == startTagToken || t.TokenType == endTagToken {
		switch t.TagName {
		case "caption", "table", "tbody", "tfoot", "thead", "tr", "td", "th":
			if t.TokenType == endTagToken && !c.openElements.ContainsElementInTableScope(t.TagName) {
				return false, inSelectInTable, generalParseError
			}
			c.openElements.PopUntil("select")
			return true, c.resetInsertionMode(), noError
		}
	}
	return c.useRulesFor(t, inSelectInTable, inSelect)
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-intemplate
func (c *HTMLTreeConstructor) inTemplateModeHandler(t *Token) (bool, insertionMode, parseError) {
	switch t.TokenType {
	case characterToken, commentToken, docTypeToken:
		return c.useRulesFor(t, inTemplate, inBody)
	case startTagToken:
		switch t.TagName {
		case "base", "basefont", "bgsound", "link", "meta", "noframes", "script", "style", "template", "title":
			return c.useRulesFor(t, inTemplate, inHead)
		case "caption", "colgroup", "tbody", "tfoot", "thead":
			c.replaceTemplateInsertionMode(inTable)
			return true, inTable, noError
		case "col":
			c.replaceTemplateInsertionMode(inColumnGroup)
			return true, inColumnGroup, noError
		case "tr":
			c.replaceTemplateInsertionMode(inTableBody)
			return true, inTableBody, noError
		case "td", "th":
			c.replaceTemplateInsertionMode(inRow)
			return true, inRow, noError
		}
		c.replaceTemplateInsertionMode(inBody)
		return true, inBody, noError
	case endTagToken:
		if t.TagName == "template" {
			return c.useRulesFor(t, inTemplate, inHead)
		}
		return false, inTemplate, generalParseError
	case endOfFileToken:
		if c.templateMarker() == nil {
			c.stopParsing = true
			return false, inTemplate, noError
		}
		c.openElements.PopUntil("template")
		c.clearActiveFormattingElementsToLastMarker()
		if len(c.templateInsertionModes) > 0 {
			c.templateInsertionModes = c.templateInsertionModes[:len(c.templateInsertionModes)-1]
		}
		return true, c.resetInsertionMode(), generalParseError
	}
	return false, inTemplate, noError
}

func (c *HTMLTreeConstructor) replaceTemplateInsertionMode(m insertionMode) {
	if len(c.templateInsertionModes) > 0 {
		c.templateInsertionModes[len(c.templateInsertionModes)-1] = m
	}
}

// https://html.spec.whatwg.org/multipage/parsing.html#the-after-body-insertion-mode
func (c *HTMLTreeConstructor) afterBodyModeHandler(t *Token) (bool, insertionMode, parseError) {
	switch t.TokenType {
	case characterToken:
		if isWhitespace(t.Data) {
			return c.useRulesFor(t, afterBody, inBody)
		}
	case commentToken:
		c.insertNode(spec.NewComment(t.Data, c.Document))
		return false, afterBody, noError
	case docTypeToken:
		return false, afterBody, generalParseError
	case startTagToken:
		if t.TagName == "html" {
			return c.useRulesFor(t, afterBody, inBody)
		}
	case endTagToken:
		if t.TagName == "html" {
			return false, afterAfterBody, noError
		}
	case endOfFileToken:
		c.stopParsing = true
		return false, afterBody, noError
	}
	return true, inBody, generalParseError
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-inframeset
func (c *HTMLTreeConstructor) inFramesetModeHandler(t *Token) (bool, insertionMode, parseError) {
	switch t.TokenType {
	case characterToken:
		if isWhitespace(t.Data) {
			c.insertCharacter(t.Data)
			return false, inFrameset, noError
		}
	case commentToken:
		c.insertComment(t)
		return false, inFrameset, noError
	case docTypeToken:
		return false, inFrameset, generalParseError
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, inFrameset, inBody)
		case "frameset":
			c.insertHTMLElementForToken(t)
			return false, inFrameset, noError
		case "frame":
			c.insertHTMLElementForToken(t)
			c.openElements.Pop()
			c.acknowledgeSelfClosingFlag()
			return false, inFrameset, noError
		case "noframes":
			return c.useRulesFor(t, inFrameset, inHead)
		}
	case endTagToken:
		if t.TagName == "frameset" {
			if c.currentNode().NodeName == "html" {
				return false, inFrameset, generalParseError
			}
			c.openElements.Pop()
			if c.currentNode().NodeName != "frameset" {
				return false, afterFrameset, noError
			}
			return false, inFrameset, noError
		}
	case endOfFileToken:
		c.stopParsing = true
		return false, inFrameset, noError
	}
	return false, inFrameset, generalParseError
}

// https://html.spec.whatwg.org/multipage/parsing.html#parsing-main-afterframeset
func (c *HTMLTreeConstructor) afterFramesetModeHandler(t *Token) (bool, insertionMode, parseError) {
	switch t.TokenType {
	case characterToken:
		if isWhitespace(t.Data) {
			c.insertCharacter(t.Data)
			return false, afterFrameset, noError
		}
	case commentToken:
		c.insertComment(t)
		return false, afterFrameset, noError
	case docTypeToken:
		return false, afterFrameset, generalParseError
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, afterFrameset, inBody)
		case "noframes":
			return c.useRulesFor(t, afterFrameset, inHead)
		}
	case endTagToken:
		if t.TagName == "html" {
			return false, afterAfterFrameset, noError
		}
	case endOfFileToken:
		c.stopParsing = true
		return false, afterFrameset, noError
	}
	return false, afterFrameset, generalParseError
}

// https://html.spec.whatwg.org/multipage/parsing.html#the-after-after-body-insertion-mode
func (c *HTMLTreeConstructor) afterAfterBodyModeHandler(t *Token) (bool, insertionMode, parseError) {
	switch t.TokenType {
	case commentToken:
		c.insertNode(spec.NewComment(t.Data, c.Document))
		return false, afterAfterBody, noError
	case docTypeToken:
		return c.useRulesFor(t, afterAfterBody, inBody)
	case characterToken:
		if isWhitespace(t.Data) {
			return c.useRulesFor(t, afterAfterBody, inBody)
		}
	case startTagToken:
		if t.TagName == "html" {
			return c.useRulesFor(t, afterAfterBody, inBody)
		}
	case endOfFileToken:
		c.stopParsing = true
		return false, afterAfterBody, noError
	}
	return true, inBody, generalParseError
}

// https://html.spec.whatwg.org/multipage/parsing.html#the-after-after-frameset-insertion-mode
func (c *HTMLTreeConstructor) afterAfterFramesetModeHandler(t *Token) (bool, insertionMode, parseError) {
	switch t.TokenType {
	case commentToken:
		c.insertNode(spec.NewComment(t.Data, c.Document))
		return false, afterAfterFrameset, noError
	case docTypeToken:
		return c.useRulesFor(t, afterAfterFrameset, inBody)
	case characterToken:
		if isWhitespace(t.Data) {
			return c.useRulesFor(t, afterAfterFrameset, inBody)
		}
	case startTagToken:
		switch t.TagName {
		case "html":
			return c.useRulesFor(t, afterAfterFrameset, inBody)
		case "noframes":
			return c.useRulesFor(t, afterAfterFrameset, inHead)
		}
	case endOfFileToken:
		c.stopParsing = true
		return false, afterAfterFrameset, noError
	}
	return false, afterAfterFrameset, generalParseError
}

// resetInsertionMode recomputes the insertion mode from the stack of
// open elements, used whenever a table-family element is popped off
// in a way that can't simply restore the previous mode.
// https://html.spec.whatwg.org/multipage/parsing.html#reset-the-insertion-mode-appropriately
func (c *HTMLTreeConstructor) resetInsertionMode() insertionMode {
	for i := len(c.openElements.NodeList) - 1; i >= 0; i-- {
		node := c.openElements.NodeList[i]
		last := i == 0
		switch node.NodeName {
		case "select":
			for j := i - 1; !last && j >= 0; j-- {
				switch c.openElements.NodeList[j].NodeName {
				case "template":
					return inSelect
				case "table":
					return inSelectInTable
				}
			}
			return inSelect
		case "td", "th":
			if !last {
				return inCell
			}
		case "tr":
			return inRow
		case "tbody", "tfoot", "thead":
			return inTableBody
		case "caption":
			return inCaption
		case "colgroup":
			return inColumnGroup
		case "table":
			return inTable
		case "template":
			if len(c.templateInsertionModes) > 0 {
				return c.templateInsertionModes[len(c.templateInsertionModes)-1]
			}
			return inBody
		case "head":
			if !last {
				return inHead
			}
		case "body":
			return inBody
		case "frameset":
			return inFrameset
		case "html":
			if c.headElementPointer == nil {
				return beforeHead
			}
			return afterHead
		}
		if last {
			return inBody
		}
	}
	return inBody
}

type insertionMode uint

const (
	initial insertionMode = iota
	beforeHTML
	beforeHead
	inHead
	inHeadNoScript
	afterHead
	inBody
	text
	inTable
	inTableText
	inCaption
	inColumnGroup
	inTableBody
	inRow
	inCell
	inSelect
	inSelectInTable
	inTemplate
	afterBody
	inFrameset
	afterFrameset
	afterAfterBody
	afterAfterFrameset
)

type treeConstructionModeHandler func(t *Token) (bool, insertionMode, parseError)
