package convert

import (
	"regexp"
	"strings"

	"github.com/hellenic-development/figma-converter/pkg/figma"
)

// Element represents one element of the generated markup tree. The tree
// mirrors the Figma document hierarchy: each node becomes one element carrying
// its generated class name, with children nested in source order.
type Element struct {
	Tag      string
	Class    string
	Text     string
	Children []Element
}

// Declaration is a single CSS property-value pair.
type Declaration struct {
	Property string
	Value    string
}

// StyleRule is one generated stylesheet block, keyed by the class name shared
// with the markup element it styles. Declarations keep their emission order.
type StyleRule struct {
	Class        string
	Declarations []Declaration
}

// elementTags maps Figma node types to HTML tags. Unknown types fall back to
// a generic container.
var elementTags = map[string]string{
	"FRAME":             "div",
	"GROUP":             "div",
	"RECTANGLE":         "div",
	"ELLIPSE":           "div",
	"TEXT":              "p",
	"VECTOR":            "div",
	"COMPONENT":         "div",
	"INSTANCE":          "div",
	"BOOLEAN_OPERATION": "div",
	"CANVAS":            "div",
}

var unsafeClassChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// Convert walks a Figma document tree once and produces the matching markup
// tree along with the flat sequence of style rules. Rules are ordered by the
// same depth-first traversal that builds the markup, so a parent's rule always
// precedes the rules of its descendants.
func Convert(document *figma.Node) (Element, []StyleRule) {
	return convertNode(document, nil)
}

// convertNode converts a single node and recurses into its children. Children
// are positioned relative to this node's own bounding box, so relative
// coordinates are always one level deep rather than cumulative offsets from
// the document root.
func convertNode(node *figma.Node, parentBox *figma.Rectangle) (Element, []StyleRule) {
	element := Element{
		Tag:   tagFor(node.Type),
		Class: ClassName(node),
	}
	if node.Type == "TEXT" {
		element.Text = node.Characters
	}

	// A node with no resolved properties contributes no rule at all.
	var rules []StyleRule
	if decls := declarations(node, parentBox); len(decls) > 0 {
		rules = append(rules, StyleRule{Class: element.Class, Declarations: decls})
	}

	for i := range node.Children {
		child, childRules := convertNode(&node.Children[i], node.AbsoluteBoundingBox)
		element.Children = append(element.Children, child)
		rules = append(rules, childRules...)
	}

	return element, rules
}

// ClassName derives the CSS class name for a node from its type and id.
// Characters outside [A-Za-z0-9_-] in the id (Figma ids contain colons) are
// replaced with dashes so the name is usable in a class selector.
func ClassName(node *figma.Node) string {
	nodeType := node.Type
	if nodeType == "" {
		nodeType = "frame"
	}
	id := node.ID
	if id == "" {
		id = "unknown"
	}
	return "figma-" + strings.ToLower(nodeType) + "-" + unsafeClassChars.ReplaceAllString(id, "-")
}

// tagFor returns the HTML tag for a Figma node type.
func tagFor(nodeType string) string {
	if tag, ok := elementTags[nodeType]; ok {
		return tag
	}
	return "div"
}
