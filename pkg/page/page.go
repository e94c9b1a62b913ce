package page

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-converter/pkg/convert"
)

// Stylesheet renders style rules into CSS text. Each rule becomes one block
// with two-space indented declarations, and blocks are separated by a blank
// line. An empty rule list produces an empty stylesheet.
func Stylesheet(rules []convert.StyleRule) string {
	var sb strings.Builder

	for _, rule := range rules {
		sb.WriteString(fmt.Sprintf(".%s {\n", rule.Class))
		for _, decl := range rule.Declarations {
			sb.WriteString(fmt.Sprintf("  %s: %s;\n", decl.Property, decl.Value))
		}
		sb.WriteString("}\n\n")
	}

	return sb.String()
}

// Document assembles the complete HTML page: a head with charset and viewport
// meta tags, an embedded style block holding the base reset plus the generated
// stylesheet, and a body wrapping the converted tree in a positioning
// container.
func Document(root convert.Element, stylesheet string) string {
	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Figma Design</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background-color: #ffffff;
        }
        .figma-container {
            position: relative;
            width: 100%;
            min-height: 100vh;
        }
`)
	sb.WriteString(stylesheet)
	sb.WriteString("    </style>\n</head>\n<body>\n")
	sb.WriteString("    <div class=\"figma-container\">\n")
	renderElement(&sb, root, 2)
	sb.WriteString("    </div>\n</body>\n</html>")

	return sb.String()
}

// renderElement writes one markup element and its children, indented two
// spaces per nesting level. Elements without children render on a single line
// with their text content inline.
func renderElement(sb *strings.Builder, element convert.Element, level int) {
	indent := strings.Repeat("  ", level)

	if len(element.Children) == 0 {
		sb.WriteString(fmt.Sprintf("%s<%s class=%q>%s</%s>\n", indent, element.Tag, element.Class, element.Text, element.Tag))
		return
	}

	sb.WriteString(fmt.Sprintf("%s<%s class=%q>%s\n", indent, element.Tag, element.Class, element.Text))
	for _, child := range element.Children {
		renderElement(sb, child, level+1)
	}
	sb.WriteString(fmt.Sprintf("%s</%s>\n", indent, element.Tag))
}
