package convert

import (
	"fmt"
	"strconv"

	"github.com/hellenic-development/figma-converter/pkg/figma"
)

// transparentValue is the internal sentinel for "no usable paint". Background
// declarations are suppressed when a fill resolves to it, so the bare keyword
// never reaches the stylesheet through that path.
const transparentValue = "transparent"

// primaryAxisAlignments maps Figma primary-axis alignment to justify-content.
var primaryAxisAlignments = map[string]string{
	"MIN":           "flex-start",
	"CENTER":        "center",
	"MAX":           "flex-end",
	"SPACE_BETWEEN": "space-between",
	"SPACE_AROUND":  "space-around",
}

// counterAxisAlignments maps Figma counter-axis alignment to align-items.
var counterAxisAlignments = map[string]string{
	"MIN":      "flex-start",
	"CENTER":   "center",
	"MAX":      "flex-end",
	"BASELINE": "baseline",
}

// textAlignments maps Figma horizontal text alignment to text-align.
var textAlignments = map[string]string{
	"LEFT":      "left",
	"CENTER":    "center",
	"RIGHT":     "right",
	"JUSTIFIED": "justify",
}

// declarations resolves all style properties of a node in a fixed order:
// layout and position first, then fills, text styling, border, and shadows.
func declarations(node *figma.Node, parentBox *figma.Rectangle) []Declaration {
	decls := layoutDeclarations(node, parentBox)
	decls = append(decls, fillDeclarations(node)...)
	decls = append(decls, textDeclarations(node)...)
	decls = append(decls, borderDeclarations(node)...)
	decls = append(decls, shadowDeclarations(node)...)
	return decls
}

// layoutDeclarations translates position, dimensions, auto-layout, padding,
// item spacing, corner radius, and horizontal constraints. When parentBox is
// present the node is positioned relative to it, otherwise absolute document
// coordinates are used unchanged.
func layoutDeclarations(node *figma.Node, parentBox *figma.Rectangle) []Declaration {
	var decls []Declaration

	// Position and dimensions
	if box := node.AbsoluteBoundingBox; box != nil {
		x, y := box.X, box.Y
		if parentBox != nil {
			x -= parentBox.X
			y -= parentBox.Y
		}
		decls = append(decls,
			Declaration{"position", "absolute"},
			Declaration{"left", px(x)},
			Declaration{"top", px(y)},
			Declaration{"width", px(box.Width)},
			Declaration{"height", px(box.Height)},
		)
	}

	// Auto layout properties
	if node.LayoutMode != "" {
		switch node.LayoutMode {
		case "HORIZONTAL":
			decls = append(decls, Declaration{"display", "flex"}, Declaration{"flex-direction", "row"})
		case "VERTICAL":
			decls = append(decls, Declaration{"display", "flex"}, Declaration{"flex-direction", "column"})
		}
		if node.PrimaryAxisAlignItems != "" {
			decls = append(decls, Declaration{"justify-content", alignmentOrDefault(primaryAxisAlignments, node.PrimaryAxisAlignItems)})
		}
		if node.CounterAxisAlignItems != "" {
			decls = append(decls, Declaration{"align-items", alignmentOrDefault(counterAxisAlignments, node.CounterAxisAlignItems)})
		}
	}

	// Padding, one side at a time: a side absent from the payload emits
	// nothing rather than defaulting to zero.
	if node.PaddingLeft != nil {
		decls = append(decls, Declaration{"padding-left", px(*node.PaddingLeft)})
	}
	if node.PaddingRight != nil {
		decls = append(decls, Declaration{"padding-right", px(*node.PaddingRight)})
	}
	if node.PaddingTop != nil {
		decls = append(decls, Declaration{"padding-top", px(*node.PaddingTop)})
	}
	if node.PaddingBottom != nil {
		decls = append(decls, Declaration{"padding-bottom", px(*node.PaddingBottom)})
	}

	if node.ItemSpacing != nil {
		decls = append(decls, Declaration{"gap", px(*node.ItemSpacing)})
	}
	if node.CornerRadius != nil {
		decls = append(decls, Declaration{"border-radius", px(*node.CornerRadius)})
	}

	// Horizontal constraints map to auto margins
	if node.Constraints != nil {
		switch node.Constraints.Horizontal {
		case "CENTER":
			decls = append(decls, Declaration{"margin-left", "auto"}, Declaration{"margin-right", "auto"})
		case "RIGHT":
			decls = append(decls, Declaration{"margin-left", "auto"})
		}
	}

	return decls
}

// alignmentOrDefault looks up a Figma alignment value, falling back to
// flex-start for unrecognized values.
func alignmentOrDefault(alignments map[string]string, value string) string {
	if mapped, ok := alignments[value]; ok {
		return mapped
	}
	return "flex-start"
}

// fillDeclarations translates the first fill of a node. Text nodes take their
// first solid fill as the text color and never receive a background from
// fills; other nodes get a background unless the fill resolves to the
// transparent sentinel.
func fillDeclarations(node *figma.Node) []Declaration {
	if len(node.Fills) == 0 {
		return nil
	}

	if node.Type == "TEXT" {
		if first := node.Fills[0]; first.Type == "SOLID" {
			return []Declaration{{"color", resolveColor(first.Color)}}
		}
		return nil
	}

	if background := resolveFill(node.Fills); background != transparentValue {
		return []Declaration{{"background", background}}
	}
	return nil
}

// textDeclarations translates the text style of a TEXT node. Every property
// is optional and translated independently of the others.
func textDeclarations(node *figma.Node) []Declaration {
	if node.Type != "TEXT" || node.Style == nil {
		return nil
	}
	style := node.Style

	var decls []Declaration
	if style.FontFamily != "" {
		decls = append(decls, Declaration{"font-family", fmt.Sprintf("%q, sans-serif", style.FontFamily)})
	}
	if style.FontSize != nil {
		decls = append(decls, Declaration{"font-size", px(*style.FontSize)})
	}
	if style.FontWeight != nil {
		decls = append(decls, Declaration{"font-weight", formatNumber(*style.FontWeight)})
	}
	if style.LineHeightPx != nil {
		decls = append(decls, Declaration{"line-height", px(*style.LineHeightPx)})
	}
	if style.LetterSpacing != nil {
		decls = append(decls, Declaration{"letter-spacing", px(*style.LetterSpacing)})
	}
	if style.TextAlignHorizontal != "" {
		align, ok := textAlignments[style.TextAlignHorizontal]
		if !ok {
			align = "left"
		}
		decls = append(decls, Declaration{"text-align", align})
	}
	switch style.TextDecoration {
	case "UNDERLINE":
		decls = append(decls, Declaration{"text-decoration", "underline"})
	case "STRIKETHROUGH":
		decls = append(decls, Declaration{"text-decoration", "line-through"})
	}

	return decls
}

// borderDeclarations translates the first stroke into a uniform border. Only
// solid strokes are supported; the stroke weight defaults to 1 when absent.
func borderDeclarations(node *figma.Node) []Declaration {
	if len(node.Strokes) == 0 {
		return nil
	}
	stroke := node.Strokes[0]
	if stroke.Type != "SOLID" {
		return nil
	}

	weight := 1.0
	if stroke.StrokeWeight != nil {
		weight = *stroke.StrokeWeight
	}
	return []Declaration{{"border", fmt.Sprintf("%s solid %s", px(weight), resolveColor(stroke.Color))}}
}

// shadowDeclarations translates every drop shadow effect into its own
// box-shadow declaration, in source order. Other effect types are ignored.
func shadowDeclarations(node *figma.Node) []Declaration {
	var decls []Declaration
	for _, effect := range node.Effects {
		if effect.Type != "DROP_SHADOW" {
			continue
		}
		var offsetX, offsetY float64
		if effect.Offset != nil {
			offsetX, offsetY = effect.Offset.X, effect.Offset.Y
		}
		value := fmt.Sprintf("%s %s %s %s", px(offsetX), px(offsetY), px(effect.Radius), resolveColor(effect.Color))
		decls = append(decls, Declaration{"box-shadow", value})
	}
	return decls
}

// resolveColor converts a Figma color (0-1 float channels) to a CSS color
// string. Channels are truncated, not rounded, when scaled to 0-255. An alpha
// below 1 produces rgba() with the literal alpha value; a nil color resolves
// to the transparent sentinel.
func resolveColor(color *figma.Color) string {
	if color == nil {
		return transparentValue
	}

	r := int(color.R * 255)
	g := int(color.G * 255)
	b := int(color.B * 255)

	if color.A < 1 {
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatNumber(color.A))
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// resolveFill converts a fill list to a CSS background value, consulting only
// the first entry. Solid fills become a plain color. Linear gradients become a
// linear-gradient() built from the first stop only; multi-stop gradients are
// a known limitation. Everything else resolves to the transparent sentinel.
func resolveFill(fills []figma.Paint) string {
	if len(fills) == 0 {
		return transparentValue
	}

	fill := fills[0]
	switch fill.Type {
	case "SOLID":
		return resolveColor(fill.Color)
	case "GRADIENT_LINEAR":
		if len(fill.GradientStops) == 0 {
			return "linear-gradient(" + transparentValue + ")"
		}
		stop := fill.GradientStops[0]
		return fmt.Sprintf("linear-gradient(%s %d%%)", resolveColor(stop.Color), int(stop.Position*100))
	}
	return transparentValue
}

// formatNumber renders a float the shortest way that round-trips, so integral
// values print without a decimal part.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// px renders a numeric value as a CSS pixel length.
func px(v float64) string {
	return formatNumber(v) + "px"
}
