package figma

import "encoding/json"

// FileResponse represents the response from the Figma file API endpoint.
// It contains the file metadata and the document tree rooted at Document.
type FileResponse struct {
	Name          string `json:"name"`
	LastModified  string `json:"lastModified"`
	ThumbnailURL  string `json:"thumbnailUrl"`
	Version       string `json:"version"`
	Document      Node   `json:"document"`
	SchemaVersion int    `json:"schemaVersion"`
}

// Node represents a single element in the Figma document tree hierarchy.
// Nodes can be frames, groups, text, shapes, or other Figma elements, each
// with their own fills, strokes, effects, layout settings, and children.
//
// Numeric fields that are translated only when present in the payload
// (padding sides, item spacing, corner radius) are pointers so that an
// absent field and an explicit zero remain distinguishable.
type Node struct {
	ID                    string            `json:"id"`
	Name                  string            `json:"name"`
	Type                  string            `json:"type"`
	Children              []Node            `json:"children,omitempty"`
	Characters            string            `json:"characters,omitempty"`
	Fills                 []Paint           `json:"fills,omitempty"`
	Strokes               []Paint           `json:"strokes,omitempty"`
	Effects               []Effect          `json:"effects,omitempty"`
	Style                 *TypeStyle        `json:"style,omitempty"`
	AbsoluteBoundingBox   *Rectangle        `json:"absoluteBoundingBox,omitempty"`
	Constraints           *LayoutConstraint `json:"constraints,omitempty"`
	LayoutMode            string            `json:"layoutMode,omitempty"`
	PrimaryAxisAlignItems string            `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems string            `json:"counterAxisAlignItems,omitempty"`
	PaddingLeft           *float64          `json:"paddingLeft,omitempty"`
	PaddingRight          *float64          `json:"paddingRight,omitempty"`
	PaddingTop            *float64          `json:"paddingTop,omitempty"`
	PaddingBottom         *float64          `json:"paddingBottom,omitempty"`
	ItemSpacing           *float64          `json:"itemSpacing,omitempty"`
	CornerRadius          *float64          `json:"cornerRadius,omitempty"`
}

// Color represents an RGBA color with float channels ranging from 0 to 1.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// UnmarshalJSON decodes a color, defaulting a missing alpha channel to 1
// (fully opaque).
func (c *Color) UnmarshalJSON(data []byte) error {
	var raw struct {
		R float64  `json:"r"`
		G float64  `json:"g"`
		B float64  `json:"b"`
		A *float64 `json:"a"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.R, c.G, c.B = raw.R, raw.G, raw.B
	if raw.A != nil {
		c.A = *raw.A
	} else {
		c.A = 1
	}
	return nil
}

// Paint represents a fill or stroke applied to a Figma node. The paint type
// (SOLID, GRADIENT_LINEAR, ...) determines which of the remaining fields
// carry data: solid paints have a Color, gradients have GradientStops, and
// stroke paints may carry a StrokeWeight.
type Paint struct {
	Type          string         `json:"type"`
	Visible       bool           `json:"visible,omitempty"`
	Opacity       *float64       `json:"opacity,omitempty"`
	Color         *Color         `json:"color,omitempty"`
	GradientStops []GradientStop `json:"gradientStops,omitempty"`
	StrokeWeight  *float64       `json:"strokeWeight,omitempty"`
}

// GradientStop is one color stop of a gradient paint. Position runs from 0
// (gradient start) to 1 (gradient end).
type GradientStop struct {
	Color    *Color  `json:"color,omitempty"`
	Position float64 `json:"position"`
}

// Effect represents a visual effect applied to a Figma node such as drop
// shadows, inner shadows, or blur effects.
type Effect struct {
	Type      string  `json:"type"`
	Visible   bool    `json:"visible,omitempty"`
	Radius    float64 `json:"radius,omitempty"`
	Color     *Color  `json:"color,omitempty"`
	Offset    *Vector `json:"offset,omitempty"`
	Spread    float64 `json:"spread,omitempty"`
	BlendMode string  `json:"blendMode,omitempty"`
}

// Vector represents a 2D coordinate or offset with X and Y values.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TypeStyle represents the text styling properties of a TEXT node: font
// family, weight, size, line height, letter spacing, alignment, and
// decoration. The numeric fields are pointers for the same presence rule
// as Node.
type TypeStyle struct {
	FontFamily          string   `json:"fontFamily,omitempty"`
	FontPostScriptName  string   `json:"fontPostScriptName,omitempty"`
	FontWeight          *float64 `json:"fontWeight,omitempty"`
	FontSize            *float64 `json:"fontSize,omitempty"`
	LineHeightPx        *float64 `json:"lineHeightPx,omitempty"`
	LineHeightPercent   float64  `json:"lineHeightPercent,omitempty"`
	LetterSpacing       *float64 `json:"letterSpacing,omitempty"`
	TextAlignHorizontal string   `json:"textAlignHorizontal,omitempty"`
	TextAlignVertical   string   `json:"textAlignVertical,omitempty"`
	TextDecoration      string   `json:"textDecoration,omitempty"`
}

// Rectangle represents a bounding box with position (X, Y) and dimensions
// (Width, Height). Bounding boxes in a file response are absolute document
// coordinates, never parent-relative.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// LayoutConstraint defines how a node's position behaves when its parent is
// resized. Constraints can be set for both axes (TOP, BOTTOM, LEFT, RIGHT,
// CENTER, SCALE).
type LayoutConstraint struct {
	Vertical   string `json:"vertical"`
	Horizontal string `json:"horizontal"`
}
