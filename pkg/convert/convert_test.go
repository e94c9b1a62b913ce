package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/figma-converter/pkg/figma"
)

func floatPtr(v float64) *float64 { return &v }

func TestClassName(t *testing.T) {
	tests := []struct {
		name string
		node figma.Node
		want string
	}{
		{
			name: "figma id with colon",
			node: figma.Node{ID: "1:2", Type: "FRAME"},
			want: "figma-frame-1-2",
		},
		{
			name: "instance id with semicolons",
			node: figma.Node{ID: "I5:3;0:12", Type: "INSTANCE"},
			want: "figma-instance-I5-3-0-12",
		},
		{
			name: "underscores and dashes survive",
			node: figma.Node{ID: "a_b-c", Type: "TEXT"},
			want: "figma-text-a_b-c",
		},
		{
			name: "missing type defaults to frame",
			node: figma.Node{ID: "9:9"},
			want: "figma-frame-9-9",
		},
		{
			name: "missing id defaults to unknown",
			node: figma.Node{Type: "GROUP"},
			want: "figma-group-unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassName(&tt.node))
		})
	}
}

func TestTagFor(t *testing.T) {
	assert.Equal(t, "p", tagFor("TEXT"))
	assert.Equal(t, "div", tagFor("FRAME"))
	assert.Equal(t, "div", tagFor("CANVAS"))
	assert.Equal(t, "div", tagFor("SOMETHING_NEW"))
}

func TestConvertBuildsFullElementTree(t *testing.T) {
	doc := figma.Node{
		ID:   "0:1",
		Type: "CANVAS",
		Children: []figma.Node{
			{ID: "1:1", Type: "TEXT", Characters: "Hello"},
			{ID: "1:2", Type: "FRAME", Characters: "ignored on non-text"},
		},
	}

	root, _ := Convert(&doc)

	assert.Equal(t, Element{
		Tag:   "div",
		Class: "figma-canvas-0-1",
		Children: []Element{
			{Tag: "p", Class: "figma-text-1-1", Text: "Hello"},
			{Tag: "div", Class: "figma-frame-1-2"},
		},
	}, root)
}

func TestConvertRuleOrderParentBeforeDescendants(t *testing.T) {
	doc := figma.Node{
		ID:                  "0:0",
		Type:                "DOCUMENT",
		AbsoluteBoundingBox: &figma.Rectangle{Width: 100, Height: 100},
		Children: []figma.Node{
			{
				ID:                  "1:1",
				Type:                "FRAME",
				AbsoluteBoundingBox: &figma.Rectangle{X: 10, Y: 10, Width: 50, Height: 50},
				Children: []figma.Node{
					{
						ID:                  "1:2",
						Type:                "TEXT",
						AbsoluteBoundingBox: &figma.Rectangle{X: 15, Y: 15, Width: 20, Height: 10},
					},
				},
			},
			{
				ID:                  "2:1",
				Type:                "FRAME",
				AbsoluteBoundingBox: &figma.Rectangle{X: 60, Width: 40, Height: 40},
			},
		},
	}

	_, rules := Convert(&doc)

	classes := make([]string, len(rules))
	for i, rule := range rules {
		classes[i] = rule.Class
	}
	assert.Equal(t, []string{
		"figma-document-0-0",
		"figma-frame-1-1",
		"figma-text-1-2",
		"figma-frame-2-1",
	}, classes)
}

func TestConvertPositionsRelativeToImmediateParent(t *testing.T) {
	// Each level subtracts only its direct container's origin, never an
	// accumulated offset from the document root.
	doc := figma.Node{
		ID:                  "0:0",
		Type:                "DOCUMENT",
		AbsoluteBoundingBox: &figma.Rectangle{X: 0, Y: 0, Width: 1000, Height: 1000},
		Children: []figma.Node{
			{
				ID:                  "1:1",
				Type:                "FRAME",
				AbsoluteBoundingBox: &figma.Rectangle{X: 100, Y: 200, Width: 500, Height: 400},
				Children: []figma.Node{
					{
						ID:                  "1:2",
						Type:                "RECTANGLE",
						AbsoluteBoundingBox: &figma.Rectangle{X: 130, Y: 260, Width: 50, Height: 40},
					},
				},
			},
		},
	}

	_, rules := Convert(&doc)
	require.Len(t, rules, 3)

	// Document root has no parent box, so absolute coordinates pass through.
	assert.Contains(t, rules[0].Declarations, Declaration{"left", "0px"})
	assert.Contains(t, rules[0].Declarations, Declaration{"top", "0px"})

	// The frame is offset against the document's box.
	assert.Contains(t, rules[1].Declarations, Declaration{"left", "100px"})
	assert.Contains(t, rules[1].Declarations, Declaration{"top", "200px"})

	// The rectangle is offset against the frame's box only.
	assert.Contains(t, rules[2].Declarations, Declaration{"left", "30px"})
	assert.Contains(t, rules[2].Declarations, Declaration{"top", "60px"})
}

func TestConvertChildOfBoxlessParentKeepsAbsoluteCoordinates(t *testing.T) {
	doc := figma.Node{
		ID:   "0:0",
		Type: "DOCUMENT",
		Children: []figma.Node{
			{
				ID:                  "1:1",
				Type:                "FRAME",
				AbsoluteBoundingBox: &figma.Rectangle{X: 100, Y: 200, Width: 10, Height: 10},
			},
		},
	}

	_, rules := Convert(&doc)

	// The boxless document contributes no rule, and its child keeps absolute
	// coordinates because there is no parent box to subtract.
	require.Len(t, rules, 1)
	assert.Equal(t, "figma-frame-1-1", rules[0].Class)
	assert.Contains(t, rules[0].Declarations, Declaration{"left", "100px"})
	assert.Contains(t, rules[0].Declarations, Declaration{"top", "200px"})
}

func TestConvertFrameWithTextChild(t *testing.T) {
	doc := figma.Node{
		ID:                  "1:0",
		Type:                "FRAME",
		AbsoluteBoundingBox: &figma.Rectangle{X: 0, Y: 0, Width: 800, Height: 600},
		Children: []figma.Node{
			{
				ID:                  "1:1",
				Type:                "TEXT",
				Characters:          "Hi",
				AbsoluteBoundingBox: &figma.Rectangle{X: 10, Y: 20, Width: 100, Height: 30},
				Fills: []figma.Paint{
					{Type: "SOLID", Color: &figma.Color{R: 1, G: 0, B: 0, A: 1}},
				},
			},
		},
	}

	root, rules := Convert(&doc)

	require.Len(t, root.Children, 1)
	text := root.Children[0]
	assert.Equal(t, "p", text.Tag)
	assert.Equal(t, "Hi", text.Text)

	require.Len(t, rules, 2)
	assert.Equal(t, "figma-text-1-1", rules[1].Class)
	assert.Equal(t, []Declaration{
		{"position", "absolute"},
		{"left", "10px"},
		{"top", "20px"},
		{"width", "100px"},
		{"height", "30px"},
		{"color", "rgb(255, 0, 0)"},
	}, rules[1].Declarations)
}

func TestConvertSuppressesEmptyRules(t *testing.T) {
	doc := figma.Node{
		ID:   "0:0",
		Type: "DOCUMENT",
		Children: []figma.Node{
			{ID: "1:1", Type: "GROUP"},
			{ID: "1:2", Type: "RECTANGLE", AbsoluteBoundingBox: &figma.Rectangle{Width: 5, Height: 5}},
		},
	}

	_, rules := Convert(&doc)

	require.Len(t, rules, 1)
	assert.Equal(t, "figma-rectangle-1-2", rules[0].Class)
}
