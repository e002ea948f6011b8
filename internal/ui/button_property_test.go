//go:build property
// +build property

package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestButtonProperties checks class mapping and render stability for every
// variant and size.
func TestButtonProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	types := gen.OneConstOf(Primary, Secondary)
	sizes := gen.OneConstOf(Small, Medium, Large)

	properties.Property("classes reflect type and size", prop.ForAll(
		func(bt ButtonType, size ButtonSize) bool {
			classes := GeneralButton{Type: bt, Size: size}.Classes()
			return strings.Contains(classes, "general-button--"+string(bt)) &&
				strings.Contains(classes, "general-button--"+string(size))
		},
		types, sizes,
	))

	properties.Property("render is deterministic", prop.ForAll(
		func(bt ButtonType, size ButtonSize, label string) bool {
			b := GeneralButton{Type: bt, Size: size, Action: "/x"}
			var first, second bytes.Buffer
			if err := b.Render(Text(label)).Render(context.Background(), &first); err != nil {
				return false
			}
			if err := b.Render(Text(label)).Render(context.Background(), &second); err != nil {
				return false
			}
			return first.String() == second.String()
		},
		types, sizes, gen.AlphaString(),
	))

	properties.TestingRun(t)
}
