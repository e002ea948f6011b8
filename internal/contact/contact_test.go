package contact

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/fluidity-money/contact/internal/ui"
)

const want = `<div class="Contact_container"><div>Contact</div>` +
	`<form method="post" action="/contact/subscribe" class="general-button-form">` +
	`<button type="submit" class="general-button general-button--primary general-button--small" data-type="primary" data-size="small">SUBSCRIBE</button>` +
	`</form></div>`

func renderContact(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Contact().Render(context.Background(), &buf))
	return buf.String()
}

func TestContactMarkup(t *testing.T) {
	assert.Equal(t, want, renderContact(t))
}

func TestContactStructure(t *testing.T) {
	nodes, err := html.ParseFragment(strings.NewReader(renderContact(t)), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	container := nodes[0]
	assert.Equal(t, "div", container.Data)
	require.NotEmpty(t, container.Attr)
	assert.Equal(t, ui.ContactStyles.Class("container"), container.Attr[0].Val)

	label := container.FirstChild
	require.NotNil(t, label)
	assert.Equal(t, "div", label.Data)
	assert.Equal(t, Label, label.FirstChild.Data)

	form := label.NextSibling
	require.NotNil(t, form)
	assert.Equal(t, "form", form.Data)

	btn := form.FirstChild
	require.NotNil(t, btn)
	assert.Equal(t, "button", btn.Data)
	assert.Equal(t, ButtonLabel, btn.FirstChild.Data)
}

func TestButtonConfiguration(t *testing.T) {
	b := Button()
	assert.Equal(t, ui.Primary, b.Type)
	assert.Equal(t, ui.Small, b.Size)
	assert.Equal(t, SubscribePath, b.Action)
	assert.NotNil(t, b.HandleClick)
}

func TestRepeatedRendersAreIdentical(t *testing.T) {
	first := renderContact(t)
	for range 10 {
		assert.Equal(t, first, renderContact(t))
	}
}

// Subscribing has no backend yet; replace this once it does.
func TestSubscribeNotImplemented(t *testing.T) {
	err := Button().Click(context.Background())
	assert.ErrorIs(t, err, ErrNotImplemented)
	assert.EqualError(t, Subscribe(context.Background()), "function not implemented")
}
