// Package contact renders the Contact section of the landing page.
package contact

import (
	"context"
	"errors"
	"io"

	"github.com/a-h/templ"

	"github.com/fluidity-money/contact/internal/ui"
)

const (
	Label         = "Contact"
	ButtonLabel   = "SUBSCRIBE"
	SubscribePath = "/contact/subscribe"
)

// ErrNotImplemented is returned by the subscribe action until a real
// subscription backend exists.
var ErrNotImplemented = errors.New("function not implemented")

// Subscribe is the SUBSCRIBE button's click action.
func Subscribe(ctx context.Context) error {
	return ErrNotImplemented
}

// Button is the configuration of the SUBSCRIBE button.
func Button() ui.GeneralButton {
	return ui.GeneralButton{
		Type:        ui.Primary,
		Size:        ui.Small,
		HandleClick: Subscribe,
		Action:      SubscribePath,
	}
}

// Contact renders the section. It takes no input, so every render is
// identical.
func Contact() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		open := `<div class="` + templ.EscapeString(ui.ContactStyles.Class("container")) + `">` +
			`<div>` + templ.EscapeString(Label) + `</div>`
		if _, err := io.WriteString(w, open); err != nil {
			return err
		}
		if err := Button().Render(ui.Text(ButtonLabel)).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
