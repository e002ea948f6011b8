package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// ErrNoHandler is returned by Click when the button was built without a
// HandleClick action.
var ErrNoHandler = errors.New("button has no click handler")

// ButtonType is the visual variant of a button.
type ButtonType string

const (
	Primary   ButtonType = "primary"
	Secondary ButtonType = "secondary"
)

// Valid reports whether t is a known variant.
func (t ButtonType) Valid() bool {
	return t == Primary || t == Secondary
}

// ParseButtonType reads a variant name, ignoring case and surrounding space.
func ParseButtonType(s string) (ButtonType, error) {
	t := ButtonType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown button type %q", s)
	}
	return t, nil
}

// ButtonSize is the visual size of a button.
type ButtonSize string

const (
	Small  ButtonSize = "small"
	Medium ButtonSize = "medium"
	Large  ButtonSize = "large"
)

// Valid reports whether s is a known size.
func (s ButtonSize) Valid() bool {
	return s == Small || s == Medium || s == Large
}

// ParseButtonSize reads a size name, ignoring case and surrounding space.
func ParseButtonSize(s string) (ButtonSize, error) {
	size := ButtonSize(strings.ToLower(strings.TrimSpace(s)))
	if !size.Valid() {
		return "", fmt.Errorf("unknown button size %q", s)
	}
	return size, nil
}

// ClickFunc is the action run when a button is pressed.
type ClickFunc func(ctx context.Context) error

// GeneralButton is the shared call-to-action button. A server-rendered
// button reaches its HandleClick through a POST to Action.
type GeneralButton struct {
	Type        ButtonType
	Size        ButtonSize
	HandleClick ClickFunc
	Action      string
}

func (b GeneralButton) variant() ButtonType {
	if b.Type == "" {
		return Primary
	}
	return b.Type
}

func (b GeneralButton) size() ButtonSize {
	if b.Size == "" {
		return Medium
	}
	return b.Size
}

// Classes returns the class list applied to the <button> element.
func (b GeneralButton) Classes() string {
	return templ.Classes(
		"general-button",
		"general-button--"+string(b.variant()),
		"general-button--"+string(b.size()),
	).String()
}

// Click runs the button's action.
func (b GeneralButton) Click(ctx context.Context) error {
	if b.HandleClick == nil {
		return ErrNoHandler
	}
	return b.HandleClick(ctx)
}

// Render wraps children in the button markup.
func (b GeneralButton) Render(children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if b.Action != "" {
			if _, err := io.WriteString(w, `<form method="post" action="`+templ.EscapeString(b.Action)+`" class="general-button-form">`); err != nil {
				return err
			}
		}

		kind := "button"
		if b.Action != "" {
			kind = "submit"
		}
		open := fmt.Sprintf(`<button type="%s" class="%s" data-type="%s" data-size="%s">`,
			kind,
			templ.EscapeString(b.Classes()),
			templ.EscapeString(string(b.variant())),
			templ.EscapeString(string(b.size())),
		)
		if _, err := io.WriteString(w, open); err != nil {
			return err
		}
		if children != nil {
			if err := children.Render(ctx, w); err != nil {
				return fmt.Errorf("render button children: %w", err)
			}
		}
		if _, err := io.WriteString(w, `</button>`); err != nil {
			return err
		}

		if b.Action != "" {
			if _, err := io.WriteString(w, `</form>`); err != nil {
				return err
			}
		}
		return nil
	})
}

// Text renders s as escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}
