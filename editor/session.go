package editor

import (
	"errors"
	"fmt"
	"log"

	"colorized/models"
	"colorized/validation"
)

// ErrEditorClosed is returned by every operation once the editor has been confirmed.
var ErrEditorClosed = errors.New("editor is closed")

// State is the lifecycle state of an editing session.
type State int

const (
	// Editing is the initial state: sliders and fields accept input.
	Editing State = iota

	// Closed is terminal. It is entered exactly once, on Confirm.
	Closed
)

func (s State) String() string {
	if s == Closed {
		return "closed"
	}
	return "editing"
}

// ChannelEditor is the authoritative value of one channel.
// The slider, label and text field of that channel are all rendered from it.
type ChannelEditor struct {
	Channel models.Channel
	Value   float64
}

// Text returns the canonical two-decimal text shown in the label and the field.
func (c ChannelEditor) Text() string {
	return validation.FormatChannel(c.Value)
}

// Session holds the state of one color editing screen.
//
// Widgets never act as the source of truth. They report user input through
// SetSlider and CommitText, and re-render themselves from the callbacks
// registered with OnChannelChanged and OnPreviewChanged.
type Session struct {
	channels [3]ChannelEditor
	state    State

	// onConfirm receives the final color. It is called at most once.
	onConfirm func(models.Color)

	// Callbacks for notifying render targets when state changes
	onChannelChanged []func(ChannelEditor)
	onPreviewChanged []func(models.Color)
	onClosed         []func()
}

// NewSession creates an editing session seeded from initial.
//
// Parameters:
//   - initial: The color the editor starts from
//   - onConfirm: Called with the final color when the user confirms
//
// Returns:
//   - *Session: A session in the Editing state
func NewSession(initial models.Color, onConfirm func(models.Color)) *Session {
	s := &Session{
		state:     Editing,
		onConfirm: onConfirm,
	}
	for _, ch := range models.AllChannels {
		s.channels[ch] = ChannelEditor{Channel: ch, Value: initial.Component(ch)}
	}
	return s
}

// OnChannelChanged registers a render callback for channel updates.
// Multiple callbacks can be registered and will all be called in order.
func (s *Session) OnChannelChanged(callback func(ChannelEditor)) {
	s.onChannelChanged = append(s.onChannelChanged, callback)
}

// OnPreviewChanged registers a render callback for the live preview color.
func (s *Session) OnPreviewChanged(callback func(models.Color)) {
	s.onPreviewChanged = append(s.onPreviewChanged, callback)
}

// OnClosed registers a callback run after confirmation, once the
// confirmation callback has returned.
func (s *Session) OnClosed(callback func()) {
	s.onClosed = append(s.onClosed, callback)
}

// Sync pushes the current value of every channel and the preview to all
// render callbacks. Screens call it once after wiring their widgets.
func (s *Session) Sync() {
	for _, ch := range models.AllChannels {
		s.notifyChannel(ch)
	}
	s.notifyPreview()
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Channel returns the editor for ch.
func (s *Session) Channel(ch models.Channel) ChannelEditor {
	if !ch.Valid() {
		return ChannelEditor{Channel: ch}
	}
	return s.channels[ch]
}

// Preview composes the current channel values into a Color.
func (s *Session) Preview() models.Color {
	return models.NewColor(
		s.channels[models.Red].Value,
		s.channels[models.Green].Value,
		s.channels[models.Blue].Value,
	)
}

// SetSlider applies a slider movement. Slider values are in range by
// construction, so there is no validation beyond the session state.
func (s *Session) SetSlider(ch models.Channel, value float64) error {
	if err := s.checkEditable(ch); err != nil {
		return err
	}

	s.channels[ch].Value = value
	s.notifyChannel(ch)
	s.notifyPreview()
	return nil
}

// CommitText applies text typed into a channel field.
// On success the channel takes the parsed value and every render target is
// refreshed with the canonical text. On failure nothing changes and an
// *validation.InvalidChannelInputError is returned.
func (s *Session) CommitText(ch models.Channel, raw string) error {
	if err := s.checkEditable(ch); err != nil {
		return err
	}

	value, err := validation.ParseChannelInput(raw)
	if err != nil {
		log.Printf("[EDITOR] rejected %s input %q: %v", ch, raw, err)
		return fmt.Errorf("commit %s: %w", ch, err)
	}

	s.channels[ch].Value = value
	s.notifyChannel(ch)
	s.notifyPreview()
	return nil
}

// Revert re-renders ch from its last accepted value and returns that text.
// Screens call it when the invalid-input alert is dismissed.
func (s *Session) Revert(ch models.Channel) (string, error) {
	if err := s.checkEditable(ch); err != nil {
		return "", err
	}
	s.notifyChannel(ch)
	return s.channels[ch].Text(), nil
}

// Confirm hands the composed color to the confirmation callback and closes
// the session. A second call returns ErrEditorClosed.
func (s *Session) Confirm() (models.Color, error) {
	if s.state == Closed {
		return models.Color{}, ErrEditorClosed
	}

	final := s.Preview()
	s.state = Closed
	log.Printf("[EDITOR] confirmed color %s", final)

	if s.onConfirm != nil {
		s.onConfirm(final)
	}
	for _, callback := range s.onClosed {
		callback()
	}
	return final, nil
}

func (s *Session) checkEditable(ch models.Channel) error {
	if s.state == Closed {
		return ErrEditorClosed
	}
	if !ch.Valid() {
		return fmt.Errorf("unknown channel %s", ch)
	}
	return nil
}

func (s *Session) notifyChannel(ch models.Channel) {
	for _, callback := range s.onChannelChanged {
		callback(s.channels[ch])
	}
}

func (s *Session) notifyPreview() {
	preview := s.Preview()
	for _, callback := range s.onPreviewChanged {
		callback(preview)
	}
}
