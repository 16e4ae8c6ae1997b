// ABOUTME: State, events, and effects for the API-key configuration form
// ABOUTME: Tracks section visibility, field values, flight flags, results

package form

import (
	"time"

	"github.com/Pixfeed1/monchatbot-sub001/internal/api"
	"github.com/Pixfeed1/monchatbot-sub001/internal/keys"
)

// Field holds one provider's editable credential inputs.
type Field struct {
	Key   string
	Model string
}

// ResultKind classifies the shared results panel content.
type ResultKind int

const (
	ResultNone ResultKind = iota
	ResultPending
	ResultSuccess
	ResultError
)

// Result is the shared results panel shown under whichever section is open.
type Result struct {
	Kind ResultKind
	Text string
}

// State is the whole configuration form. It is a value: Update returns a
// modified copy, never mutates in place.
type State struct {
	// Visible is the open provider section; empty means none. Sections
	// are mutually exclusive.
	Visible keys.Provider

	openai  Field
	mistral Field
	claude  Field

	TestInFlight bool
	SaveInFlight bool

	// LoadToken guards against stale load responses. Only a ConfigLoaded
	// event carrying the current token is applied.
	LoadToken string
	Loading   bool
	LoadError error

	Results        Result
	ResultsVisible bool

	// ReloadDelay is how long after a successful save the stored config
	// is re-fetched to confirm persistence.
	ReloadDelay time.Duration
}

// NewState returns the initial form state: nothing selected, all sections
// hidden, results panel hidden.
func NewState(reloadDelay time.Duration) State {
	return State{ReloadDelay: reloadDelay}
}

// Field returns the editable inputs for p.
func (s State) Field(p keys.Provider) Field {
	switch p {
	case keys.ProviderOpenAI:
		return s.openai
	case keys.ProviderMistral:
		return s.mistral
	case keys.ProviderClaude:
		return s.claude
	}
	return Field{}
}

func (s State) withField(p keys.Provider, f Field) State {
	switch p {
	case keys.ProviderOpenAI:
		s.openai = f
	case keys.ProviderMistral:
		s.mistral = f
	case keys.ProviderClaude:
		s.claude = f
	}
	return s
}

// FieldValid reports whether the visible section's key passes validation.
// With no section open there is nothing to validate.
func (s State) FieldValid() bool {
	if s.Visible == "" {
		return false
	}
	return keys.Valid(s.Visible, s.Field(s.Visible).Key)
}

// ShowInvalidMarker reports whether the visible key input should carry the
// invalid style. An empty field is neither flagged valid nor invalid.
func (s State) ShowInvalidMarker() bool {
	if s.Visible == "" {
		return false
	}
	return s.Field(s.Visible).Key != "" && !s.FieldValid()
}

// TestEnabled reports whether the live key test can be triggered.
func (s State) TestEnabled() bool {
	return s.FieldValid() && !s.TestInFlight
}

// SaveState is the save affordance's tri-state.
type SaveState int

const (
	SaveNoProvider SaveState = iota
	SaveInvalid
	SaveReady
)

// SaveAffordance derives the save action's tri-state purely from provider
// selection and current validity.
func (s State) SaveAffordance() SaveState {
	switch {
	case s.Visible == "":
		return SaveNoProvider
	case !s.FieldValid():
		return SaveInvalid
	}
	return SaveReady
}

// Enabled reports whether the save action is clickable.
func (ss SaveState) Enabled() bool { return ss == SaveReady }

// Label is the save action's caption for the tri-state.
func (ss SaveState) Label() string {
	switch ss {
	case SaveInvalid:
		return "Invalid API key"
	case SaveReady:
		return "Save configuration"
	}
	return "Select a provider"
}

// SaveEnabled folds the tri-state with the in-flight guard.
func (s State) SaveEnabled() bool {
	return s.SaveAffordance().Enabled() && !s.SaveInFlight
}

// Event is a discrete input to the reducer.
type Event interface{ isEvent() }

// EventInit starts the controller: sections forced hidden, stored config
// fetched.
type EventInit struct{}

// EventSelectProvider is the picker choosing a provider section.
type EventSelectProvider struct{ Provider keys.Provider }

// EventKeyChanged is a keystroke in the visible section's key input.
type EventKeyChanged struct{ Value string }

// EventModelChanged is an edit of the visible section's model input.
type EventModelChanged struct{ Value string }

// EventTestRequested triggers the live key test.
type EventTestRequested struct{}

// EventTestFinished is the key test's outcome.
type EventTestFinished struct {
	Message string
	Err     error
}

// EventSaveRequested triggers persisting the visible section's credential.
type EventSaveRequested struct{}

// EventSaveFinished is the save's outcome.
type EventSaveFinished struct {
	Message string
	Err     error
}

// EventReloadDue fires after the post-save delay to confirm persistence.
type EventReloadDue struct{}

// EventConfigLoaded delivers the stored config (or the failure) for the
// load identified by Token.
type EventConfigLoaded struct {
	Token  string
	Config *api.StoredConfig
	Err    error
}

func (EventInit) isEvent()           {}
func (EventSelectProvider) isEvent() {}
func (EventKeyChanged) isEvent()     {}
func (EventModelChanged) isEvent()   {}
func (EventTestRequested) isEvent()  {}
func (EventTestFinished) isEvent()   {}
func (EventSaveRequested) isEvent()  {}
func (EventSaveFinished) isEvent()   {}
func (EventReloadDue) isEvent()      {}
func (EventConfigLoaded) isEvent()   {}

// Effect is work the shell must perform after a reduction.
type Effect interface{ isEffect() }

// EffectFetchConfig asks the shell to fetch the stored config and deliver
// an EventConfigLoaded carrying Token.
type EffectFetchConfig struct{ Token string }

// EffectRunTest asks the shell to POST the live key test.
type EffectRunTest struct {
	Provider keys.Provider
	Key      string
	Model    string
}

// EffectRunSave asks the shell to persist the credential.
type EffectRunSave struct {
	Provider keys.Provider
	Key      string
	Model    string
}

// EffectScheduleReload asks the shell to deliver EventReloadDue after Delay.
type EffectScheduleReload struct{ Delay time.Duration }

func (EffectFetchConfig) isEffect()    {}
func (EffectRunTest) isEffect()        {}
func (EffectRunSave) isEffect()        {}
func (EffectScheduleReload) isEffect() {}
