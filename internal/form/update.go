// ABOUTME: Reducer for the configuration form: (State, Event) -> State+effects
// ABOUTME: Owns the section-visibility transitions and the request guards

package form

import (
	"errors"

	"github.com/google/uuid"

	"github.com/Pixfeed1/monchatbot-sub001/internal/api"
	"github.com/Pixfeed1/monchatbot-sub001/internal/keys"
)

// connectionErrorText is the uniform message for transport-level failures.
// Server-supplied reasons are only shown for business-level failures.
const connectionErrorText = "Connection error - check the server and try again"

// Update applies one event and returns the next state plus any effects the
// shell must run. It never blocks and never performs I/O itself.
func Update(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case EventInit:
		// Sections are forced hidden before the load completes so no
		// stale selection shows while the stored config is in flight.
		s.Visible = ""
		s.ResultsVisible = false
		return beginLoad(s)

	case EventSelectProvider:
		if !keys.Known(ev.Provider) {
			return s, nil
		}
		return transition(s, ev.Provider), nil

	case EventKeyChanged:
		if s.Visible == "" {
			return s, nil
		}
		f := s.Field(s.Visible)
		f.Key = ev.Value
		return s.withField(s.Visible, f), nil

	case EventModelChanged:
		if s.Visible == "" {
			return s, nil
		}
		f := s.Field(s.Visible)
		f.Model = ev.Value
		return s.withField(s.Visible, f), nil

	case EventTestRequested:
		if !s.TestEnabled() {
			return s, nil
		}
		f := s.Field(s.Visible)
		s.TestInFlight = true
		s.Results = Result{Kind: ResultPending, Text: "Testing API key..."}
		s.ResultsVisible = true
		return s, []Effect{EffectRunTest{
			Provider: s.Visible,
			Key:      f.Key,
			Model:    modelOrDefault(s.Visible, f.Model),
		}}

	case EventTestFinished:
		s.TestInFlight = false
		s.Results = outcome(ev.Message, ev.Err, "API key is working")
		s.ResultsVisible = true
		return s, nil

	case EventSaveRequested:
		if !s.SaveEnabled() {
			return s, nil
		}
		f := s.Field(s.Visible)
		s.SaveInFlight = true
		s.Results = Result{Kind: ResultPending, Text: "Saving configuration..."}
		s.ResultsVisible = true
		return s, []Effect{EffectRunSave{
			Provider: s.Visible,
			Key:      f.Key,
			Model:    modelOrDefault(s.Visible, f.Model),
		}}

	case EventSaveFinished:
		s.SaveInFlight = false
		s.Results = outcome(ev.Message, ev.Err, "Configuration saved")
		s.ResultsVisible = true
		if ev.Err != nil {
			return s, nil
		}
		// Re-fetch after a delay to confirm the save actually persisted.
		return s, []Effect{EffectScheduleReload{Delay: s.ReloadDelay}}

	case EventReloadDue:
		return beginLoad(s)

	case EventConfigLoaded:
		if ev.Token != s.LoadToken {
			// A newer load superseded this response.
			return s, nil
		}
		s.Loading = false
		if ev.Err != nil {
			s.LoadError = ev.Err
			return s, nil
		}
		s.LoadError = nil
		if ev.Config == nil || !keys.Known(ev.Config.Provider) {
			return s, nil
		}
		// Re-enter the visibility machine through the same transition
		// the picker uses, then populate the stored credential.
		p := ev.Config.Provider
		s = transition(s, p)
		s = s.withField(p, Field{
			Key:   ev.Config.Key(p),
			Model: ev.Config.Model(p),
		})
		return s, nil
	}

	return s, nil
}

// transition hides every section, reveals exactly target plus the shared
// results panel, and re-validates target's current field value. Hiding an
// already-hidden section is a no-op, so the transition is idempotent.
func transition(s State, target keys.Provider) State {
	s.Visible = ""
	s.Visible = target
	s.ResultsVisible = true
	// Validation is derived (FieldValid), so revealing the section is all
	// the re-run amounts to here.
	return s
}

// beginLoad mints a fresh load token and emits the fetch effect. Responses
// for earlier tokens are dropped by EventConfigLoaded.
func beginLoad(s State) (State, []Effect) {
	s.Loading = true
	s.LoadToken = uuid.New().String()
	return s, []Effect{EffectFetchConfig{Token: s.LoadToken}}
}

func modelOrDefault(p keys.Provider, model string) string {
	if model == "" {
		return keys.DefaultModel(p)
	}
	return model
}

// outcome maps a request result onto the results panel: server reasons for
// business failures, one generic line for transport failures.
func outcome(message string, err error, fallback string) Result {
	if err == nil {
		if message == "" {
			message = fallback
		}
		return Result{Kind: ResultSuccess, Text: message}
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return Result{Kind: ResultError, Text: apiErr.Error()}
	}
	return Result{Kind: ResultError, Text: connectionErrorText}
}
