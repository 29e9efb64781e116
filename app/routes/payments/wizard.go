package payments

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// The Yemen payment wizard is a strictly linear stepper. Its state lives in
// memory only and is lost when the session expires; completing it never
// writes a payment row.

type WizardStep string

const (
	StepMethod       WizardStep = "method"
	StepDetails      WizardStep = "details"
	StepReceipt      WizardStep = "receipt"
	StepConfirmation WizardStep = "confirmation"
)

var (
	ErrMethodRequired   = errors.New("a payment method must be selected first")
	ErrProviderRequired = errors.New("a provider must be selected first")
	ErrReceiptRequired  = errors.New("a receipt file must be attached first")
	ErrWizardComplete   = errors.New("the wizard is already at confirmation")
	ErrAtFirstStep      = errors.New("already at the first step")
	ErrNotConfirmable   = errors.New("the wizard has not reached confirmation")
	ErrWizardNotFound   = errors.New("wizard session not found or expired")
)

// Providers accepted at the details step.
var wizardProviders = map[string]bool{
	"bank":     true,
	"exchange": true,
	"wallet":   true,
}

// WizardState is one in-flight wizard session.
type WizardState struct {
	ID         string     `json:"id"`
	Step       WizardStep `json:"step"`
	Method     string     `json:"method,omitempty"`
	Provider   string     `json:"provider,omitempty"`
	ReceiptRef string     `json:"receipt_ref,omitempty"`
	StartedAt  time.Time  `json:"started_at"`
}

// NewWizard starts a session at the method step.
func NewWizard() *WizardState {
	return &WizardState{
		ID:        uuid.New().String(),
		Step:      StepMethod,
		StartedAt: time.Now(),
	}
}

// SelectMethod records the chosen payment method. Only meaningful on the
// method step but accepted on any step before confirmation.
func (w *WizardState) SelectMethod(method string) error {
	if w.Step == StepConfirmation {
		return ErrWizardComplete
	}
	if method == "" {
		return ErrMethodRequired
	}
	w.Method = method
	return nil
}

// SelectProvider records the sub-provider (bank, exchange or wallet).
func (w *WizardState) SelectProvider(provider string) error {
	if w.Step == StepConfirmation {
		return ErrWizardComplete
	}
	if !wizardProviders[provider] {
		return ErrProviderRequired
	}
	w.Provider = provider
	return nil
}

// AttachReceipt records the uploaded receipt reference. Presence of the
// reference alone gates progression to confirmation.
func (w *WizardState) AttachReceipt(ref string) error {
	if w.Step == StepConfirmation {
		return ErrWizardComplete
	}
	if ref == "" {
		return ErrReceiptRequired
	}
	w.ReceiptRef = ref
	return nil
}

// Next advances one step; each transition has a guard and a failed guard
// leaves the wizard where it is.
func (w *WizardState) Next() error {
	switch w.Step {
	case StepMethod:
		if w.Method == "" {
			return ErrMethodRequired
		}
		w.Step = StepDetails
	case StepDetails:
		if w.Provider == "" {
			return ErrProviderRequired
		}
		w.Step = StepReceipt
	case StepReceipt:
		if w.ReceiptRef == "" {
			return ErrReceiptRequired
		}
		w.Step = StepConfirmation
	case StepConfirmation:
		return ErrWizardComplete
	}
	return nil
}

// Back steps backwards. There is no back-transition from confirmation.
func (w *WizardState) Back() error {
	switch w.Step {
	case StepMethod:
		return ErrAtFirstStep
	case StepDetails:
		w.Step = StepMethod
	case StepReceipt:
		w.Step = StepDetails
	case StepConfirmation:
		return ErrWizardComplete
	}
	return nil
}

// Confirm finishes the wizard. It intentionally performs no write; the flow
// ends with an acknowledgement only.
func (w *WizardState) Confirm() error {
	if w.Step != StepConfirmation {
		return ErrNotConfirmable
	}
	return nil
}

// wizardSessions holds in-flight sessions. Abandoned sessions are dropped
// after the TTL; their state is unrecoverable, matching the
// navigate-away-loses-everything behavior.
const wizardTTL = 30 * time.Minute

type wizardStore struct {
	mu       sync.Mutex
	sessions map[string]*WizardState
}

var wizards = &wizardStore{sessions: make(map[string]*WizardState)}

func (s *wizardStore) start() *WizardState {
	w := NewWizard()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prune()
	s.sessions[w.ID] = w
	return w
}

// get returns a snapshot of a session.
func (s *wizardStore) get(id string) (WizardState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prune()
	w, ok := s.sessions[id]
	if !ok {
		return WizardState{}, false
	}
	return *w, true
}

// update applies fn to a session under the lock and returns the resulting
// snapshot. The guard error, if any, is passed through.
func (s *wizardStore) update(id string, fn func(*WizardState) error) (WizardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prune()
	w, ok := s.sessions[id]
	if !ok {
		return WizardState{}, ErrWizardNotFound
	}
	err := fn(w)
	return *w, err
}

func (s *wizardStore) drop(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// prune is called with the lock held.
func (s *wizardStore) prune() {
	cutoff := time.Now().Add(-wizardTTL)
	for id, w := range s.sessions {
		if w.StartedAt.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
