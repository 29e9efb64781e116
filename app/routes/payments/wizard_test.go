package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizardHappyPath(t *testing.T) {
	w := NewWizard()
	assert.Equal(t, StepMethod, w.Step)

	require.NoError(t, w.SelectMethod("bank_transfer"))
	require.NoError(t, w.Next())
	assert.Equal(t, StepDetails, w.Step)

	require.NoError(t, w.SelectProvider("bank"))
	require.NoError(t, w.Next())
	assert.Equal(t, StepReceipt, w.Step)

	require.NoError(t, w.AttachReceipt("receipts/abc123.jpg"))
	require.NoError(t, w.Next())
	assert.Equal(t, StepConfirmation, w.Step)

	require.NoError(t, w.Confirm())
}

func TestWizardMethodGate(t *testing.T) {
	w := NewWizard()

	err := w.Next()
	assert.ErrorIs(t, err, ErrMethodRequired)
	assert.Equal(t, StepMethod, w.Step)
}

func TestWizardProviderGate(t *testing.T) {
	w := NewWizard()
	require.NoError(t, w.SelectMethod("wallet_transfer"))
	require.NoError(t, w.Next())

	err := w.Next()
	assert.ErrorIs(t, err, ErrProviderRequired)
	assert.Equal(t, StepDetails, w.Step)

	// Unknown providers are rejected too.
	assert.ErrorIs(t, w.SelectProvider("paypal"), ErrProviderRequired)
}

func TestWizardReceiptGate(t *testing.T) {
	w := NewWizard()
	require.NoError(t, w.SelectMethod("bank_transfer"))
	require.NoError(t, w.Next())
	require.NoError(t, w.SelectProvider("exchange"))
	require.NoError(t, w.Next())

	err := w.Next()
	assert.ErrorIs(t, err, ErrReceiptRequired)
	assert.Equal(t, StepReceipt, w.Step)

	assert.ErrorIs(t, w.AttachReceipt(""), ErrReceiptRequired)
}

func TestWizardNoBackFromConfirmation(t *testing.T) {
	w := NewWizard()
	require.NoError(t, w.SelectMethod("bank_transfer"))
	require.NoError(t, w.Next())
	require.NoError(t, w.SelectProvider("bank"))
	require.NoError(t, w.Next())
	require.NoError(t, w.AttachReceipt("ref"))
	require.NoError(t, w.Next())

	assert.ErrorIs(t, w.Back(), ErrWizardComplete)
	assert.Equal(t, StepConfirmation, w.Step)

	// Backwards navigation works on the middle steps.
	w2 := NewWizard()
	require.NoError(t, w2.SelectMethod("m"))
	require.NoError(t, w2.Next())
	require.NoError(t, w2.Back())
	assert.Equal(t, StepMethod, w2.Step)
	assert.ErrorIs(t, w2.Back(), ErrAtFirstStep)
}

func TestWizardConfirmOnlyAtConfirmation(t *testing.T) {
	w := NewWizard()
	assert.ErrorIs(t, w.Confirm(), ErrNotConfirmable)
}

func TestWizardStoreSessionLifecycle(t *testing.T) {
	w := wizards.start()

	got, ok := wizards.get(w.ID)
	require.True(t, ok)
	assert.Equal(t, StepMethod, got.Step)

	snap, err := wizards.update(w.ID, func(w *WizardState) error {
		return w.SelectMethod("bank_transfer")
	})
	require.NoError(t, err)
	assert.Equal(t, "bank_transfer", snap.Method)

	wizards.drop(w.ID)
	_, ok = wizards.get(w.ID)
	assert.False(t, ok)

	_, err = wizards.update(w.ID, func(w *WizardState) error { return nil })
	assert.ErrorIs(t, err, ErrWizardNotFound)
}
