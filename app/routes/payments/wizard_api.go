package payments

import (
	"errors"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"alandalus-portal/app/helpers"
	"alandalus-portal/app/services/storage"
)

// receiptUploader stores wizard receipts when file storage is configured.
// Without it the receipt is held by filename only, which still satisfies
// the step gate.
var receiptUploader storage.Uploader

// StartWizardAPI opens a new wizard session at the method step.
func StartWizardAPI(c *fiber.Ctx) error {
	w := wizards.start()
	return c.JSON(fiber.Map{"success": true, "wizard": w})
}

// GetWizardAPI returns the current session state.
func GetWizardAPI(c *fiber.Ctx) error {
	w, ok := wizards.get(c.Params("id"))
	if !ok {
		return helpers.Error(c, 404, "Wizard session not found or expired")
	}
	return c.JSON(fiber.Map{"success": true, "wizard": w})
}

func wizardMutation(c *fiber.Ctx, fn func(*WizardState) error) error {
	w, err := wizards.update(c.Params("id"), fn)
	if err != nil {
		if errors.Is(err, ErrWizardNotFound) {
			return helpers.Error(c, 404, "Wizard session not found or expired")
		}
		// Guard rejections leave the wizard on its current step.
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error(), "wizard": w})
	}
	return c.JSON(fiber.Map{"success": true, "wizard": w})
}

// SelectMethodAPI records the chosen payment method.
func SelectMethodAPI(c *fiber.Ctx) error {
	var body struct {
		Method string `json:"method"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, 400, "Invalid request body")
	}
	return wizardMutation(c, func(w *WizardState) error {
		return w.SelectMethod(body.Method)
	})
}

// SelectProviderAPI records the sub-provider on the details step.
func SelectProviderAPI(c *fiber.Ctx) error {
	var body struct {
		Provider string `json:"provider"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helpers.Error(c, 400, "Invalid request body")
	}
	return wizardMutation(c, func(w *WizardState) error {
		return w.SelectProvider(body.Provider)
	})
}

// AttachReceiptAPI accepts the receipt file. When storage is configured the
// file is uploaded and its URL kept as the reference; otherwise the filename
// alone serves as the gate.
func AttachReceiptAPI(c *fiber.Ctx) error {
	fh, err := c.FormFile("receipt")
	if err != nil {
		return helpers.Error(c, 400, "A receipt file is required")
	}

	ref := fh.Filename
	if receiptUploader != nil {
		f, err := fh.Open()
		if err != nil {
			return helpers.Error(c, 500, "Failed to read receipt file")
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return helpers.Error(c, 500, "Failed to read receipt file")
		}

		url, err := receiptUploader.UploadBytes(c.Context(), "receipts", c.Params("id"), b)
		if err != nil {
			log.Printf("Receipt upload failed: %v", err)
			return helpers.Error(c, 500, "Failed to store receipt file")
		}
		ref = url
	}

	return wizardMutation(c, func(w *WizardState) error {
		return w.AttachReceipt(ref)
	})
}

// NextStepAPI advances the wizard one step, subject to the step guard.
func NextStepAPI(c *fiber.Ctx) error {
	return wizardMutation(c, func(w *WizardState) error {
		return w.Next()
	})
}

// BackStepAPI steps backwards. Confirmation has no back-transition.
func BackStepAPI(c *fiber.Ctx) error {
	return wizardMutation(c, func(w *WizardState) error {
		return w.Back()
	})
}

// ConfirmWizardAPI completes the flow. No payment row is written; the
// session is dropped and an acknowledgement returned.
func ConfirmWizardAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	w, err := wizards.update(id, func(w *WizardState) error {
		return w.Confirm()
	})
	if err != nil {
		if errors.Is(err, ErrWizardNotFound) {
			return helpers.Error(c, 404, "Wizard session not found or expired")
		}
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error(), "wizard": w})
	}

	wizards.drop(id)
	return c.JSON(fiber.Map{"success": true, "message": "Payment instructions confirmed"})
}
