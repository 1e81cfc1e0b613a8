// Package alert delivers best-effort cheque creation notices over an
// external messaging channel. Delivery never blocks or fails the operation
// that triggered it; outcomes surface only in logs.
package alert

import (
	"log"

	"chequetrack/models"
)

// Sender delivers a single text message to the preconfigured recipient.
type Sender interface {
	Send(body string) error
}

// Dispatcher formats and sends cheque alerts through its Sender.
type Dispatcher struct {
	sender Sender
}

// NewDispatcher wraps a Sender. A nil sender is valid and turns every
// Notify into a silent no-op.
func NewDispatcher(sender Sender) *Dispatcher {
	return &Dispatcher{sender: sender}
}

// Notify sends an alert for a newly created cheque. It reports whether the
// provider accepted the message; an unconfigured channel or a delivery
// failure both yield false, never an error.
func (d *Dispatcher) Notify(cheque models.Cheque) bool {
	if d == nil || d.sender == nil {
		log.Println("alert channel not configured, skipping cheque alert")
		return false
	}
	if err := d.sender.Send(FormatChequeMessage(cheque)); err != nil {
		log.Printf("failed to send cheque alert: %v", err)
		return false
	}
	log.Printf("cheque alert sent for cheque #%d", cheque.ChequeNumber)
	return true
}
