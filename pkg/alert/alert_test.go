package alert

import (
	"errors"
	"strings"
	"testing"

	"chequetrack/models"

	"github.com/shopspring/decimal"
)

type recordingSender struct {
	bodies []string
	err    error
}

func (s *recordingSender) Send(body string) error {
	s.bodies = append(s.bodies, body)
	return s.err
}

func testCheque() models.Cheque {
	return models.Cheque{
		ChequeNumber: 42,
		ToPayee:      "Jane Doe",
		IssuedDate:   "2025-03-01",
		DueDate:      "2025-04-01",
		Amount:       decimal.RequireFromString("750.00"),
		Status:       models.StatusToday,
	}
}

func TestNotifyUnconfigured(t *testing.T) {
	d := NewDispatcher(nil)
	if d.Notify(testCheque()) {
		t.Fatal("unconfigured dispatcher must report false")
	}
}

func TestNotifyDeliveryFailure(t *testing.T) {
	s := &recordingSender{err: errors.New("provider rejected")}
	d := NewDispatcher(s)
	if d.Notify(testCheque()) {
		t.Fatal("failed delivery must report false")
	}
	if len(s.bodies) != 1 {
		t.Fatalf("delivery must have been attempted once, got %d", len(s.bodies))
	}
}

func TestNotifySuccess(t *testing.T) {
	s := &recordingSender{}
	d := NewDispatcher(s)
	if !d.Notify(testCheque()) {
		t.Fatal("accepted delivery must report true")
	}
	if len(s.bodies) != 1 || !strings.Contains(s.bodies[0], "Cheque Number: 42") {
		t.Fatalf("unexpected sent bodies: %v", s.bodies)
	}
}
