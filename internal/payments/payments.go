package payments

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/example/taxi-dispatch/internal/models"
	"github.com/example/taxi-dispatch/internal/observability"
)

// Processor settles fares for completed rides. Settlement is local and
// unconditional: there is no external gateway, no retry, no failure path.
type Processor struct {
	logger *slog.Logger
}

func NewProcessor(logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger}
}

// Process records a paid payment for the given amount. The amount is copied
// from the booking's fare by the caller, never re-derived here.
func (p *Processor) Process(amount float64) *models.Payment {
	pay := &models.Payment{
		ID:     "PAY-" + uuid.NewString(),
		Amount: amount,
	}
	pay.Paid = true

	observability.PaymentsTotal.Inc()
	if amount > 0 {
		// prometheus counters reject negative increments; a negative
		// distance produces a negative fare we still settle as-is.
		observability.PaymentAmountTotal.Add(amount)
	}
	p.logger.Info("payment processed", "payment_id", pay.ID, "amount", pay.Amount)
	return pay
}
