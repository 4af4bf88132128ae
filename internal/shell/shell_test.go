package shell

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/example/taxi-dispatch/internal/dispatch"
	"github.com/example/taxi-dispatch/internal/models"
	"github.com/example/taxi-dispatch/internal/payments"
)

// run feeds a scripted session into the shell and returns everything it
// printed. The fixture mirrors the seeded demo fleet.
func run(t *testing.T, input string) string {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sys := dispatch.NewSystem(payments.NewProcessor(logger), logger)
	sys.AddVehicle("TAXI001", "Toyota Corolla", models.Standard)
	sys.AddVehicle("LUX001", "Mercedes S-Class", models.Luxury)
	sys.AddUser("USER001", "John Doe")

	var out bytes.Buffer
	if err := New(sys, strings.NewReader(input), &out).Run(); err != nil {
		t.Fatalf("shell error: %v", err)
	}
	return out.String()
}

func TestBookAndExit(t *testing.T) {
	out := run(t, "1 USER001 5 5")
	if !strings.Contains(out, "Taxi booked successfully! Fare: 50") {
		t.Fatalf("missing booking confirmation in output:\n%s", out)
	}
	if !strings.Contains(out, "Exiting the system. Goodbye!") {
		t.Fatalf("missing exit message in output:\n%s", out)
	}
}

func TestCompleteAndHistory(t *testing.T) {
	out := run(t, "1 USER001 5 2 TAXI001 3 USER001 5")
	for _, want := range []string{
		"Ride completed. Fare: 50",
		"processed successfully. Payment ID: PAY-",
		"Ride History for User: John Doe",
		"Completed=true",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestCompleteWithoutBooking(t *testing.T) {
	out := run(t, "2 TAXI001 5")
	if !strings.Contains(out, "No booking found for the given vehicle ID.") {
		t.Fatalf("missing not-found report in output:\n%s", out)
	}
}

func TestUnknownUser(t *testing.T) {
	out := run(t, "1 GHOST 5 5")
	if !strings.Contains(out, "User not found.") {
		t.Fatalf("missing user-not-found report in output:\n%s", out)
	}
}

func TestListVehicles(t *testing.T) {
	out := run(t, "1 USER001 5 4 5")
	if !strings.Contains(out, "Vehicle ID: TAXI001, Model: Toyota Corolla, Available: false") {
		t.Fatalf("booked vehicle should list unavailable:\n%s", out)
	}
	if !strings.Contains(out, "Vehicle ID: LUX001, Model: Mercedes S-Class, Available: true") {
		t.Fatalf("idle vehicle should list available:\n%s", out)
	}
}

func TestInvalidChoice(t *testing.T) {
	out := run(t, "9 5")
	if !strings.Contains(out, "Invalid choice. Please try again.") {
		t.Fatalf("missing invalid-choice report in output:\n%s", out)
	}
}

func TestNonNumericChoice(t *testing.T) {
	out := run(t, "banana 5")
	if !strings.Contains(out, "Invalid choice. Please try again.") {
		t.Fatalf("non-numeric choice should report invalid:\n%s", out)
	}
}

func TestInvalidDistance(t *testing.T) {
	out := run(t, "1 USER001 abc 5")
	if !strings.Contains(out, "Invalid distance. Please try again.") {
		t.Fatalf("missing invalid-distance report in output:\n%s", out)
	}
	if strings.Contains(out, "Taxi booked") {
		t.Fatalf("no booking may happen on bad distance:\n%s", out)
	}
}

func TestEndOfInputExitsCleanly(t *testing.T) {
	if out := run(t, ""); !strings.Contains(out, "Enter your choice: ") {
		t.Fatalf("menu should print before EOF ends the loop:\n%s", out)
	}
}

func TestNoTaxisAvailable(t *testing.T) {
	out := run(t, "1 USER001 1 1 USER001 1 1 USER001 1 5")
	if !strings.Contains(out, "No taxis available at the moment.") {
		t.Fatalf("missing no-taxis report in output:\n%s", out)
	}
}
