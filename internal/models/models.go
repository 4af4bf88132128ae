package models

import "fmt"

// RateClass selects the per-km billing rate for a vehicle. Fares are a pure
// function of class and distance; there is no surge or time component.
type RateClass string

const (
	Standard RateClass = "STANDARD"
	Luxury   RateClass = "LUXURY"
)

const (
	standardRatePerKm = 10.0
	luxuryRatePerKm   = 20.0
)

// RatePerKm returns the fixed per-km rate for the class. Unknown classes
// bill at the standard rate.
func (c RateClass) RatePerKm() float64 {
	switch c {
	case Luxury:
		return luxuryRatePerKm
	default:
		return standardRatePerKm
	}
}

type Vehicle struct {
	ID        string
	Model     string
	Class     RateClass
	Available bool
}

// Fare computes the ride price for a distance in km. Distance is taken as
// given; a negative distance yields a negative fare.
func (v *Vehicle) Fare(distanceKm float64) float64 {
	return distanceKm * v.Class.RatePerKm()
}

func (v *Vehicle) String() string {
	return fmt.Sprintf("Vehicle ID: %s, Model: %s, Available: %t", v.ID, v.Model, v.Available)
}

type User struct {
	ID   string
	Name string
	// Rides holds booking IDs in completion order. Bookings are resolved
	// through the dispatch system's registry, not embedded here.
	Rides []string
}

func (u *User) String() string {
	return fmt.Sprintf("User ID: %s, Name: %s", u.ID, u.Name)
}

type BookingStatus string

const (
	BookingOpen      BookingStatus = "OPEN"
	BookingCompleted BookingStatus = "COMPLETED"
)

// Booking binds a user and a vehicle to a distance and a fare. The fare is
// fixed at creation from the vehicle's rate and never recalculated. User and
// vehicle are referenced by ID only.
type Booking struct {
	ID           string
	UserID       string
	UserName     string
	VehicleID    string
	VehicleModel string
	DistanceKm   float64
	Fare         float64
	Status       BookingStatus
}

func (b *Booking) Completed() bool { return b.Status == BookingCompleted }

func (b *Booking) String() string {
	return fmt.Sprintf("Booking Details: User=%s, Vehicle=%s, Distance=%g km, Fare=%g, Completed=%t",
		b.UserName, b.VehicleModel, b.DistanceKm, b.Fare, b.Completed())
}

type Payment struct {
	ID     string
	Amount float64
	Paid   bool
}

func (p *Payment) String() string {
	return fmt.Sprintf("Payment ID: %s, Amount: %g, Paid: %t", p.ID, p.Amount, p.Paid)
}
