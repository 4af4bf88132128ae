package dispatch

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/example/taxi-dispatch/internal/models"
	"github.com/example/taxi-dispatch/internal/observability"
	"github.com/example/taxi-dispatch/internal/payments"
)

// Sentinel outcomes for lookups that find nothing. Callers treat these as
// normal results, not failures: a full fleet or an unknown id is an expected
// answer in this domain.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrNoTaxiAvailable = errors.New("no taxis available")
	ErrBookingNotFound = errors.New("no booking found for the given vehicle id")
)

// System owns the vehicle registry, user registry, and booking list. All
// three are insertion-ordered and append-only, and only System mutates them.
// The simulator is single-threaded, so no locking here.
type System struct {
	vehicles []*models.Vehicle
	users    []*models.User
	bookings []*models.Booking

	processor *payments.Processor
	logger    *slog.Logger
	nextSeq   int
}

func NewSystem(processor *payments.Processor, logger *slog.Logger) *System {
	if logger == nil {
		logger = slog.Default()
	}
	if processor == nil {
		processor = payments.NewProcessor(logger)
	}
	return &System{processor: processor, logger: logger}
}

// AddVehicle registers a vehicle at the end of the fleet. Duplicate ids are
// accepted silently; the first-fit scan only ever reaches the earlier one
// while it is available.
func (s *System) AddVehicle(id, model string, class models.RateClass) *models.Vehicle {
	v := &models.Vehicle{ID: id, Model: model, Class: class, Available: true}
	s.vehicles = append(s.vehicles, v)
	observability.FleetSize.Set(float64(len(s.vehicles)))
	s.logger.Debug("vehicle registered", "vehicle_id", id, "model", model, "class", string(class))
	return v
}

// AddUser registers a user. Duplicate ids are accepted silently.
func (s *System) AddUser(id, name string) *models.User {
	u := &models.User{ID: id, Name: name}
	s.users = append(s.users, u)
	observability.UsersRegistered.Set(float64(len(s.users)))
	s.logger.Debug("user registered", "user_id", id, "name", name)
	return u
}

// BookTaxi matches the user to the first available vehicle in registration
// order and creates a booking for the given distance. Marking the vehicle
// unavailable and fixing the fare happen together; there is no hold/confirm
// phase. Distance is accepted as given, bounds included.
func (s *System) BookTaxi(userID string, distanceKm float64) (*models.Booking, error) {
	user := s.findUser(userID)
	if user == nil {
		return nil, ErrUserNotFound
	}
	for _, v := range s.vehicles {
		if !v.Available {
			continue
		}
		s.nextSeq++
		b := &models.Booking{
			ID:           fmt.Sprintf("BK%03d", s.nextSeq),
			UserID:       user.ID,
			UserName:     user.Name,
			VehicleID:    v.ID,
			VehicleModel: v.Model,
			DistanceKm:   distanceKm,
			Fare:         v.Fare(distanceKm),
			Status:       models.BookingOpen,
		}
		v.Available = false
		s.bookings = append(s.bookings, b)

		observability.BookingsTotal.Inc()
		s.logger.Info("taxi booked",
			"booking_id", b.ID, "user_id", user.ID, "vehicle_id", v.ID,
			"distance_km", distanceKm, "fare", b.Fare)
		return b, nil
	}
	observability.BookingsRejectedTotal.Inc()
	s.logger.Info("booking rejected, fleet fully occupied", "user_id", userID)
	return nil, ErrNoTaxiAvailable
}

// CompleteRide finishes the earliest open booking for the vehicle: the
// booking is closed, the vehicle freed, the ride appended to the user's
// history, and a payment settled for the fare fixed at booking time.
// Completed bookings fail the scan predicate, so a second call for the same
// ride reports ErrBookingNotFound instead of double-settling.
func (s *System) CompleteRide(vehicleID string) (*models.Booking, *models.Payment, error) {
	for _, b := range s.bookings {
		if b.VehicleID != vehicleID || b.Completed() {
			continue
		}
		b.Status = models.BookingCompleted
		if v := s.findVehicle(b.VehicleID); v != nil {
			v.Available = true
		}
		if u := s.findUser(b.UserID); u != nil {
			u.Rides = append(u.Rides, b.ID)
		}

		observability.RidesCompletedTotal.Inc()
		s.logger.Info("ride completed", "booking_id", b.ID, "vehicle_id", b.VehicleID, "fare", b.Fare)

		pay := s.processor.Process(b.Fare)
		return b, pay, nil
	}
	return nil, nil, ErrBookingNotFound
}

// RideHistory returns the user's completed rides in completion order.
func (s *System) RideHistory(userID string) (*models.User, []*models.Booking, error) {
	user := s.findUser(userID)
	if user == nil {
		return nil, nil, ErrUserNotFound
	}
	rides := make([]*models.Booking, 0, len(user.Rides))
	for _, id := range user.Rides {
		if b := s.findBooking(id); b != nil {
			rides = append(rides, b)
		}
	}
	return user, rides, nil
}

// Vehicles returns the fleet in registration order.
func (s *System) Vehicles() []*models.Vehicle {
	return s.vehicles
}

func (s *System) findUser(id string) *models.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *System) findVehicle(id string) *models.Vehicle {
	for _, v := range s.vehicles {
		if v.ID == id {
			return v
		}
	}
	return nil
}

func (s *System) findBooking(id string) *models.Booking {
	for _, b := range s.bookings {
		if b.ID == id {
			return b
		}
	}
	return nil
}
