package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/taxi-dispatch/internal/dispatch"
)

// Shell is the interactive menu loop over the dispatch system. It reads one
// whitespace-separated token per prompt, so sessions can be scripted through
// any reader; nothing here assumes a TTY.
type Shell struct {
	sys *dispatch.System
	in  *bufio.Scanner
	out io.Writer
}

func New(sys *dispatch.System, in io.Reader, out io.Writer) *Shell {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Shell{sys: sys, in: sc, out: out}
}

// Run drives the menu until the exit command or end of input. Every outcome,
// including "not found" and "no taxis", is reported as a normal line; the
// only way out is command 5 or EOF.
func (s *Shell) Run() error {
	for {
		s.printMenu()
		tok, ok := s.next("Enter your choice: ")
		if !ok {
			return nil
		}
		choice, err := strconv.Atoi(tok)
		if err != nil {
			choice = -1
		}

		switch choice {
		case 1:
			if !s.handleBook() {
				return nil
			}
		case 2:
			if !s.handleComplete() {
				return nil
			}
		case 3:
			if !s.handleHistory() {
				return nil
			}
		case 4:
			s.handleListVehicles()
		case 5:
			fmt.Fprintln(s.out, "Exiting the system. Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

func (s *Shell) handleBook() bool {
	userID, ok := s.next("Enter user ID: ")
	if !ok {
		return false
	}
	distTok, ok := s.next("Enter distance (in km): ")
	if !ok {
		return false
	}
	distance, err := strconv.ParseFloat(distTok, 64)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid distance. Please try again.")
		return true
	}

	booking, err := s.sys.BookTaxi(userID, distance)
	switch {
	case errors.Is(err, dispatch.ErrUserNotFound):
		fmt.Fprintln(s.out, "User not found.")
	case errors.Is(err, dispatch.ErrNoTaxiAvailable):
		fmt.Fprintln(s.out, "No taxis available at the moment.")
	case err == nil:
		fmt.Fprintf(s.out, "Taxi booked successfully! Fare: %g\n", booking.Fare)
	}
	return true
}

func (s *Shell) handleComplete() bool {
	vehicleID, ok := s.next("Enter vehicle ID: ")
	if !ok {
		return false
	}
	booking, payment, err := s.sys.CompleteRide(vehicleID)
	if err != nil {
		fmt.Fprintln(s.out, "No booking found for the given vehicle ID.")
		return true
	}
	fmt.Fprintf(s.out, "Ride completed. Fare: %g\n", booking.Fare)
	fmt.Fprintf(s.out, "Payment of %g processed successfully. Payment ID: %s\n", payment.Amount, payment.ID)
	return true
}

func (s *Shell) handleHistory() bool {
	userID, ok := s.next("Enter user ID: ")
	if !ok {
		return false
	}
	user, rides, err := s.sys.RideHistory(userID)
	if err != nil {
		fmt.Fprintln(s.out, "User not found.")
		return true
	}
	fmt.Fprintf(s.out, "Ride History for User: %s\n", user.Name)
	for _, b := range rides {
		fmt.Fprintln(s.out, b)
	}
	return true
}

func (s *Shell) handleListVehicles() {
	fmt.Fprintln(s.out, "Available Vehicles:")
	for _, v := range s.sys.Vehicles() {
		fmt.Fprintln(s.out, v)
	}
}

func (s *Shell) printMenu() {
	fmt.Fprint(s.out, strings.Join([]string{
		"",
		"--- Taxi Booking System ---",
		"1. Book a Taxi",
		"2. Complete a Ride",
		"3. Show Ride History",
		"4. Show All Vehicles",
		"5. Exit",
		"",
	}, "\n"))
}

// next prompts and reads a single token; ok is false on end of input.
func (s *Shell) next(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}
