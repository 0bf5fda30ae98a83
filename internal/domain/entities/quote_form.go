package entities

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// QuoteForm is the user-entered part of a quote request. The portal client
// checks it before sending and the API checks it again on receipt.
type QuoteForm struct {
	Name      string
	Email     string
	Phone     string
	ProductID string
	Quantity  int
	// Delivery is optional, formatted as time.DateOnly.
	Delivery string
}

// Validate returns the first broken rule, worded for the person filling in
// the form.
func (f QuoteForm) Validate() error {
	switch {
	case strings.TrimSpace(f.Name) == "":
		return errors.New("name is required")
	case !emailPattern.MatchString(strings.TrimSpace(f.Email)):
		return errors.New("enter a valid email")
	case !phonePattern.MatchString(strings.TrimSpace(f.Phone)):
		return errors.New("enter valid 10-digit number")
	case strings.TrimSpace(f.ProductID) == "":
		return errors.New("please select a product")
	case f.Quantity <= 0:
		return errors.New("enter a valid quantity")
	}
	if d := strings.TrimSpace(f.Delivery); d != "" {
		if _, err := time.Parse(time.DateOnly, d); err != nil {
			return errors.New("delivery must be YYYY-MM-DD")
		}
	}
	return nil
}
