package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"quoteportal/internal/usecase"
)

var ErrInvalidQuantity = errors.New("invalid quantity")

// Quantity accepts both 3 and "3"; form inputs post numbers as strings.
type Quantity int

func (q *Quantity) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*q = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*q = 0
			return nil
		}
		b = []byte(s)
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return ErrInvalidQuantity
	}
	*q = Quantity(n)
	return nil
}

// QuoteRequest is the body of POST /requestquote. Product holds the product id
// picked from the dropdown.
type QuoteRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phonenumber"`
	Product     string   `json:"product"`
	Quantity    Quantity `json:"quantity"`
	Delivery    string   `json:"delivery"`
	Message     string   `json:"message"`
}

func (r QuoteRequest) ToCommand() usecase.RequestQuoteCommand {
	return usecase.RequestQuoteCommand{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.PhoneNumber,
		ProductID: r.Product,
		Quantity:  int(r.Quantity),
		Delivery:  r.Delivery,
		Message:   r.Message,
	}
}
