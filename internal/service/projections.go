package service

import (
	"sort"
	"strings"

	"github.com/stitchlink/stitchlink-backend/internal/model"
)

// Read-only projections over the customer collection. These are pure
// functions of (collection, filter parameters); they never touch storage.

// SearchCustomers filters by case-insensitive substring on name or NIC.
// An empty query returns the collection unfiltered.
func SearchCustomers(customers []model.Customer, query string) []model.Customer {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return customers
	}
	out := []model.Customer{}
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.NIC), q) {
			out = append(out, c)
		}
	}
	return out
}

// FlattenOrders maps every (customer, measurement) pair to an order row,
// sorted by measurement date descending.
func FlattenOrders(customers []model.Customer) []model.Order {
	orders := []model.Order{}
	for _, c := range customers {
		for _, m := range c.Measurements {
			orders = append(orders, model.Order{
				CustomerID:       c.ID,
				CustomerName:     c.Name,
				CustomerEmail:    c.Email,
				NIC:              c.NIC,
				JobNumber:        c.JobNumber,
				MeasurementID:    m.ID,
				MeasurementDate:  m.Date,
				PaymentStatus:    m.PaymentStatus,
				CompletionStatus: m.CompletionStatus,
			})
		}
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].MeasurementDate.After(orders[j].MeasurementDate)
	})
	return orders
}

// FilterOrders applies the payment tab and the free-text query as a
// conjunction. The tab "All" (or empty) passes everything; the query matches
// name, job number or NIC, case-insensitively.
func FilterOrders(orders []model.Order, paymentTab, query string) []model.Order {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []model.Order{}
	for _, o := range orders {
		if paymentTab != "" && paymentTab != "All" && string(o.PaymentStatus) != paymentTab {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(o.CustomerName), q) &&
			!strings.Contains(strings.ToLower(o.JobNumber), q) &&
			!strings.Contains(strings.ToLower(o.NIC), q) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// CardField is one measurement shown on a detail card.
type CardField struct {
	Column string  `json:"column"`
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
}

// GroupCard is one rendered group of a measurement's detail view.
type GroupCard struct {
	Title  string      `json:"title"`
	Fields []CardField `json:"fields"`
}

// GroupCards projects a measurement into its detail cards. A value of zero
// or nil means "no data" and is suppressed; a group with nothing left does
// not render at all.
func GroupCards(m model.Measurement) []GroupCard {
	cards := []GroupCard{}
	for _, group := range model.Groups {
		card := GroupCard{Title: group}
		for _, f := range model.FieldsInGroup(group) {
			v := m.FieldValue(f.Column)
			if v == nil || *v == 0 {
				continue
			}
			card.Fields = append(card.Fields, CardField{Column: f.Column, Label: f.Label, Value: *v})
		}
		if len(card.Fields) > 0 {
			cards = append(cards, card)
		}
	}
	return cards
}
