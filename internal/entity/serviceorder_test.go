package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusValid(t *testing.T) {
	for _, s := range OrderStatuses() {
		assert.True(t, s.Valid(), "status %q should be valid", s)
	}

	invalid := []OrderStatus{"", "pending", "PENDING", "Done", "InProgress", "Cancelled"}
	for _, s := range invalid {
		assert.False(t, s.Valid(), "status %q should be invalid", s)
	}
}

func TestServiceTypeValid(t *testing.T) {
	for _, st := range ServiceTypes() {
		assert.True(t, st.Valid(), "service type %q should be valid", st)
	}

	invalid := []ServiceType{"", "repair", "Flying", "Maintenance"}
	for _, st := range invalid {
		assert.False(t, st.Valid(), "service type %q should be invalid", st)
	}
}

func TestEnumerationValues(t *testing.T) {
	// The textual values are part of the storage contract and must not drift.
	assert.Equal(t,
		[]OrderStatus{"Pending", "Assigned", "In Progress", "Completed", "Canceled"},
		OrderStatuses(),
	)
	assert.Equal(t,
		[]ServiceType{"Repair", "Tuning", "Installation"},
		ServiceTypes(),
	)
}
