package entity

import "time"

// OrderStatus is the closed set of service order states. The values are
// stored as-is in the status column, so they are case-sensitive.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusAssigned   OrderStatus = "Assigned"
	StatusInProgress OrderStatus = "In Progress"
	StatusCompleted  OrderStatus = "Completed"
	StatusCanceled   OrderStatus = "Canceled"
)

// OrderStatuses lists every valid status, in lifecycle order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{StatusPending, StatusAssigned, StatusInProgress, StatusCompleted, StatusCanceled}
}

// Valid reports whether s is one of the five known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAssigned, StatusInProgress, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

func (s OrderStatus) String() string { return string(s) }

// OrderStatusNames lists every valid status as plain strings, for error
// messages and query parameter docs.
func OrderStatusNames() []string {
	statuses := OrderStatuses()
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return names
}

// ServiceType is the closed set of job kinds the shop takes on.
type ServiceType string

const (
	ServiceTypeRepair       ServiceType = "Repair"
	ServiceTypeTuning       ServiceType = "Tuning"
	ServiceTypeInstallation ServiceType = "Installation"
)

// ServiceTypes lists every valid service type.
func ServiceTypes() []ServiceType {
	return []ServiceType{ServiceTypeRepair, ServiceTypeTuning, ServiceTypeInstallation}
}

// Valid reports whether t is one of the three known service types.
func (t ServiceType) Valid() bool {
	switch t {
	case ServiceTypeRepair, ServiceTypeTuning, ServiceTypeInstallation:
		return true
	}
	return false
}

func (t ServiceType) String() string { return string(t) }

// ServiceTypeNames lists every valid service type as plain strings.
func ServiceTypeNames() []string {
	types := ServiceTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return names
}

// ServiceOrder is a repair/tuning/installation job for a customer.
//
// TechnicianID is nil until a technician is assigned. A freshly created
// order always starts Pending with no technician, whatever the caller
// supplied. CreatedAt and UpdatedAt are server-assigned; UpdatedAt is
// refreshed by every mutation.
type ServiceOrder struct {
	ID           int64       `json:"id"`
	CustomerID   int64       `json:"customer_id"`
	TechnicianID *int64      `json:"technician_id"`
	ServiceType  ServiceType `json:"service_type"`
	Description  *string     `json:"description"`
	Status       OrderStatus `json:"status"`
	ScheduledAt  *time.Time  `json:"scheduled_at"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
