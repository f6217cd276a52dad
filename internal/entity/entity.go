// Package entity holds the domain value types of the service desk:
// customers, technicians, service orders, and the users of the login
// subsystem.
//
// Entities are transient snapshots of rows owned by the database. They
// carry no behavior beyond enumeration checks; all business rules live
// in the service layer.
package entity
