// Package main provides the entry point for the FieldOps field-service
// management API. It runs a Fiber web server exposing tenant-scoped CRUD
// resources for companies, vendors, users, clients, master data and jobs,
// guarded by a role- and screen-based permission model. The application uses
// gorm for data persistence against postgres or mysql.
package main
