// Package cli implements the interactive terminal front-end of the Logix
// client: a read-eval-print loop over the application services, with
// role-aware commands for the shipment workflow, fleet administration and
// user management.
package cli
