// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services never own state themselves: the EventStore is created by the
// caller and injected, so each shell session has its own log.
package services
