// Package dto defines the wire representations exchanged by the HTTP API and
// the pure mapping functions between them and the domain entities.
//
// Validation rules are declared as go-playground/validator struct tags; the
// client-facing message for each rule is returned by ValidationMessages, keyed
// by "<jsonField>.<tag>".
package dto
