// Package api handles incoming HTTP requests for the Accounts, Cards and
// Loans services: query and body validation, calls into the lifecycle
// services, and translation of their results into the success envelope,
// the error envelope or a field to message map.
package api
