// Package service contains the lifecycle services of the Accounts, Cards and
// Loans APIs. Each service enforces existence and uniqueness of its entity by
// natural key, generates business identifiers on create and maps between the
// wire payloads in internal/dto and the domain entities persisted through the
// interfaces in internal/store.
//
// Error handling:
//   - Expected conditions are reported as *ResourceError values that wrap
//     ErrAlreadyExists or ErrResourceNotFound; callers test them with errors.Is.
//   - Unexpected failures are wrapped in *ServiceError and keep their cause.
//   - The API layer maps both to HTTP status codes.
//
// The Accounts service spans two tables and runs create, update and delete in
// a single transaction through store.RunInTransaction.
package service
