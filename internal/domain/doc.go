// Package domain contains the core banking entities (customers, accounts,
// cards and loans), their defaults and validation rules. It is independent
// of any specific storage or delivery mechanism.
package domain
