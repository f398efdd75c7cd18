package ciutil

// GetTestDatabaseURL returns the database URL for integration tests, checking
// BANK_TEST_DB_URL, DATABASE_URL and BANK_DATABASE_URL in that order.
// It returns an empty string when none is set.
func GetTestDatabaseURL() string {
	return GetEnvWithFallbacks([]string{EnvBankTestDBURL, EnvDatabaseURL, EnvBankDatabaseURL}, "")
}

// DatabaseRequired reports whether a missing test database is an error
// rather than a reason to skip. Integration tests must not silently skip in CI.
func DatabaseRequired() bool {
	return IsCI()
}
