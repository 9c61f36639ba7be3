package config

import "os"

// RefreshEnv forces every block into draft mode when set, to any value.
const RefreshEnv = "SNAPDOWN_REFRESH"

// RefreshRequested reports whether RefreshEnv is present in the environment.
func RefreshRequested() bool {
	_, ok := os.LookupEnv(RefreshEnv)
	return ok
}
