package cmdutil

import (
	"os"
)

const dbonboardRoot = "DBONBOARD_ROOT"

// Chdir changes the working directory to the value of the DBONBOARD_ROOT
// environment variable, if set and non-empty, so that audit files collect in
// one well-known place no matter where the program's run from.
func Chdir() (err error) {
	if dirname := os.Getenv(dbonboardRoot); dirname != "" {
		err = os.Chdir(dirname)
	}
	return
}
