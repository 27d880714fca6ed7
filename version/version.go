package version

import (
	"fmt"
	"os"
)

func Print() {
	fmt.Fprintf( // ui.Printf would be a dependency cycle
		os.Stderr,
		"dbonboard version %s-%s\n",
		Version,
		Commit,
	)
}

var (
	Commit  = "0000000" // replaced at build time with the short Git commit; see Makefile
	Version = "1970.01" // replaced at build time with current computed version; see Makefile
)
