// Command sgctl runs gourmet searches and maintenance jobs against the configured backends.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
