// Package main implements tutorctl, an operator CLI that runs the tutor's
// content generation operations directly against the configured provider.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(defaultServiceFactory).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
