package main

import (
	"fmt"
	"io"
	"os"

	"asset-log-explorer/internal/shared/svcerrors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError prints service errors as "Code: Message". Internal errors also carry their cause since
// there is no log to look it up in.
func printError(w io.Writer, err error) {
	svcErr, ok := svcerrors.AsServiceError(err)
	switch {
	case !ok:
		fmt.Fprintf(w, "Error: %v\n", err)
	case svcErr.IsInternalError() && svcErr.Cause != nil:
		fmt.Fprintf(w, "%s (%v)\n", svcErr.Error(), svcErr.Cause)
	default:
		fmt.Fprintln(w, svcErr.Error())
	}
}
