package main

import (
	"fmt"
	"io"

	"openbump"

	"github.com/sirupsen/logrus"
)

func bumpImage(out io.Writer, log *logrus.Logger, inputPath, outputPath string, verbose bool) int {
	patcher := openbump.NewPatcher(log)

	status, err := patcher.Bump(inputPath, outputPath)
	if err != nil {
		printError(out, err)
		return 1
	}

	if status == openbump.StatusAlreadyBumped {
		fmt.Fprintln(out, "Image already bumped")
	}

	if verbose {
		info, err := openbump.Inspect(outputPath)
		if err != nil {
			printError(out, err)
			return 1
		}
		printInfo(out, info)
	}

	fmt.Fprintf(out, "bumped image: %s\n", outputPath)
	return 0
}
