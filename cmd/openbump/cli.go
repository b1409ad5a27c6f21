package main

import (
	"fmt"
	"io"
	"strings"

	"openbump"

	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"
)

const cols = 60

var errColor = color.New(color.FgRed)

// printError prints every layer of a wrapped error on its own " ! " line.
func printError(out io.Writer, err error) {
	for _, msg := range openbump.GetErrors(err) {
		for _, line := range strings.Split(wordwrap.WrapString(msg, cols), "\n") {
			errColor.Fprintf(out, " ! %s\n", line)
		}
	}
}

func printInfo(out io.Writer, info *openbump.Info) {
	hdr := info.Header

	fmt.Fprintf(out, " - Page size:       %d\n", hdr.PageSize)
	fmt.Fprintf(out, " - Kernel:          %d (%d paged)\n", hdr.KernelSize, info.PagedKernel)
	fmt.Fprintf(out, " - Ramdisk:         %d (%d paged, %s)\n", hdr.RamdiskSize, info.PagedRamdisk,
		openbump.CompressorName(info.RamdiskFormat))
	fmt.Fprintf(out, " - Second stage:    %d (%d paged)\n", hdr.SecondSize, info.PagedSecond)
	fmt.Fprintf(out, " - Device tree:     %d (%d paged)\n", hdr.DtSize, info.PagedDt)
	fmt.Fprintf(out, " - Calculated size: %d\n", info.CalculatedSize)
	fmt.Fprintf(out, " - Image size:      %d (%+d)\n", info.ImageSize, info.Difference)
	fmt.Fprintf(out, " - Signature:       %t\n", info.Bumped)
	fmt.Fprintf(out, " - xxhash64:        %016x\n", info.Digest)
}
