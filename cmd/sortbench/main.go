// Command sortbench loads or generates integer sequences, times the six
// textbook sorts against them and prints the comparison.
//
// Usage:
//
//	sortbench run numbers.txt -a quick,merge,radix
//	sortbench run --generate 20000 --save-sorted sorted.txt
//	sortbench generate 10000 --out input.txt
//	sortbench bulk 3 10000 --output-dir generated_files
//	sortbench inspect numbers.txt
//	sortbench algorithms
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
