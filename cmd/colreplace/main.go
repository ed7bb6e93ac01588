// Command colreplace overwrites one column of a CSV file with a fixed value.
//
//	colreplace input.csv City London output.csv
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}
