// Command datecalc prints the weekday and date N days away from a date.
//
//	datecalc DD/MM/YYYY N
package main

import (
	"os"

	"github.com/robinvdvleuten/daytools/cli"
)

func main() {
	os.Exit(cli.RunDateCalc(os.Args[0], os.Args[1:], os.Stdout, os.Stderr))
}
