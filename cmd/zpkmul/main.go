// Command zpkmul combines and evaluates zero-pole-gain models.
//
// Usage:
//
//	zpkmul combine --plant <model> --controller <model> --actuator <model>
//	zpkmul eval --model <model> [--from -2] [--to 2] [--points 200]
//	zpkmul tf --model <model>
//
// Models are written as zeros=<list>;poles=<list>;gain=<number>[;dt=<number>].
//
// Examples:
//
//	zpkmul combine --plant "zeros=;poles=-1;gain=2" \
//	    --controller "zeros=-3;poles=;gain=0.5" \
//	    --actuator "zeros=;poles=-2,-2;gain=1"
//	zpkmul eval --model "zeros=;poles=-10;gain=10" --from 0 --to 3 --points 4
package main

import (
	"os"

	"github.com/cwbudde/algo-control/cmd/zpkmul/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
