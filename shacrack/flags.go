package main

import (
	"os"

	. "github.com/spf13/pflag"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var pMin, pMax, pWorkers, pNoCodesDefault = 1, 10, 0, false
var pAlphabet = ""
var pHelp, pASCII, pCrack, pNoCodes, pQuiet, pString, pTime, pVerbose, pWords bool
var yell, purp, und, zero = "\033[33m", "\033[35m", "\033[4m", "\033[0m"

func init() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--no-codes=false":
			pNoCodes = false
		case "--quiet", "--quiet=true":
			pNoCodes, pQuiet = true, true
		case "--no-codes", "--no-codes=true":
			pNoCodes = true
		}
	}
	if pNoCodes {
		yell, purp, und, zero = "", "", "", ""
	}

	BoolVarP(&pHelp, "help", "h", false,
		purp+"print this help menu"+zero+n)

	StringVar(&pAlphabet, "alphabet", "",
		purp+"search over exactly these characters instead"+zero)

	BoolVar(&pASCII, "ascii", false,
		purp+"search all printable ASCII instead of letters only"+zero)

	BoolVarP(&pCrack, "crack", "c", false,
		purp+"treat arguments as hex digests and search for their"+zero+
			n+purp+"preimages"+zero)

	IntVar(&pMax, "max", pMax,
		purp+"longest candidate to try while cracking"+zero)

	IntVar(&pMin, "min", pMin,
		purp+"shortest candidate to try while cracking"+zero)

	Bool("no-codes", pNoCodesDefault,
		purp+"print to console w/o formatting codes or simplified"+zero+
			n+purp+"filepaths"+zero)

	Bool("quiet", false,
		purp+"suppress logging and print ONLY digests or secrets"+zero+
			n+"(enables --no-codes)")

	BoolVarP(&pString, "string", "s", false,
		purp+"process arguments instead as UTF-8 strings to be hashed"+zero)

	BoolVarP(&pTime, "time", "t", false,
		purp+"print time taken to hash or crack each argument"+zero)

	BoolVarP(&pVerbose, "verbose", "v", false,
		purp+"log search progress for every length"+zero)

	BoolVarP(&pWords, "words", "w", false,
		purp+"print digests as eight space-separated words"+zero)

	IntVarP(&pWorkers, "workers", "j", 0,
		purp+"parallel search workers"+zero+" (default logical CPUs)")

	/* Order flags alphabetically except for help, which is hoisted to the top. */
	CommandLine.SortFlags = false
	Parse()
}
