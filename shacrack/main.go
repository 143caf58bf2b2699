package main

import (
	"context"
	"errors"
	. "fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/p7r0x7/shabrute"
	"github.com/p7r0x7/shabrute/search"
	"github.com/p7r0x7/vainpath"
	"github.com/rs/zerolog"
	. "github.com/spf13/pflag"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const n = "\n"
const success, failure, invalid = 0, 1, 2

var warnings = 0

func main() { os.Exit(program()) }

// help prints a usage menu. To render correctly in most terminal windows, its content should be
// no wider than 80 columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "shacrack" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "SHA-256 digests, and the brute force to undo them.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-tw] [--quiet|no-codes] -|PATH..."+n,
		spaces, "[-tw] [--quiet|no-codes] -s STRING..."+n,
		spaces, "[-tv] [--ascii|alphabet=<chars>] [--min=<int>] [--max=<int>]"+n,
		spaces, "[-j <int>] [--quiet|no-codes] -c DIGEST..."+n+n+
			"Options:"+n)
	PrintDefaults()
	name = vainpath.Trim(origin, "…", 15)
	Fprint(os.Stderr, n+"Order of arguments placed after `", name, "` does not matter unless `--` is"+
		n+"specified, signaling the end of parsed flags. Long-form flag equivalents are"+n+
		"above. `-` is treated as a reference to ", os.Stdin.Name(), " on this platform."+n)
}

func newLogger() zerolog.Logger {
	if pQuiet {
		return zerolog.Nop()
	}
	level := zerolog.InfoLevel
	if pVerbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: pNoCodes, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// This program is the command-line face of shabrute: it hashes strings, files or STDIN, and
// searches for the preimages of digests given in hex.
func program() int {
	if pHelp || NArg() == 0 {
		help()
		return success
	}
	log := newLogger()

	if pCrack {
		opts := search.Options{MinLen: pMin, MaxLen: pMax, Workers: pWorkers, Mode: search.LettersOnly, Logger: &log}
		if pASCII {
			opts.Mode = search.FullASCII
		}
		if CommandLine.Changed("alphabet") {
			opts.Alphabet = []byte(pAlphabet)
		}
		if opts.Workers == 0 {
			opts.Workers = search.DefaultWorkers()
		}
		if err := opts.Validate(); err != nil {
			Fprintln(os.Stderr, purp+err.Error()+zero)
			return invalid
		}
		return crack(opts, log)
	}
	return sum()
}

func sum() int {
	var h shabrute.Hasher
	for _, target := range Args() {
		var msg []byte
		var err error
		start, delta := time.Now(), ""

		switch {
		case pString:
			msg = []byte(target)
		case target == "-" || target == os.Stdin.Name():
			msg, err = io.ReadAll(os.Stdin)
		default:
			msg, err = os.ReadFile(target)
		}
		if err != nil {
			warnings++
			continue
		}
		digest := h.Sum(msg)

		if pTime {
			delta = " (" + roundDelta(time.Since(start)) + ")"
		}
		str := digest.String()
		if pWords {
			str = words(digest)
		}

		switch {
		case pQuiet:
			Println(str)
		case pString:
			Print(yell, str, zero, `  "`, target, `"`, delta, n)
		case pNoCodes:
			Print(str, `  `, filepath.Clean(target), delta, n)
		default:
			Print(yell, str, zero, `  `, und, vainpath.Simplify(target), zero, delta, n)
		}
	}

	if !pQuiet {
		if warnings == 1 {
			Fprint(os.Stderr, "1 ", purp, "target is a directory or is otherwise inaccessible.", zero, n)
		} else if warnings > 1 {
			Fprint(os.Stderr, warnings, " ", purp, "targets are directories or are otherwise inaccessible.", zero, n)
		}
	}
	if warnings > 0 {
		return failure
	}
	return success
}

func crack(opts search.Options, log zerolog.Logger) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	code := success
	for _, arg := range Args() {
		target, err := shabrute.ParseDigest(arg)
		if err != nil {
			Fprintln(os.Stderr, purp+err.Error()+zero)
			code = invalid
			continue
		}

		res, err := search.Search(ctx, target, opts)
		delta := ""
		if pTime {
			delta = " (" + roundDelta(res.Elapsed) + ")"
		}
		switch {
		case errors.Is(err, context.Canceled):
			log.Warn().Uint64("tried", res.Tried).Msg("interrupted")
			return failure
		case err != nil:
			Fprintln(os.Stderr, purp+err.Error()+zero)
			return invalid
		case !res.Found:
			code = failure
			if pQuiet {
				Println()
			} else {
				Print(purp, "no preimage of length ", opts.MinLen, " to ", opts.MaxLen, zero, `  `, target, delta, n)
			}
		case pQuiet:
			Println(string(res.Candidate))
		default:
			Print(yell, `"`, string(res.Candidate), `"`, zero, `  `, target, delta, n)
		}
	}
	return code
}

func roundDelta(d time.Duration) string {
	if d.Microseconds() > 99 {
		d = d.Truncate(10 * time.Microsecond)
	}
	return d.String()
}

/* Eight %08x words, separated the way they are held in the digest. */
func words(d shabrute.Digest) string {
	parts := make([]string, len(d))
	for i, w := range d {
		parts[i] = Sprintf("%08x", w)
	}
	return strings.Join(parts, " ")
}
