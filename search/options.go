package search

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"github.com/rs/zerolog"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// ErrConfig marks a caller contract violation detected before any work begins.
var ErrConfig = errors.New("search: invalid configuration")

// Options configures a Search.
type Options struct {
	MinLen, MaxLen int /* candidate lengths tried, inclusive; lengths below 1 are skipped */
	Workers        int
	Mode           Mode
	Alphabet       []byte          /* overrides Mode when non-nil */
	Logger         *zerolog.Logger /* nil disables logging */
}

// DefaultWorkers is the number of logical CPUs, as reported by cpuid where it can tell.
func DefaultWorkers() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// Validate reports the first contract violation in o, wrapped around ErrConfig.
func (o Options) Validate() error {
	switch {
	case o.Workers < 1:
		return fmt.Errorf("%w: worker count %d, need at least 1", ErrConfig, o.Workers)
	case o.MinLen < 0 || o.MaxLen < 0:
		return fmt.Errorf("%w: negative length bound [%d, %d]", ErrConfig, o.MinLen, o.MaxLen)
	case o.MinLen > o.MaxLen:
		return fmt.Errorf("%w: minimum length %d exceeds maximum %d", ErrConfig, o.MinLen, o.MaxLen)
	}
	_, err := o.alphabet()
	return err
}

func (o Options) alphabet() (Alphabet, error) {
	if o.Alphabet != nil {
		return CustomAlphabet(o.Alphabet)
	}
	return NewAlphabet(o.Mode)
}

func (o Options) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return o.Logger.With().Str("component", "search").Logger()
}
