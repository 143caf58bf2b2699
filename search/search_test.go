package search

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/p7r0x7/shabrute"
	"github.com/rs/zerolog"
)

func TestSearchFindsCab(t *testing.T) {
	target := shabrute.Sum([]byte("cab"))
	for _, workers := range []int{1, 2, 4, 6} {
		res, err := Search(context.Background(), target, Options{
			MinLen: 3, MaxLen: 3, Workers: workers, Alphabet: []byte("abcdefghijklmnopqrstuvwxyz"),
		})
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if !res.Found || string(res.Candidate) != "cab" || res.Length != 3 {
			t.Errorf("workers=%d: got %+v, want cab", workers, res)
		}
	}
}

func TestSearchExhausts(t *testing.T) {
	target := shabrute.Sum([]byte("zzz"))
	for _, workers := range []int{1, 2, 3} {
		res, err := Search(context.Background(), target, Options{MinLen: 1, MaxLen: 2, Workers: workers, Alphabet: []byte("xy")})
		if err != nil {
			t.Fatal(err)
		}
		if res.Found || res.Candidate != nil || res.Length != 0 {
			t.Errorf("workers=%d: unexpected match %q", workers, res.Candidate)
		}
		if res.Tried != 2+4 {
			t.Errorf("workers=%d: tried %d candidates, want 6", workers, res.Tried)
		}
	}
}

func TestPoolSize(t *testing.T) {
	cpus := DefaultWorkers()
	if got := poolSize(1); got != 1 {
		t.Errorf("poolSize(1) = %d, want 1", got)
	}
	if got := poolSize(cpus + 7); got != cpus {
		t.Errorf("poolSize(%d) = %d, want %d", cpus+7, got, cpus)
	}
}

func TestSearchMoreWorkersThanCPUs(t *testing.T) {
	/* Ranges beyond the pool limit still get searched once a slot frees up. */
	workers := DefaultWorkers() + 5
	res, err := Search(context.Background(), shabrute.Sum([]byte("zz")), Options{MinLen: 2, MaxLen: 2, Workers: workers})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Found || string(res.Candidate) != "zz" || res.Length != 2 {
		t.Errorf("workers=%d: got %+v, want zz", workers, res)
	}
}

func TestSearchModes(t *testing.T) {
	for _, c := range []struct {
		mode   Mode
		secret string
	}{
		{LettersOnly, "Go"},
		{LettersOnly, "zA"},
		{FullASCII, "!~"},
		{FullASCII, "{"},
	} {
		res, err := Search(context.Background(), shabrute.Sum([]byte(c.secret)), Options{MinLen: 1, MaxLen: 3, Workers: 4, Mode: c.mode})
		if err != nil {
			t.Fatal(err)
		}
		if !res.Found || string(res.Candidate) != c.secret {
			t.Errorf("mode %v: got %q, want %q", c.mode, res.Candidate, c.secret)
		}
	}
}

func TestSearchOutsideAlphabet(t *testing.T) {
	/* A space is in neither built-in alphabet. */
	res, err := Search(context.Background(), shabrute.Sum([]byte(" ")), Options{MinLen: 1, MaxLen: 1, Workers: 2, Mode: FullASCII})
	if err != nil || res.Found {
		t.Errorf("got %+v, %v", res, err)
	}
	if res.Tried != 94 {
		t.Errorf("tried %d, want 94", res.Tried)
	}
}

func TestSearchZeroLengths(t *testing.T) {
	res, err := Search(context.Background(), shabrute.Sum(nil), Options{Workers: 1})
	if err != nil || res.Found || res.Tried != 0 {
		t.Errorf("got %+v, %v", res, err)
	}
}

func TestSearchConfigErrors(t *testing.T) {
	for i, o := range []Options{
		{MinLen: 1, MaxLen: 2, Workers: 0},
		{MinLen: 3, MaxLen: 2, Workers: 1},
		{MinLen: -1, MaxLen: 2, Workers: 1},
		{MinLen: 1, MaxLen: 2, Workers: 1, Alphabet: []byte{}},
		{MinLen: 1, MaxLen: 2, Workers: 1, Alphabet: []byte("aba")},
		{MinLen: 1, MaxLen: 2, Workers: 1, Mode: Mode(9)},
	} {
		if _, err := Search(context.Background(), shabrute.Digest{}, o); !errors.Is(err, ErrConfig) {
			t.Errorf("case %d: error %v, want ErrConfig", i, err)
		}
	}
}

func TestSearchCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	res, err := Search(ctx, shabrute.Digest{}, Options{MinLen: 6, MaxLen: 10, Workers: 2})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error %v, want context.Canceled", err)
	}
	if res.Found {
		t.Errorf("cancelled search reported a match")
	}

	res, err = Search(ctx, shabrute.Sum([]byte("a")), Options{MinLen: 1, MaxLen: 1, Workers: 1})
	if !errors.Is(err, context.Canceled) || res.Tried != 0 {
		t.Errorf("pre-cancelled search: %+v, %v", res, err)
	}
}

func TestSearchRepeated(t *testing.T) {
	/* Meant for -race: one winner, and its candidate intact. */
	target := shabrute.Sum([]byte("dIg"))
	for i := 0; i < 10; i++ {
		res, err := Search(context.Background(), target, Options{MinLen: 1, MaxLen: 3, Workers: 8})
		if err != nil {
			t.Fatal(err)
		}
		if !res.Found || string(res.Candidate) != "dIg" {
			t.Fatalf("run %d: got %q", i, res.Candidate)
		}
	}
}

func TestSearchLogs(t *testing.T) {
	buf := &bytes.Buffer{}
	log := zerolog.New(buf).Level(zerolog.DebugLevel)
	_, err := Search(context.Background(), shabrute.Sum([]byte("ab")), Options{MinLen: 1, MaxLen: 2, Workers: 2, Alphabet: []byte("ab"), Logger: &log})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`"component":"search"`, `"length":1`, "length exhausted", "secret found"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output lacks %s:\n%s", want, out)
		}
	}
}
