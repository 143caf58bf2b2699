package search_test

import (
	"context"
	"fmt"

	"github.com/p7r0x7/shabrute"
	"github.com/p7r0x7/shabrute/search"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

func ExampleSearch() {
	target := shabrute.Sum([]byte("Go"))
	res, err := search.Search(context.Background(), target, search.Options{MinLen: 1, MaxLen: 3, Workers: 4})
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Found, string(res.Candidate))
	// Output: true Go
}
