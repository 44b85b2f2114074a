// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package strlit_test

import (
	"fmt"
	"log"

	"github.com/creachadair/strlit"
)

func ExampleUnquote() {
	const src = `name = "Fromberger\041";`

	res, err := strlit.Unquote(strlit.C, src, 7)
	if err != nil {
		log.Fatalf("Unquote failed: %v", err)
	}
	fmt.Println(res.Content, res.End)
	// Output:
	// Fromberger! 22
}

func ExampleQuote() {
	lit, err := strlit.Quote(true, strlit.GCC, "\033[1mbold\033[0m")
	if err != nil {
		log.Fatalf("Quote failed: %v", err)
	}
	fmt.Println(lit)
	// Output:
	// "\e[1mbold\e[0m"
}

func ExampleDialect_Has() {
	fmt.Println(strlit.C.Has(strlit.Octal), strlit.C.Has(strlit.Unicode))
	// Output:
	// true false
}
