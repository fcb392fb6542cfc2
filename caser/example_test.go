package caser_test

import (
	"errors"
	"fmt"

	"github.com/erraggy/casetools/caseerrors"
	"github.com/erraggy/casetools/caser"
)

func ExampleToCamelCase() {
	out, _ := caser.ToCamelCase("hello world")
	fmt.Println(out)
	// Output: helloWorld
}

func ExampleToKebabCase() {
	out, _ := caser.ToKebabCase("HTMLParser")
	fmt.Println(out)
	// Output: html-parser
}

func ExampleToDotCase() {
	out, _ := caser.ToDotCase("hello_world Test")
	fmt.Println(out)
	// Output: hello.world.test
}

func ExampleConvert() {
	for _, policy := range []caser.Policy{caser.Camel, caser.Kebab, caser.Snake} {
		out, _ := caser.Convert("parse HTTP response status", policy)
		fmt.Printf("%s: %s\n", policy, out)
	}
	// Output:
	// camel: parseHTTPResponseStatus
	// kebab: parse-http-response-status
	// snake: parse_http_response_status
}

func ExampleConvert_invalidInput() {
	_, err := caser.Convert(123, caser.Kebab)
	if errors.Is(err, caseerrors.ErrInvalidInput) {
		fmt.Println(err)
	}
	// Output: invalid input type: expected string, got int
}
