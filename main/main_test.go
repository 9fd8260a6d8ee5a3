/*
File    : lox/main/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBannerAndVersionAreConfigured(t *testing.T) {
	assert.NotEmpty(t, BANNER)
	assert.NotEmpty(t, VERSION)
	assert.NotEmpty(t, PROMPT)
}

func TestPrintResolvedAST_ValidProgramDoesNotExit(t *testing.T) {
	// printResolvedAST only reaches os.Exit on a static error; a valid
	// program should return normally having written to stdout.
	printResolvedAST(`print 1 + 2;`)
}
