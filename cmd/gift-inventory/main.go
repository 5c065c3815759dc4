/*
Package main is the entry point for the gift-inventory CLI.

gift-inventory runs a spiritual gifts questionnaire: 133 statements answered
on a five-point frequency scale, stored as one CSV row per respondent and
scored per gift.

Usage:
  gift-inventory [command]

Available Commands:
  take        Answer the questionnaire in the terminal
  serve       Serve the questionnaire over HTTP
  results     Show the latest respondent's scores and the totals
  history     Print every stored response
  verify      Verify settings, questionnaire and response file
  version     Show version information
  help        Help about any command

Examples:
  # Answer in the terminal
  gift-inventory take --questions questions.txt --categories categories.json

  # Run the web form
  gift-inventory serve --listen :8080

  # Print the totals as JSON
  gift-inventory results --json

Version information is set with ldflags, for example:
  -X github.com/khanglvm/gift-inventory/internal/version.Version=v1.0.0
*/
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/khanglvm/gift-inventory/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
