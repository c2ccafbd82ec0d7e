package main

import "github.com/notionpush/notionpush/internal/cli"

func main() {
	cli.Execute()
}
