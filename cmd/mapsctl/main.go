package main

import "github.com/richxcame/mapsclient/internal/cli"

func main() {
	cli.Execute()
}
