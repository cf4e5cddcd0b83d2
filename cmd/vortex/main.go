package main

import "github.com/Calebjackson-photonics/structured-light-education/internal/cli"

func main() {
	cli.Execute()
}
