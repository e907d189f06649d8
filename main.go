package main

import "github.com/YtzBeno/aztec-connect-bridges/cli"

func main() {
	cli.Execute()
}
