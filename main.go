package main

import "spendtrack/cmd"

func main() {
	cmd.Execute()
}
