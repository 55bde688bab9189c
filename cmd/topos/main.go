// Command topos is the CLI entry point for the finite-set category toolkit.
package main

import "github.com/papapumpkin/topos/cmd"

func main() {
	cmd.Execute()
}
