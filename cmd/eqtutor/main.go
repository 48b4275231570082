// Command eqtutor solves first-degree equations and checks your answers.
package main

import "github.com/eqtutor/eqtutor/internal/cli"

func main() {
	cli.Execute()
}
