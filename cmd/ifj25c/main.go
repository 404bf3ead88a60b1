// Command ifj25c is the IFJ25-to-IFJcode25 compiler's command-line entry
// point.
package main

import "github.com/cwbudde/ifj25c/cmd/ifj25c/cmd"

func main() {
	cmd.Execute()
}
