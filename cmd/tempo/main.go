// Command tempo converts instants and periods across astronomical time scales.
package main

import "github.com/halcyard/tempo/cmd"

func main() {
	cmd.Execute()
}
