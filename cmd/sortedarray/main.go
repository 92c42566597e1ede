// The sortedarray command sorts, deduplicates, merges and
// queries line-based records.
package main

import "github.com/rogpeppe/sortedarray/internal/commands"

func main() {
	commands.Execute()
}
