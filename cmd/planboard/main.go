// Command planboard runs project-management operations against local storage.
package main

import "github.com/mesh-intelligence/planboard/internal/cli"

func main() {
	cli.Execute()
}
