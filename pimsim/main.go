// Command pimsim measures GEMV workloads on a PIM-enabled HBM device.
package main

import "github.com/LeeHayun/PIM-Code-Test/pimsim/cmd"

func main() {
	cmd.Execute()
}
