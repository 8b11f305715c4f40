// Robotick runs a demo model of the workload framework: a square-wave
// speed command smoothed by a low-pass filter, mixed into differential
// motor outputs, with every signal recorded and a monitoring server.
package main

import "github.com/robotick-labs/robotick/cmd/robotick/cmd"

func main() {
	cmd.Execute()
}
