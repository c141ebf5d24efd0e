package main

import "github.com/lcdwatch/alarm-face/cmd/alarm-sim/cmd"

func main() {
	cmd.Execute()
}
