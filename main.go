package main

import "github.com/Alijeyrad/notifications/cmd"

func main() {
	cmd.Execute()
}
