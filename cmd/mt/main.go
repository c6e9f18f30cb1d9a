package main

import "missiontracker/cmd/mt/root"

func main() {
	root.Execute()
}
