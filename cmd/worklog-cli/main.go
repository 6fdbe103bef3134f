package main

import "worklog/cmd/worklog-cli/cmd"

func main() {
	cmd.Execute()
}
