package main

import "github.com/sagelight/outreach/cmd"

func main() {
	cmd.Execute()
}
