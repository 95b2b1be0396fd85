package main

import "github.com/postsaleshq/copilot-dash/cmd/dashctl/cmd"

func main() {
	cmd.Execute()
}
