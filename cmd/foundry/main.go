package main

import "github.com/syre-ai/neural-foundry/cmd/foundry/root"

func main() {
	root.Execute()
}
