package main

import "github.com/SmileNJsx/scala/cmd"

func main() {
	cmd.Execute()
}
