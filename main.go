package main

import "foodgram-ui/cmd"

func main() {
	cmd.Execute()
}
