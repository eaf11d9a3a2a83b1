package main

import "github.com/BerniceZTT/estate_end/cmd"

func main() {
	cmd.Execute()
}
