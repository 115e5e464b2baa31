package main

import "github.com/jsphweid/seedsong/cmd"

func main() {
	cmd.Execute()
}
