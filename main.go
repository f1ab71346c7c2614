package main

import "cddns/cmd"

func main() {
	cmd.Execute()
}
