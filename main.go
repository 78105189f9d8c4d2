package main

import "data-recon/cmd"

func main() {
	cmd.Execute()
}
