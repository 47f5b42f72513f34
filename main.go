package main

import "github.com/ValentinKolb/fastobj/cmd"

func main() {
	cmd.Execute()
}
