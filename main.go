package main

import "github.com/ValentinKolb/judp/cmd"

func main() {
	cmd.Execute()
}
