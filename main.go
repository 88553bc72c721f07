package main

import "github.com/PolarTechJordan/richtemple/cmd"

func main() {
	cmd.Execute()
}
