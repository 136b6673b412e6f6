// Package main is the entry point for the staticscan CLI.
package main

import "github.com/VoidbreakDev/AFL-Coach-Sim/cmd"

func main() {
	cmd.Execute()
}
