// Package main is the entry point for the instantnews binary.
// Flag parsing, credential loading and command dispatch are handled by the
// cmd/ package via Cobra and Viper. main() simply delegates to cmd.Execute().
package main

import "github.com/instantnews/instantnews/cmd"

func main() { cmd.Execute() }
