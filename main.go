/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/SvenDH/hearthchess/cmd"

func main() {
	cmd.Execute()
}
