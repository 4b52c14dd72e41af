/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/suggestion-board/board/cmd"

func main() {
	cmd.Execute()
}
