/*
Copyright © 2025 changheonshin
*/
package main

import "github.com/devlikebear/picsort/cmd"

func main() {
	cmd.Execute()
}
