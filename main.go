// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"os/user"

	"minipy/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the minipy REPL, %s!\n", currentUser.Username)
	fmt.Println("End a line with ':' to open a block; an empty line closes it.")
	repl.Start(os.Stdin, os.Stdout)
}
