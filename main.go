package main

import "smart-todo.com/smart-todo/cmd"

func main() {
	cmd.Execute()
}
