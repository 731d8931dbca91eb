package main

import (
	"github.com/bornholm/todoshare/internal/command"
	"github.com/bornholm/todoshare/internal/command/todos"
	"github.com/bornholm/todoshare/internal/command/users"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	command.Main(
		"todoshare", "maintenance tool for the shared todo list store",
		users.Command(),
		todos.Command(),
	)
}
