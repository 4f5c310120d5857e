package main

import (
	"os"

	"github.com/todocore/todo-app/internal/cli"
	"github.com/todocore/todo-app/internal/services"
	"github.com/todocore/todo-app/internal/store"
)

func main() {
	taskStore := store.NewMemoryStore()
	taskService := services.NewTaskService(taskStore, services.ConsoleLimits())

	app := cli.New(taskService, os.Stdin, os.Stdout)
	app.Run()
}
