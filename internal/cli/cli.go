package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/todocore/todo-app/internal/models"
	"github.com/todocore/todo-app/internal/services"
)

// localOwnerID scopes every console task. The store API requires an
// owner on each call; the single-user console supplies a constant.
const localOwnerID = "local"

// App is the interactive console frontend.
type App struct {
	service *services.TaskService
	in      *bufio.Scanner
	out     io.Writer
}

// New creates a console app reading commands from in and writing to out.
func New(service *services.TaskService, in io.Reader, out io.Writer) *App {
	return &App{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run drives the menu loop until the user exits or input ends.
func (a *App) Run() {
	fmt.Fprintln(a.out, "=== Todo Console App ===")

	for {
		a.printMenu()
		choice, ok := a.readLine("Select an option: ")
		if !ok {
			return
		}

		switch strings.TrimSpace(choice) {
		case "1":
			a.addTask()
		case "2":
			a.viewTasks()
		case "3":
			a.updateTask()
		case "4":
			a.toggleTask()
		case "5":
			a.deleteTask()
		case "6":
			fmt.Fprintln(a.out, "Goodbye!")
			return
		default:
			fmt.Fprintln(a.out, "Invalid option. Please choose 1-6.")
		}
	}
}

func (a *App) printMenu() {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "1. Add task")
	fmt.Fprintln(a.out, "2. View tasks")
	fmt.Fprintln(a.out, "3. Update task")
	fmt.Fprintln(a.out, "4. Toggle complete")
	fmt.Fprintln(a.out, "5. Delete task")
	fmt.Fprintln(a.out, "6. Exit")
}

func (a *App) addTask() {
	description, ok := a.readLine("Enter task description: ")
	if !ok {
		return
	}

	task, err := a.service.AddTask(localOwnerID, description, nil)
	if err != nil {
		a.printError(err)
		return
	}
	fmt.Fprintf(a.out, "Task %d added.\n", task.ID)
}

func (a *App) viewTasks() {
	tasks, _, err := a.service.ViewTasks(localOwnerID, services.ListTasksInput{})
	if err != nil {
		a.printError(err)
		return
	}
	fmt.Fprint(a.out, RenderTasks(tasks))
}

func (a *App) updateTask() {
	id, ok := a.readID()
	if !ok {
		return
	}
	description, ok := a.readLine("Enter new description: ")
	if !ok {
		return
	}

	_, err := a.service.UpdateTask(localOwnerID, id, services.UpdateTaskInput{
		Title: &description,
	})
	if err != nil {
		a.printError(err)
		return
	}
	fmt.Fprintf(a.out, "Task %d updated.\n", id)
}

func (a *App) toggleTask() {
	id, ok := a.readID()
	if !ok {
		return
	}

	task, err := a.service.ToggleTask(localOwnerID, id)
	if err != nil {
		a.printError(err)
		return
	}
	if task.Completed {
		fmt.Fprintf(a.out, "Task %d marked complete.\n", id)
	} else {
		fmt.Fprintf(a.out, "Task %d marked pending.\n", id)
	}
}

func (a *App) deleteTask() {
	id, ok := a.readID()
	if !ok {
		return
	}

	if err := a.service.DeleteTask(localOwnerID, id); err != nil {
		a.printError(err)
		return
	}
	fmt.Fprintf(a.out, "Task %d deleted.\n", id)
}

func (a *App) readID() (int64, bool) {
	line, ok := a.readLine("Enter task ID: ")
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Error: task ID must be a positive integer")
		return 0, false
	}
	return id, true
}

func (a *App) readLine(prompt string) (string, bool) {
	fmt.Fprint(a.out, prompt)
	if !a.in.Scan() {
		return "", false
	}
	return a.in.Text(), true
}

func (a *App) printError(err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		fmt.Fprintf(a.out, "Error: %s\n", validationErr.Message)
	case errors.Is(err, services.ErrTaskNotFound):
		fmt.Fprintln(a.out, "Error: task not found")
	default:
		fmt.Fprintf(a.out, "Unexpected error: %v\n", err)
	}
}

// RenderTasks formats tasks as a two-column table with a checkbox-style
// status marker.
func RenderTasks(tasks []models.Task) string {
	if len(tasks) == 0 {
		return "No tasks found. Add a task to get started!\n"
	}

	var b strings.Builder
	b.WriteString("\nID  Status  Description\n")
	b.WriteString("--  ------  -----------\n")

	for _, task := range tasks {
		status := "[ ]"
		if task.Completed {
			status = "[✓]"
		}
		// Printf padding counts bytes; the marker is always three
		// characters wide, so space it explicitly.
		fmt.Fprintf(&b, "%-3d %s     %s\n", task.ID, status, task.Title)
	}

	return b.String()
}
