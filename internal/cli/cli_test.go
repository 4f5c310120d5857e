package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/todocore/todo-app/internal/models"
	"github.com/todocore/todo-app/internal/services"
	"github.com/todocore/todo-app/internal/store"
)

func newTestApp(input string) (*App, *bytes.Buffer) {
	svc := services.NewTaskService(store.NewMemoryStore(), services.ConsoleLimits())
	out := &bytes.Buffer{}
	return New(svc, strings.NewReader(input), out), out
}

func TestRenderTasksEmpty(t *testing.T) {
	assert.Equal(t, "No tasks found. Add a task to get started!\n", RenderTasks(nil))
}

func TestRenderTasksTable(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Title: "Buy milk", Completed: false},
		{ID: 2, Title: "Walk dog", Completed: true},
	}

	rendered := RenderTasks(tasks)

	assert.Contains(t, rendered, "ID  Status  Description")
	assert.Contains(t, rendered, "[ ]")
	assert.Contains(t, rendered, "[✓]")
	assert.Contains(t, rendered, "Buy milk")
	assert.Contains(t, rendered, "Walk dog")

	// Listing order follows the input order.
	require.Less(t, strings.Index(rendered, "Buy milk"), strings.Index(rendered, "Walk dog"))
}

func TestAppAddViewAndExit(t *testing.T) {
	app, out := newTestApp("1\nBuy milk\n2\n6\n")

	app.Run()

	output := out.String()
	assert.Contains(t, output, "Task 1 added.")
	assert.Contains(t, output, "Buy milk")
	assert.Contains(t, output, "Goodbye!")
}

func TestAppRejectsEmptyDescription(t *testing.T) {
	app, out := newTestApp("1\n   \n6\n")

	app.Run()

	assert.Contains(t, out.String(), "Error: title cannot be empty")
}

func TestAppToggleAndDelete(t *testing.T) {
	app, out := newTestApp("1\nBuy milk\n4\n1\n4\n1\n5\n1\n2\n6\n")

	app.Run()

	output := out.String()
	assert.Contains(t, output, "Task 1 marked complete.")
	assert.Contains(t, output, "Task 1 marked pending.")
	assert.Contains(t, output, "Task 1 deleted.")
	assert.Contains(t, output, "No tasks found.")
}

func TestAppUnknownTaskID(t *testing.T) {
	app, out := newTestApp("5\n99\n6\n")

	app.Run()

	assert.Contains(t, out.String(), "Error: task not found")
}

func TestAppRejectsNonNumericID(t *testing.T) {
	app, out := newTestApp("4\nabc\n6\n")

	app.Run()

	assert.Contains(t, out.String(), "task ID must be a positive integer")
}
