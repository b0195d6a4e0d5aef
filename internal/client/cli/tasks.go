package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) list(ctx context.Context) {

	result, err := a.api.ListTasks(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	if len(result) == 0 {
		fmt.Println("No tasks yet")
		return
	}

	for _, t := range result {
		fmt.Printf("%s  [%s/%s]  %s\n", t.ID, t.Status, t.Priority, t.Text)
	}
}

func (a *App) add(ctx context.Context, args []string) {

	text := strings.Join(args, " ")
	if text == "" {
		var err error
		text, err = GetSimpleText(a.reader, "Enter task text", os.Stdout)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
	}

	// status and priority are left to the server defaults
	task, err := a.api.CreateTask(ctx, text, nil, nil)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	fmt.Printf("Added %s\n", task.ID)
}

func (a *App) done(ctx context.Context, args []string) {

	if len(args) != 1 {
		fmt.Println("Usage: done <id>")
		return
	}

	task, err := a.api.UpdateStatus(ctx, args[0], "done")
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	fmt.Printf("%s is now %s\n", task.ID, task.Status)
}

func (a *App) prio(ctx context.Context, args []string) {

	if len(args) != 2 {
		fmt.Println("Usage: prio <id> <priority>")
		return
	}

	task, err := a.api.UpdatePriority(ctx, args[0], args[1])
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	fmt.Printf("%s priority is now %s\n", task.ID, task.Priority)
}

func (a *App) edit(ctx context.Context, args []string) {

	if len(args) < 1 {
		fmt.Println("Usage: edit <id> [new text]")
		return
	}

	text := strings.Join(args[1:], " ")
	if text == "" {
		var err error
		text, err = GetSimpleText(a.reader, "Enter new task text", os.Stdout)
		if err != nil {
			fmt.Println(err.Error())
			return
		}
	}

	task, err := a.api.UpdateText(ctx, args[0], text)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	fmt.Printf("%s updated\n", task.ID)
}

func (a *App) delete(ctx context.Context, args []string) {

	if len(args) != 1 {
		fmt.Println("Usage: del <id>")
		return
	}

	if err := a.api.DeleteTask(ctx, args[0]); err != nil {
		fmt.Println(err.Error())
		return
	}

	fmt.Println("Task deleted")
}
