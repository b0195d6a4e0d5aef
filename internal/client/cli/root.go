package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to TaskKeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("tk %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: list, add, done <id>, prio <id> <priority>, edit <id>, del <id>, exit")
			} else {
				fmt.Println("Available commands: register, login, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "list":
			a.list(ctx)
		case "add":
			a.add(ctx, args)
		case "done":
			a.done(ctx, args)
		case "prio":
			a.prio(ctx, args)
		case "edit":
			a.edit(ctx, args)
		case "del":
			a.delete(ctx, args)
		case "exit":
			return
		default:
			fmt.Println("Unknown command (type 'help' for commands)")
		}
	}
}
