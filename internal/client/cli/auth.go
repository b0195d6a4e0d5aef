package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Register(ctx context.Context) {

	userName, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	if err := a.api.Register(ctx, userName, password); err != nil {
		fmt.Println(err.Error())
		return
	}

	fmt.Println("Registered! Use 'login' to sign in.")
}

func (a *App) Login(ctx context.Context) {

	userName, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	if err := a.api.Login(ctx, userName, password); err != nil {
		fmt.Println(err.Error())
		return
	}

	a.userName = userName
	fmt.Println("Success!")
}
