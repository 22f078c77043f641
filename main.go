// @title           Simple Todo App
// @version         1.0
// @description     Multi-user to-do lists: users, per-user dashboards, todo create/toggle/delete.
// @BasePath        /
package main

import (
	"github.com/biosecret/go-todo/app"
	_ "github.com/biosecret/go-todo/docs"
)

func main() {
	// setup and run app
	err := app.SetupAndRunApp()
	if err != nil {
		panic(err)
	}
}
