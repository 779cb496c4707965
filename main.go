package main

import (
	"context"
	"os"

	"github.com/postboard/postboard-backend/cmd"
)

// @title Postboard API
// @version 1.0
// @description CRUD API for users and their posts.
// @BasePath /
func main() {
	if err := cmd.NewRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
