// Command boardkit-client is a small terminal client for a boardkit backend:
// it signs in, lists boards, optionally renames the opened board and prints
// its reconciled view.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/boardkit-dev/boardkit/frontend/internal/apiclient"
	"github.com/boardkit-dev/boardkit/frontend/internal/boardview"
	"github.com/boardkit-dev/boardkit/shared/logger"
)

func main() {
	var (
		baseURL  string
		email    string
		password string
		boardId  int64
		rename   string
	)
	flag.StringVar(&baseURL, "url", "http://localhost:8080", "backend base URL")
	flag.StringVar(&email, "email", "", "account email")
	flag.StringVar(&password, "password", "", "account password")
	flag.Int64Var(&boardId, "board", 0, "board id to open (0 lists boards)")
	flag.StringVar(&rename, "rename", "", "rename the opened board before printing it")
	flag.Parse()

	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "usage: boardkit-client -email ... -password ... [-board id]")
		os.Exit(2)
	}

	ctx := context.Background()
	client := apiclient.New(baseURL)
	if err := client.Login(ctx, email, password); err != nil {
		logger.Log.Error("login failed", "error", err)
		os.Exit(1)
	}

	if boardId == 0 {
		boards, err := client.GetBoards(ctx)
		if err != nil {
			logger.Log.Error("failed to list boards", "error", err)
			os.Exit(1)
		}
		for _, b := range boards {
			fmt.Printf("%d\t%s\n", b.Id, b.Name)
		}
		return
	}

	view := boardview.New(client, boardId)
	if err := view.Refresh(ctx); err != nil {
		logger.Log.Error("failed to load board", "error", err)
		os.Exit(1)
	}

	if rename != "" {
		ed := view.BoardEditor()
		ed.Begin(view.View().Name)
		ed.Type(rename)
		view.SubmitBoardEdit(ctx)
		view.Wait()
		if err := view.Refresh(ctx); err != nil {
			logger.Log.Error("failed to reload board", "error", err)
			os.Exit(1)
		}
	}

	board := view.View()
	fmt.Printf("%s (%d)\n", board.Name, board.Id)
	for _, column := range board.Columns {
		fmt.Printf("  [%s]\n", column.Name)
		for _, item := range column.Items {
			fmt.Printf("    - %s\n", item.Title)
		}
	}
}
