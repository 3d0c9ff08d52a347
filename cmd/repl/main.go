package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/kurobon/gitdojo/backend/internal/git"
	_ "github.com/kurobon/gitdojo/backend/internal/git/commands" // Register commands
	"github.com/kurobon/gitdojo/backend/internal/repo"
)

// Interactive driver for the command engine. Handy for poking at command
// output without standing up the HTTP server.
func main() {
	eng := git.New()
	snap := repo.NewInitSnapshot()

	fmt.Println("gitdojo sandbox. Enter git commands; \"exit\" leaves.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		res := eng.Run(context.Background(), snap, line)
		if res.Output != "" {
			fmt.Println(res.Output)
		}
		snap = res.Snapshot
	}

	if err := scanner.Err(); err != nil {
		fmt.Printf("read input: %v\n", err)
	}
}
