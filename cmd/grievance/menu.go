// cmd/grievance/menu.go

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"grievance/internal/console"
)

// runMenu 執行互動式選單。
// 背景 goroutine 監聽 SIGINT/SIGTERM：中斷時盡力存檔（忽略錯誤）後結束程式；
// 選單正常結束時 goroutine 隨之退出。
func runMenu(cmd *cobra.Command, a *app) error {
	out := cmd.OutOrStdout()
	if n := a.store.Len(); n > 0 {
		fmt.Fprintf(out, "[OK] Loaded %d complaint(s) from file.\n", n)
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})
	defer func() {
		signal.Stop(ch)
		close(done)
	}()
	go func() {
		select {
		case <-ch:
		case <-done:
			return
		}
		fmt.Fprintln(out, "\n\n[WARNING] Program interrupted by user.")
		fmt.Fprintln(out, "Saving data...")
		_ = a.store.Save()
		fmt.Fprintln(out, "Goodbye!")
		os.Exit(0)
	}()

	return console.New(a.store, cmd.InOrStdin(), out).Run()
}
