// cmd/grievance/main.go

// 申訴管理系統的程式進入點。
// 預設執行互動式選單；子命令：
//   - serve：啟動 HTTP 入口網站
//   - export：匯出 Excel 報表
//   - summary：輸出狀態統計
//
// 所有子命令共用同一套啟動流程：載入設定 → 建立 logger → 建立 Store 並載入資料檔。
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"grievance/internal/complaint"
	"grievance/internal/config"
	"grievance/internal/logging"
)

type rootFlags struct {
	configFile string
	dataFile   string
	logLevel   string
	logFormat  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\n[ERROR] An error occurred: %v\n", err)
		fmt.Fprintln(os.Stderr, "Please contact the system administrator.")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "grievance",
		Short:         "Citizen Grievance Management System",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(cmd, flags)
			if err != nil {
				return err
			}
			return runMenu(cmd, a)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "config file (default ./grievance.yaml)")
	pf.StringVar(&flags.dataFile, "data-file", "", "complaints JSON file")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "", "log format: text or json")

	cmd.AddCommand(newServeCmd(flags), newExportCmd(flags), newSummaryCmd(flags))
	return cmd
}

// app 為啟動完成的共用元件。
type app struct {
	cfg   *config.Config
	log   *slog.Logger
	store *complaint.Store
}

// bootstrap 載入設定並建立 Store。資料檔損壞不會中止程式：Store 以空集合啟動。
func bootstrap(cmd *cobra.Command, flags *rootFlags) (*app, error) {
	cfg, err := config.Load(flags.configFile)
	if err != nil {
		return nil, err
	}
	if flags.dataFile != "" {
		cfg.DataFile = flags.dataFile
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.Log.Format = flags.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	store := complaint.NewStore(cfg.DataFile, complaint.WithLogger(logger))
	if err := store.Load(); err != nil {
		var le *complaint.LoadError
		if !errors.As(err, &le) {
			return nil, err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "[ERROR] Error loading complaints: %v\n", le.Err)
	}
	return &app{cfg: cfg, log: logger, store: store}, nil
}
