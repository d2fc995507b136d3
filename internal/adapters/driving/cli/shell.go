package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/occu-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/occu-cli/internal/adapters/driving/shell"
	"github.com/custodia-labs/occu-cli/internal/core/domain"
	"github.com/custodia-labs/occu-cli/internal/core/ports/driving"
	"github.com/custodia-labs/occu-cli/internal/core/services"
	"github.com/custodia-labs/occu-cli/internal/logger"
)

var (
	forcePrompt bool
	noPrompt    bool
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive event shell",
	Long: `Start the line-oriented shell. Each line is one command:

  new <title> <description>        create an event
  list | ls                        list events, oldest first
  remove | rm <index>              remove an event after confirmation
  occur | oc <index> <t> <d> [k=v] record an occurance on an event
  help | h | ?                     show the command list
  exit | quit                      leave the shell

Double quotes group words into one argument. The prompt is shown when
standard input is a terminal unless --prompt or --no-prompt says otherwise.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, shellCmd} {
		c.Flags().BoolVar(&forcePrompt, "prompt", false, "always print the prompt")
		c.Flags().BoolVar(&noPrompt, "no-prompt", false, "never print the prompt")
		c.MarkFlagsMutuallyExclusive("prompt", "no-prompt")
	}
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configStore, settingsService, err := openSettings()
	if err != nil {
		return err
	}
	settings, err := newLiveSettings(settingsService)
	if err != nil {
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := configStore.Watch(watchCtx, settings.refresh); err != nil {
			logger.Warn("config watch stopped: %v", err)
		}
	}()
	defer func() {
		cancel()
		wg.Wait()
	}()

	in := cmd.InOrStdin()
	loop, err := shell.NewLoop(shell.Config{
		In:         in,
		Out:        cmd.OutOrStdout(),
		Err:        cmd.ErrOrStderr(),
		Events:     services.NewEventService(memory.NewEventStore()),
		Settings:   settings.current,
		ShowPrompt: promptEnabled(in),
	})
	if err != nil {
		return fmt.Errorf("failed to start shell: %w", err)
	}

	if err := loop.Run(ctx); err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	return nil
}

// promptEnabled applies --prompt/--no-prompt, falling back to whether in
// is a terminal.
func promptEnabled(in io.Reader) bool {
	switch {
	case forcePrompt:
		return true
	case noPrompt:
		return false
	}
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// liveSettings holds the last valid settings. A reload that produces
// invalid settings keeps the previous ones.
type liveSettings struct {
	service driving.SettingsService
	value   atomic.Pointer[domain.AppSettings]
}

func newLiveSettings(service driving.SettingsService) (*liveSettings, error) {
	s, err := service.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	l := &liveSettings{service: service}
	l.value.Store(s)
	return l, nil
}

func (l *liveSettings) refresh() {
	s, err := l.service.Get()
	if err != nil {
		logger.Warn("ignoring reloaded settings: %v", err)
		return
	}
	l.value.Store(s)
	logger.Info("settings reloaded")
}

func (l *liveSettings) current() domain.AppSettings {
	return *l.value.Load()
}
