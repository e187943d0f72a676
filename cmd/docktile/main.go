package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/docktile/internal/config"
	"github.com/1broseidon/docktile/internal/daemon"
	"github.com/1broseidon/docktile/internal/ipc"
	"github.com/1broseidon/docktile/internal/platform"
	"github.com/1broseidon/docktile/internal/pointer"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "daemon":
		if len(os.Args) > 2 && (os.Args[2] == "help" || os.Args[2] == "-h" || os.Args[2] == "--help") {
			fmt.Fprintln(os.Stdout, "Usage: docktile daemon")
			os.Exit(0)
		}
		if len(os.Args) > 2 {
			fmt.Fprintln(os.Stderr, "daemon takes no arguments")
			fmt.Fprintln(os.Stderr, "")
			fmt.Fprintln(os.Stderr, "Usage: docktile daemon")
			os.Exit(2)
		}
		runDaemon()
	case "status":
		os.Exit(runStatus(os.Args[2:]))
	case "windows":
		os.Exit(runWindows(os.Args[2:]))
	case "manage":
		os.Exit(runManage(os.Args[2:]))
	case "unmanage":
		os.Exit(runUnmanage(os.Args[2:]))
	case "move":
		os.Exit(runMove(os.Args[2:]))
	case "shade":
		os.Exit(runShade(os.Args[2:]))
	case "decorate":
		os.Exit(runDecorate(os.Args[2:]))
	case "reload":
		os.Exit(runReload(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docktile <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  daemon              Start the docktile daemon (foreground)")
	fmt.Fprintln(w, "  status              Show daemon status")
	fmt.Fprintln(w, "  windows             List managed windows")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  manage <id>         Enroll a window for docking and snapping")
	fmt.Fprintln(w, "  unmanage <id>       Remove a window from docking management")
	fmt.Fprintln(w, "  move <id> <x> <y>   Move a window and its dock group")
	fmt.Fprintln(w, "  shade <id> <h>      Resize a window, shifting its vertical stack")
	fmt.Fprintln(w, "  decorate <id>       Toggle host window-manager decorations")
	fmt.Fprintln(w, "  reload              Reload the daemon configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print effective configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Window IDs accept decimal or hex (0x...) notation.")
	fmt.Fprintln(w, "Run 'docktile <command> --help' for command-specific options.")
}

// parseWindowID parses an X11 window ID in decimal or hex notation.
func parseWindowID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid window ID %q: %w", s, err)
	}
	if id == 0 {
		return 0, fmt.Errorf("window ID must be non-zero")
	}
	return uint32(id), nil
}

func runStatus(args []string) int {
	if badArgs(args, 0, "status", "Show daemon status via IPC.") {
		return statusExitCode(args)
	}

	client := ipc.NewClient()
	status, err := client.GetStatus()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("daemon_running: %v\n", status.DaemonRunning)
	fmt.Printf("managed_count:  %d\n", status.ManagedCount)
	fmt.Printf("snap_windows:   %v\n", status.SnapWindows)
	fmt.Printf("snap_distance:  %d\n", status.SnapDistance)
	fmt.Printf("uptime_seconds: %d\n", status.UptimeSeconds)
	return 0
}

func runWindows(args []string) int {
	if badArgs(args, 0, "windows", "List managed windows via IPC.") {
		return statusExitCode(args)
	}

	client := ipc.NewClient()
	data, err := client.ListWindows()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if len(data.Windows) == 0 {
		fmt.Println("No managed windows.")
		return 0
	}
	for _, w := range data.Windows {
		state := "docked"
		if w.Decorated {
			state = "decorated"
		}
		if w.Moving {
			state = "moving"
		}
		role := w.Role
		if role == "" {
			role = "-"
		}
		fmt.Printf("0x%08x  role=%-12s  %4dx%-4d at (%d,%d)  [%s]\n",
			w.ID, role, w.Width, w.Height, w.X, w.Y, state)
	}
	return 0
}

func runManage(args []string) int {
	role := ""
	rest := args
	if len(rest) > 0 && (rest[0] == "help" || rest[0] == "-h" || rest[0] == "--help") {
		fmt.Fprintln(os.Stdout, "Usage: docktile manage <window-id> [role]")
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, "Enroll a window for docking. With a role, the window's position is")
		fmt.Fprintln(os.Stdout, "persisted under that name and restored on the next manage.")
		return 0
	}
	if len(rest) < 1 || len(rest) > 2 {
		fmt.Fprintln(os.Stderr, "Usage: docktile manage <window-id> [role]")
		return 2
	}
	if len(rest) == 2 {
		role = rest[1]
	}

	id, err := parseWindowID(rest[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if err := ipc.NewClient().ManageWindow(id, role); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("Managing window 0x%08x\n", id)
	return 0
}

func runUnmanage(args []string) int {
	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stdout, "Usage: docktile unmanage <window-id>")
		return 0
	}
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: docktile unmanage <window-id>")
		return 2
	}

	id, err := parseWindowID(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if err := ipc.NewClient().UnmanageWindow(id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Printf("Unmanaged window 0x%08x\n", id)
	return 0
}

func runMove(args []string) int {
	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stdout, "Usage: docktile move <window-id> <x> <y>")
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, "Move a managed window. Docked neighbors move along, and nearby edges")
		fmt.Fprintln(os.Stdout, "snap within the configured distance.")
		return 0
	}
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: docktile move <window-id> <x> <y>")
		return 2
	}

	id, err := parseWindowID(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	x, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid x coordinate %q\n", args[1])
		return 2
	}
	y, err := strconv.Atoi(args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid y coordinate %q\n", args[2])
		return 2
	}

	if err := ipc.NewClient().MoveWindow(id, x, y); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runShade(args []string) int {
	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stdout, "Usage: docktile shade <window-id> <height>")
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, "Resize a managed window to the given height. Windows docked below")
		fmt.Fprintln(os.Stdout, "slide to stay attached, clamped to the screen.")
		return 0
	}
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: docktile shade <window-id> <height>")
		return 2
	}

	id, err := parseWindowID(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	height, err := strconv.Atoi(args[1])
	if err != nil || height <= 0 {
		fmt.Fprintf(os.Stderr, "invalid height %q\n", args[1])
		return 2
	}

	if err := ipc.NewClient().ShadeWindow(id, height); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runDecorate(args []string) int {
	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stdout, "Usage: docktile decorate <window-id> <on|off>")
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, "Toggle host window-manager decorations. Decorated windows leave the")
		fmt.Fprintln(os.Stdout, "docking group until decorations are turned off again.")
		return 0
	}
	if len(args) != 2 || (args[1] != "on" && args[1] != "off") {
		fmt.Fprintln(os.Stderr, "Usage: docktile decorate <window-id> <on|off>")
		return 2
	}

	id, err := parseWindowID(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if err := ipc.NewClient().SetDecorated(id, args[1] == "on"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runReload(args []string) int {
	if badArgs(args, 0, "reload", "Tell the daemon to reload its configuration file.") {
		return statusExitCode(args)
	}

	if err := ipc.NewClient().Reload(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println("Configuration reloaded.")
	return 0
}

func runConfig(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: docktile config <validate|print>")
		return 2
	}

	switch args[0] {
	case "validate":
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Config invalid: %v\n", err)
			return 1
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Config invalid: %v\n", err)
			return 1
		}
		fmt.Println("Config OK.")
		return 0
	case "print":
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		os.Stdout.Write(data)
		return 0
	case "help", "-h", "--help":
		fmt.Fprintln(os.Stdout, "Usage: docktile config <validate|print>")
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n", args[0])
		return 2
	}
}

// badArgs reports whether a zero-argument subcommand was invoked with
// arguments or a help flag, printing usage as needed.
func badArgs(args []string, want int, name, description string) bool {
	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintf(os.Stdout, "Usage: docktile %s\n\n%s\n", name, description)
		return true
	}
	if len(args) != want {
		fmt.Fprintf(os.Stderr, "%s takes no arguments\n\nUsage: docktile %s\n", name, name)
		return true
	}
	return false
}

// statusExitCode maps a help invocation to success and anything else to a
// usage error.
func statusExitCode(args []string) int {
	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		return 0
	}
	return 2
}

func runDaemon() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Configuration loaded (snap: %v, distance: %dpx)", cfg.SnapWindows, cfg.SnapDistance)

	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		log.Fatalf("Failed to connect to display: %v", err)
	}
	defer backend.Close()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	manager := daemon.NewManager(cfg, backend, logger)

	adapter, err := pointer.NewAdapter(backend, manager.Controller(), manager.Locker())
	if err != nil {
		log.Fatalf("Failed to create pointer adapter: %v", err)
	}
	manager.SetAdapter(adapter)

	ipcServer, err := ipc.NewServer(manager)
	if err != nil {
		log.Fatalf("Failed to create IPC server: %v", err)
	}
	if err := ipcServer.Start(); err != nil {
		log.Fatalf("Failed to start IPC server: %v", err)
	}
	defer ipcServer.Stop()

	log.Println("docktile daemon started successfully")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		for sig := range sigCh {
			switch sig {
			case syscall.SIGHUP:
				log.Println("Received SIGHUP, reloading config...")
				if err := manager.Reload(); err != nil {
					log.Printf("Config reload failed: %v", err)
					continue
				}
				log.Println("Config reloaded successfully")

			case os.Interrupt, syscall.SIGTERM:
				log.Println("Shutting down docktile daemon...")
				if err := manager.SavePositions(); err != nil {
					log.Printf("Failed to save window positions: %v", err)
				}
				ipcServer.Stop()
				os.Exit(0)
			}
		}
	}()

	log.Println("Entering event loop...")
	backend.EventLoop()
}
