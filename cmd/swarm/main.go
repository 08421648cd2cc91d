package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/swarm-installation/config"
	"github.com/lixenwraith/swarm-installation/core"
	"github.com/lixenwraith/swarm-installation/engine"
	"github.com/lixenwraith/swarm-installation/host/sim"
	"github.com/lixenwraith/swarm-installation/installation"
	"github.com/lixenwraith/swarm-installation/preview"
	"github.com/lixenwraith/swarm-installation/room"
)

type rootFlags struct {
	configPath  string
	debug       bool
	metricsAddr string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	var logFile *os.File

	root := &cobra.Command{
		Use:           "swarm",
		Short:         "Procedural swarm installation driven by room identity",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logFile = setupLogging(flags.debug)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logFile != nil {
				logFile.Close()
			}
		},
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "TOML config file (defaults plus SWARM_* environment when empty)")
	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "write logs to "+logDir+"/"+logFileName)

	root.AddCommand(newPreviewCmd(flags), newRoomCmd(flags), newSurveyCmd())
	return root
}

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Run the installation with a top-down terminal view",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			if flags.metricsAddr != "" {
				cfg.Metrics.Addr = flags.metricsAddr
			}
			return runPreview(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&flags.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	return cmd
}

func runPreview(parent context.Context, cfg config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	core.SetCrashHook(screen.Fini)

	a, err := newApp(ctx, cfg, cfg.Metrics.Addr != "")
	if err != nil {
		return err
	}
	defer a.Close()

	if a.metrics != nil {
		addr := cfg.Metrics.Addr
		core.Go(func() {
			if err := a.metrics.Serve(ctx, addr); err != nil {
				log.Printf("metrics server: %v", err)
			}
		})
	}

	a.loop.Start(ctx)
	preview.New(screen, a.world, a.host, a.inst, a.portals, a.scene).Run(ctx)
	return nil
}

func parseCoordinate(args []string) (room.Coordinate, error) {
	var v [3]int
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return room.Coordinate{}, fmt.Errorf("coordinate %q: %w", s, err)
		}
		v[i] = n
	}
	return room.New(v[0], v[1], v[2]), nil
}

func newRoomCmd(flags *rootFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "room X Y Z",
		Short: "Print the identity and selection of a room",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := parseCoordinate(args)
			if err != nil {
				return err
			}
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			return printRoom(cmd.OutOrStdout(), cfg, coord, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the selection as JSON")
	return cmd
}

// printRoom resolves the selection on a headless installation, nothing is rendered
func printRoom(w io.Writer, cfg config.Config, coord room.Coordinate, asJSON bool) error {
	instCfg, err := cfg.ToInstallation()
	if err != nil {
		return err
	}
	instCfg.Count = 0
	world := engine.NewWorld()
	inst := installation.New(world, sim.New(world, nil), instCfg)
	inst.RegisterDefaults()

	sel, err := inst.Select(coord.ID())
	if err != nil {
		return err
	}
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sel)
	}
	fmt.Fprintf(w, "room     %s\n", coord)
	fmt.Fprintf(w, "id       %s\n", sel.ID)
	fmt.Fprintf(w, "shape    %s\n", sel.Shape)
	fmt.Fprintf(w, "motion   %s\n", sel.Motion)
	fmt.Fprintf(w, "color    %s\n", sel.Color)
	fmt.Fprintf(w, "ambience %s\n", sel.Ambience)
	return nil
}

func newSurveyCmd() *cobra.Command {
	var radius int
	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Print the digit distribution of identities around the origin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if radius < 0 {
				return fmt.Errorf("radius must be non-negative, got %d", radius)
			}
			printSurvey(cmd.OutOrStdout(), radius)
			return nil
		},
	}
	cmd.Flags().IntVar(&radius, "radius", 8, "survey the cube of rooms within this distance per axis")
	return cmd
}

func printSurvey(w io.Writer, radius int) {
	r := room.Range{Min: -radius, Max: radius}
	h := room.Survey(r, r, r)
	fmt.Fprintf(w, "rooms %d, unique identities %d\n", h.Rooms, h.Unique)
	for d := 0; d < 10; d++ {
		fmt.Fprintf(w, "  %d  %7d  %6.3f\n", d, h.Counts[d], h.Frequency(d))
	}
	fmt.Fprintf(w, "chi-square %.2f (9 dof)\n", h.ChiSquare())
}
